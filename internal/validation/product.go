package validation

import (
	"encoding/json"

	"storefront/internal/models"
)

type ProductInput struct {
	Name          *string  `json:"name"           validate:"required,min=3,max=100,productname"`
	Price         *float64 `json:"price"          validate:"required,gt=0,max=1000000,finite"`
	OriginalPrice *float64 `json:"original_price" validate:"omitempty,gt=0,max=1000000"`
	Description   *string  `json:"description"    validate:"omitempty,max=5000"`
	Category      *string  `json:"category"       validate:"required,min=1,max=50"`
	ImageURL      *string  `json:"image_url"      validate:"omitempty,url,max=500"`
	Images        []string `json:"images"         validate:"omitempty,max=10,dive,url"`
	InStock       *bool    `json:"in_stock"       validate:"required"`
	Rating        *float64 `json:"rating"         validate:"omitempty,min=0,max=5"`
	Size          *string  `json:"size"           validate:"omitempty,max=50"`
	Weight        *string  `json:"weight"         validate:"omitempty,max=50"`
	Unit          *string  `json:"unit"           validate:"omitempty,max=20"`
	IsLoose       *bool    `json:"isLoose"`
}

// ProductPatchInput is ProductInput with every field optional; bounds still
// apply to the fields that are present.
type ProductPatchInput struct {
	Name          *string  `json:"name"           validate:"omitempty,min=3,max=100,productname"`
	Price         *float64 `json:"price"          validate:"omitempty,gt=0,max=1000000,finite"`
	OriginalPrice *float64 `json:"original_price" validate:"omitempty,gt=0,max=1000000"`
	Description   *string  `json:"description"    validate:"omitempty,max=5000"`
	Category      *string  `json:"category"       validate:"omitempty,min=1,max=50"`
	ImageURL      *string  `json:"image_url"      validate:"omitempty,url,max=500"`
	Images        []string `json:"images"         validate:"omitempty,max=10,dive,url"`
	InStock       *bool    `json:"in_stock"`
	Rating        *float64 `json:"rating"         validate:"omitempty,min=0,max=5"`
	Size          *string  `json:"size"           validate:"omitempty,max=50"`
	Weight        *string  `json:"weight"         validate:"omitempty,max=50"`
	Unit          *string  `json:"unit"           validate:"omitempty,max=20"`
	IsLoose       *bool    `json:"isLoose"`
}

var productMessages = map[string]string{
	"name.min":           "Product name must be at least 3 characters",
	"name.max":           "Product name is too long",
	"name.productname":   "Product name contains invalid characters",
	"price.gt":           "Price must be positive",
	"price.max":          "Price is too high",
	"price.finite":       "Price must be a valid number",
	"original_price.gt":  "Original price must be positive",
	"original_price.max": "Original price is too high",
	"description.max":    "Description is too long",
	"category.min":       "Category is required",
	"category.max":       "Category name is too long",
	"image_url.url":      "Invalid image URL",
	"image_url.max":      "Image URL is too long",
	"images.max":         "Too many images",
	"images.url":         "Invalid image URL",
	"rating.min":         "Rating cannot be negative",
	"rating.max":         "Rating cannot exceed 5",
	"size.max":           "Size is too long",
	"weight.max":         "Weight is too long",
	"unit.max":           "Unit is too long",
}

// clearableProductFields are the patch keys that accept null, with the
// column null clears.
var clearableProductFields = []struct{ key, column string }{
	{"original_price", "original_price"},
	{"description", "description"},
	{"image_url", "image_url"},
	{"images", "images"},
	{"rating", "rating"},
	{"size", "size"},
	{"weight", "weight"},
	{"unit", "unit"},
	{"isLoose", "is_loose"},
}

var requiredProductFields = []string{"name", "price", "category", "in_stock"}

func (v *Validator) ParseProduct(payload []byte) (models.Product, error) {
	d := &decoder{}
	obj := d.root(payload)
	if obj == nil {
		return models.Product{}, d.result()
	}
	in := ProductInput(decodeProductFields(d, obj))

	v.check(d, in, productMessages)
	if err := d.result(); err != nil {
		return models.Product{}, err
	}

	p := models.Product{
		Name:          deref(in.Name),
		Price:         derefNum(in.Price),
		OriginalPrice: in.OriginalPrice,
		Description:   in.Description,
		Category:      deref(in.Category),
		ImageURL:      in.ImageURL,
		Images:        in.Images,
		Rating:        in.Rating,
		Size:          in.Size,
		Weight:        in.Weight,
		Unit:          in.Unit,
		IsLoose:       in.IsLoose,
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	return p, nil
}

// ParseProductPatch validates a partial product update. An empty object is a
// valid, empty patch; null clears an optional field and is rejected for the
// others.
func (v *Validator) ParseProductPatch(payload []byte) (models.ProductPatch, error) {
	d := &decoder{}
	obj := d.root(payload)
	if obj == nil {
		return models.ProductPatch{}, d.result()
	}
	in := decodeProductFields(d, obj)

	for _, key := range requiredProductFields {
		if raw, ok := obj[key]; ok && isNull(raw) {
			d.fail(key, "Expected "+productFieldKind(key)+", received null")
		}
	}
	var cleared []string
	for _, f := range clearableProductFields {
		if raw, ok := obj[f.key]; ok && isNull(raw) {
			cleared = append(cleared, f.column)
		}
	}

	v.check(d, in, productMessages)
	if err := d.result(); err != nil {
		return models.ProductPatch{}, err
	}

	return models.ProductPatch{
		Name:          in.Name,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Description:   in.Description,
		Category:      in.Category,
		ImageURL:      in.ImageURL,
		Images:        in.Images,
		InStock:       in.InStock,
		Rating:        in.Rating,
		Size:          in.Size,
		Weight:        in.Weight,
		Unit:          in.Unit,
		IsLoose:       in.IsLoose,
		Clear:         cleared,
	}, nil
}

func productFieldKind(key string) string {
	switch key {
	case "price":
		return "number"
	case "in_stock":
		return "boolean"
	default:
		return "string"
	}
}

func decodeProductFields(d *decoder, obj map[string]json.RawMessage) ProductPatchInput {
	return ProductPatchInput{
		Name:          str(d, obj, "", "name"),
		Price:         num(d, obj, "", "price"),
		OriginalPrice: num(d, obj, "", "original_price"),
		Description:   str(d, obj, "", "description"),
		Category:      str(d, obj, "", "category"),
		ImageURL:      str(d, obj, "", "image_url"),
		Images:        stringList(d, obj, "", "images"),
		InStock:       boolean(d, obj, "", "in_stock"),
		Rating:        num(d, obj, "", "rating"),
		Size:          str(d, obj, "", "size"),
		Weight:        str(d, obj, "", "weight"),
		Unit:          str(d, obj, "", "unit"),
		IsLoose:       boolean(d, obj, "", "isLoose"),
	}
}
