package models

import (
	"time"

	"github.com/lib/pq"
)

type Product struct {
	ID            string         `json:"id"             gorm:"primary_key;type:varchar(36)"`
	Name          string         `json:"name"           gorm:"type:varchar(100);not null"`
	Price         float64        `json:"price"          gorm:"type:numeric(10,2);not null"`
	OriginalPrice *float64       `json:"original_price" gorm:"type:numeric(10,2)"`
	Description   *string        `json:"description"    gorm:"type:text"`
	Category      string         `json:"category"       gorm:"type:varchar(50);not null;index"`
	ImageURL      *string        `json:"image_url"      gorm:"type:varchar(500)"`
	Images        pq.StringArray `json:"images"         gorm:"type:text[]"`
	InStock       bool           `json:"in_stock"       gorm:"not null"`
	Rating        *float64       `json:"rating"`
	Size          *string        `json:"size"           gorm:"type:varchar(50)"`
	Weight        *string        `json:"weight"         gorm:"type:varchar(50)"`
	Unit          *string        `json:"unit"           gorm:"type:varchar(20)"`
	IsLoose       *bool          `json:"isLoose"        gorm:"column:is_loose"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ProductPatch holds the fields present in a partial update; nil means "leave as is".
// Clear lists nullable columns the update sets to NULL.
type ProductPatch struct {
	Name          *string
	Price         *float64
	OriginalPrice *float64
	Description   *string
	Category      *string
	ImageURL      *string
	Images        []string
	InStock       *bool
	Rating        *float64
	Size          *string
	Weight        *string
	Unit          *string
	IsLoose       *bool
	Clear         []string
}

// Columns returns the column/value pairs the patch sets.
func (p ProductPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.OriginalPrice != nil {
		cols["original_price"] = *p.OriginalPrice
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.ImageURL != nil {
		cols["image_url"] = *p.ImageURL
	}
	if p.Images != nil {
		cols["images"] = pq.StringArray(p.Images)
	}
	if p.InStock != nil {
		cols["in_stock"] = *p.InStock
	}
	if p.Rating != nil {
		cols["rating"] = *p.Rating
	}
	if p.Size != nil {
		cols["size"] = *p.Size
	}
	if p.Weight != nil {
		cols["weight"] = *p.Weight
	}
	if p.Unit != nil {
		cols["unit"] = *p.Unit
	}
	if p.IsLoose != nil {
		cols["is_loose"] = *p.IsLoose
	}
	for _, col := range p.Clear {
		cols[col] = nil
	}
	return cols
}
