package validation

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/internal/models"
)

type ShippingAddressInput struct {
	Address *string `json:"address" validate:"required,min=5,max=200"`
	City    *string `json:"city"    validate:"required,min=2,max=50"`
	State   *string `json:"state"   validate:"required,min=2,max=50"`
	Pincode *string `json:"pincode" validate:"required,pincode"`
}

type OrderItemInput struct {
	ProductID *string  `json:"product_id" validate:"required,uid"`
	Name      *string  `json:"name"       validate:"required,min=1,max=100"`
	Price     *float64 `json:"price"      validate:"required,gt=0,max=1000000"`
	Quantity  *float64 `json:"quantity"   validate:"required,integer,gt=0,max=1000"`
	Image     *string  `json:"image"      validate:"omitempty,url"`
}

// OrderInput mirrors the order payload. order_status and payment_status are
// optional here; the workflow decides what an absent value means.
type OrderInput struct {
	UserID          *string               `json:"user_id"          validate:"omitempty,uid"`
	CustomerName    *string               `json:"customer_name"    validate:"required,min=2,max=100,personname"`
	CustomerEmail   *string               `json:"customer_email"   validate:"omitempty,email,max=254"`
	CustomerPhone   *string               `json:"customer_phone"   validate:"required,phone"`
	OrderStatus     *string               `json:"order_status"     validate:"omitempty,oneof=placed confirmed shipped delivered cancelled"`
	PaymentStatus   *string               `json:"payment_status"   validate:"omitempty,oneof=pending paid failed refunded"`
	PaymentMethod   *string               `json:"payment_method"   validate:"required,min=1,max=50"`
	OrderTotal      *float64              `json:"order_total"      validate:"required,gt=0,max=10000000"`
	Subtotal        *float64              `json:"subtotal"         validate:"required,gt=0,max=10000000"`
	DeliveryFee     *float64              `json:"delivery_fee"     validate:"required,min=0,max=10000"`
	Items           []OrderItemInput      `json:"items"            validate:"required,min=1,max=100,dive"`
	ShippingAddress *ShippingAddressInput `json:"shipping_address" validate:"required"`
}

var orderMessages = map[string]string{
	"user_id.uid":                      "Invalid user ID",
	"customer_name.min":                "Name must be at least 2 characters",
	"customer_name.max":                "Name is too long",
	"customer_name.personname":         "Name can only contain letters",
	"customer_email.email":             "Invalid email address",
	"customer_email.max":               "Email is too long",
	"customer_phone.phone":             "Invalid phone number",
	"payment_method.min":               "Payment method is required",
	"payment_method.max":               "Payment method is too long",
	"order_total.gt":                   "Order total must be positive",
	"order_total.max":                  "Order total is too high",
	"subtotal.gt":                      "Subtotal must be positive",
	"subtotal.max":                     "Subtotal is too high",
	"delivery_fee.min":                 "Delivery fee cannot be negative",
	"delivery_fee.max":                 "Delivery fee is too high",
	"items.min":                        "Order must have at least one item",
	"items.max":                        "Too many items in order",
	"items.product_id.uid":             "Invalid product ID",
	"items.name.min":                   "Product name is required",
	"items.name.max":                   "Product name is too long",
	"items.price.gt":                   "Price must be positive",
	"items.price.max":                  "Price is too high",
	"items.quantity.integer":           "Quantity must be an integer",
	"items.quantity.gt":                "Quantity must be positive",
	"items.quantity.max":               "Quantity is too high",
	"items.image.url":                  "Invalid image URL",
	"shipping_address.address.min":     "Address must be at least 5 characters",
	"shipping_address.address.max":     "Address is too long",
	"shipping_address.city.min":        "City must be at least 2 characters",
	"shipping_address.city.max":        "City name is too long",
	"shipping_address.state.min":       "State must be at least 2 characters",
	"shipping_address.state.max":       "State name is too long",
	"shipping_address.pincode.pincode": "Pincode must be 6 digits",
}

// ParseOrder decodes and validates a raw order payload. Absent order_status
// and payment_status come back as empty strings.
func (v *Validator) ParseOrder(payload []byte) (models.Order, error) {
	d := &decoder{}
	obj := d.root(payload)
	if obj == nil {
		return models.Order{}, d.result()
	}
	in := decodeOrder(d, obj)
	return v.validateOrder(d, in)
}

// ValidateOrder validates an already typed order input.
func (v *Validator) ValidateOrder(in OrderInput) (models.Order, error) {
	return v.validateOrder(&decoder{}, in)
}

func (v *Validator) validateOrder(d *decoder, in OrderInput) (models.Order, error) {
	normalizePhonePtr(in.CustomerPhone)

	v.check(d, in, orderMessages)
	if v.opts.EnforceTotals {
		checkTotals(d, in)
	}
	if err := d.result(); err != nil {
		return models.Order{}, err
	}
	return in.toModel(), nil
}

func decodeOrder(d *decoder, obj map[string]json.RawMessage) OrderInput {
	in := OrderInput{
		UserID:        str(d, obj, "", "user_id"),
		CustomerName:  str(d, obj, "", "customer_name"),
		CustomerEmail: str(d, obj, "", "customer_email"),
		CustomerPhone: str(d, obj, "", "customer_phone"),
		OrderStatus:   str(d, obj, "", "order_status"),
		PaymentStatus: str(d, obj, "", "payment_status"),
		PaymentMethod: str(d, obj, "", "payment_method"),
		OrderTotal:    num(d, obj, "", "order_total"),
		Subtotal:      num(d, obj, "", "subtotal"),
		DeliveryFee:   num(d, obj, "", "delivery_fee"),
	}

	if items := d.array(obj, "", "items"); items != nil {
		in.Items = make([]OrderItemInput, 0, len(items))
		for i, raw := range items {
			path := fmt.Sprintf("items[%d]", i)
			item := d.object(path, raw)
			if item == nil {
				in.Items = append(in.Items, OrderItemInput{})
				continue
			}
			in.Items = append(in.Items, OrderItemInput{
				ProductID: str(d, item, path, "product_id"),
				Name:      str(d, item, path, "name"),
				Price:     num(d, item, path, "price"),
				Quantity:  num(d, item, path, "quantity"),
				Image:     str(d, item, path, "image"),
			})
		}
	}

	if addr := d.nested(obj, "", "shipping_address"); addr != nil {
		in.ShippingAddress = decodeShippingAddress(d, addr, "shipping_address")
	}
	return in
}

func decodeShippingAddress(d *decoder, obj map[string]json.RawMessage, path string) *ShippingAddressInput {
	return &ShippingAddressInput{
		Address: str(d, obj, path, "address"),
		City:    str(d, obj, path, "city"),
		State:   str(d, obj, path, "state"),
		Pincode: str(d, obj, path, "pincode"),
	}
}

// checkTotals compares money at cent precision.
func checkTotals(d *decoder, in OrderInput) {
	if in.OrderTotal != nil && in.Subtotal != nil && in.DeliveryFee != nil && !d.rejected("order_total") {
		want := decimal.NewFromFloat(*in.Subtotal).Add(decimal.NewFromFloat(*in.DeliveryFee)).Round(2)
		if !decimal.NewFromFloat(*in.OrderTotal).Round(2).Equal(want) {
			d.fail("order_total", "Order total must equal subtotal plus delivery fee")
		}
	}

	if in.Subtotal == nil || len(in.Items) == 0 || d.rejected("subtotal") || d.rejected("items") {
		return
	}
	sum := decimal.Zero
	for _, it := range in.Items {
		if it.Price == nil || it.Quantity == nil {
			return
		}
		sum = sum.Add(decimal.NewFromFloat(*it.Price).Mul(decimal.NewFromFloat(*it.Quantity)))
	}
	if !decimal.NewFromFloat(*in.Subtotal).Round(2).Equal(sum.Round(2)) {
		d.fail("subtotal", "Subtotal must equal the sum of item prices")
	}
}

func (in OrderInput) toModel() models.Order {
	o := models.Order{
		UserID:        in.UserID,
		CustomerName:  deref(in.CustomerName),
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: deref(in.CustomerPhone),
		OrderStatus:   models.OrderStatus(deref(in.OrderStatus)),
		PaymentStatus: models.PaymentStatus(deref(in.PaymentStatus)),
		PaymentMethod: deref(in.PaymentMethod),
		OrderTotal:    derefNum(in.OrderTotal),
		Subtotal:      derefNum(in.Subtotal),
		DeliveryFee:   derefNum(in.DeliveryFee),
		Items:         make([]models.OrderItem, 0, len(in.Items)),
	}
	for _, it := range in.Items {
		o.Items = append(o.Items, models.OrderItem{
			ProductID: deref(it.ProductID),
			Name:      deref(it.Name),
			Price:     derefNum(it.Price),
			Quantity:  int(derefNum(it.Quantity)),
			Image:     it.Image,
		})
	}
	if a := in.ShippingAddress; a != nil {
		o.ShippingAddress = models.ShippingAddress{
			Address: deref(a.Address),
			City:    deref(a.City),
			State:   deref(a.State),
			Pincode: deref(a.Pincode),
		}
	}
	return o
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefNum(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
