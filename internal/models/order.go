package models

import (
	"time"
)

type Order struct {
	ID              string          `json:"id"              gorm:"primary_key;type:varchar(36)"`
	UserID          *string         `json:"user_id"         gorm:"type:varchar(36);index"`
	CustomerName    string          `json:"customer_name"   gorm:"type:varchar(100);not null"`
	CustomerEmail   *string         `json:"customer_email"  gorm:"type:text"`
	CustomerPhone   string          `json:"customer_phone"  gorm:"type:text;not null"`
	OrderStatus     OrderStatus     `json:"order_status"    gorm:"type:varchar(20);not null;index"`
	PaymentStatus   PaymentStatus   `json:"payment_status"  gorm:"type:varchar(20);not null"`
	PaymentMethod   string          `json:"payment_method"  gorm:"type:varchar(50);not null"`
	PaymentRef      string          `json:"payment_ref,omitempty" gorm:"type:varchar(100)"`
	OrderTotal      float64         `json:"order_total"     gorm:"type:numeric(12,2);not null"`
	Subtotal        float64         `json:"subtotal"        gorm:"type:numeric(12,2);not null"`
	DeliveryFee     float64         `json:"delivery_fee"    gorm:"type:numeric(10,2);not null"`
	Items           []OrderItem     `json:"items"           gorm:"foreignkey:OrderRefer;association_foreignkey:ID"`
	ShippingAddress ShippingAddress `json:"shipping_address" gorm:"embedded;embedded_prefix:shipping_"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID         uint    `json:"-"          gorm:"primary_key"`
	OrderRefer string  `json:"-"          gorm:"type:varchar(36);index"`
	ProductID  string  `json:"product_id" gorm:"type:varchar(36);not null"`
	Name       string  `json:"name"       gorm:"type:varchar(100);not null"`
	Price      float64 `json:"price"      gorm:"type:numeric(10,2);not null"`
	Quantity   int     `json:"quantity"   gorm:"not null"`
	Image      *string `json:"image"      gorm:"type:text"`
}

// ShippingAddress is attached to an order once and never updated.
type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode" gorm:"type:varchar(6)"`
}

// Clone returns a copy that shares no slices or pointers with o.
func (o Order) Clone() Order {
	if o.UserID != nil {
		id := *o.UserID
		o.UserID = &id
	}
	if o.CustomerEmail != nil {
		email := *o.CustomerEmail
		o.CustomerEmail = &email
	}
	if o.Items != nil {
		items := make([]OrderItem, len(o.Items))
		for i, it := range o.Items {
			if it.Image != nil {
				img := *it.Image
				it.Image = &img
			}
			items[i] = it
		}
		o.Items = items
	}
	return o
}
