package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type CouponType string

const (
	CouponFlat               CouponType = "flat"
	CouponPercent            CouponType = "percent"
	CouponFirstOrderDiscount CouponType = "first_order_discount"
)

var (
	ErrCouponInvalid      = errors.New("invalid coupon code")
	ErrCouponExpired      = errors.New("coupon has expired or is not yet valid")
	ErrCouponLimitReached = errors.New("coupon usage limit reached")
	ErrCouponAlreadyUsed  = errors.New("you have already used this coupon")
	ErrCouponFirstOrders  = errors.New("this coupon is only valid for first orders")
	ErrCouponMinOrder     = errors.New("order value is below the coupon minimum")
)

type Coupon struct {
	ID                    string     `json:"id"                        gorm:"primary_key;type:varchar(36)"`
	Code                  string     `json:"code"                      gorm:"type:varchar(50);unique_index;not null"`
	Description           *string    `json:"description"               gorm:"type:text"`
	CouponType            CouponType `json:"coupon_type"               gorm:"type:varchar(30);not null"`
	DiscountValue         float64    `json:"discount_value"            gorm:"type:numeric(10,2);not null"`
	MaxDiscountAmount     *float64   `json:"max_discount_amount"       gorm:"type:numeric(10,2)"`
	MinOrderValue         float64    `json:"min_order_value"           gorm:"type:numeric(10,2);not null;default:0"`
	AppliesToFirstNOrders *int       `json:"applies_to_first_n_orders"`
	UsageLimit            *int       `json:"usage_limit"`
	UsageCount            int        `json:"usage_count"               gorm:"not null;default:0"`
	PerUserLimit          int        `json:"per_user_limit"            gorm:"not null;default:1"`
	ValidFrom             time.Time  `json:"valid_from"                gorm:"not null"`
	ValidUntil            *time.Time `json:"valid_until"`
	IsActive              bool       `json:"is_active"                 gorm:"not null;default:true"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type CouponRedemption struct {
	ID         uint      `json:"-"           gorm:"primary_key"`
	CouponID   string    `json:"coupon_id"   gorm:"type:varchar(36);index;not null"`
	CustomerID string    `json:"customer_id" gorm:"type:varchar(36);index;not null"`
	OrderID    string    `json:"order_id"    gorm:"type:varchar(36)"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

// CouponUsage is what the store knows about a customer's history with a coupon.
type CouponUsage struct {
	Redemptions     int
	DeliveredOrders int
}

// CheckEligibility applies the coupon rules in order: validity window, global
// usage limit, per-customer limit, first-N-orders restriction. The caller has
// already matched an active coupon by code.
func (c Coupon) CheckEligibility(now time.Time, usage CouponUsage) error {
	if !c.IsActive {
		return ErrCouponInvalid
	}
	if now.Before(c.ValidFrom) || (c.ValidUntil != nil && now.After(*c.ValidUntil)) {
		return ErrCouponExpired
	}
	if c.UsageLimit != nil && *c.UsageLimit > 0 && c.UsageCount >= *c.UsageLimit {
		return ErrCouponLimitReached
	}
	if c.PerUserLimit > 0 && usage.Redemptions >= c.PerUserLimit {
		return ErrCouponAlreadyUsed
	}
	if c.AppliesToFirstNOrders != nil && *c.AppliesToFirstNOrders > 0 && usage.DeliveredOrders >= *c.AppliesToFirstNOrders {
		return ErrCouponFirstOrders
	}
	return nil
}

// Discount returns the amount taken off subtotal, rounded to 2 decimals and
// never more than subtotal itself.
func (c Coupon) Discount(subtotal float64) (float64, error) {
	sub := decimal.NewFromFloat(subtotal)
	if sub.LessThan(decimal.NewFromFloat(c.MinOrderValue)) {
		return 0, ErrCouponMinOrder
	}

	var d decimal.Decimal
	switch c.CouponType {
	case CouponPercent, CouponFirstOrderDiscount:
		d = sub.Mul(decimal.NewFromFloat(c.DiscountValue)).Div(decimal.NewFromInt(100))
	default:
		d = decimal.NewFromFloat(c.DiscountValue)
	}
	if c.MaxDiscountAmount != nil {
		d = decimal.Min(d, decimal.NewFromFloat(*c.MaxDiscountAmount))
	}
	d = decimal.Min(d, sub)

	out, _ := d.Round(2).Float64()
	return out, nil
}
