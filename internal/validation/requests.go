package validation

import (
	"storefront/internal/models"
)

type statusUpdateInput struct {
	Status *string `json:"status" validate:"required,oneof=placed confirmed shipped delivered cancelled"`
}

// ParseStatus checks a bare status value.
func (v *Validator) ParseStatus(status string) (models.OrderStatus, error) {
	d := &decoder{}
	v.check(d, statusUpdateInput{Status: &status}, nil)
	if err := d.result(); err != nil {
		return "", err
	}
	st, _ := models.ParseOrderStatus(status)
	return st, nil
}

// ParseStatusUpdate decodes {"status": "..."}.
func (v *Validator) ParseStatusUpdate(payload []byte) (models.OrderStatus, error) {
	d := &decoder{}
	obj := d.root(payload)
	if obj == nil {
		return "", d.result()
	}
	in := statusUpdateInput{Status: str(d, obj, "", "status")}
	v.check(d, in, nil)
	if err := d.result(); err != nil {
		return "", err
	}
	st, _ := models.ParseOrderStatus(*in.Status)
	return st, nil
}

type CouponCheck struct {
	Code       string
	CustomerID string
	Subtotal   *float64
}

type couponCheckInput struct {
	Code       *string  `json:"code"        validate:"required,min=1,max=50"`
	CustomerID *string  `json:"customer_id" validate:"required,uid"`
	Subtotal   *float64 `json:"subtotal"    validate:"omitempty,gt=0,max=10000000"`
}

var couponMessages = map[string]string{
	"code.min":        "Coupon code is required",
	"code.max":        "Coupon code is too long",
	"customer_id.uid": "Invalid customer ID",
	"subtotal.gt":     "Subtotal must be positive",
	"subtotal.max":    "Subtotal is too high",
}

func (v *Validator) ParseCouponCheck(payload []byte) (CouponCheck, error) {
	d := &decoder{}
	obj := d.root(payload)
	if obj == nil {
		return CouponCheck{}, d.result()
	}
	in := couponCheckInput{
		Code:       str(d, obj, "", "code"),
		CustomerID: str(d, obj, "", "customer_id"),
		Subtotal:   num(d, obj, "", "subtotal"),
	}
	v.check(d, in, couponMessages)
	if err := d.result(); err != nil {
		return CouponCheck{}, err
	}
	return CouponCheck{Code: *in.Code, CustomerID: *in.CustomerID, Subtotal: in.Subtotal}, nil
}

type PaymentVerification struct {
	PaymentID string
	Signature string
}

type paymentVerificationInput struct {
	PaymentID *string `json:"payment_id" validate:"required,min=1,max=100"`
	Signature *string `json:"signature"  validate:"required,min=1,max=512"`
}

func (v *Validator) ParsePaymentVerification(payload []byte) (PaymentVerification, error) {
	d := &decoder{}
	obj := d.root(payload)
	if obj == nil {
		return PaymentVerification{}, d.result()
	}
	in := paymentVerificationInput{
		PaymentID: str(d, obj, "", "payment_id"),
		Signature: str(d, obj, "", "signature"),
	}
	v.check(d, in, nil)
	if err := d.result(); err != nil {
		return PaymentVerification{}, err
	}
	return PaymentVerification{PaymentID: *in.PaymentID, Signature: *in.Signature}, nil
}

// CheckID reports a malformed UUID path parameter as a validation error on field.
func (v *Validator) CheckID(field, id string) error {
	if err := v.v.Var(id, "required,uid"); err != nil {
		return Single(field, "Invalid ID")
	}
	return nil
}
