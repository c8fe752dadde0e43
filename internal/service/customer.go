package service

import (
	"context"
	"fmt"

	"storefront/internal/models"
)

// CouponQuote is an eligible coupon and, when a subtotal was given, the
// discount it grants.
type CouponQuote struct {
	Coupon   models.Coupon `json:"coupon"`
	Discount *float64      `json:"discount,omitempty"`
}

// ValidateCoupon checks a coupon for a customer. Rule failures come back as
// the models.ErrCoupon* errors.
func (s *Service) ValidateCoupon(ctx context.Context, payload []byte) (CouponQuote, error) {
	chk, err := s.v.ParseCouponCheck(payload)
	if err != nil {
		return CouponQuote{}, err
	}
	c, err := s.db.ValidateCoupon(ctx, chk.Code, chk.CustomerID)
	if err != nil {
		return CouponQuote{}, err
	}

	q := CouponQuote{Coupon: c}
	if chk.Subtotal != nil {
		d, err := c.Discount(*chk.Subtotal)
		if err != nil {
			return CouponQuote{}, err
		}
		q.Discount = &d
	}
	return q, nil
}

func (s *Service) ListSavedAddresses(ctx context.Context, customerID string) ([]models.SavedAddress, error) {
	if err := s.v.CheckID("customerId", customerID); err != nil {
		return nil, err
	}
	out, err := s.db.ListSavedAddresses(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list saved addresses: %w", err)
	}
	return out, nil
}

func (s *Service) CreateSavedAddress(ctx context.Context, customerID string, payload []byte) (models.SavedAddress, error) {
	a, err := s.v.ParseSavedAddress(customerID, payload)
	if err != nil {
		return models.SavedAddress{}, err
	}
	stored, err := s.db.CreateSavedAddress(ctx, a)
	if err != nil {
		return models.SavedAddress{}, fmt.Errorf("create saved address: %w", err)
	}
	return stored, nil
}
