package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"storefront/internal/models"
	"storefront/internal/payment"
)

// InitiatePayment opens a gateway payment for the order total.
func (s *Service) InitiatePayment(ctx context.Context, id string) (payment.PaymentOrder, error) {
	o, err := s.load(ctx, id)
	if err != nil {
		return payment.PaymentOrder{}, err
	}
	if o.OrderStatus == models.OrderCancelled || o.PaymentStatus == models.PaymentPaid || o.PaymentStatus == models.PaymentRefunded {
		return payment.PaymentOrder{}, fmt.Errorf("%w: order is %s, payment %s", ErrPaymentNotAllowed, o.OrderStatus, o.PaymentStatus)
	}

	p, err := s.gateway.CreatePayment(ctx, payment.PaymentRequest{
		OrderID:  o.ID,
		Amount:   o.OrderTotal,
		Currency: s.currency,
	})
	if err != nil {
		return payment.PaymentOrder{}, fmt.Errorf("create payment: %w", err)
	}
	return p, nil
}

// VerifyPayment confirms a gateway payment and marks the order paid.
// Verifying the payment the order is already paid with is a no-op.
func (s *Service) VerifyPayment(ctx context.Context, id string, payload []byte) (models.Order, error) {
	in, err := s.v.ParsePaymentVerification(payload)
	if err != nil {
		return models.Order{}, err
	}
	o, err := s.load(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if o.PaymentStatus == models.PaymentPaid && o.PaymentRef == in.PaymentID {
		return o, nil
	}
	if o.OrderStatus == models.OrderCancelled || o.PaymentStatus == models.PaymentPaid || o.PaymentStatus == models.PaymentRefunded {
		return models.Order{}, fmt.Errorf("%w: order is %s, payment %s", ErrPaymentNotAllowed, o.OrderStatus, o.PaymentStatus)
	}

	ok, err := s.gateway.VerifyPayment(ctx, payment.Verification{
		PaymentID: in.PaymentID,
		OrderID:   id,
		Signature: in.Signature,
	})
	if err != nil {
		return models.Order{}, fmt.Errorf("verify payment: %w", err)
	}
	if !ok {
		logrus.WithFields(logrus.Fields{"order_id": id, "payment_id": in.PaymentID}).Warn("payment signature rejected")
		return models.Order{}, ErrPaymentVerification
	}

	updated, err := s.db.UpdatePaymentStatus(ctx, id, models.PaymentPaid, in.PaymentID)
	if err != nil {
		return models.Order{}, mapNotFound(err)
	}
	out := s.open(updated)
	s.cachePut(out)
	return out, nil
}
