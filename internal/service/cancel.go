package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"storefront/internal/models"
	"storefront/internal/payment"
)

type Compensation string

const (
	CompensationNone   Compensation = "none"
	CompensationRefund Compensation = "refund"
)

type CompensationStatus string

const (
	CompensationProcessed CompensationStatus = "processed"
	CompensationFailed    CompensationStatus = "failed"
	CompensationSkipped   CompensationStatus = "skipped"
)

// CancelResult is a cancelled order together with what was done about its
// payment.
type CancelResult struct {
	Order        models.Order       `json:"order"`
	Compensation Compensation       `json:"compensation"`
	Status       CompensationStatus `json:"compensation_status"`
	Refund       *payment.Refund    `json:"refund,omitempty"`
	Error        string             `json:"error,omitempty"`
}

// CancelOrder cancels the order and refunds it when it was paid. The
// cancellation stands even if the refund fails; the failure is reported in
// the result.
func (s *Service) CancelOrder(ctx context.Context, id string) (CancelResult, error) {
	o, err := s.transition(ctx, id, models.OrderCancelled)
	if err != nil {
		return CancelResult{}, err
	}

	res := CancelResult{Order: o, Compensation: CompensationNone, Status: CompensationSkipped}
	if o.PaymentStatus != models.PaymentPaid {
		return res, nil
	}

	res.Compensation = CompensationRefund
	log := logrus.WithFields(logrus.Fields{"order_id": id, "payment_ref": o.PaymentRef})

	refund, err := s.gateway.Refund(ctx, payment.RefundRequest{
		PaymentID: o.PaymentRef,
		Amount:    o.OrderTotal,
		Reason:    "order cancelled",
	})
	if err != nil {
		refunds.WithLabelValues(string(CompensationFailed)).Inc()
		log.WithError(err).Error("refund for cancelled order failed")
		res.Status = CompensationFailed
		res.Error = err.Error()
		return res, nil
	}
	res.Status = CompensationProcessed
	res.Refund = &refund
	refunds.WithLabelValues(string(CompensationProcessed)).Inc()

	updated, err := s.db.UpdatePaymentStatus(ctx, id, models.PaymentRefunded, "")
	if err != nil {
		log.WithError(err).Error("refund processed but payment status not recorded")
		res.Error = err.Error()
		return res, nil
	}
	res.Order = s.open(updated)
	s.cachePut(res.Order)
	return res, nil
}
