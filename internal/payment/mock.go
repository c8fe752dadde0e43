package payment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var _ Gateway = (*Mock)(nil)

// Mock is an in-memory Gateway that accepts every payment.
type Mock struct {
	mu       sync.Mutex
	payments map[string]PaymentOrder
	now      func() time.Time
}

func NewMock() *Mock {
	return &Mock{payments: make(map[string]PaymentOrder), now: time.Now}
}

func (m *Mock) CreatePayment(ctx context.Context, req PaymentRequest) (PaymentOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	p := PaymentOrder{
		ID:        fmt.Sprintf("pay_%d", now.UnixNano()),
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "created",
		CreatedAt: now,
	}
	m.payments[p.ID] = p
	logrus.WithFields(logrus.Fields{"order_id": req.OrderID, "payment_id": p.ID}).Debug("mock payment created")
	return p, nil
}

func (m *Mock) VerifyPayment(ctx context.Context, v Verification) (bool, error) {
	logrus.WithFields(logrus.Fields{"order_id": v.OrderID, "payment_id": v.PaymentID}).Debug("mock payment verified")
	return true, nil
}

// Refund refunds a payment created by this mock. Unknown ids are refunded
// as well, mirroring a provider that accepts external references.
func (m *Mock) Refund(ctx context.Context, req RefundRequest) (Refund, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	amount := req.Amount
	if p, ok := m.payments[req.PaymentID]; ok {
		if amount == 0 {
			amount = p.Amount
		}
		delete(m.payments, req.PaymentID)
	} else {
		logrus.WithField("payment_id", req.PaymentID).Warn("refund for payment unknown to mock gateway")
	}

	now := m.now()
	return Refund{
		ID:        fmt.Sprintf("rfnd_%d", now.UnixNano()),
		PaymentID: req.PaymentID,
		Amount:    amount,
		Status:    "processed",
		Reason:    req.Reason,
		CreatedAt: now,
	}, nil
}
