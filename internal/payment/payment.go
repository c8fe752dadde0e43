package payment

import (
	"context"
	"time"
)

type PaymentRequest struct {
	OrderID  string
	Amount   float64
	Currency string
}

type PaymentOrder struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Verification struct {
	PaymentID string
	OrderID   string
	Signature string
}

type RefundRequest struct {
	PaymentID string
	Amount    float64
	Reason    string
}

type Refund struct {
	ID        string    `json:"id"`
	PaymentID string    `json:"payment_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Gateway is a payment provider.
type Gateway interface {
	CreatePayment(ctx context.Context, req PaymentRequest) (PaymentOrder, error)
	VerifyPayment(ctx context.Context, v Verification) (bool, error)
	Refund(ctx context.Context, req RefundRequest) (Refund, error)
}
