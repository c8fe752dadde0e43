package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"storefront/internal/models"
)

type EventType string

const (
	OrderPlaced    EventType = "order_placed"
	OrderConfirmed EventType = "order_confirmed"
	OrderShipped   EventType = "order_shipped"
	OrderDelivered EventType = "order_delivered"
	OrderCancelled EventType = "order_cancelled"
)

// EventFor maps an order status to the notification sent on entering it.
func EventFor(s models.OrderStatus) EventType {
	return EventType("order_" + string(s))
}

type Event struct {
	Type          EventType            `json:"type"`
	OrderID       string               `json:"order_id"`
	Status        models.OrderStatus   `json:"order_status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	OrderTotal    float64              `json:"order_total"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

// NewEvent builds the event for o's current status.
func NewEvent(o models.Order, at time.Time) Event {
	return Event{
		Type:          EventFor(o.OrderStatus),
		OrderID:       o.ID,
		Status:        o.OrderStatus,
		PaymentStatus: o.PaymentStatus,
		OrderTotal:    o.OrderTotal,
		OccurredAt:    at,
	}
}

type Notifier interface {
	Notify(ctx context.Context, e Event) error
}

// LogNotifier writes events to the log.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, e Event) error {
	logrus.WithFields(logrus.Fields{
		"event":    e.Type,
		"order_id": e.OrderID,
	}).Info("order notification")
	return nil
}

// Publisher is the write side of a message broker.
type Publisher interface {
	Publish(ctx context.Context, key, payload []byte) error
}

// KafkaNotifier publishes events as JSON keyed by order id.
type KafkaNotifier struct {
	pub Publisher
}

func NewKafkaNotifier(pub Publisher) *KafkaNotifier {
	return &KafkaNotifier{pub: pub}
}

func (n *KafkaNotifier) Notify(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", e.Type, err)
	}
	if err := n.pub.Publish(ctx, []byte(e.OrderID), payload); err != nil {
		return fmt.Errorf("publish %s event: %w", e.Type, err)
	}
	return nil
}
