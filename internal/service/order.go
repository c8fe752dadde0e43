package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"storefront/internal/models"
	"storefront/internal/notify"
	"storefront/internal/validation"
)

// CreateOrder validates payload, settles the initial statuses and stores the
// order. The returned order carries its generated id.
func (s *Service) CreateOrder(ctx context.Context, payload []byte) (models.Order, error) {
	o, err := s.v.ParseOrder(payload)
	if err != nil {
		ordersRejected.WithLabelValues("validation").Inc()
		return models.Order{}, err
	}
	if err := s.applyStatusPolicy(&o); err != nil {
		ordersRejected.WithLabelValues("status_policy").Inc()
		return models.Order{}, err
	}

	sealed, err := s.seal(o)
	if err != nil {
		return models.Order{}, fmt.Errorf("seal order fields: %w", err)
	}
	stored, err := s.db.CreateOrder(ctx, sealed)
	if err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}

	out := s.open(stored)
	s.cachePut(out)
	ordersCreated.Inc()

	e := notify.NewEvent(out, s.now())
	e.Type = notify.OrderPlaced
	s.publish(ctx, e)
	return out, nil
}

func (s *Service) applyStatusPolicy(o *models.Order) error {
	switch s.policy {
	case StatusIgnore:
		o.OrderStatus, o.PaymentStatus = "", ""
	case StatusReject:
		var fields []validation.FieldError
		if o.OrderStatus != "" && o.OrderStatus != models.OrderPlaced {
			fields = append(fields, validation.FieldError{Field: "order_status", Message: "New orders must start as placed"})
		}
		if o.PaymentStatus != "" && o.PaymentStatus != models.PaymentPending {
			fields = append(fields, validation.FieldError{Field: "payment_status", Message: "New orders must start with payment pending"})
		}
		if len(fields) > 0 {
			return &validation.Error{Fields: fields}
		}
	}

	if o.OrderStatus == "" {
		o.OrderStatus = models.OrderPlaced
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = models.PaymentPending
	}
	return nil
}

// GetOrder serves from the read cache and falls back to the database.
func (s *Service) GetOrder(ctx context.Context, id string) (models.Order, error) {
	if o, ok := s.cacheGet(id); ok {
		return o, nil
	}
	o, err := s.load(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	s.cachePut(o)
	return o, nil
}

func (s *Service) load(ctx context.Context, id string) (models.Order, error) {
	o, err := s.db.GetOrderByID(ctx, id)
	if err != nil {
		return models.Order{}, mapNotFound(err)
	}
	return s.open(o), nil
}

func (s *Service) ListCustomerOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	if err := s.v.CheckID("customerId", customerID); err != nil {
		return nil, err
	}
	orders, err := s.db.ListCustomerOrders(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}
	for i := range orders {
		orders[i] = s.open(orders[i])
	}
	return orders, nil
}

// UpdateOrderStatus moves the order one step along its lifecycle. A move to
// cancelled runs CancelOrder, so a paid order is refunded as well; callers
// that need the refund outcome call CancelOrder directly.
func (s *Service) UpdateOrderStatus(ctx context.Context, id, status string) (models.Order, error) {
	next, err := s.v.ParseStatus(status)
	if err != nil {
		return models.Order{}, err
	}
	if next == models.OrderCancelled {
		res, err := s.CancelOrder(ctx, id)
		if err != nil {
			return models.Order{}, err
		}
		return res.Order, nil
	}
	return s.transition(ctx, id, next)
}

func (s *Service) transition(ctx context.Context, id string, next models.OrderStatus) (models.Order, error) {
	cur, err := s.load(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if !cur.OrderStatus.CanTransitionTo(next) {
		return models.Order{}, &InvalidTransitionError{From: cur.OrderStatus, To: next}
	}

	updated, err := s.db.UpdateOrderStatus(ctx, id, next)
	if err != nil {
		return models.Order{}, mapNotFound(err)
	}
	out := s.open(updated)
	s.cachePut(out)
	statusTransitions.WithLabelValues(string(cur.OrderStatus), string(next)).Inc()

	logrus.WithFields(logrus.Fields{
		"order_id": id,
		"from":     cur.OrderStatus,
		"to":       next,
	}).Info("order status changed")
	s.publish(ctx, notify.NewEvent(out, s.now()))
	return out, nil
}

// HandleMessage places an order received from the intake topic.
func (s *Service) HandleMessage(ctx context.Context, payload []byte) error {
	o, err := s.CreateOrder(ctx, payload)
	if err != nil {
		return err
	}
	logrus.WithField("order_id", o.ID).Info("order placed from message")
	return nil
}
