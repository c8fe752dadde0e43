package service

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repository"
)

var ErrNotFound = errors.New("not found")

var (
	ErrPaymentNotAllowed   = errors.New("payment not allowed for this order")
	ErrPaymentVerification = errors.New("payment verification failed")
)

// InvalidTransitionError rejects a status change the lifecycle does not allow.
type InvalidTransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change order status from %s to %s", e.From, e.To)
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
