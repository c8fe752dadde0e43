package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"storefront/internal/models"
	"storefront/internal/notify"
	"storefront/internal/payment"
	"storefront/internal/repository"
	"storefront/internal/secure"
	"storefront/internal/validation"
)

type Orders interface {
	CreateOrder(ctx context.Context, payload []byte) (models.Order, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (models.Order, error)
	CancelOrder(ctx context.Context, id string) (CancelResult, error)
	InitiatePayment(ctx context.Context, id string) (payment.PaymentOrder, error)
	VerifyPayment(ctx context.Context, id string, payload []byte) (models.Order, error)

	HandleMessage(ctx context.Context, payload []byte) error
}

type Products interface {
	CreateProduct(ctx context.Context, payload []byte) (models.Product, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, payload []byte) (models.Product, error)
}

type Customers interface {
	ValidateCoupon(ctx context.Context, payload []byte) (CouponQuote, error)
	ListSavedAddresses(ctx context.Context, customerID string) ([]models.SavedAddress, error)
	CreateSavedAddress(ctx context.Context, customerID string, payload []byte) (models.SavedAddress, error)
}

// Storefront is everything the HTTP layer needs.
type Storefront interface {
	Orders
	Products
	Customers
}

// StatusPolicy decides what happens to order_status and payment_status
// supplied with a new order.
type StatusPolicy string

const (
	// StatusTrust keeps caller-supplied statuses and defaults absent ones.
	StatusTrust StatusPolicy = "trust"
	// StatusIgnore always starts orders as placed/pending.
	StatusIgnore StatusPolicy = "ignore"
	// StatusReject fails orders that try to start anywhere but placed/pending.
	StatusReject StatusPolicy = "reject"
)

func ParseStatusPolicy(s string) (StatusPolicy, error) {
	switch p := StatusPolicy(s); p {
	case StatusTrust, StatusIgnore, StatusReject:
		return p, nil
	case "":
		return StatusTrust, nil
	default:
		return "", fmt.Errorf("unknown initial status policy %q", s)
	}
}

type Deps struct {
	Validator *validation.Validator
	Gateway   payment.Gateway
	Notifier  notify.Notifier
	// Cipher seals SensitiveFields at rest. Nil stores them as plaintext.
	Cipher          *secure.Cipher
	SensitiveFields []string
	StatusPolicy    StatusPolicy
	Currency        string
	Now             func() time.Time
}

type Service struct {
	db    repository.Database
	cache repository.OrderCache

	v        *validation.Validator
	gateway  payment.Gateway
	notifier notify.Notifier
	cipher   *secure.Cipher
	fields   []string
	policy   StatusPolicy
	currency string
	now      func() time.Time
}

var _ Storefront = (*Service)(nil)

func NewService(repo *repository.Repository, deps Deps) *Service {
	s := &Service{
		db:       repo.Database,
		cache:    repo.OrderCache,
		v:        deps.Validator,
		gateway:  deps.Gateway,
		notifier: deps.Notifier,
		cipher:   deps.Cipher,
		policy:   deps.StatusPolicy,
		currency: deps.Currency,
		now:      deps.Now,
	}
	if s.v == nil {
		s.v = validation.New(validation.Options{EnforceTotals: true})
	}
	if s.gateway == nil {
		s.gateway = payment.NewMock()
	}
	if s.notifier == nil {
		s.notifier = notify.LogNotifier{}
	}
	if s.policy == "" {
		s.policy = StatusTrust
	}
	if s.currency == "" {
		s.currency = "INR"
	}
	if s.now == nil {
		s.now = time.Now
	}

	for _, f := range deps.SensitiveFields {
		if _, ok := sealable[f]; !ok {
			logrus.WithField("field", f).Warn("field cannot be encrypted, ignoring")
			continue
		}
		s.fields = append(s.fields, f)
	}
	return s
}

func (s *Service) cachePut(o models.Order) {
	if s.cache != nil {
		s.cache.PutOrder(o)
	}
}

func (s *Service) cacheGet(id string) (models.Order, bool) {
	if s.cache == nil {
		return models.Order{}, false
	}
	return s.cache.GetOrder(id)
}

// publish delivers e. Failures are logged and counted, never returned.
func (s *Service) publish(ctx context.Context, e notify.Event) {
	if err := s.notifier.Notify(ctx, e); err != nil {
		notificationFailures.Inc()
		logrus.WithError(err).WithFields(logrus.Fields{
			"order_id": e.OrderID,
			"event":    e.Type,
		}).Warn("notification not delivered")
	}
}
