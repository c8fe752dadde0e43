package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/notify"
	"storefront/internal/payment"
	"storefront/internal/repository"
	"storefront/internal/repository/cache"
	svc "storefront/internal/service"
)

// memDB is an in-memory repository.Database.
type memDB struct {
	mu        sync.Mutex
	orders    map[string]models.Order
	products  map[string]models.Product
	coupons   map[string]models.Coupon
	addresses []models.SavedAddress

	createErr   error
	couponErr   error
	createCalls int
}

var _ repository.Database = (*memDB)(nil)

func newMemDB() *memDB {
	return &memDB{
		orders:   map[string]models.Order{},
		products: map[string]models.Product{},
		coupons:  map[string]models.Coupon{},
	}
}

func (m *memDB) CreateOrder(_ context.Context, o models.Order) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if m.createErr != nil {
		return models.Order{}, m.createErr
	}
	o.ID = uuid.NewString()
	m.orders[o.ID] = o
	return o, nil
}

func (m *memDB) GetOrderByID(_ context.Context, id string) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return models.Order{}, fmt.Errorf("get order %s: %w", id, repository.ErrNotFound)
	}
	return o, nil
}

func (m *memDB) ListCustomerOrders(_ context.Context, customerID string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for _, o := range m.orders {
		if o.UserID != nil && *o.UserID == customerID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memDB) UpdateOrderStatus(_ context.Context, id string, status models.OrderStatus) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return models.Order{}, repository.ErrNotFound
	}
	o.OrderStatus = status
	m.orders[id] = o
	return o, nil
}

func (m *memDB) UpdatePaymentStatus(_ context.Context, id string, status models.PaymentStatus, ref string) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return models.Order{}, repository.ErrNotFound
	}
	o.PaymentStatus = status
	if ref != "" {
		o.PaymentRef = ref
	}
	m.orders[id] = o
	return o, nil
}

func (m *memDB) CreateProduct(_ context.Context, p models.Product) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uuid.NewString()
	m.products[p.ID] = p
	return p, nil
}

func (m *memDB) GetProduct(_ context.Context, id string) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return models.Product{}, repository.ErrNotFound
	}
	return p, nil
}

func (m *memDB) UpdateProduct(_ context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return models.Product{}, repository.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	m.products[id] = p
	return p, nil
}

func (m *memDB) ValidateCoupon(_ context.Context, code, _ string) (models.Coupon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.couponErr != nil {
		return models.Coupon{}, m.couponErr
	}
	c, ok := m.coupons[code]
	if !ok {
		return models.Coupon{}, models.ErrCouponInvalid
	}
	return c, nil
}

func (m *memDB) ListSavedAddresses(_ context.Context, customerID string) ([]models.SavedAddress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.SavedAddress{}
	for _, a := range m.addresses {
		if a.CustomerID == customerID && a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memDB) CreateSavedAddress(_ context.Context, a models.SavedAddress) (models.SavedAddress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = uuid.NewString()
	m.addresses = append(m.addresses, a)
	return a, nil
}

func (m *memDB) stored(id string) models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orders[id]
}

type gatewayMock struct{ mock.Mock }

func (g *gatewayMock) CreatePayment(ctx context.Context, req payment.PaymentRequest) (payment.PaymentOrder, error) {
	args := g.Called(ctx, req)
	p, _ := args.Get(0).(payment.PaymentOrder)
	return p, args.Error(1)
}

func (g *gatewayMock) VerifyPayment(ctx context.Context, v payment.Verification) (bool, error) {
	args := g.Called(ctx, v)
	return args.Bool(0), args.Error(1)
}

func (g *gatewayMock) Refund(ctx context.Context, req payment.RefundRequest) (payment.Refund, error) {
	args := g.Called(ctx, req)
	r, _ := args.Get(0).(payment.Refund)
	return r, args.Error(1)
}

type notifierMock struct{ mock.Mock }

func (n *notifierMock) Notify(ctx context.Context, e notify.Event) error {
	return n.Called(ctx, e).Error(0)
}

func (n *notifierMock) events() []notify.EventType {
	var out []notify.EventType
	for _, c := range n.Calls {
		out = append(out, c.Arguments.Get(1).(notify.Event).Type)
	}
	return out
}

type fixture struct {
	db       *memDB
	cache    *cache.OrderCacheRepo
	gateway  *gatewayMock
	notifier *notifierMock
	svc      *svc.Service
}

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T, mutate ...func(*svc.Deps)) *fixture {
	t.Helper()
	f := &fixture{
		db:       newMemDB(),
		cache:    cache.NewOrderCache(),
		gateway:  &gatewayMock{},
		notifier: &notifierMock{},
	}
	t.Cleanup(f.cache.Close)
	f.notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Maybe()

	deps := svc.Deps{
		Gateway:  f.gateway,
		Notifier: f.notifier,
		Now:      func() time.Time { return fixedNow },
	}
	for _, m := range mutate {
		m(&deps)
	}
	f.svc = svc.NewService(&repository.Repository{Database: f.db, OrderCache: f.cache}, deps)
	return f
}

func orderPayload(t *testing.T, overrides map[string]any) []byte {
	t.Helper()
	p := map[string]any{
		"user_id":        customerID,
		"customer_name":  "Asha Verma",
		"customer_email": "asha@example.com",
		"customer_phone": "+91 98765-43210",
		"payment_method": "upi",
		"order_total":    520.0,
		"subtotal":       500.0,
		"delivery_fee":   20.0,
		"items": []any{map[string]any{
			"product_id": uuid.NewString(),
			"name":       "Basmati Rice",
			"price":      250.0,
			"quantity":   2,
		}},
		"shipping_address": map[string]any{
			"address": "12 MG Road, Indiranagar",
			"city":    "Bengaluru",
			"state":   "Karnataka",
			"pincode": "560038",
		},
	}
	for k, v := range overrides {
		if v == nil {
			delete(p, k)
			continue
		}
		p[k] = v
	}
	b, err := json.Marshal(p)
	require.NoError(t, err)
	return b
}

var customerID = uuid.NewString()

// placeOrder stores an order directly in the given state.
func (f *fixture) placeOrder(t *testing.T, status models.OrderStatus, pay models.PaymentStatus) models.Order {
	t.Helper()
	o, err := f.db.CreateOrder(context.Background(), models.Order{
		UserID:        &customerID,
		CustomerName:  "Asha Verma",
		CustomerPhone: "+919876543210",
		OrderStatus:   status,
		PaymentStatus: pay,
		PaymentMethod: "upi",
		OrderTotal:    520,
		Subtotal:      500,
		DeliveryFee:   20,
	})
	require.NoError(t, err)
	return o
}
