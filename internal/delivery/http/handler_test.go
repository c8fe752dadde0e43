package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	httpdelivery "storefront/internal/delivery/http"
	"storefront/internal/models"
	"storefront/internal/payment"
	"storefront/internal/service"
	"storefront/internal/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type svcStub struct {
	createOrder   func(ctx context.Context, payload []byte) (models.Order, error)
	getOrder      func(ctx context.Context, id string) (models.Order, error)
	listOrders    func(ctx context.Context, customerID string) ([]models.Order, error)
	updateStatus  func(ctx context.Context, id, status string) (models.Order, error)
	cancelOrder   func(ctx context.Context, id string) (service.CancelResult, error)
	initPayment   func(ctx context.Context, id string) (payment.PaymentOrder, error)
	verifyPayment func(ctx context.Context, id string, payload []byte) (models.Order, error)

	createProduct func(ctx context.Context, payload []byte) (models.Product, error)
	getProduct    func(ctx context.Context, id string) (models.Product, error)
	updateProduct func(ctx context.Context, id string, payload []byte) (models.Product, error)

	validateCoupon func(ctx context.Context, payload []byte) (service.CouponQuote, error)
	listAddresses  func(ctx context.Context, customerID string) ([]models.SavedAddress, error)
	createAddress  func(ctx context.Context, customerID string, payload []byte) (models.SavedAddress, error)
}

var _ service.Storefront = (*svcStub)(nil)

var errNotImplemented = fmt.Errorf("not implemented")

func (s *svcStub) CreateOrder(ctx context.Context, payload []byte) (models.Order, error) {
	if s.createOrder != nil {
		return s.createOrder(ctx, payload)
	}
	return models.Order{}, errNotImplemented
}

func (s *svcStub) GetOrder(ctx context.Context, id string) (models.Order, error) {
	if s.getOrder != nil {
		return s.getOrder(ctx, id)
	}
	return models.Order{}, service.ErrNotFound
}

func (s *svcStub) ListCustomerOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	if s.listOrders != nil {
		return s.listOrders(ctx, customerID)
	}
	return []models.Order{}, nil
}

func (s *svcStub) UpdateOrderStatus(ctx context.Context, id, status string) (models.Order, error) {
	if s.updateStatus != nil {
		return s.updateStatus(ctx, id, status)
	}
	return models.Order{}, errNotImplemented
}

func (s *svcStub) CancelOrder(ctx context.Context, id string) (service.CancelResult, error) {
	if s.cancelOrder != nil {
		return s.cancelOrder(ctx, id)
	}
	return service.CancelResult{}, errNotImplemented
}

func (s *svcStub) InitiatePayment(ctx context.Context, id string) (payment.PaymentOrder, error) {
	if s.initPayment != nil {
		return s.initPayment(ctx, id)
	}
	return payment.PaymentOrder{}, errNotImplemented
}

func (s *svcStub) VerifyPayment(ctx context.Context, id string, payload []byte) (models.Order, error) {
	if s.verifyPayment != nil {
		return s.verifyPayment(ctx, id, payload)
	}
	return models.Order{}, errNotImplemented
}

func (s *svcStub) HandleMessage(context.Context, []byte) error { return nil }

func (s *svcStub) CreateProduct(ctx context.Context, payload []byte) (models.Product, error) {
	if s.createProduct != nil {
		return s.createProduct(ctx, payload)
	}
	return models.Product{}, errNotImplemented
}

func (s *svcStub) GetProduct(ctx context.Context, id string) (models.Product, error) {
	if s.getProduct != nil {
		return s.getProduct(ctx, id)
	}
	return models.Product{}, service.ErrNotFound
}

func (s *svcStub) UpdateProduct(ctx context.Context, id string, payload []byte) (models.Product, error) {
	if s.updateProduct != nil {
		return s.updateProduct(ctx, id, payload)
	}
	return models.Product{}, errNotImplemented
}

func (s *svcStub) ValidateCoupon(ctx context.Context, payload []byte) (service.CouponQuote, error) {
	if s.validateCoupon != nil {
		return s.validateCoupon(ctx, payload)
	}
	return service.CouponQuote{}, errNotImplemented
}

func (s *svcStub) ListSavedAddresses(ctx context.Context, customerID string) ([]models.SavedAddress, error) {
	if s.listAddresses != nil {
		return s.listAddresses(ctx, customerID)
	}
	return []models.SavedAddress{}, nil
}

func (s *svcStub) CreateSavedAddress(ctx context.Context, customerID string, payload []byte) (models.SavedAddress, error) {
	if s.createAddress != nil {
		return s.createAddress(ctx, customerID, payload)
	}
	return models.SavedAddress{}, errNotImplemented
}

func serve(s *svcStub, method, path, body string) *httptest.ResponseRecorder {
	r := httpdelivery.NewHandler(s).InitRoutes()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestServer_Run_Shutdown(t *testing.T) {
	s := &httpdelivery.Server{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	done := make(chan error, 1)
	go func() { done <- s.Run("127.0.0.1:0", handler) }()

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
	require.ErrorIs(t, <-done, http.ErrServerClosed)
}

func TestHandler_NoRoute(t *testing.T) {
	w := serve(&svcStub{}, http.MethodGet, "/api/unknown", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"not found"}`, w.Body.String())
}

func TestHandler_Metrics(t *testing.T) {
	w := serve(&svcStub{}, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "go_goroutines")
}

func TestHandler_CreateOrder_Created(t *testing.T) {
	var got []byte
	s := &svcStub{createOrder: func(_ context.Context, payload []byte) (models.Order, error) {
		got = payload
		return models.Order{ID: "o-1", OrderStatus: models.OrderPlaced}, nil
	}}

	w := serve(s, http.MethodPost, "/api/orders", `{"customer_name":"Asha"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"customer_name":"Asha"}`, string(got))

	var o models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &o))
	require.Equal(t, "o-1", o.ID)
	require.Equal(t, models.OrderPlaced, o.OrderStatus)
}

func TestHandler_CreateOrder_ValidationErrors(t *testing.T) {
	s := &svcStub{createOrder: func(context.Context, []byte) (models.Order, error) {
		return models.Order{}, &validation.Error{Fields: []validation.FieldError{
			{Field: "customer_phone", Message: "Invalid phone number"},
			{Field: "items", Message: "Order must have at least one item"},
		}}
	}}

	w := serve(s, http.MethodPost, "/api/orders", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{
		"message": "validation failed",
		"errors": [
			{"field": "customer_phone", "message": "Invalid phone number"},
			{"field": "items", "message": "Order must have at least one item"}
		]
	}`, w.Body.String())
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", service.ErrNotFound), http.StatusNotFound},
		{"transition", &service.InvalidTransitionError{From: models.OrderDelivered, To: models.OrderPlaced}, http.StatusConflict},
		{"payment not allowed", service.ErrPaymentNotAllowed, http.StatusConflict},
		{"regular error", fmt.Errorf("regular error"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &svcStub{getOrder: func(context.Context, string) (models.Order, error) {
				return models.Order{}, tt.err
			}}
			w := serve(s, http.MethodGet, "/api/orders/o-1", "")
			require.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_UpdateOrderStatus(t *testing.T) {
	s := &svcStub{updateStatus: func(_ context.Context, id, status string) (models.Order, error) {
		if status == "placed" {
			return models.Order{}, &service.InvalidTransitionError{From: models.OrderShipped, To: models.OrderPlaced}
		}
		return models.Order{ID: id, OrderStatus: models.OrderStatus(status)}, nil
	}}

	w := serve(s, http.MethodPatch, "/api/orders/o-1/status", `{"status":"shipped"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"order_status":"shipped"`)

	w = serve(s, http.MethodPatch, "/api/orders/o-1/status", `{"status":"placed"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "cannot change order status from shipped to placed")

	w = serve(s, http.MethodPatch, "/api/orders/o-1/status", `{"status":"lost"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid enum value")
}

func TestHandler_UpdateOrderStatus_CancelledRunsCancelOrder(t *testing.T) {
	s := &svcStub{
		updateStatus: func(context.Context, string, string) (models.Order, error) {
			t.Fatal("status route must not bypass CancelOrder")
			return models.Order{}, nil
		},
		cancelOrder: func(_ context.Context, id string) (service.CancelResult, error) {
			return service.CancelResult{
				Order:        models.Order{ID: id, OrderStatus: models.OrderCancelled, PaymentStatus: models.PaymentRefunded},
				Compensation: service.CompensationRefund,
				Status:       service.CompensationProcessed,
				Refund:       &payment.Refund{ID: "rfnd_1", PaymentID: "pay_123", Amount: 520, Status: "processed"},
			}, nil
		},
	}

	w := serve(s, http.MethodPatch, "/api/orders/o-1/status", `{"status":"cancelled"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res service.CancelResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, models.OrderCancelled, res.Order.OrderStatus)
	require.Equal(t, models.PaymentRefunded, res.Order.PaymentStatus)
	require.Equal(t, service.CompensationProcessed, res.Status)
	require.Equal(t, "rfnd_1", res.Refund.ID)
}

func TestHandler_CancelOrder(t *testing.T) {
	s := &svcStub{cancelOrder: func(_ context.Context, id string) (service.CancelResult, error) {
		return service.CancelResult{
			Order:        models.Order{ID: id, OrderStatus: models.OrderCancelled},
			Compensation: service.CompensationRefund,
			Status:       service.CompensationFailed,
			Error:        "gateway timeout",
		}, nil
	}}

	w := serve(s, http.MethodPost, "/api/orders/o-1/cancel", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res service.CancelResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, service.CompensationFailed, res.Status)
	require.Equal(t, "gateway timeout", res.Error)
}

func TestHandler_Payments(t *testing.T) {
	s := &svcStub{
		initPayment: func(_ context.Context, id string) (payment.PaymentOrder, error) {
			return payment.PaymentOrder{ID: "pay_1", OrderID: id, Currency: "INR"}, nil
		},
		verifyPayment: func(context.Context, string, []byte) (models.Order, error) {
			return models.Order{}, service.ErrPaymentVerification
		},
	}

	w := serve(s, http.MethodPost, "/api/orders/o-1/payment", "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"id":"pay_1"`)

	w = serve(s, http.MethodPost, "/api/orders/o-1/payment/verify", `{"payment_id":"pay_1","signature":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ValidateCoupon(t *testing.T) {
	d := 45.0
	s := &svcStub{validateCoupon: func(_ context.Context, payload []byte) (service.CouponQuote, error) {
		if strings.Contains(string(payload), "USED") {
			return service.CouponQuote{}, models.ErrCouponAlreadyUsed
		}
		return service.CouponQuote{Coupon: models.Coupon{Code: "SAVE10"}, Discount: &d}, nil
	}}

	w := serve(s, http.MethodPost, "/api/coupons/validate", `{"code":"SAVE10"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"discount":45`)

	w = serve(s, http.MethodPost, "/api/coupons/validate", `{"code":"USED"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"you have already used this coupon"}`, w.Body.String())
}

func TestHandler_Products(t *testing.T) {
	s := &svcStub{
		createProduct: func(context.Context, []byte) (models.Product, error) {
			return models.Product{ID: "p-1", Name: "Toor Dal"}, nil
		},
		updateProduct: func(_ context.Context, id string, _ []byte) (models.Product, error) {
			return models.Product{ID: id, Price: 129}, nil
		},
	}

	w := serve(s, http.MethodPost, "/api/products", `{"name":"Toor Dal"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = serve(s, http.MethodGet, "/api/products/p-404", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = serve(s, http.MethodPatch, "/api/products/p-1", `{"price":129}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"price":129`)
}

func TestHandler_SavedAddresses(t *testing.T) {
	var gotCustomer string
	s := &svcStub{createAddress: func(_ context.Context, customerID string, _ []byte) (models.SavedAddress, error) {
		gotCustomer = customerID
		return models.SavedAddress{ID: "a-1", CustomerID: customerID}, nil
	}}

	w := serve(s, http.MethodPost, "/api/customers/c-1/addresses", `{}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "c-1", gotCustomer)

	w = serve(s, http.MethodGet, "/api/customers/c-1/addresses", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}
