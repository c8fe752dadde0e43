package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func fakeOrder(f *gofakeit.Faker, customerID string) models.Order {
	email := f.Email()
	qty := int(f.Number(1, 5))
	price := f.Price(10, 500)
	return models.Order{
		ID:            f.UUID(),
		UserID:        &customerID,
		CustomerName:  f.FirstName() + " " + f.LastName(),
		CustomerEmail: &email,
		CustomerPhone: "+91" + f.DigitN(10),
		OrderStatus:   models.OrderStatuses[f.Number(0, len(models.OrderStatuses)-1)],
		PaymentStatus: models.PaymentPending,
		PaymentMethod: f.RandomString([]string{"upi", "card", "cash_on_delivery"}),
		Subtotal:      price * float64(qty),
		DeliveryFee:   20,
		OrderTotal:    price*float64(qty) + 20,
		Items: []models.OrderItem{{
			ProductID: f.UUID(),
			Name:      f.ProductName(),
			Price:     price,
			Quantity:  qty,
		}},
		ShippingAddress: models.ShippingAddress{
			Address: f.Street(),
			City:    f.City(),
			State:   f.State(),
			Pincode: f.DigitN(6),
		},
		CreatedAt: time.Now().UTC(),
	}
}

func Test_ListCustomerOrders_Many(t *testing.T) {
	f := gofakeit.New(42)
	customer := f.UUID()

	var orders []models.Order
	for i := 0; i < 20; i++ {
		orders = append(orders, fakeOrder(f, customer))
	}

	s := &svcStub{listOrders: func(_ context.Context, id string) ([]models.Order, error) {
		require.Equal(t, customer, id)
		return orders, nil
	}}

	w := serve(s, http.MethodGet, "/api/orders/customer/"+customer, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, len(orders))
	require.Equal(t, orders[7].ID, resp[7].ID)
	require.Equal(t, orders[7].Items[0].Quantity, resp[7].Items[0].Quantity)
}

func Test_GetOrder_Fake(t *testing.T) {
	f := gofakeit.New(7)
	o := fakeOrder(f, f.UUID())

	s := &svcStub{getOrder: func(_ context.Context, id string) (models.Order, error) {
		require.Equal(t, o.ID, id)
		return o, nil
	}}

	w := serve(s, http.MethodGet, "/api/orders/"+o.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, o.CustomerName, got.CustomerName)
	require.Equal(t, *o.CustomerEmail, *got.CustomerEmail)
	require.Equal(t, o.ShippingAddress, got.ShippingAddress)
}
