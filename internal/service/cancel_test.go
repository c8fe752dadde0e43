package service_test

import (
	"context"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/payment"
	svc "storefront/internal/service"
)

func TestService_CancelOrder_Unpaid(t *testing.T) {
	f := newFixture(t)
	o := f.placeOrder(t, models.OrderPlaced, models.PaymentPending)

	res, err := f.svc.CancelOrder(context.Background(), o.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderCancelled, res.Order.OrderStatus)
	require.Equal(t, svc.CompensationNone, res.Compensation)
	require.Equal(t, svc.CompensationSkipped, res.Status)
	require.Nil(t, res.Refund)
	f.gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
}

func TestService_CancelOrder_PaidIsRefunded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.placeOrder(t, models.OrderConfirmed, models.PaymentPaid)
	_, err := f.db.UpdatePaymentStatus(ctx, o.ID, models.PaymentPaid, "pay_123")
	require.NoError(t, err)

	f.gateway.On("Refund", mock.Anything, payment.RefundRequest{
		PaymentID: "pay_123",
		Amount:    520,
		Reason:    "order cancelled",
	}).Return(payment.Refund{ID: "rfnd_1", PaymentID: "pay_123", Amount: 520, Status: "processed"}, nil).Once()

	res, err := f.svc.CancelOrder(ctx, o.ID)
	require.NoError(t, err)
	f.gateway.AssertExpectations(t)

	require.Equal(t, svc.CompensationRefund, res.Compensation)
	require.Equal(t, svc.CompensationProcessed, res.Status)
	require.Equal(t, "rfnd_1", res.Refund.ID)
	require.Empty(t, res.Error)
	require.Equal(t, models.OrderCancelled, res.Order.OrderStatus)
	require.Equal(t, models.PaymentRefunded, res.Order.PaymentStatus)
	require.Equal(t, models.PaymentRefunded, f.db.stored(o.ID).PaymentStatus)

	cached, ok := f.cache.GetOrder(o.ID)
	require.True(t, ok)
	require.Equal(t, models.PaymentRefunded, cached.PaymentStatus)
}

func TestService_CancelOrder_RefundFailureKeepsCancellation(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	f := newFixture(t)
	o := f.placeOrder(t, models.OrderPlaced, models.PaymentPaid)
	f.gateway.On("Refund", mock.Anything, mock.Anything).Return(nil, errors.New("gateway timeout")).Once()

	res, err := f.svc.CancelOrder(context.Background(), o.ID)
	require.NoError(t, err)
	require.Equal(t, svc.CompensationRefund, res.Compensation)
	require.Equal(t, svc.CompensationFailed, res.Status)
	require.Equal(t, "gateway timeout", res.Error)
	require.Equal(t, models.OrderCancelled, f.db.stored(o.ID).OrderStatus)
	require.Equal(t, models.PaymentPaid, f.db.stored(o.ID).PaymentStatus)

	logged := false
	for _, e := range hook.AllEntries() {
		if e.Level == log.ErrorLevel && e.Message == "refund for cancelled order failed" {
			logged = true
		}
	}
	require.True(t, logged)
}

func TestService_CancelOrder_Terminal(t *testing.T) {
	f := newFixture(t)

	for _, st := range []models.OrderStatus{models.OrderShipped, models.OrderDelivered, models.OrderCancelled} {
		o := f.placeOrder(t, st, models.PaymentPaid)
		_, err := f.svc.CancelOrder(context.Background(), o.ID)

		var terr *svc.InvalidTransitionError
		require.ErrorAs(t, err, &terr, string(st))
	}
	f.gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
}

func TestService_UpdateOrderStatus_CancelPaidIsRefunded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.placeOrder(t, models.OrderConfirmed, models.PaymentPaid)
	_, err := f.db.UpdatePaymentStatus(ctx, o.ID, models.PaymentPaid, "pay_123")
	require.NoError(t, err)

	f.gateway.On("Refund", mock.Anything, payment.RefundRequest{
		PaymentID: "pay_123",
		Amount:    520,
		Reason:    "order cancelled",
	}).Return(payment.Refund{ID: "rfnd_2", PaymentID: "pay_123", Amount: 520, Status: "processed"}, nil).Once()

	got, err := f.svc.UpdateOrderStatus(ctx, o.ID, "cancelled")
	require.NoError(t, err)
	f.gateway.AssertExpectations(t)

	require.Equal(t, models.OrderCancelled, got.OrderStatus)
	require.Equal(t, models.PaymentRefunded, got.PaymentStatus)
	require.Equal(t, models.PaymentRefunded, f.db.stored(o.ID).PaymentStatus)
}
