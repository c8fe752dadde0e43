package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

type publishedMsg struct {
	key, payload []byte
}

type stubPublisher struct {
	msgs []publishedMsg
	err  error
}

func (p *stubPublisher) Publish(_ context.Context, key, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.msgs = append(p.msgs, publishedMsg{key: key, payload: payload})
	return nil
}

func TestEventFor(t *testing.T) {
	require.Equal(t, OrderPlaced, EventFor(models.OrderPlaced))
	require.Equal(t, OrderConfirmed, EventFor(models.OrderConfirmed))
	require.Equal(t, OrderShipped, EventFor(models.OrderShipped))
	require.Equal(t, OrderDelivered, EventFor(models.OrderDelivered))
	require.Equal(t, OrderCancelled, EventFor(models.OrderCancelled))
}

func TestKafkaNotifier_PublishesKeyedJSON(t *testing.T) {
	pub := &stubPublisher{}
	n := NewKafkaNotifier(pub)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	o := models.Order{ID: "o-1", OrderStatus: models.OrderShipped, PaymentStatus: models.PaymentPaid, OrderTotal: 99.5}
	require.NoError(t, n.Notify(context.Background(), NewEvent(o, at)))

	require.Len(t, pub.msgs, 1)
	require.Equal(t, "o-1", string(pub.msgs[0].key))

	var got Event
	require.NoError(t, json.Unmarshal(pub.msgs[0].payload, &got))
	require.Equal(t, OrderShipped, got.Type)
	require.Equal(t, models.PaymentPaid, got.PaymentStatus)
	require.True(t, at.Equal(got.OccurredAt))
}

func TestKafkaNotifier_PublishError(t *testing.T) {
	pub := &stubPublisher{err: errors.New("broker down")}
	err := NewKafkaNotifier(pub).Notify(context.Background(), Event{Type: OrderPlaced, OrderID: "o-1"})
	require.ErrorContains(t, err, "broker down")
}

func TestLogNotifier(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	require.NoError(t, LogNotifier{}.Notify(context.Background(), Event{Type: OrderCancelled, OrderID: "o-9"}))
	require.Len(t, hook.Entries, 1)
	require.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	require.Equal(t, OrderCancelled, hook.LastEntry().Data["event"])
}
