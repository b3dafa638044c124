package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ariefcatur/simple-shop/internal/orders"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	fail   error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail != nil {
		return w.fail
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func TestProducer_FlushesOnClose(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, orders.TopicOrderCreated, 8)
	p.Start()

	for _, k := range []string{"1", "2", "3"} {
		require.NoError(t, p.Publish(context.Background(), []byte(k), []byte("v"+k)))
	}
	p.Close()
	p.Close()
	p.WaitClosed()

	require.Len(t, w.msgs, 3)
	assert.Equal(t, []byte("3"), w.msgs[2].Key)
	assert.True(t, w.closed)
}

func TestProducer_WriteErrorDoesNotStopLoop(t *testing.T) {
	w := &fakeWriter{fail: errors.New("leader not available")}
	p := newProducer(w, orders.TopicOrderCreated, 1)
	p.Start()

	require.NoError(t, p.Publish(context.Background(), []byte("1"), []byte("v")))
	require.NoError(t, p.Publish(context.Background(), []byte("2"), []byte("v")))
	p.Close()
	p.WaitClosed()

	assert.Empty(t, w.msgs)
	assert.True(t, w.closed)
}

func TestProducer_PublishHonoursContext(t *testing.T) {
	p := newProducer(&fakeWriter{}, orders.TopicOrderCreated, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// loop not started and inbox unbuffered
	err := p.Publish(ctx, []byte("1"), []byte("v"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOrderPublisher(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, orders.TopicOrderCreated, 4)
	p.Start()

	ev := orders.Envelope{
		EventID:       "e-1",
		EventType:     orders.EventOrderCreated,
		EventVersion:  1,
		CorrelationID: "100",
		Payload:       json.RawMessage(`{"order_id":100}`),
	}
	require.NoError(t, OrderPublisher{Producer: p}.Publish(context.Background(), ev))
	p.Close()
	p.WaitClosed()

	require.Len(t, w.msgs, 1)
	m := w.msgs[0]
	assert.Equal(t, []byte("100"), m.Key)
	assert.Equal(t, "x-event-type", m.Headers[0].Key)
	assert.Equal(t, []byte(orders.EventOrderCreated), m.Headers[0].Value)

	var got orders.Envelope
	require.NoError(t, json.Unmarshal(m.Value, &got))
	assert.Equal(t, "e-1", got.EventID)

	payload, err := UnwrapPayload[orders.OrderCreatedPayload](got.Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(100), payload.OrderID)
}

func TestProducer_PublishAfterCloseReturnsError(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, orders.TopicOrderCreated, 4)
	p.Start()
	p.Close()
	p.WaitClosed()

	err := p.Publish(context.Background(), []byte("1"), []byte("late"))
	assert.ErrorIs(t, err, ErrProducerClosed)

	err = OrderPublisher{Producer: p}.Publish(context.Background(), orders.Envelope{CorrelationID: "1"})
	assert.ErrorIs(t, err, ErrProducerClosed)
	assert.Empty(t, w.msgs)
}
