package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	mocks "github.com/Elly-L/main-shilingi-x-sub001/internal/handler/mocks"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	mu      sync.Mutex
	written []kafka.Message
	err     error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func resultMessage(t *testing.T, r entities.PaymentResult) kafka.Message {
	t.Helper()
	value, err := json.Marshal(PaymentResultEntityToMessage(r))
	require.NoError(t, err)
	return kafka.Message{Topic: "payment-results", Key: []byte(r.UserID), Value: value}
}

func TestKafkaHandler_Consume(t *testing.T) {
	result := entities.PaymentResult{
		AttemptID:         "attempt-1",
		UserID:            "user-1",
		CheckoutRequestID: "ws_CO_1",
		Status:            entities.PaymentSucceeded,
		Amount:            decimal.NewFromInt(100),
		CompletedAt:       time.Date(2025, 4, 27, 10, 23, 22, 0, time.UTC),
	}

	t.Run("applied results are committed", func(t *testing.T) {
		reader := &fakeReader{messages: []kafka.Message{resultMessage(t, result)}}
		dlq := &fakeWriter{}
		crediter := mocks.NewMockDepositCrediter(t)
		crediter.EXPECT().
			CreditDeposit(mock.Anything, mock.MatchedBy(func(r entities.PaymentResult) bool {
				return r.CheckoutRequestID == "ws_CO_1" && r.Amount.Equal(decimal.NewFromInt(100)) && r.CompletedAt.Equal(result.CompletedAt)
			})).
			Return(nil).Once()

		h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, crediter)
		h.Consume(context.Background())

		assert.Len(t, reader.committed, 1)
		assert.Empty(t, dlq.written)
	})

	t.Run("invalid message goes to DLQ", func(t *testing.T) {
		bad := kafka.Message{Topic: "payment-results", Value: []byte(`{"user_id":"user-1"}`)}
		reader := &fakeReader{messages: []kafka.Message{bad}}
		dlq := &fakeWriter{}
		crediter := mocks.NewMockDepositCrediter(t)

		h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, crediter)
		h.Consume(context.Background())

		require.Len(t, dlq.written, 1)
		assert.Equal(t, "payment-results-dlq", dlq.written[0].Topic)
		assert.Len(t, reader.committed, 1)
	})

	t.Run("credit failure goes to DLQ", func(t *testing.T) {
		reader := &fakeReader{messages: []kafka.Message{resultMessage(t, result)}}
		dlq := &fakeWriter{}
		crediter := mocks.NewMockDepositCrediter(t)
		crediter.EXPECT().CreditDeposit(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()

		h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, crediter)
		h.Consume(context.Background())

		require.Len(t, dlq.written, 1)
		assert.Equal(t, []byte("user-1"), dlq.written[0].Key)
		assert.Len(t, reader.committed, 1)
	})

	t.Run("message stays uncommitted when DLQ is down", func(t *testing.T) {
		reader := &fakeReader{messages: []kafka.Message{resultMessage(t, result)}}
		dlq := &fakeWriter{err: errors.New("broker down")}
		crediter := mocks.NewMockDepositCrediter(t)
		crediter.EXPECT().CreditDeposit(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()

		h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, crediter)
		h.Consume(context.Background())

		assert.Empty(t, reader.committed)
	})
}

func TestResultPublisher_PublishPaymentResult(t *testing.T) {
	w := &fakeWriter{}
	p := NewResultPublisherWithWriter(w)

	err := p.PublishPaymentResult(context.Background(), entities.PaymentResult{
		AttemptID:         "attempt-1",
		UserID:            "user-1",
		CheckoutRequestID: "ws_CO_1",
		Status:            entities.PaymentSucceeded,
		Amount:            decimal.RequireFromString("99.50"),
	})
	require.NoError(t, err)
	require.Len(t, w.written, 1)

	assert.Equal(t, []byte("user-1"), w.written[0].Key)

	var msg PaymentResultMessage
	require.NoError(t, json.Unmarshal(w.written[0].Value, &msg))
	assert.Equal(t, "succeeded", msg.Status)
	assert.True(t, msg.Amount.Equal(decimal.RequireFromString("99.5")))
}
