package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/config"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type DepositCrediter interface {
	CreditDeposit(ctx context.Context, result entities.PaymentResult) error
}

// MessageReader is the subset of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MessageWriter is the subset of *kafka.Writer used for publishing.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PaymentResultMessage is the wire form of a completed payment.
type PaymentResultMessage struct {
	AttemptID         string          `json:"attempt_id" validate:"required"`
	UserID            string          `json:"user_id" validate:"required"`
	CheckoutRequestID string          `json:"checkout_request_id" validate:"required"`
	Status            string          `json:"status" validate:"required,oneof=succeeded failed"`
	Amount            decimal.Decimal `json:"amount"`
	MpesaReceipt      string          `json:"mpesa_receipt,omitempty"`
	ResultCode        int             `json:"result_code"`
	ResultDesc        string          `json:"result_desc,omitempty"`
	CompletedAt       time.Time       `json:"completed_at"`
}

func PaymentResultEntityToMessage(r entities.PaymentResult) PaymentResultMessage {
	return PaymentResultMessage{
		AttemptID:         r.AttemptID,
		UserID:            r.UserID,
		CheckoutRequestID: r.CheckoutRequestID,
		Status:            string(r.Status),
		Amount:            r.Amount,
		MpesaReceipt:      r.MpesaReceipt,
		ResultCode:        r.ResultCode,
		ResultDesc:        r.ResultDesc,
		CompletedAt:       r.CompletedAt,
	}
}

func PaymentResultMessageToEntity(m PaymentResultMessage) entities.PaymentResult {
	return entities.PaymentResult{
		AttemptID:         m.AttemptID,
		UserID:            m.UserID,
		CheckoutRequestID: m.CheckoutRequestID,
		Status:            entities.PaymentStatus(m.Status),
		Amount:            m.Amount,
		MpesaReceipt:      m.MpesaReceipt,
		ResultCode:        m.ResultCode,
		ResultDesc:        m.ResultDesc,
		CompletedAt:       m.CompletedAt,
	}
}

type kafkaHandler struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	crediter DepositCrediter
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, crediter DepositCrediter) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.PaymentsTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, crediter)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, crediter DepositCrediter) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		crediter: crediter,
	}
}

// Consume credits wallets from payment results until ctx is done. Messages
// that cannot be applied are moved to the dead letter topic.
func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		start := time.Now()
		resultsInProgress.Inc()

		// CreditDeposit retries on its own
		if err := h.handlePaymentResult(ctx, m); err != nil {
			resultsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				resultsInProgress.Dec()
				continue
			}
			resultsDLQ.Inc()
		} else {
			resultsProcessed.Inc()
		}

		resultProcessingDuration.Observe(time.Since(start).Seconds())
		resultsInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handlePaymentResult(ctx context.Context, m kafka.Message) error {
	var msg PaymentResultMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal payment result: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid payment result: %w", err)
	}

	return h.crediter.CreditDeposit(ctx, PaymentResultMessageToEntity(msg))
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}

// ResultPublisher writes payment results to the payments topic, keyed by user
// so one user's results stay ordered.
type ResultPublisher struct {
	writer MessageWriter
}

func NewResultPublisher(cfg config.Kafka) *ResultPublisher {
	return NewResultPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.PaymentsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireAll,
	})
}

func NewResultPublisherWithWriter(w MessageWriter) *ResultPublisher {
	return &ResultPublisher{writer: w}
}

func (p *ResultPublisher) PublishPaymentResult(ctx context.Context, result entities.PaymentResult) error {
	value, err := json.Marshal(PaymentResultEntityToMessage(result))
	if err != nil {
		return fmt.Errorf("failed to marshal payment result: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(result.UserID),
		Value: value,
	})
}

func (p *ResultPublisher) Close() error {
	return p.writer.Close()
}
