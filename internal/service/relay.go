package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"

	"github.com/shopspring/decimal"
)

const (
	relayBatchSize = 100
	// relayGrace keeps the relay away from results the callback path is still publishing.
	relayGrace = time.Minute
)

type PaymentOutbox interface {
	ListUnpublished(ctx context.Context, before time.Time, limit int) ([]entities.PaymentAttempt, error)
	MarkPublished(ctx context.Context, attemptID string) error
}

type paymentRelay struct {
	logger    *slog.Logger
	outbox    PaymentOutbox
	publisher ResultPublisher
	interval  time.Duration
	now       func() time.Time
}

func NewPaymentRelay(logger *slog.Logger, outbox PaymentOutbox, publisher ResultPublisher, interval time.Duration) *paymentRelay {
	return &paymentRelay{
		logger:    logger.With(slog.String("service", "payment-relay")),
		outbox:    outbox,
		publisher: publisher,
		interval:  interval,
		now:       time.Now,
	}
}

// Start relays pending results every interval until ctx is done.
func (r *paymentRelay) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := r.RelayPending(ctx); err != nil {
					r.logger.ErrorContext(ctx, "failed to relay payment results", slog.Any("error", err))
				}
			}
		}
	}()
	return nil
}

// RelayPending publishes succeeded results that were stored but never
// published and reports how many were sent.
func (r *paymentRelay) RelayPending(ctx context.Context) (int, error) {
	attempts, err := r.outbox.ListUnpublished(ctx, r.now().Add(-relayGrace), relayBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list unpublished results: %w", err)
	}

	sent := 0
	defer func() { resultsRelayed.Add(float64(sent)) }()

	for _, a := range attempts {
		if err := publishAttempt(ctx, r.logger, r.publisher, r.outbox.MarkPublished, a); err != nil {
			return sent, err
		}
		sent++
	}

	if sent > 0 {
		r.logger.InfoContext(ctx, "payment results relayed", slog.Int("count", sent))
	}
	return sent, nil
}

// publishAttempt publishes the result of a completed attempt and marks it
// published. A failed mark only causes a repeated publish, which crediting ignores.
func publishAttempt(
	ctx context.Context,
	logger *slog.Logger,
	publisher ResultPublisher,
	markPublished func(ctx context.Context, attemptID string) error,
	a entities.PaymentAttempt,
) error {
	if err := publisher.PublishPaymentResult(ctx, resultFromAttempt(a)); err != nil {
		return fmt.Errorf("failed to publish payment result: %w", err)
	}
	if err := markPublished(ctx, a.ID); err != nil {
		logger.WarnContext(ctx, "failed to mark payment result published",
			slog.Any("error", err),
			slog.String("attempt_id", a.ID),
		)
	}
	return nil
}

func resultFromAttempt(a entities.PaymentAttempt) entities.PaymentResult {
	result := entities.PaymentResult{
		AttemptID:         a.ID,
		UserID:            a.UserID,
		CheckoutRequestID: a.CheckoutRequestID,
		Status:            a.Status,
		Amount:            decimal.NewFromInt(a.Amount),
		MpesaReceipt:      a.MpesaReceipt,
		ResultDesc:        a.ResultDesc,
		CompletedAt:       a.UpdatedAt.UTC(),
	}
	if a.ResultCode != nil {
		result.ResultCode = *a.ResultCode
	}
	return result
}
