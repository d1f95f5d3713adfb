package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/idempotency"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/mpesa"
	"github.com/Elly-L/main-shilingi-x-sub001/pkg/trm"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentGateway interface {
	InitiatePayment(ctx context.Context, amount int64, phoneNumber string) (json.RawMessage, error)
}

type PaymentRepo interface {
	SaveAttempt(ctx context.Context, a entities.PaymentAttempt) error
	GetAttemptByCheckoutID(ctx context.Context, checkoutRequestID string) (entities.PaymentAttempt, error)
	// CompleteAttempt returns entities.ErrPaymentNotFound unless the attempt is still awaiting a result.
	CompleteAttempt(ctx context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, error)
	MarkPublished(ctx context.Context, attemptID string) error
}

type IdempotencyStore interface {
	Begin(ctx context.Context, key string) (idempotency.Record, bool, error)
	Complete(ctx context.Context, key string, response json.RawMessage) error
	Release(ctx context.Context, key string) error
}

type ResultPublisher interface {
	PublishPaymentResult(ctx context.Context, result entities.PaymentResult) error
}

type paymentService struct {
	logger    *slog.Logger
	txManager trm.Manager
	gateway   PaymentGateway
	repo      PaymentRepo
	idem      IdempotencyStore
	publisher ResultPublisher
}

func NewPaymentService(
	logger *slog.Logger,
	txManager trm.Manager,
	gateway PaymentGateway,
	repo PaymentRepo,
	idem IdempotencyStore,
	publisher ResultPublisher,
) *paymentService {
	return &paymentService{
		logger:    logger.With(slog.String("service", "payment")),
		txManager: txManager,
		gateway:   gateway,
		repo:      repo,
		idem:      idem,
		publisher: publisher,
	}
}

// InitiateDeposit pushes a payment prompt to the payer and returns the
// provider's acknowledgment unchanged. With a non-empty idemKey a repeated
// call answers with the first call's acknowledgment.
func (s *paymentService) InitiateDeposit(ctx context.Context, userID string, amount int64, phone, idemKey string) (json.RawMessage, error) {
	if idemKey == "" {
		return s.initiate(ctx, userID, amount, phone)
	}

	key := "stkpush:" + userID + ":" + idemKey
	rec, started, err := s.idem.Begin(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to claim idempotency key: %w", err)
	}
	if !started {
		if rec.State == idempotency.StateComplete {
			stkPushes.WithLabelValues("replayed").Inc()
			return rec.Response, nil
		}
		return nil, entities.ErrDuplicateRequest
	}

	raw, err := s.initiate(ctx, userID, amount, phone)
	if err != nil {
		if relErr := s.idem.Release(context.WithoutCancel(ctx), key); relErr != nil {
			s.logger.WarnContext(ctx, "failed to release idempotency key", slog.Any("error", relErr))
		}
		return nil, err
	}

	if err := s.idem.Complete(context.WithoutCancel(ctx), key, raw); err != nil {
		s.logger.WarnContext(ctx, "failed to store idempotent response", slog.Any("error", err))
	}
	return raw, nil
}

func (s *paymentService) initiate(ctx context.Context, userID string, amount int64, phone string) (json.RawMessage, error) {
	raw, err := s.gateway.InitiatePayment(ctx, amount, phone)
	if err != nil {
		stkPushes.WithLabelValues("failed").Inc()
		return nil, err
	}

	s.recordAttempt(context.WithoutCancel(ctx), userID, amount, phone, raw)
	return raw, nil
}

// recordAttempt never fails the deposit: the push already reached the payer.
func (s *paymentService) recordAttempt(ctx context.Context, userID string, amount int64, phone string, raw json.RawMessage) {
	attempt := entities.PaymentAttempt{
		ID:               uuid.NewString(),
		UserID:           userID,
		Amount:           amount,
		Phone:            phone,
		Status:           entities.PaymentRejected,
		ProviderResponse: raw,
	}

	ack, err := mpesa.ParseAck(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "unrecognised provider acknowledgment", slog.Any("error", err))
	} else {
		attempt.MerchantRequestID = ack.MerchantRequestID
		attempt.CheckoutRequestID = ack.CheckoutRequestID
		attempt.ResultDesc = ack.Reason()
		if ack.Accepted() {
			attempt.Status = entities.PaymentAccepted
		}
	}
	stkPushes.WithLabelValues(string(attempt.Status)).Inc()

	if err := s.repo.SaveAttempt(ctx, attempt); err != nil {
		s.logger.ErrorContext(ctx, "failed to save payment attempt",
			slog.Any("error", err),
			slog.String("checkout_request_id", attempt.CheckoutRequestID),
		)
		return
	}
	s.logger.DebugContext(ctx, "payment attempt saved",
		slog.String("attempt_id", attempt.ID),
		slog.String("status", string(attempt.Status)),
	)
}

// HandleCallback stores the final result of a push, then publishes it.
// Callbacks that disagree with the recorded attempt fail the attempt and
// are never published. A stored result whose publish failed is left for
// the payment relay.
func (s *paymentService) HandleCallback(ctx context.Context, cb mpesa.StkCallback) error {
	var (
		attempt  entities.PaymentAttempt
		mismatch error
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetAttemptByCheckoutID(ctx, cb.CheckoutRequestID)
		if err != nil {
			return err
		}

		code := cb.ResultCode
		update := entities.PaymentAttempt{
			CheckoutRequestID: cb.CheckoutRequestID,
			Status:            entities.PaymentFailed,
			ResultCode:        &code,
			ResultDesc:        cb.ResultDesc,
		}
		if cb.Succeeded() {
			mismatch = verifyCallback(current, cb)
			if mismatch != nil {
				update.ResultDesc = mismatch.Error()
			} else {
				update.Status = entities.PaymentSucceeded
				update.MpesaReceipt = cb.Receipt()
			}
		}

		attempt, err = s.repo.CompleteAttempt(ctx, update)
		return err
	})
	if errors.Is(err, entities.ErrPaymentNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to handle callback: %w", err)
	}

	if mismatch != nil {
		paymentCallbacks.WithLabelValues("mismatch").Inc()
		return mismatch
	}
	paymentCallbacks.WithLabelValues(string(attempt.Status)).Inc()

	if err := publishAttempt(ctx, s.logger, s.publisher, s.repo.MarkPublished, attempt); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "payment completed",
		slog.String("checkout_request_id", cb.CheckoutRequestID),
		slog.String("status", string(attempt.Status)),
	)
	return nil
}

// verifyCallback checks a success callback against what the payer was asked to pay.
func verifyCallback(a entities.PaymentAttempt, cb mpesa.StkCallback) error {
	amount := cb.Amount()
	if !amount.Equal(decimal.NewFromInt(a.Amount)) {
		return fmt.Errorf("%w: amount %s, expected %d", entities.ErrCallbackMismatch, amount, a.Amount)
	}
	if cb.Receipt() == "" {
		return fmt.Errorf("%w: missing receipt", entities.ErrCallbackMismatch)
	}
	if phone := cb.PhoneNumber(); phone != "" && phone != a.Phone {
		return fmt.Errorf("%w: phone number differs", entities.ErrCallbackMismatch)
	}
	return nil
}
