package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var paymentAttemptColumns = []string{
	"id", "user_id", "amount", "phone", "merchant_request_id", "checkout_request_id",
	"status", "result_code", "result_desc", "mpesa_receipt", "provider_response",
	"published_at", "created_at", "updated_at",
}

func (r *postgresRepo) SaveAttempt(ctx context.Context, a entities.PaymentAttempt) error {
	query, args := r.qb.Insert("payment_attempts").
		Columns(
			"id", "user_id", "amount", "phone", "merchant_request_id",
			"checkout_request_id", "status", "result_desc", "provider_response",
		).
		Values(
			a.ID, a.UserID, a.Amount, a.Phone, nullString(a.MerchantRequestID),
			nullString(a.CheckoutRequestID), string(a.Status), nullString(a.ResultDesc),
			nullString(string(a.ProviderResponse)),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save payment attempt: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetAttemptByCheckoutID(ctx context.Context, checkoutRequestID string) (entities.PaymentAttempt, error) {
	query, args := r.qb.Select(paymentAttemptColumns...).
		From("payment_attempts").
		Where(sq.Eq{"checkout_request_id": checkoutRequestID}).
		MustSql()

	var attempt PaymentAttempt
	err := r.getContext(ctx, &attempt, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PaymentAttempt{}, entities.ErrPaymentNotFound
	}
	if err != nil {
		return entities.PaymentAttempt{}, fmt.Errorf("failed to get payment attempt: %w", err)
	}
	return PaymentAttemptToEntity(attempt), nil
}

// CompleteAttempt records the final provider result. Only attempts that are
// still awaiting a result are updated.
func (r *postgresRepo) CompleteAttempt(ctx context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, error) {
	query, args := r.qb.Update("payment_attempts").
		Set("status", string(a.Status)).
		Set("result_code", nullInt32(a.ResultCode)).
		Set("result_desc", nullString(a.ResultDesc)).
		Set("mpesa_receipt", nullString(a.MpesaReceipt)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{
			"checkout_request_id": a.CheckoutRequestID,
			"status":              []string{string(entities.PaymentPending), string(entities.PaymentAccepted)},
		}).
		Suffix("RETURNING " + strings.Join(paymentAttemptColumns, ", ")).
		MustSql()

	var updated PaymentAttempt
	err := r.getContext(ctx, &updated, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PaymentAttempt{}, entities.ErrPaymentNotFound
	}
	if err != nil {
		return entities.PaymentAttempt{}, fmt.Errorf("failed to complete payment attempt: %w", err)
	}
	return PaymentAttemptToEntity(updated), nil
}

func (r *postgresRepo) MarkPublished(ctx context.Context, attemptID string) error {
	query, args := r.qb.Update("payment_attempts").
		Set("published_at", sq.Expr("now()")).
		Where(sq.Eq{"id": attemptID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark payment result published: %w", err)
	}
	return nil
}

// ListUnpublished returns succeeded attempts completed before the given time
// whose result was never published, oldest first.
func (r *postgresRepo) ListUnpublished(ctx context.Context, before time.Time, limit int) ([]entities.PaymentAttempt, error) {
	query, args := r.qb.Select(paymentAttemptColumns...).
		From("payment_attempts").
		Where(sq.Eq{"status": string(entities.PaymentSucceeded), "published_at": nil}).
		Where(sq.Lt{"updated_at": before}).
		OrderBy("updated_at").
		Limit(uint64(limit)).
		MustSql()

	var rows []PaymentAttempt
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list unpublished payment attempts: %w", err)
	}

	attempts := make([]entities.PaymentAttempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, PaymentAttemptToEntity(row))
	}
	return attempts, nil
}
