package handler

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/mpesa"
	"github.com/Elly-L/main-shilingi-x-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	CallbackTokenParam   = "token"

	maxCallbackBytes = 64 << 10
)

type PaymentService interface {
	InitiateDeposit(ctx context.Context, userID string, amount int64, phone, idemKey string) (json.RawMessage, error)
	HandleCallback(ctx context.Context, cb mpesa.StkCallback) error
}

type PaymentHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     Authenticator
	svc      PaymentService

	callbackToken []byte
}

// NewPaymentHandler rejects every callback when callbackToken is empty.
func NewPaymentHandler(logger *slog.Logger, auth Authenticator, svc PaymentService, callbackToken string) *PaymentHandler {
	return &PaymentHandler{
		logger:        logger.With(slog.String("handler", "payment")),
		validate:      newValidator(),
		auth:          auth,
		svc:           svc,
		callbackToken: []byte(callbackToken),
	}
}

func (h *PaymentHandler) Init(r chi.Router) {
	r.With(h.auth.RequireUser).Post("/stkpush", h.StkPush)
	r.Post("/mpesa/callback", h.Callback)
}

// StkPush sends a payment prompt to the payer's phone.
// @Summary      Start an M-Pesa deposit
// @Description  Sends an STK push and returns the provider acknowledgment unchanged
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header  string          false  "Replays the first response for a repeated key"
// @Param        request          body    StkPushRequest  true   "Deposit"
// @Success      200  {object}  object  "Provider acknowledgment"
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Request with this key is in progress"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /stkpush [post]
func (h *PaymentHandler) StkPush(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	defer func() { stkPushDuration.Observe(time.Since(start).Seconds()) }()

	var req StkPushRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	user := currentUser(r)
	raw, err := h.svc.InitiateDeposit(ctx, user.ID, req.Amount, normalizeMSISDN(req.PhoneNumber), r.Header.Get(IdempotencyKeyHeader))

	if errors.Is(err, entities.ErrDuplicateRequest) {
		utils.WriteError(w, "request is already in progress", http.StatusConflict)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to initiate deposit", slog.Any("error", err), slog.String("user_id", user.ID))
		utils.WriteError(w, mpesa.ErrInitiationFailed.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteRaw(w, raw, http.StatusOK)
}

// Callback receives the asynchronous payment result.
// @Summary      M-Pesa STK callback
// @Description  Acknowledged once the shared token matches so the provider stops retrying
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        token  query  string  true  "Shared callback secret"
// @Success      200  {object}  CallbackAck
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /mpesa/callback [post]
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ack := CallbackAck{ResultCode: 0, ResultDesc: "Accepted"}

	if !h.validCallbackToken(r.URL.Query().Get(CallbackTokenParam)) {
		h.logger.WarnContext(ctx, "callback rejected", slog.String("remote_addr", r.RemoteAddr))
		callbacksReceived.WithLabelValues("unauthorized").Inc()
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxCallbackBytes))
	if err != nil {
		h.logger.WarnContext(ctx, "failed to read callback", slog.Any("error", err))
		callbacksReceived.WithLabelValues("unreadable").Inc()
		utils.WriteJSON(w, ack, http.StatusOK)
		return
	}

	cb, err := mpesa.ParseCallback(body)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid callback", slog.Any("error", err))
		callbacksReceived.WithLabelValues("invalid").Inc()
		utils.WriteJSON(w, ack, http.StatusOK)
		return
	}

	err = h.svc.HandleCallback(ctx, cb)
	switch {
	case errors.Is(err, entities.ErrPaymentNotFound):
		h.logger.WarnContext(ctx, "callback for unknown or completed payment", slog.String("checkout_request_id", cb.CheckoutRequestID))
		callbacksReceived.WithLabelValues("unknown").Inc()
	case errors.Is(err, entities.ErrCallbackMismatch):
		h.logger.WarnContext(ctx, "callback does not match payment", slog.Any("error", err), slog.String("checkout_request_id", cb.CheckoutRequestID))
		callbacksReceived.WithLabelValues("mismatch").Inc()
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to handle callback", slog.Any("error", err), slog.String("checkout_request_id", cb.CheckoutRequestID))
		callbacksReceived.WithLabelValues("failed").Inc()
	default:
		callbacksReceived.WithLabelValues("handled").Inc()
	}

	utils.WriteJSON(w, ack, http.StatusOK)
}

func (h *PaymentHandler) validCallbackToken(got string) bool {
	if len(h.callbackToken) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), h.callbackToken) == 1
}
