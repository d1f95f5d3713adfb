package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type WalletService interface {
	GetWallet(ctx context.Context, userID string) (entities.Wallet, error)
	ListTransactions(ctx context.Context, userID string, limit int) ([]entities.WalletTransaction, error)
	Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (entities.WalletTransaction, error)
}

type WalletHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     Authenticator
	svc      WalletService
}

func NewWalletHandler(logger *slog.Logger, auth Authenticator, svc WalletService) *WalletHandler {
	return &WalletHandler{
		logger:   logger.With(slog.String("handler", "wallet")),
		validate: newValidator(),
		auth:     auth,
		svc:      svc,
	}
}

func (h *WalletHandler) Init(r chi.Router) {
	r.Route("/wallet", func(r chi.Router) {
		r.Use(h.auth.RequireUser)
		r.Get("/", h.GetWallet)
		r.Get("/transactions", h.ListTransactions)
		r.Post("/withdraw", h.Withdraw)
	})
}

// GetWallet returns the caller's balance.
// @Summary      Wallet balance
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Wallet
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	wallet, err := h.svc.GetWallet(ctx, user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get wallet", slog.Any("error", err), slog.String("user_id", user.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, WalletEntityToJSON(wallet), http.StatusOK)
}

// ListTransactions returns the caller's latest wallet movements.
// @Summary      Wallet transactions
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "At most 100, default 20"
// @Success      200  {array}   Transaction
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /wallet/transactions [get]
func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if err := h.validate.Var(raw, "number,gte=1"); err != nil {
			utils.WriteValidationError(w, err)
			return
		}
		limit, _ = strconv.Atoi(raw)
	}

	txs, err := h.svc.ListTransactions(ctx, user.ID, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list transactions", slog.Any("error", err), slog.String("user_id", user.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, TransactionsEntityToJSON(txs), http.StatusOK)
}

// Withdraw debits the caller's wallet.
// @Summary      Withdraw from wallet
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  WithdrawRequest  true  "Withdrawal"
// @Success      201  {object}  Transaction
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      422  {object}  utils.ErrorResponse "Insufficient funds"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	var req WithdrawRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.WriteError(w, "invalid amount", http.StatusBadRequest)
		return
	}

	txn, err := h.svc.Withdraw(ctx, user.ID, amount)

	if errors.Is(err, entities.ErrInvalidAmount) {
		utils.WriteError(w, "invalid amount", http.StatusBadRequest)
		return
	}

	if errors.Is(err, entities.ErrInsufficientFunds) {
		utils.WriteError(w, "insufficient funds", http.StatusUnprocessableEntity)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to withdraw", slog.Any("error", err), slog.String("user_id", user.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, TransactionEntityToJSON(txn), http.StatusCreated)
}
