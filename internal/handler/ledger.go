package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/ledger"
	"github.com/Elly-L/main-shilingi-x-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type SettingsService interface {
	GetContractSettings(ctx context.Context) (entities.ContractSettings, error)
	SetContractID(ctx context.Context, contractID, updatedBy string) (entities.ContractSettings, error)
	WalletID(ctx context.Context, ownerAccountID string) (string, error)
	EstimateGas(ctx context.Context, method string, params []any) ledger.GasEstimate
}

type LedgerHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     Authenticator
	svc      SettingsService
}

func NewLedgerHandler(logger *slog.Logger, auth Authenticator, svc SettingsService) *LedgerHandler {
	return &LedgerHandler{
		logger:   logger.With(slog.String("handler", "ledger")),
		validate: newValidator(),
		auth:     auth,
		svc:      svc,
	}
}

func (h *LedgerHandler) Init(r chi.Router) {
	r.Get("/ledger/address/{account_id}", h.AccountToAddress)
	r.Get("/ledger/account/{address}", h.AddressToAccount)

	r.Route("/admin", func(r chi.Router) {
		r.Use(h.auth.RequireAdmin)
		r.Get("/contract-settings", h.GetContractSettings)
		r.Put("/contract-settings", h.SetContractSettings)
		r.Get("/wallet-id/{account_id}", h.WalletID)
		r.Post("/estimate-gas", h.EstimateGas)
	})
}

// AccountToAddress converts a ledger account id to its EVM address.
// @Summary      Account id to EVM address
// @Tags         ledger
// @Produce      json
// @Param        account_id  path      string  true  "Account id such as 0.0.12345"
// @Success      200  {object}  AddressResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /ledger/address/{account_id} [get]
func (h *LedgerHandler) AccountToAddress(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")

	address, err := ledger.AccountIDToAddress(accountID)
	if err != nil {
		utils.WriteError(w, "invalid account id", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, AddressResponse{AccountID: accountID, Address: address}, http.StatusOK)
}

// AddressToAccount converts an EVM address to a ledger account id.
// @Summary      EVM address to account id
// @Tags         ledger
// @Produce      json
// @Param        address  path      string  true  "0x prefixed address"
// @Success      200  {object}  AddressResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /ledger/account/{address} [get]
func (h *LedgerHandler) AddressToAccount(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	accountID, err := ledger.AddressToAccountID(address)
	if err != nil {
		utils.WriteError(w, "invalid address", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, AddressResponse{AccountID: accountID, Address: address}, http.StatusOK)
}

// GetContractSettings returns the configured contract.
// @Summary      Contract settings
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ContractSettings
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /admin/contract-settings [get]
func (h *LedgerHandler) GetContractSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := h.svc.GetContractSettings(ctx)

	if errors.Is(err, entities.ErrSettingsNotFound) {
		utils.WriteError(w, "contract is not configured", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get contract settings", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ContractSettingsEntityToJSON(settings), http.StatusOK)
}

// SetContractSettings stores the contract id.
// @Summary      Set contract id
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  SetContractRequest  true  "Contract"
// @Success      200  {object}  ContractSettings
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /admin/contract-settings [put]
func (h *LedgerHandler) SetContractSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	var req SetContractRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	settings, err := h.svc.SetContractID(ctx, req.ContractID, user.ID)

	if errors.Is(err, entities.ErrInvalidAccountID) {
		utils.WriteError(w, "invalid contract id", http.StatusBadRequest)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to set contract id", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ContractSettingsEntityToJSON(settings), http.StatusOK)
}

// WalletID reads the wallet id the contract holds for an account.
// @Summary      Contract wallet id
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  path      string  true  "Account id such as 0.0.12345"
// @Success      200  {object}  WalletIDResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Contract is not configured"
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /admin/wallet-id/{account_id} [get]
func (h *LedgerHandler) WalletID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	accountID := chi.URLParam(r, "account_id")

	walletID, err := h.svc.WalletID(ctx, accountID)

	if errors.Is(err, entities.ErrInvalidAccountID) {
		utils.WriteError(w, "invalid account id", http.StatusBadRequest)
		return
	}

	if errors.Is(err, entities.ErrContractNotSet) {
		utils.WriteError(w, "contract is not configured", http.StatusConflict)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read wallet id", slog.Any("error", err), slog.String("account_id", accountID))
		utils.WriteError(w, "ledger call failed", http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, WalletIDResponse{AccountID: accountID, WalletID: walletID}, http.StatusOK)
}

// EstimateGas estimates the fee of a contract call.
// @Summary      Estimate gas
// @Description  Failures are reported in the body with ok=false, never as an error status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  EstimateGasRequest  true  "Contract call"
// @Success      200  {object}  GasEstimate
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /admin/estimate-gas [post]
func (h *LedgerHandler) EstimateGas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EstimateGasRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	est := h.svc.EstimateGas(ctx, req.Method, req.Params)
	utils.WriteJSON(w, GasEstimateToJSON(est), http.StatusOK)
}
