package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProductService interface {
	ListProducts(ctx context.Context, category entities.ProductCategory) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
}

type ProductHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ProductService
}

func NewProductHandler(logger *slog.Logger, svc ProductService) *ProductHandler {
	return &ProductHandler{
		logger:   logger.With(slog.String("handler", "product")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
}

// ListProducts returns the active investment products.
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "government_security, infrastructure_bond or tokenized_equity"
// @Success      200  {array}   Product
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")

	if err := h.validate.Var(category, "omitempty,oneof=government_security infrastructure_bond tokenized_equity"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	products, err := h.svc.ListProducts(ctx, entities.ProductCategory(category))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ProductsEntityToJSON(products), http.StatusOK)
}

// GetProduct returns one product.
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	product, err := h.svc.GetProduct(ctx, id)

	if errors.Is(err, entities.ErrProductNotFound) {
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get product", slog.Any("error", err), slog.String("product_id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}
