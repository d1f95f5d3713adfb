package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/handler"
	mocks "github.com/Elly-L/main-shilingi-x-sub001/internal/handler/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_GetProduct(t *testing.T) {
	validProduct := entities.Product{
		ID:            "tbill-91",
		Name:          "91-Day Treasury Bill",
		Category:      entities.CategoryGovernmentSecurity,
		MinInvestment: decimal.NewFromInt(100),
		AnnualYield:   decimal.RequireFromString("15.78"),
		TenorMonths:   3,
	}

	testCases := []struct {
		name         string
		productID    string
		mockBehavior func(svc *mocks.MockProductService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "success",
			productID: "tbill-91",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().GetProduct(mock.Anything, "tbill-91").Return(validProduct, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"tbill-91"`,
		},
		{
			name:      "not found",
			productID: "not-exist",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().GetProduct(mock.Anything, "not-exist").Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
		{
			name:      "internal error",
			productID: "tbill-91",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().GetProduct(mock.Anything, "tbill-91").Return(entities.Product{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockProductService(t)
			tc.mockBehavior(svc)
			h := handler.NewProductHandler(discardLogger(), svc)

			status, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/products/"+tc.productID, nil))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "15.78", resp["annual_yield"])
				assert.Equal(t, "100.00", resp["min_investment"])
			}
		})
	}
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("by category", func(t *testing.T) {
		svc := mocks.NewMockProductService(t)
		svc.EXPECT().ListProducts(mock.Anything, entities.CategoryTokenizedEquity).
			Return([]entities.Product{{ID: "scom-tok", Category: entities.CategoryTokenizedEquity}}, nil).Once()
		h := handler.NewProductHandler(discardLogger(), svc)

		status, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/products?category=tokenized_equity", nil))

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"id":"scom-tok"`)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc := mocks.NewMockProductService(t)
		h := handler.NewProductHandler(discardLogger(), svc)

		status, _ := serve(t, h, httptest.NewRequest(http.MethodGet, "/products?category=crypto", nil))

		assert.Equal(t, http.StatusBadRequest, status)
	})
}
