package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/service"
	mocks "github.com/Elly-L/main-shilingi-x-sub001/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_GetProduct(t *testing.T) {
	type MockBehavior func(repo *mocks.MockProductRepo, cache *mocks.MockProductCache)

	product := entities.Product{ID: "tbill-91", Name: "91-Day Treasury Bill", Category: entities.CategoryGovernmentSecurity}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		want         entities.Product
		wantErr      error
	}{
		{
			name: "cache hit",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockProductCache) {
				cache.EXPECT().Get("tbill-91").Return(product, true)
			},
			want: product,
		},
		{
			name: "cache miss",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockProductCache) {
				cache.EXPECT().Get("tbill-91").Return(entities.Product{}, false)
				repo.EXPECT().GetProduct(mock.Anything, "tbill-91").Return(product, nil).Once()
				cache.EXPECT().Set("tbill-91", product).Return()
			},
			want: product,
		},
		{
			name: "not found is not retried",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockProductCache) {
				cache.EXPECT().Get("tbill-91").Return(entities.Product{}, false)
				repo.EXPECT().GetProduct(mock.Anything, "tbill-91").Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name: "retry works",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockProductCache) {
				cache.EXPECT().Get("tbill-91").Return(entities.Product{}, false)
				repo.EXPECT().GetProduct(mock.Anything, "tbill-91").Return(entities.Product{}, errors.New("temporary error")).Once()
				repo.EXPECT().GetProduct(mock.Anything, "tbill-91").Return(product, nil).Once()
				cache.EXPECT().Set("tbill-91", product).Return()
			},
			want: product,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			cache := mocks.NewMockProductCache(t)
			tc.mockBehavior(repo, cache)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewProductService(logger, repo, cache)

			got, err := svc.GetProduct(context.Background(), "tbill-91")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProductService_ListProducts(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	cache := mocks.NewMockProductCache(t)
	products := []entities.Product{{ID: "ifb-2024", Category: entities.CategoryInfrastructureBond}}
	repo.EXPECT().ListProducts(mock.Anything, entities.CategoryInfrastructureBond).Return(products, nil).Once()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewProductService(logger, repo, cache)

	got, err := svc.ListProducts(context.Background(), entities.CategoryInfrastructureBond)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestProductService_WarmUpCache(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	cache := mocks.NewMockProductCache(t)
	products := []entities.Product{{ID: "tbill-91"}, {ID: "ifb-2024"}, {ID: "scom-tok"}}
	repo.EXPECT().ListProducts(mock.Anything, entities.ProductCategory("")).Return(products, nil).Once()
	for _, p := range products {
		cache.EXPECT().Set(p.ID, p).Return().Once()
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewProductService(logger, repo, cache)

	require.NoError(t, svc.WarmUpCache(context.Background()))
}
