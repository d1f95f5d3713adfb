package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/pkg/utils"
)

type ProductRepo interface {
	ListProducts(ctx context.Context, category entities.ProductCategory) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
}

type ProductCache interface {
	Get(key string) (entities.Product, bool)
	Set(key string, value entities.Product)
}

type productService struct {
	logger *slog.Logger
	repo   ProductRepo
	cache  ProductCache
}

func NewProductService(logger *slog.Logger, repo ProductRepo, cache ProductCache) *productService {
	return &productService{
		logger: logger.With(slog.String("service", "product")),
		repo:   repo,
		cache:  cache,
	}
}

// ListProducts returns active products, optionally of one category.
func (s *productService) ListProducts(ctx context.Context, category entities.ProductCategory) ([]entities.Product, error) {
	var products []entities.Product
	fn := func() error {
		var err error
		products, err = s.repo.ListProducts(ctx, category)
		return err
	}
	if err := utils.Retry(ctx, retryConfig, fn); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	if product, ok := s.cache.Get(id); ok {
		return product, nil
	}

	var product entities.Product
	fn := func() error {
		var err error
		product, err = s.repo.GetProduct(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, retryConfig, fn, entities.ErrProductNotFound); err != nil {
		return entities.Product{}, err
	}

	s.cache.Set(id, product)
	return product, nil
}

// WarmUpCache loads every active product into the cache.
func (s *productService) WarmUpCache(ctx context.Context) error {
	products, err := s.repo.ListProducts(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	for _, p := range products {
		s.cache.Set(p.ID, p)
	}
	s.logger.Info("product cache warmed up", slog.Int("count", len(products)))
	return nil
}
