package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var productColumns = []string{
	"id", "name", "category", "description", "min_investment",
	"annual_yield", "tenor_months", "token_id", "active",
}

// ListProducts returns active products, optionally of one category.
func (r *postgresRepo) ListProducts(ctx context.Context, category entities.ProductCategory) ([]entities.Product, error) {
	q := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"active": true}).
		OrderBy("category", "name")
	if category != "" {
		q = q.Where(sq.Eq{"category": string(category)})
	}
	query, args := q.MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	result := make([]entities.Product, 0, len(rows))
	for _, row := range rows {
		result = append(result, ProductToEntity(row))
	}
	return result, nil
}

func (r *postgresRepo) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}
