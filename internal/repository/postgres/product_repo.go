package postgres

import (
	"context"
	"errors"

	"storefront-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) domain.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetSummary(ctx context.Context, id string) (*domain.ProductSummary, error) {
	q := queryer(ctx, r.db)

	var (
		productID pgtype.UUID
		name      string
		price     pgtype.Numeric
		image     *string
	)
	err := q.QueryRow(ctx, `SELECT id, name, price, image FROM products WHERE id = $1`, stringToUUID(id)).
		Scan(&productID, &name, &price, &image)
	if err != nil {
		// Orphaned product references are tolerated and filtered out
		// by read-side callers.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	summary := &domain.ProductSummary{
		ID:    uuidToString(productID),
		Name:  name,
		Price: numericToFloat64(price),
	}
	if image != nil {
		summary.Image = *image
	}
	return summary, nil
}
