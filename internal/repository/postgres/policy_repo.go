package postgres

import (
	"context"
	"errors"

	"storefront-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The return policy lives in a single row so that eligibility checks
// always observe the latest committed write, not process-local state.
const returnPolicyRowID = 1

type policyRepository struct {
	db *pgxpool.Pool
}

func NewReturnPolicyRepository(db *pgxpool.Pool) domain.ReturnPolicyRepository {
	return &policyRepository{db: db}
}

func (r *policyRepository) Get(ctx context.Context) (*domain.ReturnPolicy, error) {
	q := queryer(ctx, r.db)

	var (
		days      int32
		updatedAt pgtype.Timestamptz
	)
	err := q.QueryRow(ctx, `SELECT return_days, updated_at FROM return_policy WHERE id = $1`, returnPolicyRowID).
		Scan(&days, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("return policy", "singleton")
		}
		return nil, err
	}

	return &domain.ReturnPolicy{
		ReturnDays: int(days),
		UpdatedAt:  tzToTime(updatedAt),
	}, nil
}

func (r *policyRepository) Set(ctx context.Context, days int) error {
	q := queryer(ctx, r.db)
	_, err := q.Exec(ctx, `
		INSERT INTO return_policy (id, return_days, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET return_days = EXCLUDED.return_days, updated_at = now()`,
		returnPolicyRowID, int32(days),
	)
	return err
}

func (r *policyRepository) Seed(ctx context.Context, days int) error {
	q := queryer(ctx, r.db)
	_, err := q.Exec(ctx, `
		INSERT INTO return_policy (id, return_days, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO NOTHING`,
		returnPolicyRowID, int32(days),
	)
	return err
}
