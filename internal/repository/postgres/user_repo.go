package postgres

import (
	"context"
	"errors"
	"strings"

	"storefront-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetSummary(ctx context.Context, id string) (*domain.UserSummary, error) {
	q := queryer(ctx, r.db)

	var (
		userID              pgtype.UUID
		email               string
		firstName, lastName *string
		phone               *string
	)
	err := q.QueryRow(ctx, `SELECT id, email, first_name, last_name, phone FROM users WHERE id = $1`, stringToUUID(id)).
		Scan(&userID, &email, &firstName, &lastName, &phone)
	if err != nil {
		// A purchaser record that has since disappeared is tolerated;
		// the read side filters the nil summary.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	summary := &domain.UserSummary{
		ID:    uuidToString(userID),
		Email: email,
	}
	name := strings.TrimSpace(derefStr(firstName) + " " + derefStr(lastName))
	summary.Name = name
	if phone != nil {
		summary.Phone = *phone
	}
	return summary, nil
}

func (r *userRepository) AppendOrder(ctx context.Context, userID, orderID string) error {
	q := queryer(ctx, r.db)
	_, err := q.Exec(ctx, `
		INSERT INTO purchaser_orders (user_id, order_id, created_at)
		VALUES ($1, $2, now())`,
		stringToUUID(userID), stringToUUID(orderID),
	)
	return err
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
