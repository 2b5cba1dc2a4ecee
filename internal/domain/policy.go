package domain

import (
	"context"
	"time"
)

const (
	MinReturnDays = 1
	MaxReturnDays = 365
)

// ReturnPolicy is the single process-wide return-window configuration.
// It is stored as its own row and read fresh on every eligibility
// check, never frozen at order creation.
type ReturnPolicy struct {
	ReturnDays int       `json:"returnDays"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ReturnPolicyRepository interface {
	Get(ctx context.Context) (*ReturnPolicy, error)

	// Set replaces the policy value under a single-writer discipline.
	Set(ctx context.Context, days int) error

	// Seed inserts the row with the given default if it does not exist.
	Seed(ctx context.Context, days int) error
}
