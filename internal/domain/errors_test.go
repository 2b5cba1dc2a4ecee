package domain_test

import (
	"errors"
	"testing"

	"storefront-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", domain.NewValidationError("quantity", "must be positive"), domain.ErrValidation},
		{"not found", domain.NewNotFoundError("order", "abc"), domain.ErrNotFound},
		{"authorization", domain.NewAuthorizationError("not the purchaser"), domain.ErrUnauthorized},
		{"invalid state", domain.NewInvalidStateError("Pending", "cannot assign delivery"), domain.ErrInvalidState},
		{"policy violation", domain.NewPolicyViolationError(9, 7), domain.ErrPolicyViolation},
		{"conflict", domain.NewConflictError("order", "abc"), domain.ErrConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.sentinel)

			// each class unwraps only to its own sentinel
			for _, other := range cases {
				if other.sentinel != tc.sentinel {
					assert.NotErrorIs(t, tc.err, other.sentinel)
				}
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Run("validation names the field", func(t *testing.T) {
		err := domain.NewValidationError("returnDays", "must be between 1 and 365")
		assert.Equal(t, "invalid returnDays: must be between 1 and 365", err.Error())
	})

	t.Run("invalid state names the current state", func(t *testing.T) {
		err := domain.NewInvalidStateError("Rejected", "delivery can only be assigned to accepted orders")
		assert.Contains(t, err.Error(), "Rejected")
	})

	t.Run("policy violation carries both day counts", func(t *testing.T) {
		var pErr *domain.PolicyViolationError
		err := domain.NewPolicyViolationError(9, 7)
		require.ErrorAs(t, err, &pErr)
		assert.Equal(t, 9, pErr.DaysSinceDelivery)
		assert.Equal(t, 7, pErr.AllowedDays)
		assert.Contains(t, err.Error(), "9 days since delivery")
	})
}

func TestWrappedClassification(t *testing.T) {
	// wrapping through fmt or layers must not lose the class
	err := domain.NewConflictError("order", "abc")
	wrapped := errors.Join(errors.New("update failed"), err)

	assert.ErrorIs(t, wrapped, domain.ErrConflict)
}
