package usecase

import (
	"context"
	"testing"
	"time"

	"storefront-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type returnTestEnv struct {
	uc        *ReturnUsecase
	orderRepo *fakeOrderRepo
	policy    *fakePolicyRepo
	now       time.Time
}

func newReturnTestEnv(t *testing.T, returnDays int) *returnTestEnv {
	t.Helper()
	env := &returnTestEnv{
		orderRepo: newFakeOrderRepo(),
		policy:    &fakePolicyRepo{days: returnDays},
		now:       time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
	env.uc = NewReturnUsecase(env.orderRepo, env.policy)
	env.uc.now = func() time.Time { return env.now }
	return env
}

// seedDelivered stores a delivered order whose delivery happened the
// given duration before env.now.
func (env *returnTestEnv) seedDelivered(deliveredAgo time.Duration) {
	deliveredAt := env.now.Add(-deliveredAgo)
	env.orderRepo.seed(&domain.Order{
		ID:           "order-1",
		UserID:       "user-1",
		ProductID:    "prod-1",
		Status:       domain.OrderStatusDelivered,
		DeliveredAt:  &deliveredAt,
		ReturnStatus: domain.ReturnStatusNone,
	})
}

const goodReason = "the jacket arrived with a torn sleeve"

func TestRequestReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("moves return state to requested within the window", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		env.seedDelivered(3 * 24 * time.Hour)

		order, err := env.uc.RequestReturn(ctx, "order-1", "user-1", goodReason)

		require.NoError(t, err)
		assert.Equal(t, domain.ReturnStatusRequested, order.ReturnStatus)
		require.NotNil(t, order.ReturnReason)
		assert.Equal(t, goodReason, *order.ReturnReason)
		require.NotNil(t, order.ReturnRequestedAt)
		assert.Equal(t, env.now, *order.ReturnRequestedAt)
	})

	t.Run("order status stays delivered", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		env.seedDelivered(24 * time.Hour)

		order, err := env.uc.RequestReturn(ctx, "order-1", "user-1", goodReason)

		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusDelivered, order.Status)
	})

	t.Run("rejects a short reason", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		env.seedDelivered(24 * time.Hour)

		_, err := env.uc.RequestReturn(ctx, "order-1", "user-1", "too short")

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "reason", vErr.Field)
	})

	t.Run("only the purchaser may request", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		env.seedDelivered(24 * time.Hour)

		_, err := env.uc.RequestReturn(ctx, "order-1", "intruder", goodReason)

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("only delivered orders can be returned", func(t *testing.T) {
		for _, status := range []domain.OrderStatus{
			domain.OrderStatusPending,
			domain.OrderStatusAccepted,
			domain.OrderStatusAssigned,
			domain.OrderStatusRejected,
		} {
			t.Run(string(status), func(t *testing.T) {
				env := newReturnTestEnv(t, 7)
				env.orderRepo.seed(&domain.Order{
					ID:           "order-1",
					UserID:       "user-1",
					Status:       status,
					ReturnStatus: domain.ReturnStatusNone,
				})

				_, err := env.uc.RequestReturn(ctx, "order-1", "user-1", goodReason)

				assert.ErrorIs(t, err, domain.ErrInvalidState)
			})
		}
	})

	t.Run("a second request is rejected", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		env.seedDelivered(24 * time.Hour)

		_, err := env.uc.RequestReturn(ctx, "order-1", "user-1", goodReason)
		require.NoError(t, err)

		_, err = env.uc.RequestReturn(ctx, "order-1", "user-1", goodReason)

		var stateErr *domain.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, string(domain.ReturnStatusRequested), stateErr.Current)
	})

	t.Run("delivery exactly at the window edge is allowed", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		// 7 full days plus a few hours still floors to 7 days
		env.seedDelivered(7*24*time.Hour + 5*time.Hour)

		_, err := env.uc.RequestReturn(ctx, "order-1", "user-1", goodReason)

		require.NoError(t, err)
	})

	t.Run("one day past the window violates policy", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		env.seedDelivered(8 * 24 * time.Hour)

		_, err := env.uc.RequestReturn(ctx, "order-1", "user-1", goodReason)

		var pErr *domain.PolicyViolationError
		require.ErrorAs(t, err, &pErr)
		assert.Equal(t, 8, pErr.DaysSinceDelivery)
		assert.Equal(t, 7, pErr.AllowedDays)
		assert.ErrorIs(t, err, domain.ErrPolicyViolation)
	})

	t.Run("a widened policy applies to already-delivered orders", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		env.seedDelivered(10 * 24 * time.Hour)

		_, err := env.uc.RequestReturn(ctx, "order-1", "user-1", goodReason)
		require.ErrorIs(t, err, domain.ErrPolicyViolation)

		require.NoError(t, env.uc.SetPolicy(ctx, 30, "admin-1"))

		_, err = env.uc.RequestReturn(ctx, "order-1", "user-1", goodReason)
		require.NoError(t, err)
	})

	t.Run("unknown order yields not found", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)

		_, err := env.uc.RequestReturn(ctx, "missing", "user-1", goodReason)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUpdateReturnStatus(t *testing.T) {
	ctx := context.Background()

	seedWithReturn := func(env *returnTestEnv, rs domain.ReturnStatus) {
		deliveredAt := env.now.Add(-48 * time.Hour)
		env.orderRepo.seed(&domain.Order{
			ID:           "order-1",
			UserID:       "user-1",
			Status:       domain.OrderStatusDelivered,
			DeliveredAt:  &deliveredAt,
			ReturnStatus: rs,
		})
	}

	t.Run("approves a requested return and stamps approval time", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		seedWithReturn(env, domain.ReturnStatusRequested)

		order, err := env.uc.UpdateReturnStatus(ctx, "order-1", domain.ReturnStatusApproved, "admin-1")

		require.NoError(t, err)
		assert.Equal(t, domain.ReturnStatusApproved, order.ReturnStatus)
		require.NotNil(t, order.ReturnApprovedAt)
		assert.Equal(t, env.now, *order.ReturnApprovedAt)
	})

	t.Run("rejects a requested return without approval stamp", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		seedWithReturn(env, domain.ReturnStatusRequested)

		order, err := env.uc.UpdateReturnStatus(ctx, "order-1", domain.ReturnStatusRejected, "admin-1")

		require.NoError(t, err)
		assert.Equal(t, domain.ReturnStatusRejected, order.ReturnStatus)
		assert.Nil(t, order.ReturnApprovedAt)
	})

	t.Run("completes an approved return", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		seedWithReturn(env, domain.ReturnStatusApproved)

		order, err := env.uc.UpdateReturnStatus(ctx, "order-1", domain.ReturnStatusCompleted, "admin-1")

		require.NoError(t, err)
		assert.Equal(t, domain.ReturnStatusCompleted, order.ReturnStatus)
	})

	t.Run("cannot complete a merely requested return", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		seedWithReturn(env, domain.ReturnStatusRequested)

		_, err := env.uc.UpdateReturnStatus(ctx, "order-1", domain.ReturnStatusCompleted, "admin-1")

		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("cannot approve when nothing was requested", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		seedWithReturn(env, domain.ReturnStatusNone)

		_, err := env.uc.UpdateReturnStatus(ctx, "order-1", domain.ReturnStatusApproved, "admin-1")

		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("cannot re-approve or reject a settled return", func(t *testing.T) {
		for _, settled := range []domain.ReturnStatus{domain.ReturnStatusRejected, domain.ReturnStatusCompleted} {
			t.Run(string(settled), func(t *testing.T) {
				env := newReturnTestEnv(t, 7)
				seedWithReturn(env, settled)

				_, err := env.uc.UpdateReturnStatus(ctx, "order-1", domain.ReturnStatusApproved, "admin-1")

				assert.ErrorIs(t, err, domain.ErrInvalidState)
			})
		}
	})

	t.Run("none and requested are not settable targets", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)
		seedWithReturn(env, domain.ReturnStatusRequested)

		for _, target := range []domain.ReturnStatus{domain.ReturnStatusNone, domain.ReturnStatusRequested, "Escalated"} {
			_, err := env.uc.UpdateReturnStatus(ctx, "order-1", target, "admin-1")
			assert.ErrorIs(t, err, domain.ErrValidation)
		}
	})
}

func TestReturnPolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get round-trips", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)

		require.NoError(t, env.uc.SetPolicy(ctx, 14, "admin-1"))

		policy, err := env.uc.GetPolicy(ctx)
		require.NoError(t, err)
		assert.Equal(t, 14, policy.ReturnDays)
	})

	t.Run("accepts the bounds", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)

		assert.NoError(t, env.uc.SetPolicy(ctx, domain.MinReturnDays, "admin-1"))
		assert.NoError(t, env.uc.SetPolicy(ctx, domain.MaxReturnDays, "admin-1"))
	})

	t.Run("rejects values outside the bounds", func(t *testing.T) {
		env := newReturnTestEnv(t, 7)

		for _, days := range []int{0, -1, 366, 1000} {
			err := env.uc.SetPolicy(ctx, days, "admin-1")
			assert.ErrorIs(t, err, domain.ErrValidation)
		}
	})
}
