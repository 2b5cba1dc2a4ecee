package usecase

import (
	"context"
	"strings"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/pkg/logger"
)

const minReturnReasonLength = 10

// ReturnUsecase is the post-delivery return workflow, a sub-state
// machine gated on a Delivered order. The return window is read fresh
// from the policy store on every eligibility check.
type ReturnUsecase struct {
	orderRepo  domain.OrderRepository
	policyRepo domain.ReturnPolicyRepository
	now        func() time.Time
}

func NewReturnUsecase(orderRepo domain.OrderRepository, policyRepo domain.ReturnPolicyRepository) *ReturnUsecase {
	return &ReturnUsecase{
		orderRepo:  orderRepo,
		policyRepo: policyRepo,
		now:        time.Now,
	}
}

// RequestReturn moves a delivered order's return sub-state from None to
// Requested, provided the requester is the purchaser and the delivery
// falls within the current return window.
func (u *ReturnUsecase) RequestReturn(ctx context.Context, orderID, requesterID, reason string) (*domain.Order, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) < minReturnReasonLength {
		return nil, domain.NewValidationError("reason", "must be at least 10 characters")
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != requesterID {
		return nil, domain.NewAuthorizationError("only the purchaser can request a return")
	}
	if order.Status != domain.OrderStatusDelivered {
		return nil, domain.NewInvalidStateError(string(order.Status), "only delivered orders can be returned")
	}
	if order.ReturnStatus != domain.ReturnStatusNone {
		return nil, domain.NewInvalidStateError(string(order.ReturnStatus), "return already requested or processed")
	}
	if order.DeliveredAt == nil {
		return nil, domain.NewInvalidStateError(string(order.Status), "order has no delivery date")
	}

	policy, err := u.policyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	daysSinceDelivery := int(now.Sub(*order.DeliveredAt) / (24 * time.Hour))
	if daysSinceDelivery > policy.ReturnDays {
		return nil, domain.NewPolicyViolationError(daysSinceDelivery, policy.ReturnDays)
	}

	order.ReturnStatus = domain.ReturnStatusRequested
	order.ReturnReason = &reason
	order.ReturnRequestedAt = &now

	if err := u.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Info().
		Str("order_id", orderID).
		Str("user_id", requesterID).
		Int("days_since_delivery", daysSinceDelivery).
		Msg("Return requested")

	return order, nil
}

// UpdateReturnStatus advances the return sub-state. Approved and
// Rejected require a Requested return; Completed requires Approved.
func (u *ReturnUsecase) UpdateReturnStatus(ctx context.Context, orderID string, newStatus domain.ReturnStatus, actorID string) (*domain.Order, error) {
	switch newStatus {
	case domain.ReturnStatusApproved, domain.ReturnStatusRejected, domain.ReturnStatusCompleted:
	default:
		return nil, domain.NewValidationError("returnStatus", "must be Approved, Rejected or Completed")
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if newStatus == domain.ReturnStatusCompleted {
		if order.ReturnStatus != domain.ReturnStatusApproved {
			return nil, domain.NewInvalidStateError(string(order.ReturnStatus), "only approved returns can be completed")
		}
	} else if order.ReturnStatus != domain.ReturnStatusRequested {
		return nil, domain.NewInvalidStateError(string(order.ReturnStatus), "only requested returns can be approved or rejected")
	}

	order.ReturnStatus = newStatus
	if newStatus == domain.ReturnStatusApproved {
		approvedAt := u.now()
		order.ReturnApprovedAt = &approvedAt
	}

	if err := u.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Info().
		Str("order_id", orderID).
		Str("actor_id", actorID).
		Str("return_status", string(newStatus)).
		Msg("Return status updated")

	return order, nil
}

// --- Return Policy ---

func (u *ReturnUsecase) GetPolicy(ctx context.Context) (*domain.ReturnPolicy, error) {
	return u.policyRepo.Get(ctx)
}

func (u *ReturnUsecase) SetPolicy(ctx context.Context, days int, actorID string) error {
	if days < domain.MinReturnDays || days > domain.MaxReturnDays {
		return domain.NewValidationError("returnDays", "must be between 1 and 365")
	}
	if err := u.policyRepo.Set(ctx, days); err != nil {
		return err
	}
	logger.WithContext(ctx).Info().
		Str("actor_id", actorID).
		Int("return_days", days).
		Msg("Return policy updated")
	return nil
}
