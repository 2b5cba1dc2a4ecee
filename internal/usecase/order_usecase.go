package usecase

import (
	"context"
	"strings"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/pkg/cache"
	"storefront-backend/pkg/logger"
)

// OrderUsecase is the order lifecycle engine. Every operation loads the
// current record, checks its guards against the current state and time,
// applies the mutation and persists it with a version check.
type OrderUsecase struct {
	orderRepo   domain.OrderRepository
	userRepo    domain.UserRepository
	productRepo domain.ProductRepository
	txManager   domain.TransactionManager
	cache       cache.CacheService
	productTTL  time.Duration
	now         func() time.Time
}

func NewOrderUsecase(
	orderRepo domain.OrderRepository,
	userRepo domain.UserRepository,
	productRepo domain.ProductRepository,
	txManager domain.TransactionManager,
	memCache cache.CacheService,
	productTTL time.Duration,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		txManager:   txManager,
		cache:       memCache,
		productTTL:  productTTL,
		now:         time.Now,
	}
}

// --- Order Creation ---

type CreateOrderReq struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size,omitempty"`

	AddressLine string `json:"addressLine"`
	Area        string `json:"area,omitempty"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Phone       string `json:"phone"`

	PaymentType   domain.PaymentType `json:"paymentType,omitempty"`
	PaymentMethod *string            `json:"paymentMethod,omitempty"`
	PaymentID     *string            `json:"paymentId,omitempty"`
	PaymentAmount float64            `json:"paymentAmount,omitempty"`
}

func (r *CreateOrderReq) validate() error {
	if strings.TrimSpace(r.ProductID) == "" {
		return domain.NewValidationError("productId", "is required")
	}
	if r.Quantity <= 0 {
		return domain.NewValidationError("quantity", "must be a positive integer")
	}
	if len(strings.TrimSpace(r.AddressLine)) < 5 {
		return domain.NewValidationError("addressLine", "must be at least 5 characters")
	}
	if len(strings.TrimSpace(r.City)) < 2 {
		return domain.NewValidationError("city", "must be at least 2 characters")
	}
	if len(strings.TrimSpace(r.State)) < 2 {
		return domain.NewValidationError("state", "must be at least 2 characters")
	}
	if len(strings.TrimSpace(r.PostalCode)) < 4 {
		return domain.NewValidationError("postalCode", "must be at least 4 characters")
	}
	if len(strings.TrimSpace(r.Phone)) < 6 {
		return domain.NewValidationError("phone", "must be at least 6 characters")
	}
	if r.PaymentType != "" && !r.PaymentType.Valid() {
		return domain.NewValidationError("paymentType", "must be Cash on Delivery or Online")
	}
	return nil
}

// joinAddress composes the display address from the shipping parts,
// skipping empty ones.
func joinAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// CreateOrder validates the request, applies payment defaults and
// persists the order together with the purchaser-list append in one
// transaction. Returns the new order ID.
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID string, req CreateOrderReq) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}

	shipping := domain.ShippingInfo{
		AddressLine: strings.TrimSpace(req.AddressLine),
		Area:        strings.TrimSpace(req.Area),
		City:        strings.TrimSpace(req.City),
		State:       strings.TrimSpace(req.State),
		PostalCode:  strings.TrimSpace(req.PostalCode),
		Phone:       strings.TrimSpace(req.Phone),
	}
	shipping.DisplayAddress = joinAddress(shipping.AddressLine, shipping.Area, shipping.City, shipping.State, shipping.PostalCode)

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = domain.PaymentTypeCOD
	}
	paymentStatus := domain.PaymentStatusPending
	if paymentType == domain.PaymentTypeOnline {
		paymentStatus = domain.PaymentStatusPaid
	}

	order := &domain.Order{
		ID:            newOrderID(),
		UserID:        userID,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		Size:          req.Size,
		Shipping:      shipping,
		Status:        domain.OrderStatusPending,
		PaymentType:   paymentType,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: paymentStatus,
		PaymentID:     req.PaymentID,
		PaymentAmount: req.PaymentAmount,
		ReturnStatus:  domain.ReturnStatusNone,
		CreatedAt:     u.now(),
	}

	err := u.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := u.orderRepo.Create(txCtx, order); err != nil {
			return err
		}
		return u.userRepo.AppendOrder(txCtx, userID, order.ID)
	})
	if err != nil {
		return "", err
	}

	logger.WithContext(ctx).Info().
		Str("order_id", order.ID).
		Str("user_id", userID).
		Str("payment_type", string(paymentType)).
		Msg("Order created")

	return order.ID, nil
}

// --- Status Transitions ---

// UpdateStatus sets the order status to newStatus. The admin setter is
// deliberately unguarded against skipping states; only enum validity is
// enforced. DeliveredAt is stamped here and nowhere else, exactly once.
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID string, newStatus domain.OrderStatus, actorID string) (*domain.Order, error) {
	if !newStatus.Valid() {
		return nil, domain.NewValidationError("status", "unknown order status")
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if newStatus == domain.OrderStatusDelivered && order.Status != domain.OrderStatusDelivered {
		deliveredAt := u.now()
		order.DeliveredAt = &deliveredAt
	}
	oldStatus := order.Status
	order.Status = newStatus

	if err := u.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Info().
		Str("order_id", orderID).
		Str("actor_id", actorID).
		Str("from", string(oldStatus)).
		Str("to", string(newStatus)).
		Msg("Order status updated")

	return order, nil
}

// --- Delivery Assignment ---

type AssignDeliveryReq struct {
	PartnerName       string `json:"partnerName"`
	PartnerPhone      string `json:"partnerPhone"`
	EstimatedDelivery string `json:"estimatedDelivery,omitempty"`
}

const defaultEstimatedDeliveryDays = 3

// AssignDelivery records the delivery partner on an Accepted or
// Assigned order. The tracking ID is generated once and kept on
// repeated calls. An order that was exactly Accepted auto-advances to
// Assigned; this is the only implicit status advance in the engine.
func (u *OrderUsecase) AssignDelivery(ctx context.Context, orderID string, req AssignDeliveryReq) (*domain.Order, error) {
	partnerName := strings.TrimSpace(req.PartnerName)
	partnerPhone := strings.TrimSpace(req.PartnerPhone)
	if len(partnerName) < 2 {
		return nil, domain.NewValidationError("partnerName", "must be at least 2 characters")
	}
	if len(partnerPhone) < 6 {
		return nil, domain.NewValidationError("partnerPhone", "must be at least 6 characters")
	}

	var estimated *time.Time
	if strings.TrimSpace(req.EstimatedDelivery) != "" {
		parsed, err := parseDeliveryDate(req.EstimatedDelivery)
		if err != nil {
			return nil, domain.NewValidationError("estimatedDelivery", "must be a valid date")
		}
		if parsed.Before(startOfDay(u.now())) {
			return nil, domain.NewValidationError("estimatedDelivery", "must not be in the past")
		}
		estimated = &parsed
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.OrderStatusAccepted && order.Status != domain.OrderStatusAssigned {
		return nil, domain.NewInvalidStateError(string(order.Status), "delivery can only be assigned to accepted orders")
	}

	order.PartnerName = &partnerName
	order.PartnerPhone = &partnerPhone

	if order.TrackingID == nil {
		trackingID := newTrackingID(u.now())
		order.TrackingID = &trackingID
	}
	if order.EstimatedDelivery == nil {
		if estimated != nil {
			order.EstimatedDelivery = estimated
		} else {
			def := u.now().AddDate(0, 0, defaultEstimatedDeliveryDays)
			order.EstimatedDelivery = &def
		}
	}

	if order.Status == domain.OrderStatusAccepted {
		order.Status = domain.OrderStatusAssigned
	}

	if err := u.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Info().
		Str("order_id", orderID).
		Str("partner", partnerName).
		Str("tracking_id", *order.TrackingID).
		Msg("Delivery assigned")

	u.enrich(ctx, order, true)
	return order, nil
}

// parseDeliveryDate accepts RFC 3339 timestamps or plain dates.
func parseDeliveryDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// --- Payment Verification ---

// VerifyPayment records externally-asserted payment state. It is
// orthogonal to delivery progress: no guard on order status.
func (u *OrderUsecase) VerifyPayment(ctx context.Context, orderID string, status domain.PaymentStatus, actorID string) (*domain.Order, error) {
	if status != domain.PaymentStatusPaid && status != domain.PaymentStatusFailed {
		return nil, domain.NewValidationError("paymentStatus", "must be Paid or Failed")
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	verifiedAt := u.now()
	order.PaymentStatus = status
	order.PaymentVerified = true
	order.PaymentVerifiedAt = &verifiedAt

	if err := u.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Info().
		Str("order_id", orderID).
		Str("actor_id", actorID).
		Str("payment_status", string(status)).
		Msg("Payment verified")

	return order, nil
}

// --- Queries ---

func (u *OrderUsecase) GetMyOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := u.orderRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		u.enrich(ctx, &orders[i], false)
	}
	return orders, nil
}

func (u *OrderUsecase) GetAllOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	orders, total, err := u.orderRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	for i := range orders {
		u.enrich(ctx, &orders[i], true)
	}
	return orders, total, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	u.enrich(ctx, order, true)
	return order, nil
}

// enrich joins product and purchaser summaries onto an order. A gone
// product or purchaser leaves the field nil rather than failing the read.
func (u *OrderUsecase) enrich(ctx context.Context, order *domain.Order, withUser bool) {
	order.Product = u.productSummary(ctx, order.ProductID)
	if withUser {
		if summary, err := u.userRepo.GetSummary(ctx, order.UserID); err == nil {
			order.User = summary
		}
	}
}

func (u *OrderUsecase) productSummary(ctx context.Context, productID string) *domain.ProductSummary {
	key := "product_summary:" + productID
	if v, ok := u.cache.Get(key); ok {
		if p, ok := v.(*domain.ProductSummary); ok {
			return p
		}
	}
	p, err := u.productRepo.GetSummary(ctx, productID)
	if err != nil || p == nil {
		return nil
	}
	u.cache.Set(key, p, u.productTTL)
	return p
}
