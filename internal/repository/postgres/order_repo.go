package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type orderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) domain.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, user_id, product_id, quantity, size, shipping, status, delivered_at,
	partner_name, partner_phone, tracking_id, estimated_delivery,
	payment_type, payment_method, payment_status, payment_id, payment_amount,
	payment_verified, payment_verified_at,
	return_status, return_reason, return_requested_at, return_approved_at,
	version, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		id, userID, productID pgtype.UUID
		quantity              int32
		shipping              []byte
		status                string
		deliveredAt           pgtype.Timestamptz
		estimatedDelivery     pgtype.Timestamptz
		paymentType           string
		paymentStatus         string
		paymentAmount         pgtype.Numeric
		paymentVerifiedAt     pgtype.Timestamptz
		returnStatus          string
		returnRequestedAt     pgtype.Timestamptz
		returnApprovedAt      pgtype.Timestamptz
		createdAt             pgtype.Timestamptz
	)

	order := &domain.Order{}
	err := row.Scan(
		&id, &userID, &productID, &quantity, &order.Size, &shipping, &status, &deliveredAt,
		&order.PartnerName, &order.PartnerPhone, &order.TrackingID, &estimatedDelivery,
		&paymentType, &order.PaymentMethod, &paymentStatus, &order.PaymentID, &paymentAmount,
		&order.PaymentVerified, &paymentVerifiedAt,
		&returnStatus, &order.ReturnReason, &returnRequestedAt, &returnApprovedAt,
		&order.Version, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	order.ID = uuidToString(id)
	order.UserID = uuidToString(userID)
	order.ProductID = uuidToString(productID)
	order.Quantity = int(quantity)
	order.Status = domain.OrderStatus(status)
	order.DeliveredAt = tzToTimePtr(deliveredAt)
	order.EstimatedDelivery = tzToTimePtr(estimatedDelivery)
	order.PaymentType = domain.PaymentType(paymentType)
	order.PaymentStatus = domain.PaymentStatus(paymentStatus)
	order.PaymentAmount = numericToFloat64(paymentAmount)
	order.PaymentVerifiedAt = tzToTimePtr(paymentVerifiedAt)
	order.ReturnStatus = domain.ReturnStatus(returnStatus)
	order.ReturnRequestedAt = tzToTimePtr(returnRequestedAt)
	order.ReturnApprovedAt = tzToTimePtr(returnApprovedAt)
	order.CreatedAt = tzToTime(createdAt)

	if len(shipping) > 0 {
		if err := json.Unmarshal(shipping, &order.Shipping); err != nil {
			return nil, fmt.Errorf("decode shipping info: %w", err)
		}
	}

	return order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	shippingBytes, err := json.Marshal(order.Shipping)
	if err != nil {
		return fmt.Errorf("encode shipping info: %w", err)
	}

	q := queryer(ctx, r.db)
	_, err = q.Exec(ctx, `
		INSERT INTO orders (
			id, user_id, product_id, quantity, size, shipping, status, delivered_at,
			partner_name, partner_phone, tracking_id, estimated_delivery,
			payment_type, payment_method, payment_status, payment_id, payment_amount,
			payment_verified, payment_verified_at,
			return_status, return_reason, return_requested_at, return_approved_at,
			version, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15, $16, $17,
			$18, $19,
			$20, $21, $22, $23,
			$24, $25
		)`,
		stringToUUID(order.ID), stringToUUID(order.UserID), stringToUUID(order.ProductID),
		int32(order.Quantity), order.Size, shippingBytes, string(order.Status), timePtrToTz(order.DeliveredAt),
		order.PartnerName, order.PartnerPhone, order.TrackingID, timePtrToTz(order.EstimatedDelivery),
		string(order.PaymentType), order.PaymentMethod, string(order.PaymentStatus), order.PaymentID, float64ToNumeric(order.PaymentAmount),
		order.PaymentVerified, timePtrToTz(order.PaymentVerifiedAt),
		string(order.ReturnStatus), order.ReturnReason, timePtrToTz(order.ReturnRequestedAt), timePtrToTz(order.ReturnApprovedAt),
		order.Version, timeToTz(order.CreatedAt),
	)
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	q := queryer(ctx, r.db)
	row := q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, stringToUUID(id))

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("order", id)
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	q := queryer(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, stringToUUID(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *orderRepository) GetAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var status, paymentStatus, returnStatus, search *string
	if filter.Status != "" {
		status = &filter.Status
	}
	if filter.PaymentStatus != "" {
		paymentStatus = &filter.PaymentStatus
	}
	if filter.ReturnStatus != "" {
		returnStatus = &filter.ReturnStatus
	}
	if filter.Search != "" {
		search = &filter.Search
	}

	const where = `
		WHERE ($1::text IS NULL OR status = $1)
		  AND ($2::text IS NULL OR payment_status = $2)
		  AND ($3::text IS NULL OR return_status = $3)
		  AND ($4::text IS NULL OR id::text ILIKE '%' || $4 || '%' OR tracking_id ILIKE '%' || $4 || '%')`

	q := queryer(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT `+orderColumns+` FROM orders`+where+`
		ORDER BY created_at DESC LIMIT $5 OFFSET $6`,
		status, paymentStatus, returnStatus, search, int32(limit), int32(offset),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = q.QueryRow(ctx, `SELECT COUNT(*) FROM orders`+where,
		status, paymentStatus, returnStatus, search,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// Update writes every mutable field guarded by the version column.
// Zero affected rows on an existing order means a concurrent writer
// already advanced it; the caller gets a ConflictError, never a silent
// overwrite.
func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	q := queryer(ctx, r.db)
	tag, err := q.Exec(ctx, `
		UPDATE orders SET
			status = $2,
			delivered_at = $3,
			partner_name = $4,
			partner_phone = $5,
			tracking_id = $6,
			estimated_delivery = $7,
			payment_status = $8,
			payment_verified = $9,
			payment_verified_at = $10,
			return_status = $11,
			return_reason = $12,
			return_requested_at = $13,
			return_approved_at = $14,
			version = version + 1
		WHERE id = $1 AND version = $15`,
		stringToUUID(order.ID),
		string(order.Status),
		timePtrToTz(order.DeliveredAt),
		order.PartnerName,
		order.PartnerPhone,
		order.TrackingID,
		timePtrToTz(order.EstimatedDelivery),
		string(order.PaymentStatus),
		order.PaymentVerified,
		timePtrToTz(order.PaymentVerifiedAt),
		string(order.ReturnStatus),
		order.ReturnReason,
		timePtrToTz(order.ReturnRequestedAt),
		timePtrToTz(order.ReturnApprovedAt),
		order.Version,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, stringToUUID(order.ID)).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFoundError("order", order.ID)
		}
		return domain.NewConflictError("order", order.ID)
	}

	order.Version++
	return nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}
