package domain

import (
	"context"
	"time"
)

// ShippingInfo is captured once at order creation and immutable after.
type ShippingInfo struct {
	AddressLine    string `json:"addressLine"`
	Area           string `json:"area,omitempty"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postalCode"`
	Phone          string `json:"phone"`
	DisplayAddress string `json:"displayAddress"`
}

// Order is one product-line purchase record with its own lifecycle.
type Order struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size,omitempty"`

	Shipping ShippingInfo `json:"shipping"`

	Status      OrderStatus `json:"status"`
	DeliveredAt *time.Time  `json:"deliveredAt,omitempty"`

	// Delivery assignment fields, unset until a partner is assigned.
	// TrackingID is generated once and never regenerated.
	PartnerName       *string    `json:"partnerName,omitempty"`
	PartnerPhone      *string    `json:"partnerPhone,omitempty"`
	TrackingID        *string    `json:"trackingId,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`

	PaymentType       PaymentType   `json:"paymentType"`
	PaymentMethod     *string       `json:"paymentMethod,omitempty"`
	PaymentStatus     PaymentStatus `json:"paymentStatus"`
	PaymentID         *string       `json:"paymentId,omitempty"`
	PaymentAmount     float64       `json:"paymentAmount"`
	PaymentVerified   bool          `json:"paymentVerified"`
	PaymentVerifiedAt *time.Time    `json:"paymentVerifiedAt,omitempty"`

	ReturnStatus      ReturnStatus `json:"returnStatus"`
	ReturnReason      *string      `json:"returnReason,omitempty"`
	ReturnRequestedAt *time.Time   `json:"returnRequestedAt,omitempty"`
	ReturnApprovedAt  *time.Time   `json:"returnApprovedAt,omitempty"`

	// Version guards against concurrent lost updates. Every mutation
	// persists with a version check and bumps it by one.
	Version   int64     `json:"-"`
	CreatedAt time.Time `json:"createdAt"`

	// Read-side enrichment; nil when the referenced record is gone.
	Product *ProductSummary `json:"product,omitempty"`
	User    *UserSummary    `json:"user,omitempty"`
}

type OrderFilter struct {
	Page          int
	Limit         int
	Status        string
	PaymentStatus string
	ReturnStatus  string
	Search        string
}

type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	GetByUserID(ctx context.Context, userID string) ([]Order, error)
	GetAll(ctx context.Context, filter OrderFilter) ([]Order, int64, error)

	// Update persists all mutable fields with an optimistic version
	// check. It fails with *ConflictError when a concurrent writer won.
	Update(ctx context.Context, order *Order) error
}

// TransactionManager runs fn inside a single database transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
