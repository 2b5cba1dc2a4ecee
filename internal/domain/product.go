package domain

import "context"

// ProductSummary is the catalog slice joined into order reads.
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

// ProductRepository resolves catalog references for enrichment only.
// GetSummary returns (nil, nil) for an unknown ID: an orphaned product
// reference on an order is tolerated and filtered by read-side callers.
type ProductRepository interface {
	GetSummary(ctx context.Context, id string) (*ProductSummary, error)
}
