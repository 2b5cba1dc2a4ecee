package domain

import (
	"context"
	"time"
)

type ContextKey string

const UserContextKey ContextKey = "user"

// User is the authenticated identity supplied by the identity provider.
// The core trusts it without re-verifying credentials.
type User struct {
	ID        string    `json:"id"` // UUID
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool { return u.Role == "admin" }

// UserSummary is the slice of purchaser data joined into order reads.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UserRepository is the purchaser record store. The order core appends
// to a purchaser's order list on creation and reads summaries for
// response enrichment; everything else about users lives elsewhere.
type UserRepository interface {
	GetSummary(ctx context.Context, id string) (*UserSummary, error)
	AppendOrder(ctx context.Context, userID, orderID string) error
}
