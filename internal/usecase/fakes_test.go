package usecase

import (
	"context"
	"sync"
	"time"

	"storefront-backend/internal/domain"
)

// In-memory fakes for the repository interfaces. They mirror the
// postgres implementations closely enough for guard and transition
// tests: copy-on-read, copy-on-write, optimistic version bump.

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.NewNotFoundError("order", id)
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetByUserID(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetAll(_ context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, o := range r.orders {
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		if filter.ReturnStatus != "" && string(o.ReturnStatus) != filter.ReturnStatus {
			continue
		}
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[order.ID]
	if !ok {
		return domain.NewNotFoundError("order", order.ID)
	}
	if stored.Version != order.Version {
		return domain.NewConflictError("order", order.ID)
	}
	cp := *order
	cp.Version++
	r.orders[order.ID] = &cp
	order.Version++
	return nil
}

// seed stores an order directly, bypassing Create.
func (r *fakeOrderRepo) seed(order *domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	r.orders[order.ID] = &cp
}

type fakeUserRepo struct {
	summaries map[string]*domain.UserSummary
	appended  [][2]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{summaries: make(map[string]*domain.UserSummary)}
}

func (r *fakeUserRepo) GetSummary(_ context.Context, id string) (*domain.UserSummary, error) {
	return r.summaries[id], nil
}

func (r *fakeUserRepo) AppendOrder(_ context.Context, userID, orderID string) error {
	r.appended = append(r.appended, [2]string{userID, orderID})
	return nil
}

type fakeProductRepo struct {
	summaries map[string]*domain.ProductSummary
	calls     int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{summaries: make(map[string]*domain.ProductSummary)}
}

func (r *fakeProductRepo) GetSummary(_ context.Context, id string) (*domain.ProductSummary, error) {
	r.calls++
	return r.summaries[id], nil
}

type fakePolicyRepo struct {
	days      int
	updatedAt time.Time
}

func (r *fakePolicyRepo) Get(_ context.Context) (*domain.ReturnPolicy, error) {
	if r.days == 0 {
		return nil, domain.NewNotFoundError("return policy", "singleton")
	}
	return &domain.ReturnPolicy{ReturnDays: r.days, UpdatedAt: r.updatedAt}, nil
}

func (r *fakePolicyRepo) Set(_ context.Context, days int) error {
	r.days = days
	r.updatedAt = time.Now()
	return nil
}

func (r *fakePolicyRepo) Seed(_ context.Context, days int) error {
	if r.days == 0 {
		r.days = days
	}
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCache struct {
	mu    sync.Mutex
	items map[string]interface{}
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string]interface{})}
}

func (c *fakeCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	return v, ok
}

func (c *fakeCache) Set(key string, value interface{}, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
}

func (c *fakeCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

func (c *fakeCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]interface{})
}
