package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/syncx"
)

// Inventory keeps a time-boxed snapshot of the full catalog so intra-turn
// scans (recommendations, referential add, stock answers) don't hit the
// store repeatedly. Concurrent refreshes collapse into one query.
type Inventory struct {
	catalog Catalog
	ttl     time.Duration
	sf      syncx.SingleFlight

	mu        sync.RWMutex
	products  []Product
	fetchedAt time.Time
}

func NewInventory(catalog Catalog, ttl time.Duration) *Inventory {
	return &Inventory{
		catalog: catalog,
		ttl:     ttl,
		sf:      syncx.NewSingleFlight(),
	}
}

// Snapshot returns the cached product list, refreshing it when the TTL has
// lapsed. A failed refresh serves the stale snapshot rather than erroring
// out of the conversation turn.
func (v *Inventory) Snapshot(ctx context.Context) []Product {
	v.mu.RLock()
	fresh := time.Since(v.fetchedAt) < v.ttl && v.products != nil
	cached := v.products
	v.mu.RUnlock()
	if fresh {
		return cached
	}

	val, err := v.sf.Do("inventory", func() (any, error) {
		products, err := v.catalog.List(ctx, Filter{}, Sort{Field: "created_at", Order: "desc"})
		if err != nil {
			return nil, err
		}
		v.mu.Lock()
		v.products = products
		v.fetchedAt = time.Now()
		v.mu.Unlock()
		return products, nil
	})
	if err != nil {
		logx.WithContext(ctx).Errorw("inventory refresh failed, serving stale snapshot",
			logx.Field("err", err))
		return cached
	}
	return val.([]Product)
}

// Invalidate forces the next Snapshot to reload from the store.
func (v *Inventory) Invalidate() {
	v.mu.Lock()
	v.fetchedAt = time.Time{}
	v.mu.Unlock()
}
