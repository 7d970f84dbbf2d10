// Package refdata keeps an in-process snapshot of the back office's
// reference data. The order-entry screen works against the snapshot; it is
// refreshed on a coarse interval and on demand, and the pricing engine only
// ever reads it.
package refdata

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/washbay-pos/api/internal/catalog"
)

// Source fetches the authoritative reference data.
// Satisfied by *upstream.Client.
type Source interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	ListClients(ctx context.Context) ([]catalog.Client, error)
}

// Cache is a read-mostly snapshot of products and clients.
type Cache struct {
	source Source
	log    *zap.Logger

	mu          sync.RWMutex
	products    []catalog.Product
	byID        map[uuid.UUID]catalog.Product
	clients     []catalog.Client
	refreshedAt time.Time
}

// New creates an empty cache. log may be nil.
func New(source Source, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		source: source,
		log:    log,
		byID:   make(map[uuid.UUID]catalog.Product),
	}
}

// Refresh pulls fresh snapshots from the source. A failed pull keeps the
// previous snapshot; the screen keeps working on slightly stale data.
func (c *Cache) Refresh(ctx context.Context) error {
	products, err := c.source.ListProducts(ctx)
	if err != nil {
		c.log.Warn("product refresh failed, keeping previous snapshot", zap.Error(err))
		return err
	}
	clients, err := c.source.ListClients(ctx)
	if err != nil {
		c.log.Warn("client refresh failed, keeping previous snapshot", zap.Error(err))
		return err
	}

	byID := make(map[uuid.UUID]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	c.mu.Lock()
	c.products = products
	c.byID = byID
	c.clients = clients
	c.refreshedAt = time.Now()
	c.mu.Unlock()

	c.log.Info("reference data refreshed",
		zap.Int("products", len(products)), zap.Int("clients", len(clients)))
	return nil
}

// StartRefresher refreshes the cache on the given cron spec (for example
// "@every 5m") until the returned stop function is called.
func (c *Cache) StartRefresher(spec string) (stop func(), err error) {
	cr := cron.New()
	_, err = cr.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = c.Refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	cr.Start()
	return func() { cr.Stop() }, nil
}

// Product looks up one product in the current snapshot.
func (c *Cache) Product(id uuid.UUID) (catalog.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	return p, ok
}

// Products returns the current product snapshot.
func (c *Cache) Products() []catalog.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]catalog.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Clients returns the current client snapshot.
func (c *Cache) Clients() []catalog.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]catalog.Client, len(c.clients))
	copy(out, c.clients)
	return out
}

// RefreshedAt reports when the snapshot was last replaced, zero when never.
func (c *Cache) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshedAt
}
