package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/washbay-pos/api/internal/catalog"
	"github.com/washbay-pos/api/internal/enum"
)

// CarpetEntry is one physical area-priced piece. Every add creates an
// independent entry with its own measured area and service type; a product
// may have many entries at once.
type CarpetEntry struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	AreaSqm     float64
	ServiceType string
}

// AddCarpetEntry records a new measured piece for an area-priced product.
// The area is asked for on every add; uniform area is never assumed.
func (c *Cart) AddCarpetEntry(p catalog.Product, areaSqm float64) (CarpetEntry, error) {
	if !p.AreaPriced {
		return CarpetEntry{}, ErrNotAreaPriced
	}
	if areaSqm <= 0 {
		return CarpetEntry{}, ErrInvalidArea
	}
	e := CarpetEntry{
		ID:          uuid.New(),
		ProductID:   p.ID,
		AreaSqm:     areaSqm,
		ServiceType: enum.ServiceTypeNormal,
	}
	c.carpets = append(c.carpets, e)
	return e, nil
}

// RemoveLastCarpetEntry removes the most recently added entry for the
// product. Reports whether an entry was removed.
func (c *Cart) RemoveLastCarpetEntry(productID uuid.UUID) bool {
	for i := len(c.carpets) - 1; i >= 0; i-- {
		if c.carpets[i].ProductID == productID {
			c.carpets = append(c.carpets[:i], c.carpets[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleCarpetService applies a service type to one entry, or reverts the
// entry to normal when it already carries that type. Area-priced pieces have
// no split quantity; each entry is wholly one service type.
func (c *Cart) ToggleCarpetService(entryID uuid.UUID, serviceType string) error {
	if !enum.IsValidServiceType(serviceType) {
		return ErrInvalidService
	}
	for i := range c.carpets {
		if c.carpets[i].ID != entryID {
			continue
		}
		if c.carpets[i].ServiceType == serviceType {
			c.carpets[i].ServiceType = enum.ServiceTypeNormal
		} else {
			c.carpets[i].ServiceType = serviceType
		}
		return nil
	}
	return ErrEntryNotFound
}

// CarpetEntries returns the entries in add order.
func (c *Cart) CarpetEntries() []CarpetEntry {
	out := make([]CarpetEntry, len(c.carpets))
	copy(out, c.carpets)
	return out
}

// CarpetCount returns how many entries the product currently has.
func (c *Cart) CarpetCount(productID uuid.UUID) int {
	n := 0
	for _, e := range c.carpets {
		if e.ProductID == productID {
			n++
		}
	}
	return n
}

// promptDebounce is the window within which a repeated request to open the
// area prompt is treated as a double-click and dropped.
const promptDebounce = 300 * time.Millisecond

// PromptGuard serializes the area-input prompt. The plus control both
// increments and opens the prompt, so a rapid double-click would otherwise
// stack two prompts and produce duplicate entries.
type PromptGuard struct {
	now func() time.Time

	mu       sync.Mutex
	open     bool
	lastOpen time.Time
}

// NewPromptGuard creates a guard. now may be nil, defaulting to time.Now.
func NewPromptGuard(now func() time.Time) *PromptGuard {
	if now == nil {
		now = time.Now
	}
	return &PromptGuard{now: now}
}

// TryOpen attempts to open the prompt. It fails when a prompt is already
// open or one was opened within the debounce window.
func (g *PromptGuard) TryOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := g.now()
	if g.open || (!g.lastOpen.IsZero() && t.Sub(g.lastOpen) < promptDebounce) {
		return false
	}
	g.open = true
	g.lastOpen = t
	return true
}

// Close marks the prompt closed, confirmed or cancelled alike.
func (g *PromptGuard) Close() {
	g.mu.Lock()
	g.open = false
	g.mu.Unlock()
}
