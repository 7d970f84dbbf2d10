// Package cart holds the mutable state of one order-entry screen: the
// per-product quantity ledger with its service split, the per-entry tracker
// for area-priced goods, free-form custom items, and manual price overrides.
//
// A Cart is not safe for concurrent use; the session store serializes access
// per session, matching the one-operator-per-screen usage.
package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Errors returned by cart mutations.
var (
	ErrAreaPriced      = errors.New("area-priced product is tracked per entry, not by quantity")
	ErrNotAreaPriced   = errors.New("product is not area-priced")
	ErrInvalidArea     = errors.New("area must be > 0")
	ErrInvalidService  = errors.New("invalid service type")
	ErrNoQuantity      = errors.New("product has no quantity in the cart")
	ErrEntryNotFound   = errors.New("carpet entry not found")
	ErrEmptyName       = errors.New("item name is required")
	ErrInvalidQuantity = errors.New("quantity must be > 0")
	ErrNegativePrice   = errors.New("price must not be negative")
)

// WalkIn is the identity typed for a customer with no registry record.
type WalkIn struct {
	Name    string
	Phone   string
	Address string
}

// FilledFields counts how many of the walk-in identity fields are populated.
func (w WalkIn) FilledFields() int {
	n := 0
	if w.Name != "" {
		n++
	}
	if w.Phone != "" {
		n++
	}
	if w.Address != "" {
		n++
	}
	return n
}

// Cart is the full order-entry state for one open order.
type Cart struct {
	quantities map[uuid.UUID]*QuantityEntry
	order      []uuid.UUID // product ids in first-add order, for stable line output
	carpets    []CarpetEntry
	customs    []CustomItem
	overrides  map[OverrideKey]decimal.Decimal

	// Order attributes set by the operator.
	Urgent             bool
	DiscountPercent    decimal.Decimal
	Tips               decimal.Decimal
	Notes              string
	DeliveryType       string
	ExpectedDeliveryAt *time.Time

	// Customer selection: either an existing client or a walk-in identity.
	ClientID uuid.UUID
	WalkIn   WalkIn
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{
		quantities: make(map[uuid.UUID]*QuantityEntry),
		overrides:  make(map[OverrideKey]decimal.Decimal),
	}
}

// HasItems reports whether any tracker holds a line: quantity entries,
// carpet entries, or custom items.
func (c *Cart) HasItems() bool {
	return len(c.quantities) > 0 || len(c.carpets) > 0 || len(c.customs) > 0
}

// Reset returns the cart to its initial empty state. Called only after a
// confirmed successful submission; every failure path leaves the cart alone.
func (c *Cart) Reset() {
	c.quantities = make(map[uuid.UUID]*QuantityEntry)
	c.order = nil
	c.carpets = nil
	c.customs = nil
	c.overrides = make(map[OverrideKey]decimal.Decimal)

	c.Urgent = false
	c.DiscountPercent = decimal.Zero
	c.Tips = decimal.Zero
	c.Notes = ""
	c.DeliveryType = ""
	c.ExpectedDeliveryAt = nil

	c.ClientID = uuid.Nil
	c.WalkIn = WalkIn{}
}

// SelectClient attaches an existing client to the order and clears any
// walk-in identity.
func (c *Cart) SelectClient(id uuid.UUID) {
	c.ClientID = id
	c.WalkIn = WalkIn{}
}

// SetWalkIn records a walk-in identity and clears any selected client.
func (c *Cart) SetWalkIn(w WalkIn) {
	c.ClientID = uuid.Nil
	c.WalkIn = w
}
