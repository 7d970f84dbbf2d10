package cart

import (
	"github.com/google/uuid"

	"github.com/washbay-pos/api/internal/catalog"
	"github.com/washbay-pos/api/internal/enum"
)

// QuantityEntry tracks one product's count and its split into service tiers.
// The normal portion is always Total - DryClean - IronOnly, never stored.
// Invariant: DryClean + IronOnly <= Total.
type QuantityEntry struct {
	ProductID uuid.UUID
	Total     int
	DryClean  int
	IronOnly  int
}

// Normal returns the derived normal-service portion.
func (e QuantityEntry) Normal() int {
	return e.Total - e.DryClean - e.IronOnly
}

// Increment adds one unit of the product. Area-priced products are rejected:
// their "quantity" is a list of individually measured entries, handled by
// AddCarpetEntry.
func (c *Cart) Increment(p catalog.Product) error {
	if p.AreaPriced {
		return ErrAreaPriced
	}
	e, ok := c.quantities[p.ID]
	if !ok {
		e = &QuantityEntry{ProductID: p.ID}
		c.quantities[p.ID] = e
		c.order = append(c.order, p.ID)
	}
	e.Total++
	return nil
}

// Decrement removes one unit, clamped at zero. For area-priced products the
// minus control removes the most recently added carpet entry instead.
// When the reduced total no longer covers the service split, the split is
// shrunk to fit, iron-only first, then dry-clean.
func (c *Cart) Decrement(p catalog.Product) error {
	if p.AreaPriced {
		c.RemoveLastCarpetEntry(p.ID)
		return nil
	}
	e, ok := c.quantities[p.ID]
	if !ok {
		return nil
	}
	e.Total--
	if e.Total <= 0 {
		c.removeQuantityEntry(p.ID)
		return nil
	}

	overflow := e.DryClean + e.IronOnly - e.Total
	if overflow > 0 {
		take := overflow
		if take > e.IronOnly {
			take = e.IronOnly
		}
		e.IronOnly -= take
		overflow -= take
		e.DryClean -= overflow
	}
	return nil
}

// SetServiceSplit sets the dry-clean or iron-only portion of a product's
// quantity directly, clamped to [0, Total - otherSplit]. The remainder is
// implicitly normal.
func (c *Cart) SetServiceSplit(productID uuid.UUID, serviceType string, qty int) error {
	if !enum.IsSplitServiceType(serviceType) {
		return ErrInvalidService
	}
	e, ok := c.quantities[productID]
	if !ok {
		return ErrNoQuantity
	}

	other := e.DryClean
	if serviceType == enum.ServiceTypeDryClean {
		other = e.IronOnly
	}
	if qty < 0 {
		qty = 0
	}
	if max := e.Total - other; qty > max {
		qty = max
	}

	if serviceType == enum.ServiceTypeDryClean {
		e.DryClean = qty
	} else {
		e.IronOnly = qty
	}
	return nil
}

// Quantity returns the ledger entry for a product, zero-valued when absent.
func (c *Cart) Quantity(productID uuid.UUID) QuantityEntry {
	if e, ok := c.quantities[productID]; ok {
		return *e
	}
	return QuantityEntry{ProductID: productID}
}

// QuantityEntries returns the ledger in first-add order.
func (c *Cart) QuantityEntries() []QuantityEntry {
	out := make([]QuantityEntry, 0, len(c.order))
	for _, id := range c.order {
		if e, ok := c.quantities[id]; ok {
			out = append(out, *e)
		}
	}
	return out
}

func (c *Cart) removeQuantityEntry(productID uuid.UUID) {
	delete(c.quantities, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
