package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washbay-pos/api/internal/enum"
)

// OverrideKey addresses one cart line family: every line of the product with
// that service type takes the override. Carpet lines are not overridable;
// their price is area times catalog rate, not a per-unit price.
type OverrideKey struct {
	ProductID   uuid.UUID
	ServiceType string
}

// SetOverride records a manual price that supersedes the catalog price for
// every line keyed by (productID, serviceType).
func (c *Cart) SetOverride(productID uuid.UUID, serviceType string, price decimal.Decimal) error {
	if !enum.IsValidServiceType(serviceType) {
		return ErrInvalidService
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	c.overrides[OverrideKey{ProductID: productID, ServiceType: serviceType}] = price
	return nil
}

// ClearOverride removes a manual price, restoring catalog pricing.
func (c *Cart) ClearOverride(productID uuid.UUID, serviceType string) {
	delete(c.overrides, OverrideKey{ProductID: productID, ServiceType: serviceType})
}

// Override looks up the manual price for a line family.
func (c *Cart) Override(productID uuid.UUID, serviceType string) (decimal.Decimal, bool) {
	p, ok := c.overrides[OverrideKey{ProductID: productID, ServiceType: serviceType}]
	return p, ok
}

// OverrideCount reports how many manual prices are set.
func (c *Cart) OverrideCount() int {
	return len(c.overrides)
}
