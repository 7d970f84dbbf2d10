// Package pricing turns cart state into priced order lines and order totals.
// Everything here is a pure function of its inputs: the line view is
// recomputed on demand from the trackers, never cached, so it can never
// observe a partial update.
package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washbay-pos/api/internal/cart"
	"github.com/washbay-pos/api/internal/catalog"
	"github.com/washbay-pos/api/internal/enum"
)

// Line kinds.
const (
	KindQuantity = "QUANTITY"
	KindCarpet   = "CARPET"
	KindCustom   = "CUSTOM"
)

// OrderItem is one materialized cart line. Quantity entries flatten into up
// to three lines (normal, dry-clean, iron-only), carpet entries into one
// line each, custom items into one line each.
type OrderItem struct {
	Kind        string          `json:"kind"`
	ProductID   uuid.UUID       `json:"product_id,omitempty"`
	EntryID     uuid.UUID       `json:"entry_id,omitempty"`
	Name        string          `json:"name"`
	ServiceType string          `json:"service_type"`
	Quantity    int             `json:"quantity"`
	AreaSqm     float64         `json:"area_sqm,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Overridden  bool            `json:"overridden"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// DeriveOrderItems flattens the cart's trackers against the catalog and the
// override store. Products missing from the catalog snapshot are skipped;
// they cannot be priced and the snapshot refresh will reconcile them.
func DeriveOrderItems(c *cart.Cart, cat catalog.Catalog) []OrderItem {
	var items []OrderItem

	for _, e := range c.QuantityEntries() {
		p, ok := cat.Product(e.ProductID)
		if !ok {
			continue
		}
		for _, part := range []struct {
			serviceType string
			qty         int
		}{
			{enum.ServiceTypeNormal, e.Normal()},
			{enum.ServiceTypeDryClean, e.DryClean},
			{enum.ServiceTypeIronOnly, e.IronOnly},
		} {
			if part.qty == 0 {
				continue
			}
			unit, overridden := unitPrice(c, p, part.serviceType)
			items = append(items, OrderItem{
				Kind:        KindQuantity,
				ProductID:   p.ID,
				Name:        p.Name,
				ServiceType: part.serviceType,
				Quantity:    part.qty,
				UnitPrice:   unit,
				Overridden:  overridden,
				LineTotal:   unit.Mul(decimal.NewFromInt(int64(part.qty))),
			})
		}
	}

	for _, e := range c.CarpetEntries() {
		p, ok := cat.Product(e.ProductID)
		if !ok {
			continue
		}
		rate := p.SqmRate()
		items = append(items, OrderItem{
			Kind:        KindCarpet,
			ProductID:   p.ID,
			EntryID:     e.ID,
			Name:        p.Name,
			ServiceType: e.ServiceType,
			Quantity:    1,
			AreaSqm:     e.AreaSqm,
			UnitPrice:   rate,
			LineTotal:   rate.Mul(decimal.NewFromFloat(e.AreaSqm)),
		})
	}

	for _, ci := range c.CustomItems() {
		items = append(items, OrderItem{
			Kind:        KindCustom,
			Name:        ci.Name,
			ServiceType: enum.ServiceTypeNormal,
			Quantity:    ci.Quantity,
			UnitPrice:   ci.UnitPrice,
			LineTotal:   ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity))),
		})
	}

	return items
}

// unitPrice resolves the price for one quantity line: manual override when
// present, else the catalog price for the service tier.
func unitPrice(c *cart.Cart, p catalog.Product, serviceType string) (decimal.Decimal, bool) {
	if o, ok := c.Override(p.ID, serviceType); ok {
		return o, true
	}
	return p.PriceFor(serviceType), false
}
