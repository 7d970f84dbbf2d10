// Package catalog holds the read-only reference data the order-entry screen
// works against: the product catalog and the client registry. Both are owned
// by the back office; the pricing engine only reads snapshots of them.
package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washbay-pos/api/internal/enum"
)

// Product is a catalog entry. Optional price tiers are nil when the back
// office has not set them; callers fall back to the base price.
type Product struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Price         decimal.Decimal  `json:"price"`
	DryCleanPrice *decimal.Decimal `json:"dry_clean_price"`
	IronOnlyPrice *decimal.Decimal `json:"iron_only_price"`
	SmallPrice    *decimal.Decimal `json:"small_price"`
	MediumPrice   *decimal.Decimal `json:"medium_price"`
	LargePrice    *decimal.Decimal `json:"large_price"`
	SqmPrice      *decimal.Decimal `json:"sqm_price"`
	AreaPriced    bool             `json:"area_priced"`
	Favorite      bool             `json:"favorite"`
}

// PriceFor returns the catalog unit price for the given service tier,
// falling back to the base price when the tier has no price set.
func (p Product) PriceFor(serviceType string) decimal.Decimal {
	switch serviceType {
	case enum.ServiceTypeIronOnly:
		if p.IronOnlyPrice != nil {
			return *p.IronOnlyPrice
		}
	case enum.ServiceTypeDryClean:
		if p.DryCleanPrice != nil {
			return *p.DryCleanPrice
		}
	}
	return p.Price
}

// SizePrice returns the price tier for a sized variant, falling back to the
// base price when the tier is unset.
func (p Product) SizePrice(size string) decimal.Decimal {
	var tier *decimal.Decimal
	switch size {
	case enum.SizeSmall:
		tier = p.SmallPrice
	case enum.SizeMedium:
		tier = p.MediumPrice
	case enum.SizeLarge:
		tier = p.LargePrice
	}
	if tier != nil {
		return *tier
	}
	return p.Price
}

// SqmRate returns the per-square-meter rate for an area-priced product.
// Zero when the product is not area-priced.
func (p Product) SqmRate() decimal.Decimal {
	if p.SqmPrice != nil {
		return *p.SqmPrice
	}
	return decimal.Zero
}

// Client is a registered customer.
type Client struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// Catalog is a product lookup by ID. Satisfied by *refdata.Cache.
type Catalog interface {
	Product(id uuid.UUID) (Product, bool)
}
