package cart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CustomItem is a free-form line item: either a manually named and priced
// one-off, or a sized/styled variant whose computed name encodes the chosen
// variant, e.g. "Bed Sheet (Large)".
type CustomItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// AddCustomItem appends a custom line, merging into an existing line when
// the computed name is identical: variant items added twice become one line
// with quantity 2, not two lines.
func (c *Cart) AddCustomItem(name string, unitPrice decimal.Decimal, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return ErrNegativePrice
	}

	for i := range c.customs {
		if c.customs[i].Name == name {
			c.customs[i].Quantity += quantity
			return nil
		}
	}
	c.customs = append(c.customs, CustomItem{
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	})
	return nil
}

// RemoveCustomItem drops the line with the given computed name. Reports
// whether a line was removed.
func (c *Cart) RemoveCustomItem(name string) bool {
	for i := range c.customs {
		if c.customs[i].Name == name {
			c.customs = append(c.customs[:i], c.customs[i+1:]...)
			return true
		}
	}
	return false
}

// CustomItems returns the custom lines in add order.
func (c *Cart) CustomItems() []CustomItem {
	out := make([]CustomItem, len(c.customs))
	copy(out, c.customs)
	return out
}

// VariantName computes the display name for a variant item by suffixing the
// base product name with the chosen labels: VariantName("Bed Sheet",
// "Large") -> "Bed Sheet (Large)". Labels are joined with ", ".
func VariantName(base string, labels ...string) string {
	kept := labels[:0:0]
	for _, l := range labels {
		if l != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return base
	}
	return fmt.Sprintf("%s (%s)", base, strings.Join(kept, ", "))
}
