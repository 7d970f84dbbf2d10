package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washbay-pos/api/internal/cart"
	"github.com/washbay-pos/api/internal/catalog"
	"github.com/washbay-pos/api/internal/enum"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// mapCatalog implements catalog.Catalog over a fixed product set.
type mapCatalog map[uuid.UUID]catalog.Product

func (m mapCatalog) Product(id uuid.UUID) (catalog.Product, bool) {
	p, ok := m[id]
	return p, ok
}

func newShirt() catalog.Product {
	return catalog.Product{
		ID:            uuid.New(),
		Name:          "Shirt",
		Price:         dec("10"),
		DryCleanPrice: decPtr("15"),
		IronOnlyPrice: decPtr("8"),
	}
}

func newCarpet() catalog.Product {
	return catalog.Product{
		ID:         uuid.New(),
		Name:       "Carpet",
		SqmPrice:   decPtr("12"),
		AreaPriced: true,
	}
}

func findLine(t *testing.T, items []OrderItem, serviceType string) OrderItem {
	t.Helper()
	for _, it := range items {
		if it.ServiceType == serviceType && it.Kind == KindQuantity {
			return it
		}
	}
	t.Fatalf("no %s line in %+v", serviceType, items)
	return OrderItem{}
}

func TestDeriveFlattensServiceSplit(t *testing.T) {
	shirt := newShirt()
	cat := mapCatalog{shirt.ID: shirt}

	c := cart.New()
	for i := 0; i < 5; i++ {
		c.Increment(shirt)
	}
	c.SetServiceSplit(shirt.ID, enum.ServiceTypeDryClean, 2)
	c.SetServiceSplit(shirt.ID, enum.ServiceTypeIronOnly, 1)

	items := DeriveOrderItems(c, cat)
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3 lines", len(items))
	}

	normal := findLine(t, items, enum.ServiceTypeNormal)
	if normal.Quantity != 2 || !normal.UnitPrice.Equal(dec("10")) {
		t.Errorf("normal line = %+v", normal)
	}
	dc := findLine(t, items, enum.ServiceTypeDryClean)
	if dc.Quantity != 2 || !dc.UnitPrice.Equal(dec("15")) {
		t.Errorf("dry-clean line = %+v", dc)
	}
	io := findLine(t, items, enum.ServiceTypeIronOnly)
	if io.Quantity != 1 || !io.UnitPrice.Equal(dec("8")) {
		t.Errorf("iron-only line = %+v", io)
	}
}

func TestDeriveTierFallbackToBasePrice(t *testing.T) {
	towel := catalog.Product{ID: uuid.New(), Name: "Towel", Price: dec("4")}
	cat := mapCatalog{towel.ID: towel}

	c := cart.New()
	c.Increment(towel)
	c.Increment(towel)
	c.SetServiceSplit(towel.ID, enum.ServiceTypeDryClean, 1)

	items := DeriveOrderItems(c, cat)
	dc := findLine(t, items, enum.ServiceTypeDryClean)
	if !dc.UnitPrice.Equal(dec("4")) {
		t.Errorf("unset dry-clean tier must fall back to base price, got %v", dc.UnitPrice)
	}
}

func TestDeriveAppliesOverride(t *testing.T) {
	shirt := newShirt()
	cat := mapCatalog{shirt.ID: shirt}

	c := cart.New()
	c.Increment(shirt)
	c.Increment(shirt)
	c.SetOverride(shirt.ID, enum.ServiceTypeNormal, dec("7"))

	items := DeriveOrderItems(c, cat)
	normal := findLine(t, items, enum.ServiceTypeNormal)
	if !normal.Overridden {
		t.Error("line not marked overridden")
	}
	if !normal.UnitPrice.Equal(dec("7")) || !normal.LineTotal.Equal(dec("14")) {
		t.Errorf("override not applied: %+v", normal)
	}
}

func TestDeriveCarpetLines(t *testing.T) {
	carpet := newCarpet()
	cat := mapCatalog{carpet.ID: carpet}

	c := cart.New()
	e1, _ := c.AddCarpetEntry(carpet, 5)
	c.AddCarpetEntry(carpet, 2.5)
	c.ToggleCarpetService(e1.ID, enum.ServiceTypeDryClean)

	items := DeriveOrderItems(c, cat)
	if len(items) != 2 {
		t.Fatalf("len = %d, want one line per entry", len(items))
	}
	if items[0].EntryID != e1.ID || items[0].ServiceType != enum.ServiceTypeDryClean {
		t.Errorf("first carpet line = %+v", items[0])
	}
	if !items[0].LineTotal.Equal(dec("60")) {
		t.Errorf("5sqm at 12 = %v, want 60", items[0].LineTotal)
	}
	if !items[1].LineTotal.Equal(dec("30")) {
		t.Errorf("2.5sqm at 12 = %v, want 30", items[1].LineTotal)
	}
}

func TestDeriveSkipsUnknownProduct(t *testing.T) {
	shirt := newShirt()

	c := cart.New()
	c.Increment(shirt)

	items := DeriveOrderItems(c, mapCatalog{})
	if len(items) != 0 {
		t.Errorf("stale product must be skipped, got %+v", items)
	}
}

func TestComputeTotalsOrderOfOperations(t *testing.T) {
	// base 100, urgent -> 200, 10% discount -> -20, tips +15 -> 195.
	items := []OrderItem{{LineTotal: dec("100")}}

	got := ComputeTotals(items, true, dec("10"), dec("15"))
	if !got.ChargedAmount.Equal(dec("200")) {
		t.Errorf("charged = %v, want 200 (doubling before discount)", got.ChargedAmount)
	}
	if !got.DiscountAmount.Equal(dec("20")) {
		t.Errorf("discount = %v, want 20 (computed on the doubled amount)", got.DiscountAmount)
	}
	if got.FinalTotal.StringFixed(2) != "195.00" {
		t.Errorf("final = %v, want 195.00", got.FinalTotal)
	}

	// The wrong order (discount on 100) would give 205; guard against it.
	if got.FinalTotal.Equal(dec("205")) {
		t.Error("discount was computed before urgent doubling")
	}
}

func TestComputeTotalsNoAdjustments(t *testing.T) {
	items := []OrderItem{{LineTotal: dec("35")}, {LineTotal: dec("5")}}

	got := ComputeTotals(items, false, decimal.Zero, decimal.Zero)
	if got.FinalTotal.StringFixed(2) != "40.00" {
		t.Errorf("final = %v, want 40.00", got.FinalTotal)
	}
	if !got.Subtotal.Equal(got.ChargedAmount) {
		t.Error("non-urgent order must not double")
	}
}

func TestComputeTotalsNeverNegative(t *testing.T) {
	items := []OrderItem{{LineTotal: dec("10")}}

	got := ComputeTotals(items, false, dec("100"), decimal.Zero)
	if got.FinalTotal.IsNegative() {
		t.Errorf("final = %v, must not be negative", got.FinalTotal)
	}
}

func TestEndToEndScenario(t *testing.T) {
	// Shirt 10 / dry-clean 15 / iron 8; qty 3 with dry-clean split 1,
	// plus a custom "Button repair" at 5: subtotal 40, no adjustments.
	shirt := newShirt()
	cat := mapCatalog{shirt.ID: shirt}

	c := cart.New()
	for i := 0; i < 3; i++ {
		c.Increment(shirt)
	}
	c.SetServiceSplit(shirt.ID, enum.ServiceTypeDryClean, 1)
	c.AddCustomItem("Button repair", dec("5"), 1)

	items := DeriveOrderItems(c, cat)
	totals := ComputeTotals(items, false, decimal.Zero, decimal.Zero)

	if totals.Subtotal.StringFixed(2) != "40.00" {
		t.Errorf("subtotal = %v, want 40.00", totals.Subtotal)
	}
	if totals.FinalTotal.StringFixed(2) != "40.00" {
		t.Errorf("final = %v, want 40.00", totals.FinalTotal)
	}
}

func TestEncodeItemsGrammar(t *testing.T) {
	shirt := newShirt()
	carpet := newCarpet()
	cat := mapCatalog{shirt.ID: shirt, carpet.ID: carpet}

	c := cart.New()
	c.Increment(shirt)
	c.Increment(shirt)
	c.AddCarpetEntry(carpet, 5)
	c.AddCustomItem("Button repair", dec("5"), 1)

	got := EncodeItems(DeriveOrderItems(c, cat))
	want := "2x Shirt [N], 1x Carpet 5sqm @ 60.00 AED, 1x Button repair @ 5.00 AED"
	if got != want {
		t.Errorf("items string:\n got  %q\n want %q", got, want)
	}
}

func TestEncodeItemsServiceTags(t *testing.T) {
	shirt := newShirt()
	carpet := newCarpet()
	cat := mapCatalog{shirt.ID: shirt, carpet.ID: carpet}

	c := cart.New()
	for i := 0; i < 3; i++ {
		c.Increment(shirt)
	}
	c.SetServiceSplit(shirt.ID, enum.ServiceTypeDryClean, 1)
	c.SetServiceSplit(shirt.ID, enum.ServiceTypeIronOnly, 1)
	e, _ := c.AddCarpetEntry(carpet, 2.5)
	c.ToggleCarpetService(e.ID, enum.ServiceTypeIronOnly)

	got := EncodeItems(DeriveOrderItems(c, cat))
	want := "1x Shirt [N], 1x Shirt [DC], 1x Shirt [IO], 1x Carpet 2.5sqm [IO] @ 30.00 AED"
	if got != want {
		t.Errorf("items string:\n got  %q\n want %q", got, want)
	}
}

func TestEncodeItemsEmpty(t *testing.T) {
	if got := EncodeItems(nil); got != "" {
		t.Errorf("empty cart encodes to %q, want empty string", got)
	}
}
