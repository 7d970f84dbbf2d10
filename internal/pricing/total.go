package pricing

import "github.com/shopspring/decimal"

var two = decimal.NewFromInt(2)
var hundred = decimal.NewFromInt(100)

// Totals is the money breakdown shown to the operator and sent upstream.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`        // sum of all lines, before urgency
	ChargedAmount  decimal.Decimal `json:"charged_amount"`  // subtotal after urgent doubling
	DiscountAmount decimal.Decimal `json:"discount_amount"` // computed on ChargedAmount
	Tips           decimal.Decimal `json:"tips"`
	FinalTotal     decimal.Decimal `json:"final_total"`
}

// ComputeTotals applies the pricing rules in their fixed order:
//
//  1. sum line totals into the subtotal
//  2. urgent service doubles the whole subtotal, never individual lines
//  3. the percentage discount is computed on the doubled amount
//  4. tips are a flat addition after the discount
//
// The final total is clamped at zero. Reordering these steps changes the
// charged amount; the order is a contract with the receipt and the reports.
func ComputeTotals(items []OrderItem, urgent bool, discountPercent, tips decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal)
	}

	charged := subtotal
	if urgent {
		charged = charged.Mul(two)
	}

	discount := charged.Mul(discountPercent).Div(hundred)

	final := charged.Sub(discount).Add(tips)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return Totals{
		Subtotal:       subtotal,
		ChargedAmount:  charged,
		DiscountAmount: discount,
		Tips:           tips,
		FinalTotal:     final,
	}
}
