package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/washbay-pos/api/internal/enum"
)

// EncodeItems renders the flattened human-readable item list stored on the
// order. Downstream stages (tagging, packing, delivery, incident lookup)
// re-parse this string positionally, so the format is a compatibility
// contract and must not drift:
//
//	items   := line *(", " line)
//	line    := qtyLine | carpetLine | customLine
//	qtyLine := QTY "x " NAME " [" tag "]"              e.g. "2x Shirt [N]"
//	carpetLine := QTY "x " NAME " " AREA "sqm"
//	              [" [" tag "]"] " @ " AMOUNT " AED"   e.g. "1x Carpet 5sqm @ 60.00 AED"
//	customLine := QTY "x " NAME " @ " UNIT " AED"      e.g. "1x Button repair @ 5.00 AED"
//	tag     := "N" | "DC" | "IO"
//
// Carpet lines omit the "[N]" tag (the example format predates service
// tags on carpets); non-normal carpet entries carry theirs before the "@".
// AREA prints with no trailing zeros; AMOUNT and UNIT with two decimals.
func EncodeItems(items []OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, encodeLine(it))
	}
	return strings.Join(parts, ", ")
}

func encodeLine(it OrderItem) string {
	switch it.Kind {
	case KindCarpet:
		area := strconv.FormatFloat(it.AreaSqm, 'f', -1, 64)
		if it.ServiceType != enum.ServiceTypeNormal {
			return fmt.Sprintf("%dx %s %ssqm [%s] @ %s AED",
				it.Quantity, it.Name, area, serviceTag(it.ServiceType), it.LineTotal.StringFixed(2))
		}
		return fmt.Sprintf("%dx %s %ssqm @ %s AED",
			it.Quantity, it.Name, area, it.LineTotal.StringFixed(2))
	case KindCustom:
		return fmt.Sprintf("%dx %s @ %s AED",
			it.Quantity, it.Name, it.UnitPrice.StringFixed(2))
	default:
		return fmt.Sprintf("%dx %s [%s]", it.Quantity, it.Name, serviceTag(it.ServiceType))
	}
}

func serviceTag(serviceType string) string {
	switch serviceType {
	case enum.ServiceTypeDryClean:
		return "DC"
	case enum.ServiceTypeIronOnly:
		return "IO"
	default:
		return "N"
	}
}
