package sheet

import "strings"

// Canonical field names produced by the column resolver.
const (
	FieldScientificName = "scientificName"
	FieldCommonName     = "commonName"
	FieldSize           = "size"
	FieldBoxNumber      = "boxNumber"
	FieldCode           = "code"
	FieldBagCount       = "bagCount"
	FieldQuantityPerBag = "quantityPerBag"
	FieldTotalQuantity  = "totalQuantity"
	FieldUnitPrice      = "unitPrice"
	FieldCurrency       = "currency"
)

// columnAliases maps each canonical field to the known raw header spellings,
// Hebrew and English, in priority order. Matching is case-insensitive on the
// trimmed header cell.
var columnAliases = map[string][]string{
	FieldScientificName: {"שם מדעי", "שם לטיני", "scientific name", "latin name", "species"},
	FieldCommonName:     {"שם עברי", "שם מסחרי", "common name", "hebrew name", "trade name"},
	FieldSize:           {"גודל", "מידה", "size"},
	FieldBoxNumber:      {"מספר ארגז", "ארגז", "box number", "box no", "box"},
	FieldCode:           {"קוד", "מק\"ט", "code", "sku"},
	FieldBagCount:       {"מספר שקיות", "שקיות", "bags", "bag count", "no of bags"},
	FieldQuantityPerBag: {"כמות בשקית", "דגים בשקית", "qty per bag", "quantity per bag", "per bag"},
	FieldTotalQuantity:  {"כמות כוללת", "סה\"כ כמות", "כמות", "total quantity", "total qty", "quantity", "qty"},
	FieldUnitPrice:      {"מחיר ליחידה", "מחיר", "unit price", "price"},
	FieldCurrency:       {"מטבע", "currency"},
}

// Resolve returns the value of row for the canonical field, trying the field's
// aliases against the header in order. An exact (normalized) header match wins
// over a substring match, so "quantity" never shadows "quantity per bag" when
// both columns are present. Returns "" when no alias matches or the matched
// cell is empty/whitespace.
func Resolve(header, row []string, field string) string {
	aliases, ok := columnAliases[field]
	if !ok {
		return ""
	}
	if idx := findColumn(header, aliases, true); idx >= 0 {
		return cellValue(row, idx)
	}
	if idx := findColumn(header, aliases, false); idx >= 0 {
		return cellValue(row, idx)
	}
	return ""
}

// findColumn returns the index of the first header cell matched by the alias
// list, or -1. With exact=true only normalized equality counts; otherwise a
// substring match is enough, so decorated headers ("שם מדעי (לטינית)") still
// resolve.
func findColumn(header, aliases []string, exact bool) int {
	for _, alias := range aliases {
		want := strings.ToLower(alias)
		for i, h := range header {
			got := strings.ToLower(strings.TrimSpace(h))
			if got == "" {
				continue
			}
			if exact && got == want {
				return i
			}
			if !exact && strings.Contains(got, want) {
				return i
			}
		}
	}
	return -1
}

func cellValue(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
