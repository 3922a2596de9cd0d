package b2b

import "strings"

// Candidate column names per logical field, in priority order. Each list is
// the union of the spellings seen across vendor files and the canonical
// schema itself, so canonical data re-imported through the engine resolves
// without special cases.
var (
	manufacturerFields = []string{"~~manufacturer", "manufacturer", "vendor name", "vendor", "dealer", "supplier"}
	styleFields        = []string{"description", "style name", "style", "pattern"}
	colorFields        = []string{"color name", "color", "colour"}
	skuFields          = []string{"sku", "ikey"}
	priceFields        = []string{"price", "cut cost", "base price"}
	unitFields         = []string{"pricing unit", "pc", "unit", "uom", "bu"}
	typeFields         = []string{"product type", "type"}
	groupFields        = []string{"product group", "group", "category"}
	materialFields     = []string{"material type", "material", "surface"}
)

// normalizeKey canonicalizes a column name or synonym-table key for
// comparison: trimmed, lower-cased, underscores and hyphens as spaces.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return s
}

// Resolve returns the value of the first record column whose normalized name
// matches a candidate. Candidates are tried in the given priority order;
// within a candidate, columns are tried in record order. Columns holding an
// empty value are skipped, so a later spelling with data beats an earlier
// spelling without. Returns false when nothing matches.
func (r RawRecord) Resolve(candidates ...string) (string, bool) {
	for _, candidate := range candidates {
		want := normalizeKey(candidate)
		for i, col := range r.cols {
			if r.vals[i] == "" {
				continue
			}
			if normalizeKey(col) == want {
				return r.vals[i], true
			}
		}
	}
	return "", false
}
