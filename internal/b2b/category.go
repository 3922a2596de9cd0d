package b2b

import "unicode/utf8"

// maxScanCellLen bounds the last-resort cell scan; longer values are
// descriptions or comments, not category names.
const maxScanCellLen = 40

// ResolveProductType infers the canonical product-type code for a record
// from multiple weak signals, strongest first:
//
//  1. "product group" and "material type" concatenated, in both orders
//  2. the bare product group
//  3. the bare material type
//  4. an explicit product type column
//  5. every other cell shorter than maxScanCellLen runes, in record order
//
// The first candidate found in the type table wins; the tier order is the
// deterministic tie-break downstream consumers rely on. No match returns the
// default code with ok=false, never an error.
func (t Tables) ResolveProductType(r RawRecord) (code string, ok bool) {
	group, _ := r.Resolve(groupFields...)
	material, _ := r.Resolve(materialFields...)
	explicit, _ := r.Resolve(typeFields...)

	candidates := make([]string, 0, r.Len()+5)
	if group != "" && material != "" {
		candidates = append(candidates, group+" "+material, material+" "+group)
	}
	candidates = append(candidates, group, material, explicit)

	for i := 0; i < r.Len(); i++ {
		if v := r.Value(i); utf8.RuneCountInString(v) < maxScanCellLen {
			candidates = append(candidates, v)
		}
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		if code, found := t.Types[normalizeKey(c)]; found {
			return code, true
		}
	}

	return DefaultProductType, false
}
