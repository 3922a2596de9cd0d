package b2b

import "strings"

// NormalizeUnit maps a raw unit token to one of the canonical pricing-unit
// codes {SF, SY, LF, EA, CT}. The token is lower-cased with periods and
// spaces stripped before lookup, so "Sq. Ft." and "sqft" land on the same
// key. Unknown tokens fall back to EA with ok=false; unit ambiguity is
// routine in vendor files and must not block an import. An empty token is
// not a resolution failure, just an absent value, so ok stays true.
func (t Tables) NormalizeUnit(raw string) (code string, ok bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")

	if s == "" {
		return DefaultPricingUnit, true
	}
	if code, found := t.Units[s]; found {
		return code, true
	}
	return DefaultPricingUnit, false
}
