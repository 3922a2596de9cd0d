// Package b2b implements the canonical "B2B" price-list normalization engine.
//
// Vendor-supplied price lists arrive as CSV files with arbitrary column
// names, inconsistent units, and free-form category vocabularies, often with
// metadata rows above the real header. This package locates the header,
// resolves logical fields through synonym candidate lists, normalizes units
// and product types against closed synonym tables, and emits records in the
// fixed 32-column B2B schema. Heuristic misses fall back to documented
// defaults and never abort a batch.
//
// The engine is pure: it performs no I/O and holds no mutable package state.
// Synonym tables are injected as values, so resolvers are independently
// testable with custom vocabularies.
package b2b

// SentinelColumn is the first header cell of the canonical B2B schema.
// Input whose header starts with this column is already canonical and must
// pass through conversion untouched.
const SentinelColumn = "~~Manufacturer"

// UnknownVendor is substituted for an empty manufacturer at serialization
// and persistence boundaries only, never inside the engine.
const UnknownVendor = "Unknown Vendor"

// Codes applied when no heuristic produces a value. The output schema never
// carries an empty product type or pricing unit.
const (
	DefaultProductType = "VIN"
	DefaultPricingUnit = "EA"
)

// Columns is the fixed canonical output header, in emission order.
var Columns = []string{
	SentinelColumn,
	"Style Name",
	"Style Number",
	"Color Name",
	"Color Number",
	"SKU",
	"Product Type",
	"Pricing Unit",
	"Cut Cost",
	"Roll Cost",
	"Width/Quant-Carton",
	"Backing",
	"Retail Price",
	"Is Promo",
	"Start Promo Date",
	"End Promo Date",
	"Promo Cut Cost",
	"Promo Roll Cost",
	"Is Dropped",
	"Retail Formula",
	"Display Tags",
	"Comments",
	"Private Style",
	"Private Color",
	"Weight",
	"Custom",
	"Style UX",
	"Style CARE",
	"Color CARE",
	"Display Online",
	"Freight",
	"Picture 1 URL",
	"Barcode",
}

// Tables holds the immutable synonym tables used by the unit and category
// resolvers. Keys must already be in normalized form (see normalizeKey).
type Tables struct {
	Units map[string]string
	Types map[string]string
}

// DefaultTables returns the built-in synonym tables.
//
// The type table also maps each canonical code to itself so that canonical
// data surviving a round trip resolves back to the same code instead of
// degrading to the default.
func DefaultTables() Tables {
	return Tables{
		Units: map[string]string{
			"sf":     "SF",
			"sqft":   "SF",
			"sft":    "SF",
			"sy":     "SY",
			"sqyd":   "SY",
			"lf":     "LF",
			"ea":     "EA",
			"each":   "EA",
			"pcs":    "EA",
			"pc":     "EA",
			"ct":     "CT",
			"carton": "CT",
		},
		Types: map[string]string{
			"carpet":      "CAR",
			"carpet tile": "CARTIL",
			"vinyl":       "VIN",
			"vinyl plank": "VINLVP",
			"wood":        "WOO",
			"laminate":    "LAM",
			"tile":        "CER",
			"stone":       "STO",
			"pad":         "PAD",
			"rug":         "RUG",

			// Identity mappings for the remaining canonical codes; "pad"
			// and "rug" above already map to themselves.
			"car":    "CAR",
			"cartil": "CARTIL",
			"vin":    "VIN",
			"vinlvp": "VINLVP",
			"woo":    "WOO",
			"lam":    "LAM",
			"cer":    "CER",
			"sto":    "STO",
		},
	}
}

// Options control manufacturer substitution during transformation.
type Options struct {
	// Manufacturer, when set, fills rows whose own manufacturer column is
	// empty. With ForceManufacturer it replaces the row's value outright.
	Manufacturer      string
	ForceManufacturer bool
}

// Stats counts recovered per-field failures across a batch. Warnings are
// absorbed with defaults; they are reported here for post-hoc inspection
// rather than surfaced as errors.
type Stats struct {
	Rows               int `json:"rows"`
	PriceParseFailures int `json:"price_parse_failures"`
	UnitFallbacks      int `json:"unit_fallbacks"`
	CategoryFallbacks  int `json:"category_fallbacks"`
}

// RawRecord is one source row with its column order preserved. The order
// matters: field resolution and the category resolver's cell scan both walk
// columns in file order, which is the documented tie-break.
type RawRecord struct {
	cols []string
	vals []string
}

// NewRawRecord pairs a header with a data row. Rows shorter than the header
// are padded with empty values; surplus cells are dropped.
func NewRawRecord(header, row []string) RawRecord {
	vals := make([]string, len(header))
	for i := range header {
		if i < len(row) {
			vals[i] = row[i]
		}
	}
	return RawRecord{cols: header, vals: vals}
}

// Len returns the number of columns in the record.
func (r RawRecord) Len() int { return len(r.cols) }

// Column returns the raw column name at position i.
func (r RawRecord) Column(i int) string { return r.cols[i] }

// Value returns the raw cell value at position i.
func (r RawRecord) Value(i int) string { return r.vals[i] }
