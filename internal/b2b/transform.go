package b2b

import (
	"strconv"
	"strings"
)

// derivedNumberLen is the truncation length for style/color numbers, which
// the B2B schema derives from the names rather than taking as input.
const derivedNumberLen = 80

// Record is one canonical B2B output row. Product type and pricing unit are
// always populated; the remaining auxiliary fields default to empty, zero,
// or the schema's boolean defaults when the input carries nothing.
type Record struct {
	Manufacturer     string
	StyleName        string
	StyleNumber      string
	ColorName        string
	ColorNumber      string
	SKU              string
	ProductType      string
	PricingUnit      string
	CutCost          float64
	RollCost         string
	WidthQuantCarton string
	Backing          string
	RetailPrice      string
	IsPromo          bool
	StartPromoDate   string
	EndPromoDate     string
	PromoCutCost     string
	PromoRollCost    string
	IsDropped        bool
	RetailFormula    string
	DisplayTags      bool
	Comments         string
	PrivateStyle     string
	PrivateColor     string
	Weight           string
	Custom           string
	StyleUX          string
	StyleCARE        string
	ColorCARE        string
	DisplayOnline    bool
	Freight          string
	PictureURL       string
	Barcode          string
}

// Transformer converts raw vendor records into canonical records using the
// injected synonym tables.
type Transformer struct {
	tables Tables
}

// NewTransformer returns a Transformer over the given tables.
func NewTransformer(tables Tables) *Transformer {
	return &Transformer{tables: tables}
}

// currencyReplacer strips currency symbols and thousands separators before
// price parsing.
var currencyReplacer = strings.NewReplacer("$", "", "€", "", "£", "", ",", "")

// ParsePrice parses a raw price cell into a float. Currency symbols and
// thousands separators are stripped first. A value that still fails to parse
// returns 0 with ok=false; malformed prices are counted, not fatal. An empty
// cell is simply an absent price and parses to 0 with ok=true.
func ParsePrice(raw string) (price float64, ok bool) {
	s := strings.TrimSpace(currencyReplacer.Replace(raw))
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Transform turns one raw record into one canonical record.
//
// Manufacturer policy: the record's own resolved value wins unless an
// override is supplied, in which case the override fills an empty value, or
// replaces any value when ForceManufacturer is set. An empty result is left
// empty here; "Unknown Vendor" substitution happens only at serialization
// and persistence boundaries.
//
// stats, when non-nil, accumulates recovered per-field failures.
func (t *Transformer) Transform(r RawRecord, opts Options, stats *Stats) Record {
	manufacturer, _ := r.Resolve(manufacturerFields...)
	if override := strings.TrimSpace(opts.Manufacturer); override != "" {
		if opts.ForceManufacturer || manufacturer == "" {
			manufacturer = override
		}
	}

	style, _ := r.Resolve(styleFields...)
	style = strings.TrimSpace(style)
	color, _ := r.Resolve(colorFields...)
	color = strings.TrimSpace(color)
	sku, _ := r.Resolve(skuFields...)
	sku = strings.TrimSpace(sku)

	rawPrice, _ := r.Resolve(priceFields...)
	price, priceOK := ParsePrice(rawPrice)

	rawUnit, _ := r.Resolve(unitFields...)
	unit, unitOK := t.tables.NormalizeUnit(rawUnit)

	productType, typeOK := t.tables.ResolveProductType(r)

	if stats != nil {
		stats.Rows++
		if !priceOK {
			stats.PriceParseFailures++
		}
		if !unitOK {
			stats.UnitFallbacks++
		}
		if !typeOK {
			stats.CategoryFallbacks++
		}
	}

	return Record{
		Manufacturer:  manufacturer,
		StyleName:     style,
		StyleNumber:   truncate(style, derivedNumberLen),
		ColorName:     color,
		ColorNumber:   truncate(color, derivedNumberLen),
		SKU:           sku,
		ProductType:   productType,
		PricingUnit:   unit,
		CutCost:       price,
		DisplayTags:   true,
		DisplayOnline: true,
	}
}

// Row renders the record in canonical column order. An empty manufacturer
// becomes "Unknown Vendor" here, at the serialization boundary.
func (c Record) Row() []string {
	manufacturer := c.Manufacturer
	if manufacturer == "" {
		manufacturer = UnknownVendor
	}
	return []string{
		manufacturer,
		c.StyleName,
		c.StyleNumber,
		c.ColorName,
		c.ColorNumber,
		c.SKU,
		c.ProductType,
		c.PricingUnit,
		formatPrice(c.CutCost),
		c.RollCost,
		c.WidthQuantCarton,
		c.Backing,
		c.RetailPrice,
		boolFlag(c.IsPromo),
		c.StartPromoDate,
		c.EndPromoDate,
		c.PromoCutCost,
		c.PromoRollCost,
		boolFlag(c.IsDropped),
		c.RetailFormula,
		boolFlag(c.DisplayTags),
		c.Comments,
		c.PrivateStyle,
		c.PrivateColor,
		c.Weight,
		c.Custom,
		c.StyleUX,
		c.StyleCARE,
		c.ColorCARE,
		boolFlag(c.DisplayOnline),
		c.Freight,
		c.PictureURL,
		c.Barcode,
	}
}

// PreviewRow returns the abbreviated column set shown in previews. The
// manufacturer is left as resolved so callers can see gaps before deciding
// on an override.
func (c Record) PreviewRow() map[string]any {
	return map[string]any{
		SentinelColumn: c.Manufacturer,
		"Style Name":   c.StyleName,
		"Color Name":   c.ColorName,
		"SKU":          c.SKU,
		"Product Type": c.ProductType,
		"Pricing Unit": c.PricingUnit,
		"Cut Cost":     c.CutCost,
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func formatPrice(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
