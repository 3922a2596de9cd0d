package b2b

import (
	"strings"
	"testing"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"2.49", 2.49, true},
		{"$1,234.50", 1234.50, true},
		{"€10.00", 10.00, true},
		{" $5 ", 5, true},
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParsePrice(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePrice(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func transformOne(t *testing.T, header, row []string, opts Options, stats *Stats) Record {
	t.Helper()
	tr := NewTransformer(DefaultTables())
	return tr.Transform(NewRawRecord(header, row), opts, stats)
}

func TestTransform_ManufacturerOverride(t *testing.T) {
	header := []string{"Manufacturer", "Description", "Price"}

	tests := []struct {
		name string
		row  []string
		opts Options
		want string
	}{
		{"row value wins without override", []string{"Shaw", "Berber", "2.49"}, Options{}, "Shaw"},
		{"override fills empty", []string{"", "Berber", "2.49"}, Options{Manufacturer: "Mohawk"}, "Mohawk"},
		{"row value wins over plain override", []string{"Shaw", "Berber", "2.49"}, Options{Manufacturer: "Mohawk"}, "Shaw"},
		{"force replaces row value", []string{"Shaw", "Berber", "2.49"}, Options{Manufacturer: "Mohawk", ForceManufacturer: true}, "Mohawk"},
		{"force with empty override is a no-op", []string{"Shaw", "Berber", "2.49"}, Options{ForceManufacturer: true}, "Shaw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := transformOne(t, header, tt.row, tt.opts, nil)
			if rec.Manufacturer != tt.want {
				t.Errorf("Manufacturer = %q, want %q", rec.Manufacturer, tt.want)
			}
		})
	}
}

func TestTransform_DerivedNumbersTruncate(t *testing.T) {
	long := strings.Repeat("s", derivedNumberLen+20)
	rec := transformOne(t,
		[]string{"Style Name", "Color Name"},
		[]string{long, "Slate"},
		Options{}, nil)

	if rec.StyleName != long {
		t.Error("StyleName must keep the full value")
	}
	if got := len([]rune(rec.StyleNumber)); got != derivedNumberLen {
		t.Errorf("len(StyleNumber) = %d, want %d", got, derivedNumberLen)
	}
	if rec.ColorNumber != "Slate" {
		t.Errorf("ColorNumber = %q, want %q", rec.ColorNumber, "Slate")
	}
}

func TestTransform_Stats(t *testing.T) {
	var stats Stats
	transformOne(t,
		[]string{"Description", "Price", "Unit"},
		[]string{"Mystery Product", "abc", "bundle"},
		Options{}, &stats)

	if stats.Rows != 1 {
		t.Errorf("Rows = %d, want 1", stats.Rows)
	}
	if stats.PriceParseFailures != 1 {
		t.Errorf("PriceParseFailures = %d, want 1", stats.PriceParseFailures)
	}
	if stats.UnitFallbacks != 1 {
		t.Errorf("UnitFallbacks = %d, want 1", stats.UnitFallbacks)
	}
	if stats.CategoryFallbacks != 1 {
		t.Errorf("CategoryFallbacks = %d, want 1", stats.CategoryFallbacks)
	}
}

func TestTransform_Defaults(t *testing.T) {
	rec := transformOne(t,
		[]string{"SKU"},
		[]string{"A100"},
		Options{}, nil)

	if rec.ProductType != DefaultProductType {
		t.Errorf("ProductType = %q, want %q", rec.ProductType, DefaultProductType)
	}
	if rec.PricingUnit != DefaultPricingUnit {
		t.Errorf("PricingUnit = %q, want %q", rec.PricingUnit, DefaultPricingUnit)
	}
	if !rec.DisplayTags || !rec.DisplayOnline {
		t.Error("DisplayTags and DisplayOnline must default to true")
	}
	if rec.Manufacturer != "" {
		t.Errorf("Manufacturer = %q, want empty inside the engine", rec.Manufacturer)
	}
}

func TestRecordRow_UnknownVendorSubstitution(t *testing.T) {
	rec := Record{ProductType: "VIN", PricingUnit: "EA"}

	row := rec.Row()
	if len(row) != len(Columns) {
		t.Fatalf("len(Row()) = %d, want %d", len(row), len(Columns))
	}
	if row[0] != UnknownVendor {
		t.Errorf("Row()[0] = %q, want %q", row[0], UnknownVendor)
	}
}

func TestRecordRow_Formatting(t *testing.T) {
	rec := Record{
		Manufacturer:  "Shaw",
		CutCost:       1234.5,
		IsPromo:       true,
		DisplayTags:   true,
		DisplayOnline: false,
	}

	row := rec.Row()
	if row[0] != "Shaw" {
		t.Errorf("Row()[0] = %q, want %q", row[0], "Shaw")
	}
	if row[8] != "1234.5" {
		t.Errorf("cut cost cell = %q, want %q", row[8], "1234.5")
	}
	if row[13] != "1" {
		t.Errorf("is promo cell = %q, want %q", row[13], "1")
	}
	if row[29] != "0" {
		t.Errorf("display online cell = %q, want %q", row[29], "0")
	}
}

func TestPreviewRow_KeepsEmptyManufacturer(t *testing.T) {
	rec := Record{StyleName: "Berber", ProductType: "CAR", PricingUnit: "SF", CutCost: 2.49}

	m := rec.PreviewRow()
	if got := m[SentinelColumn]; got != "" {
		t.Errorf("preview manufacturer = %v, want empty", got)
	}
	if got := m["Cut Cost"]; got != 2.49 {
		t.Errorf("preview cut cost = %v, want 2.49", got)
	}
}
