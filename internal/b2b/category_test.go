package b2b

import (
	"strings"
	"testing"
)

func TestResolveProductType_GroupPlusMaterial(t *testing.T) {
	tables := DefaultTables()
	r := NewRawRecord(
		[]string{"Product Group", "Material Type"},
		[]string{"Vinyl", "Plank"},
	)

	got, ok := tables.ResolveProductType(r)
	if !ok {
		t.Fatal("ResolveProductType() ok = false, want true")
	}
	if got != "VINLVP" {
		t.Errorf("ResolveProductType() = %q, want %q", got, "VINLVP")
	}
}

func TestResolveProductType_MaterialGroupOrderAlsoTried(t *testing.T) {
	tables := Tables{Types: map[string]string{"plank vinyl": "VINLVP"}}
	r := NewRawRecord(
		[]string{"Product Group", "Material Type"},
		[]string{"Vinyl", "Plank"},
	)

	got, ok := tables.ResolveProductType(r)
	if !ok {
		t.Fatal("ResolveProductType() ok = false, want true")
	}
	if got != "VINLVP" {
		t.Errorf("ResolveProductType() = %q, want %q", got, "VINLVP")
	}
}

func TestResolveProductType_BareGroupBeforeMaterial(t *testing.T) {
	tables := DefaultTables()
	r := NewRawRecord(
		[]string{"Product Group", "Material Type"},
		[]string{"Carpet", "Wood"},
	)

	// "carpet wood" matches nothing, so the bare group wins over material.
	got, ok := tables.ResolveProductType(r)
	if !ok {
		t.Fatal("ResolveProductType() ok = false, want true")
	}
	if got != "CAR" {
		t.Errorf("ResolveProductType() = %q, want %q", got, "CAR")
	}
}

func TestResolveProductType_ExplicitTypeColumn(t *testing.T) {
	tables := DefaultTables()
	r := NewRawRecord(
		[]string{"Product Type", "Description"},
		[]string{"Laminate", "Oak Estate 8mm"},
	)

	got, ok := tables.ResolveProductType(r)
	if !ok {
		t.Fatal("ResolveProductType() ok = false, want true")
	}
	if got != "LAM" {
		t.Errorf("ResolveProductType() = %q, want %q", got, "LAM")
	}
}

func TestResolveProductType_CellScan(t *testing.T) {
	tables := DefaultTables()
	r := NewRawRecord(
		[]string{"SKU", "Notes"},
		[]string{"A100", "Stone"},
	)

	got, ok := tables.ResolveProductType(r)
	if !ok {
		t.Fatal("ResolveProductType() ok = false, want true")
	}
	if got != "STO" {
		t.Errorf("ResolveProductType() = %q, want %q", got, "STO")
	}
}

func TestResolveProductType_CellScanSkipsLongCells(t *testing.T) {
	tables := DefaultTables()
	long := "stone " + strings.Repeat("x", maxScanCellLen)
	r := NewRawRecord(
		[]string{"SKU", "Comments"},
		[]string{"A100", long},
	)

	got, ok := tables.ResolveProductType(r)
	if ok {
		t.Error("ResolveProductType() ok = true, want false")
	}
	if got != DefaultProductType {
		t.Errorf("ResolveProductType() = %q, want %q", got, DefaultProductType)
	}
}

func TestResolveProductType_DefaultVIN(t *testing.T) {
	tables := DefaultTables()
	r := NewRawRecord(
		[]string{"SKU", "Price"},
		[]string{"A100", "2.49"},
	)

	got, ok := tables.ResolveProductType(r)
	if ok {
		t.Error("ResolveProductType() ok = true, want false")
	}
	if got != "VIN" {
		t.Errorf("ResolveProductType() = %q, want %q", got, "VIN")
	}
}

func TestResolveProductType_CanonicalCodeRoundTrips(t *testing.T) {
	tables := DefaultTables()
	r := NewRawRecord(
		[]string{"Product Type"},
		[]string{"CARTIL"},
	)

	got, ok := tables.ResolveProductType(r)
	if !ok {
		t.Fatal("ResolveProductType() ok = false, want true")
	}
	if got != "CARTIL" {
		t.Errorf("ResolveProductType() = %q, want %q", got, "CARTIL")
	}
}
