package b2b

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Vendor Name ", "vendor name"},
		{"vendor_name", "vendor name"},
		{"VENDOR-NAME", "vendor name"},
		{"Cut_Cost", "cut cost"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeKey(tt.in); got != tt.want {
			t.Errorf("normalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolve_MatchesNormalizedColumn(t *testing.T) {
	r := NewRawRecord(
		[]string{"SKU", "Vendor_Name", "Price"},
		[]string{"A100", "Acme Floors", "2.49"},
	)

	got, ok := r.Resolve("vendor name")
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if got != "Acme Floors" {
		t.Errorf("Resolve() = %q, want %q", got, "Acme Floors")
	}
}

func TestResolve_CandidatePriorityOrder(t *testing.T) {
	r := NewRawRecord(
		[]string{"Style", "Description"},
		[]string{"Plush", "Berber Classic"},
	)

	// "description" is tried before "style" even though "Style" appears
	// first in the record.
	got, ok := r.Resolve("description", "style")
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if got != "Berber Classic" {
		t.Errorf("Resolve() = %q, want %q", got, "Berber Classic")
	}
}

func TestResolve_SkipsEmptyValues(t *testing.T) {
	r := NewRawRecord(
		[]string{"Description", "description"},
		[]string{"", "Berber Classic"},
	)

	got, ok := r.Resolve("description")
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if got != "Berber Classic" {
		t.Errorf("Resolve() = %q, want %q", got, "Berber Classic")
	}
}

func TestResolve_NoMatch(t *testing.T) {
	r := NewRawRecord([]string{"SKU"}, []string{"A100"})

	got, ok := r.Resolve("manufacturer", "vendor")
	if ok {
		t.Errorf("Resolve() ok = true with value %q, want false", got)
	}
}

func TestNewRawRecord_PadsShortRows(t *testing.T) {
	r := NewRawRecord([]string{"A", "B", "C"}, []string{"1"})

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	if r.Value(0) != "1" || r.Value(1) != "" || r.Value(2) != "" {
		t.Errorf("values = %q, %q, %q, want 1, empty, empty", r.Value(0), r.Value(1), r.Value(2))
	}
}
