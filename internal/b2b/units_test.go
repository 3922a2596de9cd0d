package b2b

import "testing"

func TestNormalizeUnit_Synonyms(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		in   string
		want string
	}{
		{"sf", "SF"},
		{"SqFt", "SF"},
		{"Sq. Ft.", "SF"},
		{"sft", "SF"},
		{"sy", "SY"},
		{"Sq. Yd.", "SY"},
		{"LF", "LF"},
		{"ea", "EA"},
		{"Each", "EA"},
		{"PCS", "EA"},
		{"pc", "EA"},
		{"ct", "CT"},
		{"CARTON", "CT"},
	}

	for _, tt := range tests {
		got, ok := tables.NormalizeUnit(tt.in)
		if !ok {
			t.Errorf("NormalizeUnit(%q) ok = false, want true", tt.in)
		}
		if got != tt.want {
			t.Errorf("NormalizeUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeUnit_UnknownFallsBackToEA(t *testing.T) {
	tables := DefaultTables()

	got, ok := tables.NormalizeUnit("bundle")
	if ok {
		t.Error("NormalizeUnit(\"bundle\") ok = true, want false")
	}
	if got != "EA" {
		t.Errorf("NormalizeUnit(\"bundle\") = %q, want %q", got, "EA")
	}
}

func TestNormalizeUnit_EmptyIsNotAFallback(t *testing.T) {
	tables := DefaultTables()

	got, ok := tables.NormalizeUnit("   ")
	if !ok {
		t.Error("NormalizeUnit(blank) ok = false, want true")
	}
	if got != "EA" {
		t.Errorf("NormalizeUnit(blank) = %q, want %q", got, "EA")
	}
}
