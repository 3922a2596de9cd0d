package b2b

import (
	"errors"
	"testing"
)

func TestFindHeaderRow_Preamble(t *testing.T) {
	lines := []string{
		"Acme Floors Price List",
		"Effective 2024-01-01",
		"",
		"description,ikey,price,color",
		"Berber Classic,A100,2.49,Slate",
	}

	idx, err := FindHeaderRow(lines)
	if err != nil {
		t.Fatalf("FindHeaderRow() error = %v", err)
	}
	if idx != 3 {
		t.Errorf("FindHeaderRow() = %d, want 3", idx)
	}
}

func TestFindHeaderRow_FirstLine(t *testing.T) {
	lines := []string{
		"DESCRIPTION,IKEY,UNIT,PRICE",
		"Berber Classic,A100,SF,2.49",
	}

	idx, err := FindHeaderRow(lines)
	if err != nil {
		t.Fatalf("FindHeaderRow() error = %v", err)
	}
	if idx != 0 {
		t.Errorf("FindHeaderRow() = %d, want 0", idx)
	}
}

func TestFindHeaderRow_TwoKeywordsRequired(t *testing.T) {
	// One keyword alone must not qualify a line as the header.
	lines := []string{
		"price,sheet,export",
		"vendor,sku,cost",
		"description,color,cost",
	}

	idx, err := FindHeaderRow(lines)
	if err != nil {
		t.Fatalf("FindHeaderRow() error = %v", err)
	}
	if idx != 2 {
		t.Errorf("FindHeaderRow() = %d, want 2", idx)
	}
}

func TestFindHeaderRow_DuplicateKeywordCountsOnce(t *testing.T) {
	lines := []string{
		"price,price,price",
		"description,ikey,x",
	}

	idx, err := FindHeaderRow(lines)
	if err != nil {
		t.Fatalf("FindHeaderRow() error = %v", err)
	}
	if idx != 1 {
		t.Errorf("FindHeaderRow() = %d, want 1", idx)
	}
}

func TestFindHeaderRow_NoMatchFallsBackToZero(t *testing.T) {
	lines := []string{
		"item,code,amount",
		"widget,W1,5.00",
	}

	idx, err := FindHeaderRow(lines)
	if err != nil {
		t.Fatalf("FindHeaderRow() error = %v", err)
	}
	if idx != 0 {
		t.Errorf("FindHeaderRow() = %d, want 0", idx)
	}
}

func TestFindHeaderRow_ScanLimit(t *testing.T) {
	// A header buried past the scan window is not found; fall back to 0.
	lines := make([]string, 0, maxHeaderScan+2)
	for i := 0; i < maxHeaderScan; i++ {
		lines = append(lines, "preamble,line")
	}
	lines = append(lines, "description,ikey,price,color")

	idx, err := FindHeaderRow(lines)
	if err != nil {
		t.Fatalf("FindHeaderRow() error = %v", err)
	}
	if idx != 0 {
		t.Errorf("FindHeaderRow() = %d, want 0", idx)
	}
}

func TestFindHeaderRow_EmptyInput(t *testing.T) {
	_, err := FindHeaderRow(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("FindHeaderRow(nil) error = %v, want ErrEmptyInput", err)
	}
}
