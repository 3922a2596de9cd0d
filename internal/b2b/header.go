package b2b

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned when an upload decodes to zero lines.
// This is the only structural failure the engine surfaces; everything
// downstream recovers with defaults.
var ErrEmptyInput = errors.New("empty input")

// maxHeaderScan bounds how many leading lines are examined for the header.
const maxHeaderScan = 50

// headerKeywords are column names expected on a genuine price-list header.
// A line matching at least two of them is taken as the header.
var headerKeywords = map[string]struct{}{
	"description": {},
	"ikey":        {},
	"price":       {},
	"color":       {},
}

// FindHeaderRow returns the index of the line most likely to be the true CSV
// header. Vendors frequently prepend title and metadata rows, so the first
// maxHeaderScan lines are comma-split and checked for known header keywords.
// If no line qualifies the first line is treated as the header; an absent
// header is a data quality problem, not an error. Zero lines is ErrEmptyInput.
func FindHeaderRow(lines []string) (int, error) {
	if len(lines) == 0 {
		return 0, ErrEmptyInput
	}

	limit := len(lines)
	if limit > maxHeaderScan {
		limit = maxHeaderScan
	}

	for i := 0; i < limit; i++ {
		matched := make(map[string]struct{}, len(headerKeywords))
		for _, cell := range strings.Split(lines[i], ",") {
			cell = strings.ToLower(strings.TrimSpace(cell))
			if _, ok := headerKeywords[cell]; ok {
				matched[cell] = struct{}{}
			}
		}
		if len(matched) >= 2 {
			return i, nil
		}
	}

	return 0, nil
}
