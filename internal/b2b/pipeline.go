package b2b

import (
	"bytes"
	"encoding/csv"
	"strings"
	"unicode/utf8"
)

// Row caps for preview responses.
const (
	PreviewLimit = 200
	SampleLimit  = 10
)

// Pipeline runs whole uploads through the transformer. Rows are processed
// independently: a row that fails a heuristic is emitted with defaults and
// the batch continues.
type Pipeline struct {
	transformer *Transformer
}

// NewPipeline returns a Pipeline over the given synonym tables.
func NewPipeline(tables Tables) *Pipeline {
	return &Pipeline{transformer: NewTransformer(tables)}
}

// ConvertResult is the outcome of a convert run.
type ConvertResult struct {
	// Data is the canonical CSV byte stream. For already-canonical input it
	// is the input itself: re-running canonical data through the heuristics
	// must be a no-op, not a corrupting transform.
	Data       []byte
	AlreadyB2B bool
	Stats      Stats
}

// PreviewResult is the JSON body of a preview run.
type PreviewResult struct {
	AlreadyB2B  bool             `json:"already_b2b"`
	RowsPreview []map[string]any `json:"rows_preview,omitempty"`
	Sample      []map[string]any `json:"sample,omitempty"`
	Stats       Stats            `json:"-"`
}

// Convert normalizes an uploaded file into a complete canonical CSV stream.
func (p *Pipeline) Convert(data []byte, opts Options) (*ConvertResult, error) {
	header, rows, err := p.read(data)
	if err != nil {
		return nil, err
	}

	if isCanonical(header) {
		return &ConvertResult{Data: data, AlreadyB2B: true}, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Columns); err != nil {
		return nil, err
	}

	var stats Stats
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		rec := p.transformer.Transform(NewRawRecord(header, row), opts, &stats)
		if err := w.Write(rec.Row()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &ConvertResult{Data: buf.Bytes(), Stats: stats}, nil
}

// Preview returns a bounded structured view of what conversion would
// produce, without persisting anything. Already-canonical input yields a
// short raw sample instead of a re-transformed preview.
func (p *Pipeline) Preview(data []byte, opts Options) (*PreviewResult, error) {
	header, rows, err := p.read(data)
	if err != nil {
		return nil, err
	}

	if isCanonical(header) {
		sample := make([]map[string]any, 0, SampleLimit)
		for _, row := range rows {
			if len(sample) == SampleLimit {
				break
			}
			if isEmptyRow(row) {
				continue
			}
			raw := NewRawRecord(header, row)
			m := make(map[string]any, raw.Len())
			for i := 0; i < raw.Len(); i++ {
				m[raw.Column(i)] = raw.Value(i)
			}
			sample = append(sample, m)
		}
		return &PreviewResult{AlreadyB2B: true, Sample: sample}, nil
	}

	var stats Stats
	preview := make([]map[string]any, 0, PreviewLimit)
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		rec := p.transformer.Transform(NewRawRecord(header, row), opts, &stats)
		if len(preview) < PreviewLimit {
			preview = append(preview, rec.PreviewRow())
		}
	}

	return &PreviewResult{RowsPreview: preview, Stats: stats}, nil
}

// Records transforms an uploaded file into canonical records for
// persistence. Canonical input is not short-circuited here: the candidate
// lists and identity type mappings make it resolve losslessly.
func (p *Pipeline) Records(data []byte, opts Options) ([]Record, Stats, error) {
	header, rows, err := p.read(data)
	if err != nil {
		return nil, Stats{}, err
	}

	var stats Stats
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		records = append(records, p.transformer.Transform(NewRawRecord(header, row), opts, &stats))
	}
	return records, stats, nil
}

// read decodes the upload, locates the true header line, and parses the
// remainder as CSV.
func (p *Pipeline) read(data []byte) (header []string, rows [][]string, err error) {
	lines := toLines(decode(data))
	idx, err := FindHeaderRow(lines)
	if err != nil {
		return nil, nil, err
	}

	r := csv.NewReader(strings.NewReader(strings.Join(lines[idx:], "\n")))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, ErrEmptyInput
	}
	return records[0], records[1:], nil
}

// isCanonical reports whether a parsed header already carries the B2B schema.
func isCanonical(header []string) bool {
	return len(header) > 0 && strings.TrimSpace(header[0]) == SentinelColumn
}

// decode converts raw upload bytes to a string, dropping invalid UTF-8
// sequences rather than rejecting the file. Vendor exports arrive in all
// sorts of encodings.
func decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			data = data[1:]
			continue
		}
		b.WriteRune(r)
		data = data[size:]
	}
	return b.String()
}

// toLines splits decoded text into lines, tolerating CRLF and bare CR.
func toLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
