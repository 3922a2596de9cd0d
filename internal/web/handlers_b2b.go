package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"floorpricing/internal/b2b"
	"floorpricing/internal/logging"
	"floorpricing/internal/observability"
)

// readUpload extracts the uploaded file from a multipart form, bounded by
// the configured size limit.
func (s *Server) readUpload(r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, s.cfg.Upload.MaxFileSize)

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// optsFromForm reads the manufacturer override fields accompanying an
// upload.
func optsFromForm(r *http.Request) b2b.Options {
	force, _ := strconv.ParseBool(r.FormValue("force_manufacturer"))
	return b2b.Options{
		Manufacturer:      r.FormValue("manufacturer"),
		ForceManufacturer: force,
	}
}

// recordStats feeds pipeline warning counts into the prometheus counters.
func recordStats(stats b2b.Stats) {
	observability.PriceParseFailures.Add(float64(stats.PriceParseFailures))
	observability.UnitFallbacks.Add(float64(stats.UnitFallbacks))
	observability.CategoryFallbacks.Add(float64(stats.CategoryFallbacks))
}

// handleImportCSV normalizes an uploaded price list and persists the
// resulting vendors and products. Rows fail independently; the response
// reports counts, not per-row errors.
func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := s.readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing or unreadable file upload")
		return
	}

	records, stats, err := s.pipeline.Records(data, optsFromForm(r))
	if err != nil {
		if errors.Is(err, b2b.ErrEmptyInput) {
			writeError(w, http.StatusBadRequest, "empty CSV file")
			return
		}
		writeError(w, http.StatusBadRequest, "unparseable CSV file")
		return
	}
	recordStats(stats)

	batchID := uuid.NewString()
	logger := logging.WithFields(r.Context(), "batch_id", batchID)

	summary, err := s.products.ImportRecords(r.Context(), records)
	if err != nil {
		logger.Error("import failed", "error", err)
		writeError(w, http.StatusInternalServerError, "import failed")
		return
	}

	observability.RowsImported.Add(float64(summary.Imported))
	observability.RowsFailed.Add(float64(summary.Failed))
	logger.Info("import complete",
		"imported", summary.Imported,
		"failed", summary.Failed,
		"unit_fallbacks", stats.UnitFallbacks,
		"category_fallbacks", stats.CategoryFallbacks,
	)

	writeJSON(w, map[string]any{
		"status":   "imported",
		"imported": summary.Imported,
		"failed":   summary.Failed,
		"batch_id": batchID,
	})
}

// handlePreview returns a bounded JSON preview of what conversion would
// produce, without persisting anything.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	data, err := s.readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing or unreadable file upload")
		return
	}

	result, err := s.pipeline.Preview(data, optsFromForm(r))
	if err != nil {
		if errors.Is(err, b2b.ErrEmptyInput) {
			writeError(w, http.StatusBadRequest, "empty CSV file")
			return
		}
		writeError(w, http.StatusBadRequest, "unparseable CSV file")
		return
	}
	recordStats(result.Stats)

	writeJSON(w, result)
}

// handleConvert streams back the uploaded price list in canonical form.
// Already-canonical input is returned unchanged.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	data, err := s.readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing or unreadable file upload")
		return
	}

	result, err := s.pipeline.Convert(data, optsFromForm(r))
	if err != nil {
		if errors.Is(err, b2b.ErrEmptyInput) {
			writeError(w, http.StatusBadRequest, "empty CSV file")
			return
		}
		writeError(w, http.StatusBadRequest, "unparseable CSV file")
		return
	}
	recordStats(result.Stats)

	logging.FromContext(r.Context()).Info("convert complete",
		"already_b2b", result.AlreadyB2B,
		"rows", result.Stats.Rows,
	)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=converted_b2b.csv`)
	if _, err := w.Write(result.Data); err != nil {
		logging.FromContext(r.Context()).Error("write response", "error", err)
	}
}

// handleExportJSON dumps all persisted products with their vendor names.
func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.ExportProducts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	writeJSON(w, map[string]any{"products": products})
}
