package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"floorpricing/internal/store"
)

// handleCreateVendor creates a vendor. Duplicate names are rejected with
// 409 rather than silently merged; get-or-create semantics belong to the
// import path only.
func (s *Server) handleCreateVendor(w http.ResponseWriter, r *http.Request) {
	var v store.Vendor
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		writeError(w, http.StatusBadRequest, "vendor name is required")
		return
	}

	created, err := s.vendors.CreateVendor(r.Context(), v)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			writeError(w, http.StatusConflict, "vendor with this name already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "create vendor failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		writeError(w, http.StatusInternalServerError, "encode response failed")
	}
}

// handleListVendors returns all vendors.
func (s *Server) handleListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := s.vendors.ListVendors(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list vendors failed")
		return
	}
	writeJSON(w, vendors)
}

// handleDeleteVendor deletes a vendor by id, cascading to its products.
func (s *Server) handleDeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "vendorID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vendor id")
		return
	}

	if err := s.vendors.DeleteVendor(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "vendor not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "delete vendor failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleClearVendors deletes every vendor.
func (s *Server) handleClearVendors(w http.ResponseWriter, r *http.Request) {
	if err := s.vendors.ClearVendors(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "clear vendors failed")
		return
	}
	writeJSON(w, map[string]string{"message": "all vendors deleted"})
}
