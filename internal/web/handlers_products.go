package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"floorpricing/internal/store"
)

// handleCreateProduct creates a single product from a JSON body.
func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var p store.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.products.CreateProduct(r.Context(), p)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			writeError(w, http.StatusConflict, "product already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "create product failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		writeError(w, http.StatusInternalServerError, "encode response failed")
	}
}

// handleListProducts returns all products.
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.ListProducts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list products failed")
		return
	}
	writeJSON(w, products)
}

// handleDeleteProduct deletes a product by id.
func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := s.products.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "delete product failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleClearProducts deletes every product.
func (s *Server) handleClearProducts(w http.ResponseWriter, r *http.Request) {
	if err := s.products.ClearProducts(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "clear products failed")
		return
	}
	writeJSON(w, map[string]string{"message": "all products deleted"})
}
