// Package web provides the HTTP server and handlers for the floor pricing
// API: vendor/product CRUD plus the B2B price-list import, preview, and
// convert endpoints.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"floorpricing/internal/b2b"
	"floorpricing/internal/config"
	"floorpricing/internal/observability"
	"floorpricing/internal/store"
	"floorpricing/internal/web/middleware"
)

// VendorStore is the vendor persistence surface the handlers need.
type VendorStore interface {
	CreateVendor(ctx context.Context, v store.Vendor) (store.Vendor, error)
	ListVendors(ctx context.Context) ([]store.Vendor, error)
	DeleteVendor(ctx context.Context, id int64) error
	ClearVendors(ctx context.Context) error
}

// ProductStore is the product persistence surface the handlers need.
type ProductStore interface {
	CreateProduct(ctx context.Context, p store.Product) (store.Product, error)
	ListProducts(ctx context.Context) ([]store.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ClearProducts(ctx context.Context) error
	ImportRecords(ctx context.Context, records []b2b.Record) (store.ImportSummary, error)
	ExportProducts(ctx context.Context) ([]store.ExportedProduct, error)
}

// Pinger reports backend connectivity for health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the HTTP server for the floor pricing API.
type Server struct {
	vendors  VendorStore
	products ProductStore
	health   Pinger
	pipeline *b2b.Pipeline
	cfg      *config.Config
	router   *chi.Mux
	server   *http.Server
}

// NewServer creates a Server backed by the given store.
func NewServer(st *store.Store, cfg *config.Config) *Server {
	return newServer(st, st, st, cfg)
}

// newServer wires the server from its narrow interfaces; tests substitute
// in-memory fakes here.
func newServer(vendors VendorStore, products ProductStore, health Pinger, cfg *config.Config) *Server {
	s := &Server{
		vendors:  vendors,
		products: products,
		health:   health,
		pipeline: b2b.NewPipeline(b2b.DefaultTables()),
		cfg:      cfg,
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Compress(5))
	s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if s.cfg.Rate.Enabled {
		limiter := newRateLimiter(s.cfg.Rate.RequestsPerMinute, time.Minute)
		s.router.Use(limiter.middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleRoot)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Handle("/metrics", observability.Handler())

	s.router.Route("/vendors", func(r chi.Router) {
		r.Post("/", s.handleCreateVendor)
		r.Get("/", s.handleListVendors)
		r.Delete("/clear-all", s.handleClearVendors)
		r.Delete("/{vendorID}", s.handleDeleteVendor)
	})

	s.router.Route("/products", func(r chi.Router) {
		r.Post("/", s.handleCreateProduct)
		r.Get("/", s.handleListProducts)
		r.Delete("/clear-all", s.handleClearProducts)
		r.Delete("/{productID}", s.handleDeleteProduct)
	})

	s.router.Route("/b2b", func(r chi.Router) {
		r.Post("/import/csv", s.handleImportCSV)
		r.Post("/preview", s.handlePreview)
		r.Post("/convert-to-b2b", s.handleConvert)
		r.Get("/export/json", s.handleExportJSON)
	})

	// Canonical-format imports land on the same pipeline; the candidate
	// lists resolve the B2B columns directly.
	s.router.Post("/qfloors/import", s.handleImportCSV)
}

// handleRoot reports that the API is up.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"message": "Floor Pricing API is running"})
}

// handleHealth pings the database.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.health.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// rateLimiter implements a simple token bucket rate limiter per IP.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     int
	window   time.Duration
}

type visitor struct {
	tokens    int
	lastReset time.Time
}

// newRateLimiter creates a rate limiter with the specified rate per window.
func newRateLimiter(rate int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

// cleanup removes stale visitor entries every minute.
func (rl *rateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// allow checks if the request should be allowed and consumes a token if so.
func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		rl.visitors[ip] = &visitor{
			tokens:    rl.rate - 1,
			lastReset: time.Now(),
		}
		return true
	}

	if time.Since(v.lastReset) > rl.window {
		v.tokens = rl.rate - 1
		v.lastReset = time.Now()
		return true
	}

	if v.tokens <= 0 {
		return false
	}

	v.tokens--
	return true
}

// middleware returns an HTTP middleware that rate limits by IP.
func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
			ip = realIP
		}

		if !rl.allow(ip) {
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		slog.Error("json encode error", "error", err)
	}
}

// writeJSON encodes v as JSON and writes it to w.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
