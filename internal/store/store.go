// Package store persists vendors and products in PostgreSQL via pgxpool.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors mapped from database failures. Handlers translate these
// to HTTP statuses without inspecting driver errors themselves.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// uniqueViolation is the PostgreSQL error code for unique constraint hits.
const uniqueViolation = "23505"

// Store provides vendor and product persistence.
type Store struct {
	pool *pgxpool.Pool
}

// New returns a Store over the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Ping verifies database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// schema holds the DDL applied at startup. Vendor names carry a unique
// constraint so get-or-create can rely on insert-on-conflict semantics
// instead of a racy read-then-write.
const schema = `
CREATE TABLE IF NOT EXISTS vendors (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	contact TEXT,
	phone TEXT
);

CREATE TABLE IF NOT EXISTS products (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	vendor_id BIGINT REFERENCES vendors(id) ON DELETE CASCADE,
	sku TEXT NOT NULL DEFAULT '',
	style TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	product_type TEXT NOT NULL DEFAULT '',
	pricing_unit TEXT NOT NULL DEFAULT '',
	price DOUBLE PRECISION NOT NULL DEFAULT 0,
	width DOUBLE PRECISION NOT NULL DEFAULT 0,
	backing TEXT NOT NULL DEFAULT '',
	retail_price DOUBLE PRECISION NOT NULL DEFAULT 0,
	is_promo BOOLEAN NOT NULL DEFAULT FALSE,
	start_promo_date TEXT NOT NULL DEFAULT '',
	end_promo_date TEXT NOT NULL DEFAULT '',
	promo_cut_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
	promo_roll_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
	is_dropped BOOLEAN NOT NULL DEFAULT FALSE,
	retail_formula TEXT NOT NULL DEFAULT '',
	display_tags BOOLEAN NOT NULL DEFAULT TRUE,
	comments TEXT NOT NULL DEFAULT '',
	private_style TEXT NOT NULL DEFAULT '',
	private_color TEXT NOT NULL DEFAULT '',
	weight DOUBLE PRECISION NOT NULL DEFAULT 0,
	custom TEXT NOT NULL DEFAULT '',
	style_ux TEXT NOT NULL DEFAULT '',
	style_care TEXT NOT NULL DEFAULT '',
	color_care TEXT NOT NULL DEFAULT '',
	display_online BOOLEAN NOT NULL DEFAULT TRUE,
	freight DOUBLE PRECISION NOT NULL DEFAULT 0,
	picture_url TEXT NOT NULL DEFAULT '',
	barcode TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_products_vendor_id ON products(vendor_id);
`

// Migrate creates the schema when absent.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// mapError translates driver errors into the package's sentinel errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
