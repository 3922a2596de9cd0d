package store

import (
	"context"
	"fmt"
)

// Vendor is a supplier of price-list products. Names are unique.
type Vendor struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// CreateVendor inserts a vendor. A name collision returns ErrDuplicate.
func (s *Store) CreateVendor(ctx context.Context, v Vendor) (Vendor, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO vendors (name, contact, phone) VALUES ($1, $2, $3) RETURNING id`,
		v.Name, v.Contact, v.Phone,
	).Scan(&v.ID)
	if err != nil {
		return Vendor{}, fmt.Errorf("create vendor: %w", mapError(err))
	}
	return v, nil
}

// ListVendors returns all vendors ordered by id.
func (s *Store) ListVendors(ctx context.Context) ([]Vendor, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, COALESCE(contact, ''), COALESCE(phone, '') FROM vendors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	vendors := []Vendor{}
	for rows.Next() {
		var v Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Contact, &v.Phone); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

// GetVendorByName fetches a vendor by its unique name.
func (s *Store) GetVendorByName(ctx context.Context, name string) (Vendor, error) {
	var v Vendor
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, COALESCE(contact, ''), COALESCE(phone, '') FROM vendors WHERE name = $1`,
		name,
	).Scan(&v.ID, &v.Name, &v.Contact, &v.Phone)
	if err != nil {
		return Vendor{}, fmt.Errorf("get vendor %q: %w", name, mapError(err))
	}
	return v, nil
}

// GetOrCreateVendor resolves a vendor id by name, creating the vendor if
// absent. The upsert rides the unique constraint, so concurrent imports
// naming the same new vendor converge on one row instead of racing a
// read-then-write. The no-op DO UPDATE makes RETURNING yield the id on
// conflict as well.
func (s *Store) GetOrCreateVendor(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO vendors (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get or create vendor %q: %w", name, err)
	}
	return id, nil
}

// DeleteVendor removes a vendor and, via cascade, its products.
func (s *Store) DeleteVendor(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearVendors removes every vendor and cascades to products.
func (s *Store) ClearVendors(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM vendors`); err != nil {
		return fmt.Errorf("clear vendors: %w", err)
	}
	return nil
}
