package store

import (
	"context"
	"fmt"
	"log/slog"

	"floorpricing/internal/b2b"
)

// Product is the persisted form of a canonical record, with the
// manufacturer name replaced by a vendor foreign key.
type Product struct {
	ID             int64   `json:"id"`
	VendorID       int64   `json:"vendor_id"`
	SKU            string  `json:"sku"`
	Style          string  `json:"style"`
	Color          string  `json:"color"`
	ProductType    string  `json:"product_type"`
	PricingUnit    string  `json:"pricing_unit"`
	Price          float64 `json:"price"`
	Width          float64 `json:"width"`
	Backing        string  `json:"backing"`
	RetailPrice    float64 `json:"retail_price"`
	IsPromo        bool    `json:"is_promo"`
	StartPromoDate string  `json:"start_promo_date"`
	EndPromoDate   string  `json:"end_promo_date"`
	PromoCutCost   float64 `json:"promo_cut_cost"`
	PromoRollCost  float64 `json:"promo_roll_cost"`
	IsDropped      bool    `json:"is_dropped"`
	RetailFormula  string  `json:"retail_formula"`
	DisplayTags    bool    `json:"display_tags"`
	Comments       string  `json:"comments"`
	PrivateStyle   string  `json:"private_style"`
	PrivateColor   string  `json:"private_color"`
	Weight         float64 `json:"weight"`
	Custom         string  `json:"custom"`
	StyleUX        string  `json:"style_ux"`
	StyleCARE      string  `json:"style_care"`
	ColorCARE      string  `json:"color_care"`
	DisplayOnline  bool    `json:"display_online"`
	Freight        float64 `json:"freight"`
	PictureURL     string  `json:"picture_url"`
	Barcode        string  `json:"barcode"`
}

// ImportSummary reports how a batch import went. Per-row errors are logged,
// not returned; the batch never aborts on a single bad row.
type ImportSummary struct {
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
}

// ExportedProduct is the flattened JSON export shape, with the vendor name
// joined back in.
type ExportedProduct struct {
	Vendor      string  `json:"vendor"`
	SKU         string  `json:"sku"`
	Style       string  `json:"style"`
	Color       string  `json:"color"`
	ProductType string  `json:"product_type"`
	PricingUnit string  `json:"pricing_unit"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
}

const productColumns = `sku, style, color, product_type, pricing_unit, price,
	width, backing, retail_price, is_promo, start_promo_date, end_promo_date,
	promo_cut_cost, promo_roll_cost, is_dropped, retail_formula, display_tags,
	comments, private_style, private_color, weight, custom, style_ux,
	style_care, color_care, display_online, freight, picture_url, barcode`

// CreateProduct inserts a product row.
func (s *Store) CreateProduct(ctx context.Context, p Product) (Product, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO products (vendor_id, `+productColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		         $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
		         $27, $28, $29, $30)
		 RETURNING id`,
		nullableID(p.VendorID), p.SKU, p.Style, p.Color, p.ProductType,
		p.PricingUnit, p.Price, p.Width, p.Backing, p.RetailPrice, p.IsPromo,
		p.StartPromoDate, p.EndPromoDate, p.PromoCutCost, p.PromoRollCost,
		p.IsDropped, p.RetailFormula, p.DisplayTags, p.Comments,
		p.PrivateStyle, p.PrivateColor, p.Weight, p.Custom, p.StyleUX,
		p.StyleCARE, p.ColorCARE, p.DisplayOnline, p.Freight, p.PictureURL,
		p.Barcode,
	).Scan(&p.ID)
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", mapError(err))
	}
	return p, nil
}

// ListProducts returns all products ordered by id.
func (s *Store) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, COALESCE(vendor_id, 0), `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.VendorID, &p.SKU, &p.Style, &p.Color, &p.ProductType,
			&p.PricingUnit, &p.Price, &p.Width, &p.Backing, &p.RetailPrice,
			&p.IsPromo, &p.StartPromoDate, &p.EndPromoDate, &p.PromoCutCost,
			&p.PromoRollCost, &p.IsDropped, &p.RetailFormula, &p.DisplayTags,
			&p.Comments, &p.PrivateStyle, &p.PrivateColor, &p.Weight,
			&p.Custom, &p.StyleUX, &p.StyleCARE, &p.ColorCARE,
			&p.DisplayOnline, &p.Freight, &p.PictureURL, &p.Barcode,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// DeleteProduct removes a product by id.
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearProducts removes every product.
func (s *Store) ClearProducts(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}
	return nil
}

// ImportRecords persists a batch of canonical records. Vendors are resolved
// or created by name, with ids cached for the duration of the batch. Rows
// are inserted independently so one failure cannot sink the rest; the
// summary reports counts only.
func (s *Store) ImportRecords(ctx context.Context, records []b2b.Record) (ImportSummary, error) {
	var summary ImportSummary
	vendorIDs := make(map[string]int64)

	for _, rec := range records {
		name := rec.Manufacturer
		if name == "" {
			name = b2b.UnknownVendor
		}

		vendorID, ok := vendorIDs[name]
		if !ok {
			id, err := s.GetOrCreateVendor(ctx, name)
			if err != nil {
				return summary, err
			}
			vendorID = id
			vendorIDs[name] = vendorID
		}

		_, err := s.CreateProduct(ctx, Product{
			VendorID:      vendorID,
			SKU:           rec.SKU,
			Style:         rec.StyleName,
			Color:         rec.ColorName,
			ProductType:   rec.ProductType,
			PricingUnit:   rec.PricingUnit,
			Price:         rec.CutCost,
			IsPromo:       rec.IsPromo,
			IsDropped:     rec.IsDropped,
			DisplayTags:   rec.DisplayTags,
			DisplayOnline: rec.DisplayOnline,
		})
		if err != nil {
			summary.Failed++
			slog.Warn("import row failed", "vendor", name, "sku", rec.SKU, "error", err)
			continue
		}
		summary.Imported++
	}

	return summary, nil
}

// ExportProducts returns all products joined with their vendor names.
func (s *Store) ExportProducts(ctx context.Context) ([]ExportedProduct, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT COALESCE(v.name, ''), p.sku, p.style, p.color, p.product_type,
		        p.pricing_unit, p.price
		 FROM products p
		 LEFT JOIN vendors v ON v.id = p.vendor_id
		 ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}
	defer rows.Close()

	out := []ExportedProduct{}
	for rows.Next() {
		p := ExportedProduct{Currency: "USD"}
		if err := rows.Scan(&p.Vendor, &p.SKU, &p.Style, &p.Color,
			&p.ProductType, &p.PricingUnit, &p.Price); err != nil {
			return nil, fmt.Errorf("scan export row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// nullableID maps a zero id to NULL so unparented rows do not violate the
// foreign key.
func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
