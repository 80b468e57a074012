package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	domcategory "example.com/beadwork-storefront/app/internal/domain/category"
	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
	cataloguc "example.com/beadwork-storefront/app/internal/usecase/catalog"
)

// CatalogSource reads the curated catalog from the categories and products
// tables. It only ever reads; the storefront never writes back.
type CatalogSource struct {
	db *sql.DB
}

func NewCatalogSource(db *sql.DB) *CatalogSource {
	return &CatalogSource{db: db}
}

func (r *CatalogSource) Load(ctx context.Context) (*cataloguc.Seed, error) {
	categories, err := r.listCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	products, err := r.listProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return &cataloguc.Seed{Products: products, Categories: categories}, nil
}

func (r *CatalogSource) listCategories(ctx context.Context) ([]*domcategory.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, description
        FROM categories
        ORDER BY position, id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domcategory.Category
	for rows.Next() {
		var c domcategory.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *CatalogSource) listProducts(ctx context.Context) ([]*domproduct.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, description, price, category, image, featured, colors, in_stock
        FROM products
        ORDER BY LENGTH(id), id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domproduct.Product
	for rows.Next() {
		var p domproduct.Product
		var colors []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Image, &p.Featured, &colors, &p.InStock); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(colors, &p.Colors); err != nil {
			return nil, fmt.Errorf("product %s colors: %w", p.ID, err)
		}
		p.Price = p.Price.Round(2)
		products = append(products, &p)
	}
	return products, rows.Err()
}
