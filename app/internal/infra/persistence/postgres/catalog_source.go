package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domcategory "example.com/beadwork-storefront/app/internal/domain/category"
	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
	cataloguc "example.com/beadwork-storefront/app/internal/usecase/catalog"
)

// Querier is satisfied by *pgx.Conn and pgx transactions.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// CatalogSource reads the curated catalog from PostgreSQL. Colours are a
// text[] column there.
type CatalogSource struct {
	db Querier
}

func NewCatalogSource(db Querier) *CatalogSource {
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
	rows, err := r.db.Query(ctx, `
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
	rows, err := r.db.Query(ctx, `
        SELECT id, name, description, price::text, category, image, featured, colors, in_stock
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
		var price string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &price, &p.Category, &p.Image, &p.Featured, &p.Colors, &p.InStock); err != nil {
			return nil, err
		}
		p.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("product %s price: %w", p.ID, err)
		}
		p.Price = p.Price.Round(2)
		products = append(products, &p)
	}
	return products, rows.Err()
}
