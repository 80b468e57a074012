package seed

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	domcategory "example.com/beadwork-storefront/app/internal/domain/category"
	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
	cataloguc "example.com/beadwork-storefront/app/internal/usecase/catalog"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Document is the on-disk catalog layout: {"products": [...], "categories": [...]}.
type Document struct {
	Products   []ProductRecord  `json:"products" yaml:"products"`
	Categories []CategoryRecord `json:"categories" yaml:"categories"`
}

type ProductRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Price       float64  `json:"price" yaml:"price"`
	Category    string   `json:"category" yaml:"category"`
	Image       string   `json:"image" yaml:"image"`
	Featured    bool     `json:"featured" yaml:"featured"`
	Colors      []string `json:"colors" yaml:"colors"`
	InStock     bool     `json:"inStock" yaml:"inStock"`
}

type CategoryRecord struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s catalog: %w", format, err)
	}
	return &doc, nil
}

func (d *Document) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	default:
		return fmt.Errorf("unsupported catalog format %q", format)
	}
}

func (d *Document) Seed() *cataloguc.Seed {
	seed := &cataloguc.Seed{
		Products:   make([]*domproduct.Product, 0, len(d.Products)),
		Categories: make([]*domcategory.Category, 0, len(d.Categories)),
	}
	for _, r := range d.Products {
		seed.Products = append(seed.Products, &domproduct.Product{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Price:       decimal.NewFromFloat(r.Price).Round(2),
			Category:    r.Category,
			Image:       r.Image,
			Featured:    r.Featured,
			Colors:      r.Colors,
			InStock:     r.InStock,
		})
	}
	for _, r := range d.Categories {
		seed.Categories = append(seed.Categories, &domcategory.Category{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
		})
	}
	return seed
}

// FromCatalog builds a document from loaded catalog entries.
func FromCatalog(products []*domproduct.Product, categories []*domcategory.Category) *Document {
	doc := &Document{
		Products:   make([]ProductRecord, 0, len(products)),
		Categories: make([]CategoryRecord, 0, len(categories)),
	}
	for _, p := range products {
		doc.Products = append(doc.Products, ProductRecord{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.InexactFloat64(),
			Category:    p.Category,
			Image:       p.Image,
			Featured:    p.Featured,
			Colors:      p.Colors,
			InStock:     p.InStock,
		})
	}
	for _, c := range categories {
		doc.Categories = append(doc.Categories, CategoryRecord{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		})
	}
	return doc
}
