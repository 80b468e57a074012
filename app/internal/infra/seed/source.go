package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	cataloguc "example.com/beadwork-storefront/app/internal/usecase/catalog"
)

//go:embed data/products.json
var embeddedCatalog []byte

// BytesSource decodes a catalog held in memory.
type BytesSource struct {
	data   []byte
	format Format
}

func NewBytesSource(data []byte, format Format) *BytesSource {
	return &BytesSource{data: data, format: format}
}

// Embedded returns the curated catalog compiled into the binary.
func Embedded() *BytesSource {
	return NewBytesSource(embeddedCatalog, FormatJSON)
}

func (s *BytesSource) Load(ctx context.Context) (*cataloguc.Seed, error) {
	doc, err := Decode(s.data, s.format)
	if err != nil {
		return nil, err
	}
	return doc.Seed(), nil
}

// FileSource reads a JSON or YAML catalog file, picking the format from
// the extension.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) (*cataloguc.Seed, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	doc, err := Decode(data, FormatFromPath(s.path))
	if err != nil {
		return nil, err
	}
	return doc.Seed(), nil
}
