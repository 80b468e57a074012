package product

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrOutOfStock       = errors.New("product out of stock")
	ErrInvalidPriceBand = errors.New("invalid price band")
	ErrInvalidSortKey   = errors.New("invalid sort key")
)
