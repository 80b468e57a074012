package cart

import (
	"github.com/shopspring/decimal"

	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
)

// MaxQuantity is the largest quantity a single line may hold.
const MaxQuantity int64 = 999

// Line is one product's entry in a cart. Display fields are captured when
// the line is opened and never refreshed from the catalog.
type Line struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Image     string
	Category  string
	Quantity  int64
}

func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// Cart keeps lines in insertion order. A product id appears on at most one
// line and every stored line has a quantity between one and MaxQuantity.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{lines: []Line{}}
}

// Add puts one unit of p into the cart. created reports whether a new line
// was opened rather than an existing one incremented. A line already at
// MaxQuantity is left unchanged and ErrQuantityLimit is returned.
func (c *Cart) Add(p *domproduct.Product) (line Line, created bool, err error) {
	if !p.InStock {
		return Line{}, false, domproduct.ErrOutOfStock
	}

	if i := c.index(p.ID); i >= 0 {
		if c.lines[i].Quantity >= MaxQuantity {
			return c.lines[i], false, ErrQuantityLimit
		}
		c.lines[i].Quantity++
		return c.lines[i], false, nil
	}

	line = Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Category:  p.Category,
		Quantity:  1,
	}
	c.lines = append(c.lines, line)
	return line, true, nil
}

// SetQuantity sets the line quantity to exactly quantity. A quantity of zero
// or less removes the line and values above MaxQuantity are clamped to it.
// It reports whether a line for productID existed.
func (c *Cart) SetQuantity(productID string, quantity int64) bool {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.lines[i].Quantity = min(quantity, MaxQuantity)
	return true
}

// Remove deletes the line for productID and reports whether it existed.
func (c *Cart) Remove(productID string) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

func (c *Cart) Line(productID string) (Line, bool) {
	i := c.index(productID)
	if i < 0 {
		return Line{}, false
	}
	return c.lines[i], true
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clone() *Cart {
	return &Cart{lines: c.Lines()}
}

func (c *Cart) index(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}
