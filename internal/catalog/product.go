// Package catalog holds the fixed list of products offered by the storefront.
package catalog

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound is returned when an id is not part of the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProduct is returned by New for malformed product records.
	ErrInvalidProduct = errors.New("invalid product")
)

// Product is an immutable catalog entry.
type Product struct {
	ID       int
	Name     string
	Price    decimal.Decimal
	Image    string
	Rating   float64
	Category string
}

// Catalog is a read-only, ordered set of products keyed by id.
type Catalog struct {
	products []Product
	index    map[int]int
}

// New builds a catalog, rejecting duplicate ids, negative prices and
// ratings outside [0,5].
func New(products ...Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[int]int, len(products)),
	}
	for _, p := range products {
		if _, dup := c.index[p.ID]; dup {
			return nil, errors.Wrapf(ErrInvalidProduct, "duplicate id %d", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, errors.Wrapf(ErrInvalidProduct, "product %d: negative price %s", p.ID, p.Price)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return nil, errors.Wrapf(ErrInvalidProduct, "product %d: rating %.1f out of range", p.ID, p.Rating)
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// List returns the products in declaration order. The slice is a copy.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks a product up by id.
func (c *Catalog) Get(id int) (Product, error) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, errors.Wrapf(ErrProductNotFound, "id %d", id)
	}
	return c.products[i], nil
}

// Len reports the number of products.
func (c *Catalog) Len() int { return len(c.products) }
