package catalog

import "github.com/shopspring/decimal"

const imageParams = "?w=400&h=400&fit=crop"

var featured = []Product{
	{
		ID:       1,
		Name:     "Wireless Headphones",
		Price:    decimal.RequireFromString("129.99"),
		Image:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e" + imageParams,
		Rating:   4.5,
		Category: "Audio",
	},
	{
		ID:       2,
		Name:     "Smart Watch",
		Price:    decimal.RequireFromString("299.99"),
		Image:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30" + imageParams,
		Rating:   4.8,
		Category: "Wearables",
	},
	{
		ID:       3,
		Name:     "Laptop Stand",
		Price:    decimal.RequireFromString("49.99"),
		Image:    "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46" + imageParams,
		Rating:   4.2,
		Category: "Accessories",
	},
	{
		ID:       4,
		Name:     "Mechanical Keyboard",
		Price:    decimal.RequireFromString("149.99"),
		Image:    "https://images.unsplash.com/photo-1587829741301-dc798b83add3" + imageParams,
		Rating:   4.7,
		Category: "Peripherals",
	},
	{
		ID:       5,
		Name:     "Wireless Mouse",
		Price:    decimal.RequireFromString("79.99"),
		Image:    "https://images.unsplash.com/photo-1527814050087-3793815479db" + imageParams,
		Rating:   4.4,
		Category: "Peripherals",
	},
	{
		ID:       6,
		Name:     "USB-C Hub",
		Price:    decimal.RequireFromString("59.99"),
		Image:    "https://images.unsplash.com/photo-1625948515291-69613efd103f" + imageParams,
		Rating:   4.6,
		Category: "Accessories",
	},
}

// Default returns the featured products shown on the shop screen.
func Default() *Catalog {
	c, err := New(featured...)
	if err != nil {
		panic(err)
	}
	return c
}
