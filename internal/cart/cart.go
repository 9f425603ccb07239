// Package cart implements the shopping cart as an immutable value.
//
// Every update returns a new Cart backed by a fresh slice, so a Cart handed
// to a renderer never changes underneath it. Entries are kept in insertion
// order, ids are unique and every quantity is at least one.
package cart

import "github.com/jcmexdev/storefront/internal/catalog"

// Item is a catalog product together with the selected quantity.
type Item struct {
	catalog.Product
	Quantity int
}

// Subtotal returns price * quantity for the line.
func (i Item) Subtotal() Money {
	return i.Price.Mul(decimalFromInt(i.Quantity))
}

// Cart is an ordered sequence of items keyed by product id.
// The zero value is an empty cart.
type Cart struct {
	items []Item
}

// Items returns a copy of the entries in insertion order.
func (c Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len is the number of distinct products in the cart.
func (c Cart) Len() int { return len(c.items) }

// IsEmpty reports whether the cart has no entries.
func (c Cart) IsEmpty() bool { return len(c.items) == 0 }

// Find returns the entry for productID.
func (c Cart) Find(productID int) (Item, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.items[i], true
	}
	return Item{}, false
}

// Contains reports whether productID has an entry.
func (c Cart) Contains(productID int) bool {
	return c.indexOf(productID) >= 0
}

// Equal compares ids, quantities and order.
func (c Cart) Equal(other Cart) bool {
	if len(c.items) != len(other.items) {
		return false
	}
	for i := range c.items {
		if c.items[i].ID != other.items[i].ID || c.items[i].Quantity != other.items[i].Quantity {
			return false
		}
	}
	return true
}

func (c Cart) indexOf(productID int) int {
	for i, it := range c.items {
		if it.ID == productID {
			return i
		}
	}
	return -1
}

// AddItem puts one more unit of p into the cart. An existing entry keeps its
// position; a new one is appended with quantity 1.
func AddItem(c Cart, p catalog.Product) Cart {
	idx := c.indexOf(p.ID)
	if idx < 0 {
		items := make([]Item, len(c.items), len(c.items)+1)
		copy(items, c.items)
		return Cart{items: append(items, Item{Product: p, Quantity: 1})}
	}

	items := make([]Item, len(c.items))
	copy(items, c.items)
	items[idx].Quantity++
	return Cart{items: items}
}

// RemoveItem takes one unit of productID out of the cart. The entry is dropped
// when its quantity would reach zero. Unknown ids leave the cart unchanged.
func RemoveItem(c Cart, productID int) Cart {
	idx := c.indexOf(productID)
	if idx < 0 {
		return c
	}

	if c.items[idx].Quantity > 1 {
		items := make([]Item, len(c.items))
		copy(items, c.items)
		items[idx].Quantity--
		return Cart{items: items}
	}

	items := make([]Item, 0, len(c.items)-1)
	items = append(items, c.items[:idx]...)
	items = append(items, c.items[idx+1:]...)
	return Cart{items: items}
}
