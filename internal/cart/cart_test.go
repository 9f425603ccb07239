package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/storefront/internal/catalog"
)

func mustProduct(t *testing.T, id int) catalog.Product {
	t.Helper()
	p, err := catalog.Default().Get(id)
	if err != nil {
		t.Fatalf("catalog.Get(%d): %v", id, err)
	}
	return p
}

func TestAddItemToEmptyCart(t *testing.T) {
	for _, p := range catalog.Default().List() {
		c := AddItem(Cart{}, p)
		items := c.Items()
		if len(items) != 1 || items[0].ID != p.ID || items[0].Quantity != 1 {
			t.Fatalf("product %d: got %+v", p.ID, items)
		}
	}
}

func TestAddItemIncrementsInPlace(t *testing.T) {
	headphones := mustProduct(t, 1)
	watch := mustProduct(t, 2)

	c := AddItem(AddItem(Cart{}, headphones), watch)
	before := TotalItems(c)

	c = AddItem(c, headphones)

	if got := TotalItems(c); got != before+1 {
		t.Fatalf("expected %d items, got %d", before+1, got)
	}
	items := c.Items()
	if items[0].ID != headphones.ID || items[0].Quantity != 2 {
		t.Fatalf("headphones should stay first with qty 2, got %+v", items[0])
	}
	if items[1].ID != watch.ID || items[1].Quantity != 1 {
		t.Fatalf("watch should be untouched, got %+v", items[1])
	}
}

func TestAddItemDoesNotMutateInput(t *testing.T) {
	p := mustProduct(t, 3)
	orig := AddItem(Cart{}, p)

	_ = AddItem(orig, p)
	_ = AddItem(orig, mustProduct(t, 4))

	if orig.Len() != 1 {
		t.Fatalf("original cart changed length: %d", orig.Len())
	}
	if it, _ := orig.Find(p.ID); it.Quantity != 1 {
		t.Fatalf("original cart changed quantity: %d", it.Quantity)
	}
}

func TestRemoveItem(t *testing.T) {
	mouse := mustProduct(t, 5)
	hub := mustProduct(t, 6)

	t.Run("quantity above one -> decrement", func(t *testing.T) {
		c := AddItem(AddItem(Cart{}, mouse), mouse)
		c = RemoveItem(c, mouse.ID)
		it, ok := c.Find(mouse.ID)
		if !ok || it.Quantity != 1 {
			t.Fatalf("expected qty 1, got %+v (found=%v)", it, ok)
		}
	})

	t.Run("quantity one -> entry removed", func(t *testing.T) {
		c := AddItem(AddItem(Cart{}, mouse), hub)
		c = RemoveItem(c, mouse.ID)
		if c.Contains(mouse.ID) {
			t.Fatal("mouse should be gone")
		}
		if items := c.Items(); len(items) != 1 || items[0].ID != hub.ID {
			t.Fatalf("unexpected items: %+v", items)
		}
	})

	t.Run("unknown id -> unchanged", func(t *testing.T) {
		c := AddItem(Cart{}, hub)
		got := RemoveItem(c, 999)
		if !got.Equal(c) {
			t.Fatalf("expected unchanged cart, got %+v", got.Items())
		}
	})

	t.Run("empty cart -> still empty", func(t *testing.T) {
		if got := RemoveItem(Cart{}, 1); !got.IsEmpty() {
			t.Fatal("expected empty cart")
		}
	})
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	kb := mustProduct(t, 4)
	stand := mustProduct(t, 3)

	start := AddItem(AddItem(AddItem(Cart{}, kb), stand), kb)

	for _, p := range []catalog.Product{kb, stand, mustProduct(t, 1)} {
		c := start
		for i := 0; i < 3; i++ {
			c = AddItem(c, p)
		}
		for i := 0; i < 3; i++ {
			c = RemoveItem(c, p.ID)
		}
		if !c.Equal(start) {
			t.Fatalf("product %d: round trip changed cart: %+v", p.ID, c.Items())
		}
	}
}

func TestTotals(t *testing.T) {
	headphones := mustProduct(t, 1)
	mouse := mustProduct(t, 5)

	c := AddItem(AddItem(AddItem(Cart{}, headphones), headphones), mouse)

	if got := TotalItems(c); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}

	want := decimal.RequireFromString("339.97")
	if got := TotalPrice(c); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}

	s := Summarize(c)
	if s.Subtotal != "$339.97" || s.Total != "$339.97" || s.Shipping != "Free" {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestTotalPriceKeepsPrecision(t *testing.T) {
	// 0.1 + 0.2 style drift must not appear.
	p := catalog.Product{ID: 1, Name: "penny", Price: decimal.RequireFromString("0.1")}
	q := catalog.Product{ID: 2, Name: "two", Price: decimal.RequireFromString("0.2")}
	c := AddItem(AddItem(Cart{}, p), q)

	if got := TotalPrice(c); got.String() != "0.3" {
		t.Fatalf("expected exact 0.3, got %s", got)
	}
}

func TestEmptyCartTotals(t *testing.T) {
	if TotalItems(Cart{}) != 0 {
		t.Fatal("expected zero items")
	}
	if got := Summarize(Cart{}); got.Total != "$0.00" {
		t.Fatalf("expected $0.00, got %s", got.Total)
	}
}
