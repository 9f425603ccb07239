package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	c := NewMemoryCache("storefront").(*memoryCache)
	c.now = func() time.Time { return now }

	t.Run("miss -> empty string", func(t *testing.T) {
		got, err := c.Get(ctx, "nope")
		if err != nil || got != "" {
			t.Fatalf("got (%q, %v)", got, err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := c.Set(ctx, "k", []byte(`{"a":1}`), time.Minute); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, _ := c.Get(ctx, "k")
		if got != `{"a":1}` {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("expired -> miss", func(t *testing.T) {
		_ = c.Set(ctx, "short", "v", time.Second)
		now = now.Add(2 * time.Second)
		got, _ := c.Get(ctx, "short")
		if got != "" {
			t.Fatalf("expected expiry, got %q", got)
		}
	})
}

func TestGenerateKey(t *testing.T) {
	c := NewMemoryCache("storefront")
	if got := c.GenerateKey("add_item", "abc"); got != "storefront:add_item:abc" {
		t.Fatalf("got %q", got)
	}
}
