package cart_test

import (
	"testing"

	"playgear/internal/cart"
	"playgear/internal/domain"
)

var (
	shoe   = domain.Product{ID: "shoe-01", Title: "Court Ace Sneakers", Type: "SHOES", Price: 599, Stock: 12}
	jersey = domain.Product{ID: "jersey-01", Title: "Home Jersey 24/25", Type: "JERSEY", Price: 499, Stock: 20}
)

func TestAddMergesQuantities(t *testing.T) {
	c := cart.New()
	c.Add(shoe, 1)
	c.Add(shoe, 2)
	c.Add(shoe, 3)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	if lines[0].Qty != 6 {
		t.Fatalf("want qty=6, got %d", lines[0].Qty)
	}
}

func TestAddDefaultsToOneUnit(t *testing.T) {
	c := cart.New()
	c.Add(shoe, 0)
	c.Add(jersey, -3)
	for _, ln := range c.Lines() {
		if ln.Qty != 1 {
			t.Fatalf("want qty=1 for %s, got %d", ln.Product.ID, ln.Qty)
		}
	}
}

func TestUpdateQtyBelowOneIsNoop(t *testing.T) {
	c := cart.New()
	c.Add(shoe, 3)
	c.UpdateQty("shoe-01", 0)
	c.UpdateQty("shoe-01", -5)

	if got := c.Lines()[0].Qty; got != 3 {
		t.Fatalf("qty changed by no-op update: got %d", got)
	}
}

func TestUpdateQtyUnknownIDIsNoop(t *testing.T) {
	c := cart.New()
	c.Add(shoe, 2)
	c.UpdateQty("missing", 5)

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Qty != 2 {
		t.Fatalf("cart changed by unknown-id update: %+v", lines)
	}
}

func TestUpdateQtyReplaces(t *testing.T) {
	c := cart.New()
	c.Add(shoe, 2)
	c.UpdateQty("shoe-01", 7)
	if got := c.Lines()[0].Qty; got != 7 {
		t.Fatalf("want qty=7, got %d", got)
	}
}

func TestRemoveAndClear(t *testing.T) {
	c := cart.New()
	c.Add(shoe, 1)
	c.Add(jersey, 1)

	c.Remove("shoe-01")
	if len(c.Lines()) != 1 {
		t.Fatalf("want 1 line after remove, got %d", len(c.Lines()))
	}
	c.Remove("missing") // no-op

	c.Clear()
	if !c.Empty() || c.Total() != 0 {
		t.Fatalf("cart not empty after clear")
	}
}

func TestTotal(t *testing.T) {
	c := cart.New()
	if c.Total() != 0 {
		t.Fatalf("empty cart total should be 0, got %d", c.Total())
	}
	c.Add(shoe, 1)
	c.Add(jersey, 2)
	if got := c.Total(); got != 1597 {
		t.Fatalf("want total=1597, got %d", got)
	}
}

func TestLinesAreSnapshots(t *testing.T) {
	c := cart.New()
	c.Add(shoe, 1)
	lines := c.Lines()
	lines[0].Qty = 99
	if got := c.Lines()[0].Qty; got != 1 {
		t.Fatalf("mutating the snapshot leaked into the cart: %d", got)
	}
}

func TestStorePerSession(t *testing.T) {
	s := cart.NewStore()
	s.Ensure("sid-a").Add(shoe, 1)

	if !s.Ensure("sid-b").Empty() {
		t.Fatal("sessions share a cart")
	}
	if s.Ensure("sid-a").Total() != 599 {
		t.Fatal("session cart not stable across Ensure calls")
	}
}
