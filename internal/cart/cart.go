package cart

import (
	"sync"

	"playgear/internal/domain"
)

// Cart maps product id to a single aggregated line. Handlers run
// concurrently, so every op takes the lock.
type Cart struct {
	mu    sync.Mutex
	lines map[string]*domain.CartLine
	order []string // insertion order, for stable rendering
}

func New() *Cart {
	return &Cart{lines: make(map[string]*domain.CartLine)}
}

// Add merges qty into an existing line or inserts a new one.
// A qty below 1 adds a single unit.
func (c *Cart) Add(p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if ln, ok := c.lines[p.ID]; ok {
		ln.Qty += qty
		return
	}
	c.lines[p.ID] = &domain.CartLine{Product: p, Qty: qty}
	c.order = append(c.order, p.ID)
}

// UpdateQty replaces a line's quantity. Quantities below 1 and unknown
// ids are silently ignored.
func (c *Cart) UpdateQty(id string, qty int) {
	if qty < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if ln, ok := c.lines[id]; ok {
		ln.Qty = qty
	}
}

func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.lines[id]; !ok {
		return
	}
	delete(c.lines, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[string]*domain.CartLine)
	c.order = nil
}

func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, ln := range c.lines {
		total += ln.Subtotal()
	}
	return total
}

// Lines returns a copy of the cart in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}
