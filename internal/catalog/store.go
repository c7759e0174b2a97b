package catalog

import (
	"sync"

	"playgear/internal/domain"
)

// Store holds the product list in memory. The webhook spreadsheet is the
// actual inventory source of truth; stock here only moves via the
// optimistic decrement applied after a confirmed checkout.
type Store struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Product
	order []string
	subs  []func(id string, stock int)
}

func NewStore(products []domain.Product) *Store {
	s := &Store{byID: make(map[string]*domain.Product, len(products))}
	for i := range products {
		p := products[i]
		if _, dup := s.byID[p.ID]; dup {
			continue
		}
		s.byID[p.ID] = &p
		s.order = append(s.order, p.ID)
	}
	return s
}

func (s *Store) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

func (s *Store) Get(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return *p, true
}

// SetStock replaces a product's stock level and notifies subscribers.
func (s *Store) SetStock(id string, qty int) {
	if qty < 0 {
		qty = 0
	}
	s.mu.Lock()
	p, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	p.Stock = qty
	subs := append([]func(string, int){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(id, qty)
	}
}

// Decrement lowers stock by qty, floored at zero. Unknown ids are ignored.
func (s *Store) Decrement(id string, qty int) {
	s.mu.Lock()
	p, ok := s.byID[id]
	if !ok || qty <= 0 {
		s.mu.Unlock()
		return
	}
	left := p.Stock - qty
	if left < 0 {
		left = 0
	}
	p.Stock = left
	subs := append([]func(string, int){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(id, left)
	}
}

// Subscribe registers a callback invoked after every stock change.
// Callbacks run outside the store lock.
func (s *Store) Subscribe(fn func(id string, stock int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Availability converts stock to IN_STOCK / LOW_STOCK / OUT_OF_STOCK.
func (s *Store) Availability(id string) domain.Availability {
	p, ok := s.Get(id)
	if !ok {
		return domain.Availability{Status: "OUT_OF_STOCK", Qty: 0}
	}
	status := "OUT_OF_STOCK"
	switch {
	case p.Stock >= 5:
		status = "IN_STOCK"
	case p.Stock > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: p.Stock}
}
