package cart

import "sync"

// Store keeps one cart per browser session id.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Ensure returns the session's cart, creating it on first use.
func (s *Store) Ensure(sid string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sid]; ok {
		return c
	}
	c := New()
	s.carts[sid] = c
	return c
}
