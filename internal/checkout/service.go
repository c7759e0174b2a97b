package checkout

import (
	"context"
	"sync/atomic"
	"time"

	"playgear/internal/cart"
	"playgear/internal/catalog"
	"playgear/internal/domain"
	applog "playgear/internal/log"
	"playgear/internal/repos"
	"playgear/internal/webhook"
)

// Service submits a session's cart to the webhook. On a confirmed
// submission it commits the local effects: optimistic stock decrement
// plus cart clear, applied together. Any failure leaves cart and stock
// exactly as they were.
type Service struct {
	Carts   *cart.Store
	Catalog *catalog.Store
	Client  *webhook.Client
	Journal *repos.JournalRepo // optional; nil disables the local record

	NewID func(time.Time) string
	Now   func() time.Time

	busy atomic.Bool
}

func NewService(carts *cart.Store, cat *catalog.Store, client *webhook.Client, journal *repos.JournalRepo) *Service {
	return &Service{
		Carts:   carts,
		Catalog: cat,
		Client:  client,
		Journal: journal,
		NewID:   DefaultOrderID,
		Now:     time.Now,
	}
}

// Submit runs one checkout for the given session. Only one submission may
// be in flight at a time; a reentrant call fails fast with
// ErrSubmitInFlight. There is no retry: the webhook has no idempotency
// key, so at-most-one-successful-submission must hold.
func (s *Service) Submit(ctx context.Context, sid string, cust domain.Customer) (domain.Order, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return domain.Order{}, ErrSubmitInFlight
	}
	defer s.busy.Store(false)

	if !s.Client.Configured() {
		return domain.Order{}, webhook.ErrEndpointUnset
	}

	c := s.Carts.Ensure(sid)
	lines := c.Lines()
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	now := s.Now()
	order, err := BuildOrder(lines, cust, func() string { return s.NewID(now) }, now)
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.Client.SubmitOrder(ctx, order); err != nil {
		return domain.Order{}, err
	}

	// Commit phase: both effects or neither.
	for _, ln := range lines {
		s.Catalog.Decrement(ln.Product.ID, ln.Qty)
	}
	c.Clear()

	if s.Journal != nil {
		if err := s.Journal.Record(order); err != nil {
			// The order is already on the sheet; a journal miss is not a
			// checkout failure.
			applog.Error(nil, "checkout.journal.fail", err, map[string]any{"order_id": order.ID})
		}
	}
	return order, nil
}
