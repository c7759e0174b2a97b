package checkout

import (
	"errors"
	"fmt"
	"time"

	"playgear/internal/domain"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrSubmitInFlight = errors.New("a checkout is already in flight")
)

const orderIDPrefix = "ORD-"

// DefaultOrderID derives an id from the low-order digits of the clock in
// milliseconds. Not globally unique, but collision-improbable at demo
// scale and stable enough for the spreadsheet rows.
func DefaultOrderID(now time.Time) string {
	return fmt.Sprintf("%s%09d", orderIDPrefix, now.UnixMilli()%1_000_000_000)
}

// BuildOrder turns the cart lines and customer details into an immutable
// Pending order. It never mutates the cart or the catalog. The stored
// total is the plain sum of line subtotals; any shipping surcharge is a
// display-time addition in the checkout view and is never persisted.
func BuildOrder(lines []domain.CartLine, cust domain.Customer, gen func() string, now time.Time) (domain.Order, error) {
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	items := make([]domain.OrderItem, 0, len(lines))
	total := 0
	for _, ln := range lines {
		items = append(items, domain.OrderItem{
			ID:    ln.Product.ID,
			Title: ln.Product.Title,
			Qty:   ln.Qty,
			Price: ln.Product.Price,
		})
		total += ln.Subtotal()
	}
	return domain.Order{
		ID:        gen(),
		CreatedAt: now.UTC(),
		Customer:  cust,
		Items:     items,
		Total:     total,
		Status:    domain.StatusPending,
	}, nil
}
