package checkout_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"playgear/internal/cart"
	"playgear/internal/catalog"
	"playgear/internal/checkout"
	"playgear/internal/domain"
	"playgear/internal/webhook"
)

type fixture struct {
	svc   *checkout.Service
	carts *cart.Store
	cat   *catalog.Store
	calls *int32
}

func newFixture(t *testing.T, handler http.HandlerFunc) (fixture, func()) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))

	cat := catalog.NewStore([]domain.Product{
		{ID: "shoe-01", Title: "Court Ace Sneakers", Price: 599, Stock: 12},
		{ID: "cap-01", Title: "Classic Team Cap", Price: 199, Stock: 1},
	})
	carts := cart.NewStore()
	svc := checkout.NewService(carts, cat, webhook.NewClient(srv.URL), nil)
	return fixture{svc: svc, carts: carts, cat: cat, calls: &calls}, srv.Close
}

var asha = domain.Customer{Name: "Asha", Phone: "9876543210", Address: "12 MG Road"}

func TestSubmitEmptyCartNoNetworkCall(t *testing.T) {
	fx, stop := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	defer stop()

	_, err := fx.svc.Submit(context.Background(), "sid", asha)
	if !errors.Is(err, checkout.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
	if n := atomic.LoadInt32(fx.calls); n != 0 {
		t.Fatalf("webhook called %d times for an empty cart", n)
	}
}

func TestSubmitUnconfiguredEndpoint(t *testing.T) {
	cat := catalog.NewStore(catalog.DefaultProducts())
	carts := cart.NewStore()
	for _, endpoint := range []string{"", webhook.Placeholder} {
		svc := checkout.NewService(carts, cat, webhook.NewClient(endpoint), nil)
		_, err := svc.Submit(context.Background(), "sid", asha)
		if !errors.Is(err, webhook.ErrEndpointUnset) {
			t.Fatalf("endpoint %q: want ErrEndpointUnset, got %v", endpoint, err)
		}
	}
}

func TestSubmitSuccessCommits(t *testing.T) {
	var received domain.Order
	fx, stop := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("bad order payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})
	defer stop()

	shoe, _ := fx.cat.Get("shoe-01")
	cap1, _ := fx.cat.Get("cap-01")
	c := fx.carts.Ensure("sid")
	c.Add(shoe, 2)
	c.Add(cap1, 3) // more than the single unit in stock

	order, err := fx.svc.Submit(context.Background(), "sid", asha)
	if err != nil {
		t.Fatal(err)
	}
	if order.Total != 2*599+3*199 {
		t.Fatalf("bad total: %d", order.Total)
	}
	if received.ID != order.ID || received.Status != domain.StatusPending {
		t.Fatalf("webhook saw a different order: %+v", received)
	}
	if !c.Empty() {
		t.Fatal("cart not cleared after a confirmed submission")
	}
	if p, _ := fx.cat.Get("shoe-01"); p.Stock != 10 {
		t.Fatalf("want shoe stock=10, got %d", p.Stock)
	}
	// optimistic decrement floors at zero when over-sold
	if p, _ := fx.cat.Get("cap-01"); p.Stock != 0 {
		t.Fatalf("want cap stock=0, got %d", p.Stock)
	}
}

func TestSubmitWebhookErrorLeavesStateUntouched(t *testing.T) {
	fx, stop := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer stop()

	shoe, _ := fx.cat.Get("shoe-01")
	c := fx.carts.Ensure("sid")
	c.Add(shoe, 2)

	_, err := fx.svc.Submit(context.Background(), "sid", asha)
	var se *webhook.StatusError
	if !errors.As(err, &se) || se.Code != http.StatusInternalServerError {
		t.Fatalf("want StatusError(500), got %v", err)
	}
	if c.Total() != 1198 {
		t.Fatalf("cart changed after a failed submission: total=%d", c.Total())
	}
	if p, _ := fx.cat.Get("shoe-01"); p.Stock != 12 {
		t.Fatalf("stock changed after a failed submission: %d", p.Stock)
	}
}

func TestSubmitTransportErrorLeavesStateUntouched(t *testing.T) {
	fx, stop := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	stop() // server gone: every call is a transport failure

	shoe, _ := fx.cat.Get("shoe-01")
	c := fx.carts.Ensure("sid")
	c.Add(shoe, 1)

	_, err := fx.svc.Submit(context.Background(), "sid", asha)
	if !errors.Is(err, webhook.ErrTransport) {
		t.Fatalf("want ErrTransport, got %v", err)
	}
	if c.Empty() {
		t.Fatal("cart cleared after a transport failure")
	}
	if p, _ := fx.cat.Get("shoe-01"); p.Stock != 12 {
		t.Fatalf("stock changed after a transport failure: %d", p.Stock)
	}
}

func TestSubmitSuppressesReentrantDoubleSubmit(t *testing.T) {
	inFlight := make(chan struct{})
	release := make(chan struct{})
	var inFlightOnce sync.Once
	fx, stop := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		inFlightOnce.Do(func() { close(inFlight) })
		<-release
		w.WriteHeader(http.StatusOK)
	})
	defer stop()

	shoe, _ := fx.cat.Get("shoe-01")
	fx.carts.Ensure("sid").Add(shoe, 1)

	done := make(chan error, 1)
	go func() {
		_, err := fx.svc.Submit(context.Background(), "sid", asha)
		done <- err
	}()

	<-inFlight
	if _, err := fx.svc.Submit(context.Background(), "sid", asha); !errors.Is(err, checkout.ErrSubmitInFlight) {
		t.Fatalf("want ErrSubmitInFlight, got %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}

	// flag released: a fresh checkout may run again
	fx.carts.Ensure("sid").Add(shoe, 1)
	if _, err := fx.svc.Submit(context.Background(), "sid", asha); err != nil {
		t.Fatalf("busy flag not released: %v", err)
	}
}
