package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"playgear/internal/domain"
)

// Placeholder is what ships in .env.example; an endpoint still set to it
// counts as unconfigured.
const Placeholder = "REPLACE_WITH_WEBHOOK_URL"

var (
	ErrEndpointUnset = errors.New("webhook endpoint not configured")
	ErrTransport     = errors.New("webhook transport failure")
)

// StatusError is a non-success HTTP status from the webhook.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook returned status %d", e.Code)
}

// Client talks to the single spreadsheet-backed webhook that acts as both
// the order sink and the order/catalog source.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{Endpoint: endpoint, HTTP: http.DefaultClient}
}

func (c *Client) Configured() bool {
	ep := strings.TrimSpace(c.Endpoint)
	return ep != "" && ep != Placeholder
}

// SubmitOrder POSTs the order JSON. Exactly one attempt: the webhook has
// no idempotency key, so a retry after a success response could double an
// order on the sheet.
func (c *Client) SubmitOrder(ctx context.Context, o domain.Order) error {
	if !c.Configured() {
		return ErrEndpointUnset
	}
	body, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	// Success body is not validated; the sheet script replies free-form.
	return nil
}

type ordersPayload struct {
	Orders []domain.Order `json:"orders"`
}

// FetchOrders GETs the webhook in admin mode and decodes {orders:[...]}.
// A response without the orders field is an empty list, not an error.
// Order is preserved as received.
func (c *Client) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	var p ordersPayload
	if err := c.get(ctx, "admin", &p); err != nil {
		return nil, err
	}
	if p.Orders == nil {
		return []domain.Order{}, nil
	}
	return p.Orders, nil
}

type catalogPayload struct {
	Products []domain.Product `json:"products"`
}

// FetchProducts GETs the webhook in catalog mode, for CATALOG_SOURCE=remote.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var p catalogPayload
	if err := c.get(ctx, "catalog", &p); err != nil {
		return nil, err
	}
	return p.Products, nil
}

func (c *Client) get(ctx context.Context, mode string, out any) error {
	if !c.Configured() {
		return ErrEndpointUnset
	}
	sep := "?"
	if strings.Contains(c.Endpoint, "?") {
		sep = "&"
	}
	url := c.Endpoint + sep + "mode=" + mode
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return nil
}
