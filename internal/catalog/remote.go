package catalog

import (
	"context"
	"errors"

	"playgear/internal/webhook"
)

var ErrEmptyCatalog = errors.New("remote catalog returned no products")

// FromWebhook builds a store from the spreadsheet's catalog sheet.
// Stock is still mutated locally only; a restart re-reads the sheet.
func FromWebhook(ctx context.Context, c *webhook.Client) (*Store, error) {
	products, err := c.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}
	return NewStore(products), nil
}
