package admin

import (
	"context"
	"errors"

	"playgear/internal/domain"
	"playgear/internal/webhook"
)

var ErrBadSecret = errors.New("invalid admin secret")

// Service is the read path: it pulls previously submitted orders back out
// of the spreadsheet, gated by the shared secret.
type Service struct {
	Verifier Verifier
	Client   *webhook.Client
}

func NewService(v Verifier, client *webhook.Client) *Service {
	return &Service{Verifier: v, Client: client}
}

// FetchOrders refuses before any network call when the secret is wrong.
func (s *Service) FetchOrders(ctx context.Context, secret string) ([]domain.Order, error) {
	if s.Verifier == nil || !s.Verifier.Verify(secret) {
		return nil, ErrBadSecret
	}
	return s.Client.FetchOrders(ctx)
}
