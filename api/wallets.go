package api

import (
	"context"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
)

type Wallet struct {
	ID               string  `json:"id"`
	Currency         string  `json:"currency"`
	AvailableBalance float64 `json:"available_balance"`
	LedgerBalance    float64 `json:"ledger_balance,omitempty"`
	Status           string  `json:"status,omitempty"`
}

// WalletsService wraps the merchant balance endpoints.
type WalletsService struct {
	client *Client
}

func NewWalletsService(client *Client) *WalletsService {
	return &WalletsService{client: client}
}

func (s *WalletsService) List(ctx context.Context, query ListQuery, opts ...CallOption) ([]Wallet, core.PageInfoMeta, error) {
	return fetchPage[[]Wallet](s.client, ctx, "/wallets", query.params(), opts)
}

func (s *WalletsService) Retrieve(ctx context.Context, id string, opts ...CallOption) (Wallet, error) {
	return fetch[Wallet](s.client, ctx, "/wallets/{id}", routing.Params{routing.P("id", id)}, nil, opts)
}
