package api

import (
	"context"
	"net/http"

	"github.com/toneflix/flutterwave-go/routing"
)

type TransferRate struct {
	ID        string  `json:"id"`
	Rate      float64 `json:"rate"`
	Source    Money   `json:"source"`
	Dest      Money   `json:"destination"`
	ExpiresAt string  `json:"expiry_datetime,omitempty"`
	CreatedAt string  `json:"created_datetime,omitempty"`
}

type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type TransferRateRequest struct {
	Source Money `json:"source"`
	Dest   Money `json:"destination"`
}

// TransferRatesService quotes and retrieves cross-currency conversion rates
// used by international transfers.
type TransferRatesService struct {
	client *Client
}

func NewTransferRatesService(client *Client) *TransferRatesService {
	return &TransferRatesService{client: client}
}

// Convert requests a fresh conversion quote.
func (s *TransferRatesService) Convert(ctx context.Context, req TransferRateRequest, opts ...CallOption) (TransferRate, error) {
	return submit[TransferRate](s.client, ctx, http.MethodPost, "/transfers/rates", nil, req, opts)
}

func (s *TransferRatesService) Retrieve(ctx context.Context, id string, opts ...CallOption) (TransferRate, error) {
	return fetch[TransferRate](s.client, ctx, "/transfers/rates/{id}", routing.Params{routing.P("id", id)}, nil, opts)
}
