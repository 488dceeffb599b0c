package api

import (
	"context"
	"net/http"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
)

type Chargeback struct {
	ID        string  `json:"id"`
	ChargeID  string  `json:"charge_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	Reason    string  `json:"reason,omitempty"`
	CreatedAt string  `json:"created_datetime,omitempty"`
}

type ChargebackCreateRequest struct {
	ChargeID string  `json:"charge_id"`
	Amount   float64 `json:"amount"`
	Reason   string  `json:"reason,omitempty"`
}

type ChargebackUpdateRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// ChargebacksService wraps the /chargebacks resource group.
type ChargebacksService struct {
	client *Client
}

func NewChargebacksService(client *Client) *ChargebacksService {
	return &ChargebacksService{client: client}
}

func (s *ChargebacksService) List(ctx context.Context, query ListQuery, opts ...CallOption) ([]Chargeback, core.PageInfoMeta, error) {
	return fetchPage[[]Chargeback](s.client, ctx, "/chargebacks", query.params(), opts)
}

func (s *ChargebacksService) Create(ctx context.Context, req ChargebackCreateRequest, opts ...CallOption) (Chargeback, error) {
	return submit[Chargeback](s.client, ctx, http.MethodPost, "/chargebacks", nil, req, opts)
}

func (s *ChargebacksService) Retrieve(ctx context.Context, id string, opts ...CallOption) (Chargeback, error) {
	return fetch[Chargeback](s.client, ctx, "/chargebacks/{id}", routing.Params{routing.P("id", id)}, nil, opts)
}

func (s *ChargebacksService) Update(ctx context.Context, id string, req ChargebackUpdateRequest, opts ...CallOption) (Chargeback, error) {
	return submit[Chargeback](s.client, ctx, http.MethodPut, "/chargebacks/{id}", routing.Params{routing.P("id", id)}, req, opts)
}
