package api

import (
	"context"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
)

type Settlement struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
	Destination string  `json:"destination,omitempty"`
	ChargeCount int     `json:"charge_count,omitempty"`
	SettledAt   string  `json:"settled_datetime,omitempty"`
	CreatedAt   string  `json:"created_datetime,omitempty"`
	FeeAmount   float64 `json:"fee_amount,omitempty"`
	NetAmount   float64 `json:"net_amount,omitempty"`
	BatchRef    string  `json:"batch_reference,omitempty"`
	Meta        Meta    `json:"meta,omitempty"`
}

type SettlementsListQuery struct {
	ListQuery
	Status string
	From   string
	To     string
}

func (q SettlementsListQuery) params() routing.Params {
	params := q.ListQuery.params()
	if q.Status != "" {
		params = append(params, routing.P("status", q.Status))
	}
	if q.From != "" {
		params = append(params, routing.P("from", q.From))
	}
	if q.To != "" {
		params = append(params, routing.P("to", q.To))
	}
	return params
}

// SettlementsService wraps the /settlements resource group.
type SettlementsService struct {
	client *Client
}

func NewSettlementsService(client *Client) *SettlementsService {
	return &SettlementsService{client: client}
}

func (s *SettlementsService) List(ctx context.Context, query SettlementsListQuery, opts ...CallOption) ([]Settlement, core.PageInfoMeta, error) {
	return fetchPage[[]Settlement](s.client, ctx, "/settlements", query.params(), opts)
}

func (s *SettlementsService) Retrieve(ctx context.Context, id string, opts ...CallOption) (Settlement, error) {
	return fetch[Settlement](s.client, ctx, "/settlements/{id}", routing.Params{routing.P("id", id)}, nil, opts)
}
