package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
)

type Charge struct {
	ID              string          `json:"id"`
	Amount          float64         `json:"amount"`
	Currency        string          `json:"currency"`
	Reference       string          `json:"reference"`
	CustomerID      string          `json:"customer_id"`
	PaymentMethodID string          `json:"payment_method_id"`
	Status          string          `json:"status"`
	RedirectURL     string          `json:"redirect_url,omitempty"`
	NextAction      json.RawMessage `json:"next_action,omitempty"`
	Meta            Meta            `json:"meta,omitempty"`
	CreatedAt       string          `json:"created_datetime,omitempty"`
}

type ChargeCreateRequest struct {
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	Reference         string  `json:"reference"`
	CustomerID        string  `json:"customer_id"`
	PaymentMethodID   string  `json:"payment_method_id"`
	RedirectURL       string  `json:"redirect_url,omitempty"`
	Recurring         bool    `json:"recurring,omitempty"`
	OrderID           string  `json:"order_id,omitempty"`
	MerchantVATAmount float64 `json:"merchant_vat_amount,omitempty"`
	Meta              Meta    `json:"meta,omitempty"`
}

type ChargeUpdateRequest struct {
	Authorization json.RawMessage `json:"authorization,omitempty"`
	Meta          Meta            `json:"meta,omitempty"`
}

type ChargesListQuery struct {
	ListQuery
	Status     string
	CustomerID string
}

func (q ChargesListQuery) params() routing.Params {
	params := q.ListQuery.params()
	if q.Status != "" {
		params = append(params, routing.P("status", q.Status))
	}
	if q.CustomerID != "" {
		params = append(params, routing.P("customer_id", q.CustomerID))
	}
	return params
}

// ChargesService wraps the /charges resource group.
type ChargesService struct {
	client *Client
}

func NewChargesService(client *Client) *ChargesService {
	return &ChargesService{client: client}
}

func (s *ChargesService) List(ctx context.Context, query ChargesListQuery, opts ...CallOption) ([]Charge, core.PageInfoMeta, error) {
	return fetchPage[[]Charge](s.client, ctx, "/charges", query.params(), opts)
}

func (s *ChargesService) Create(ctx context.Context, req ChargeCreateRequest, opts ...CallOption) (Charge, error) {
	return submit[Charge](s.client, ctx, http.MethodPost, "/charges", nil, req, opts)
}

func (s *ChargesService) Retrieve(ctx context.Context, id string, opts ...CallOption) (Charge, error) {
	return fetch[Charge](s.client, ctx, "/charges/{id}", routing.Params{routing.P("id", id)}, nil, opts)
}

func (s *ChargesService) Update(ctx context.Context, id string, req ChargeUpdateRequest, opts ...CallOption) (Charge, error) {
	return submit[Charge](s.client, ctx, http.MethodPut, "/charges/{id}", routing.Params{routing.P("id", id)}, req, opts)
}
