package api

import (
	"context"
	"net/http"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
)

type OrderItem struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Quantity int     `json:"quantity,omitempty"`
}

type Order struct {
	ID         string      `json:"id"`
	Amount     float64     `json:"amount"`
	Currency   string      `json:"currency"`
	Reference  string      `json:"reference"`
	CustomerID string      `json:"customer_id,omitempty"`
	Status     string      `json:"status"`
	Items      []OrderItem `json:"items,omitempty"`
	Meta       Meta        `json:"meta,omitempty"`
	CreatedAt  string      `json:"created_datetime,omitempty"`
}

type OrderCreateRequest struct {
	Amount     float64     `json:"amount"`
	Currency   string      `json:"currency"`
	Reference  string      `json:"reference"`
	CustomerID string      `json:"customer_id,omitempty"`
	Items      []OrderItem `json:"items,omitempty"`
	Meta       Meta        `json:"meta,omitempty"`
}

type OrderUpdateRequest struct {
	Status string `json:"status,omitempty"`
	Meta   Meta   `json:"meta,omitempty"`
}

// OrdersService wraps the /orders resource group.
type OrdersService struct {
	client *Client
}

func NewOrdersService(client *Client) *OrdersService {
	return &OrdersService{client: client}
}

func (s *OrdersService) List(ctx context.Context, query ListQuery, opts ...CallOption) ([]Order, core.PageInfoMeta, error) {
	return fetchPage[[]Order](s.client, ctx, "/orders", query.params(), opts)
}

func (s *OrdersService) Create(ctx context.Context, req OrderCreateRequest, opts ...CallOption) (Order, error) {
	return submit[Order](s.client, ctx, http.MethodPost, "/orders", nil, req, opts)
}

func (s *OrdersService) Retrieve(ctx context.Context, id string, opts ...CallOption) (Order, error) {
	return fetch[Order](s.client, ctx, "/orders/{id}", routing.Params{routing.P("id", id)}, nil, opts)
}

func (s *OrdersService) Update(ctx context.Context, id string, req OrderUpdateRequest, opts ...CallOption) (Order, error) {
	return submit[Order](s.client, ctx, http.MethodPut, "/orders/{id}", routing.Params{routing.P("id", id)}, req, opts)
}
