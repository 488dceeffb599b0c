package api

import (
	"context"
	"net/http"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
)

type CustomerName struct {
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
}

type Customer struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	Name      CustomerName `json:"name,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Country   string       `json:"country,omitempty"`
	Meta      Meta         `json:"meta,omitempty"`
	CreatedAt string       `json:"created_datetime,omitempty"`
}

type CustomerCreateRequest struct {
	Email   string       `json:"email"`
	Name    CustomerName `json:"name,omitempty"`
	Phone   string       `json:"phone,omitempty"`
	Country string       `json:"country,omitempty"`
	Meta    Meta         `json:"meta,omitempty"`
}

type CustomerUpdateRequest struct {
	Name  CustomerName `json:"name,omitempty"`
	Phone string       `json:"phone,omitempty"`
	Meta  Meta         `json:"meta,omitempty"`
}

// CustomersService wraps the /customers resource group.
type CustomersService struct {
	client *Client
}

func NewCustomersService(client *Client) *CustomersService {
	return &CustomersService{client: client}
}

func (s *CustomersService) List(ctx context.Context, query ListQuery, opts ...CallOption) ([]Customer, core.PageInfoMeta, error) {
	return fetchPage[[]Customer](s.client, ctx, "/customers", query.params(), opts)
}

// Search finds customers matching a free-text query.
func (s *CustomersService) Search(ctx context.Context, query string, opts ...CallOption) ([]Customer, error) {
	body := map[string]string{"query": query}
	return submit[[]Customer](s.client, ctx, http.MethodPost, "/customers/search", nil, body, opts)
}

func (s *CustomersService) Create(ctx context.Context, req CustomerCreateRequest, opts ...CallOption) (Customer, error) {
	return submit[Customer](s.client, ctx, http.MethodPost, "/customers", nil, req, opts)
}

func (s *CustomersService) Retrieve(ctx context.Context, id string, opts ...CallOption) (Customer, error) {
	return fetch[Customer](s.client, ctx, "/customers/{id}", routing.Params{routing.P("id", id)}, nil, opts)
}

func (s *CustomersService) Update(ctx context.Context, id string, req CustomerUpdateRequest, opts ...CallOption) (Customer, error) {
	return submit[Customer](s.client, ctx, http.MethodPut, "/customers/{id}", routing.Params{routing.P("id", id)}, req, opts)
}
