package api

import (
	"context"
	"net/http"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
)

type VirtualAccount struct {
	ID            string  `json:"id"`
	AccountNumber string  `json:"account_number"`
	AccountName   string  `json:"account_name,omitempty"`
	BankName      string  `json:"account_bank_name,omitempty"`
	Currency      string  `json:"currency"`
	Reference     string  `json:"reference,omitempty"`
	CustomerID    string  `json:"customer_id,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Status        string  `json:"status,omitempty"`
	ExpiresAt     string  `json:"account_expiration_datetime,omitempty"`
	Meta          Meta    `json:"meta,omitempty"`
	CreatedAt     string  `json:"created_datetime,omitempty"`
}

type VirtualAccountCreateRequest struct {
	Reference  string  `json:"reference"`
	CustomerID string  `json:"customer_id"`
	Currency   string  `json:"currency"`
	Amount     float64 `json:"amount,omitempty"`
	Expiry     int     `json:"expiry,omitempty"`
	Narration  string  `json:"narration,omitempty"`
	Meta       Meta    `json:"meta,omitempty"`
}

type VirtualAccountUpdateRequest struct {
	Status string `json:"status,omitempty"`
	Meta   Meta   `json:"meta,omitempty"`
}

// VirtualAccountsService wraps the /virtual-accounts resource group.
type VirtualAccountsService struct {
	client *Client
}

func NewVirtualAccountsService(client *Client) *VirtualAccountsService {
	return &VirtualAccountsService{client: client}
}

func (s *VirtualAccountsService) List(ctx context.Context, query ListQuery, opts ...CallOption) ([]VirtualAccount, core.PageInfoMeta, error) {
	return fetchPage[[]VirtualAccount](s.client, ctx, "/virtual-accounts", query.params(), opts)
}

func (s *VirtualAccountsService) Create(ctx context.Context, req VirtualAccountCreateRequest, opts ...CallOption) (VirtualAccount, error) {
	return submit[VirtualAccount](s.client, ctx, http.MethodPost, "/virtual-accounts", nil, req, opts)
}

func (s *VirtualAccountsService) Retrieve(ctx context.Context, id string, opts ...CallOption) (VirtualAccount, error) {
	return fetch[VirtualAccount](s.client, ctx, "/virtual-accounts/{id}", routing.Params{routing.P("id", id)}, nil, opts)
}

func (s *VirtualAccountsService) Update(ctx context.Context, id string, req VirtualAccountUpdateRequest, opts ...CallOption) (VirtualAccount, error) {
	return submit[VirtualAccount](s.client, ctx, http.MethodPut, "/virtual-accounts/{id}", routing.Params{routing.P("id", id)}, req, opts)
}
