package api

import (
	"context"
	"net/http"

	"github.com/toneflix/flutterwave-go/routing"
)

type Bank struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type BankBranch struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	BankID    string `json:"bank_id"`
	BIC       string `json:"bic,omitempty"`
	SwiftCode string `json:"swift_code,omitempty"`
}

// AccountResolveRequest covers the NGN/GBP/USD resolve variants; unused
// fields are omitted from the payload.
type AccountResolveRequest struct {
	AccountNumber string `json:"account_number,omitempty"`
	AccountBank   string `json:"account_bank,omitempty"`
	Currency      string `json:"currency,omitempty"`
	SortCode      string `json:"sort_code,omitempty"`
	RoutingNumber string `json:"routing_number,omitempty"`
	IBAN          string `json:"iban,omitempty"`
}

type ResolvedAccount struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	AccountBank   string `json:"account_bank,omitempty"`
}

// BanksService wraps the /banks resource group.
type BanksService struct {
	client *Client
}

func NewBanksService(client *Client) *BanksService {
	return &BanksService{client: client}
}

// List retrieves the supported banks for a country.
func (s *BanksService) List(ctx context.Context, country string, opts ...CallOption) ([]Bank, error) {
	return fetch[[]Bank](s.client, ctx, "/banks", nil, routing.Params{routing.P("country", country)}, opts)
}

// Branches retrieves the branches of a bank.
func (s *BanksService) Branches(ctx context.Context, id string, opts ...CallOption) ([]BankBranch, error) {
	return fetch[[]BankBranch](s.client, ctx, "/banks/{id}/branches", routing.Params{routing.P("id", id)}, nil, opts)
}

// Resolve looks up the owner of a customer's bank account.
func (s *BanksService) Resolve(ctx context.Context, req AccountResolveRequest, opts ...CallOption) (ResolvedAccount, error) {
	return submit[ResolvedAccount](s.client, ctx, http.MethodPost, "/banks/account-resolve", nil, req, opts)
}
