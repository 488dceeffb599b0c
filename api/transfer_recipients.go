package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
)

type TransferRecipient struct {
	ID        string          `json:"id"`
	Type      string          `json:"type,omitempty"`
	Name      json.RawMessage `json:"name,omitempty"`
	Currency  string          `json:"currency,omitempty"`
	Bank      json.RawMessage `json:"bank,omitempty"`
	MobileMon json.RawMessage `json:"mobile_money,omitempty"`
	Meta      Meta            `json:"meta,omitempty"`
	CreatedAt string          `json:"created_datetime,omitempty"`
}

// TransferRecipientList is the cursor-paginated recipient listing.
type TransferRecipientList struct {
	Recipients []TransferRecipient `json:"recipients"`
	core.CursorPagination
}

type TransferRecipientCreateRequest struct {
	Type      string          `json:"type"`
	Currency  string          `json:"currency,omitempty"`
	Name      json.RawMessage `json:"name,omitempty"`
	Bank      json.RawMessage `json:"bank,omitempty"`
	MobileMon json.RawMessage `json:"mobile_money,omitempty"`
	Meta      Meta            `json:"meta,omitempty"`
}

// TransferRecipientsService wraps the /transfers/recipients resource group.
type TransferRecipientsService struct {
	client *Client
}

func NewTransferRecipientsService(client *Client) *TransferRecipientsService {
	return &TransferRecipientsService{client: client}
}

func (s *TransferRecipientsService) List(ctx context.Context, query CursorQuery, opts ...CallOption) (TransferRecipientList, error) {
	return fetch[TransferRecipientList](s.client, ctx, "/transfers/recipients", nil, query.params(), opts)
}

func (s *TransferRecipientsService) Create(ctx context.Context, req TransferRecipientCreateRequest, opts ...CallOption) (TransferRecipient, error) {
	return submit[TransferRecipient](s.client, ctx, http.MethodPost, "/transfers/recipients", nil, req, opts)
}

func (s *TransferRecipientsService) Retrieve(ctx context.Context, id string, opts ...CallOption) (TransferRecipient, error) {
	return fetch[TransferRecipient](s.client, ctx, "/transfers/recipients/{id}", routing.Params{routing.P("id", id)}, nil, opts)
}

func (s *TransferRecipientsService) Delete(ctx context.Context, id string, opts ...CallOption) error {
	_, err := s.client.send(ctx, http.MethodDelete, "/transfers/recipients/{id}", routing.Params{routing.P("id", id)}, nil, nil, opts)
	return err
}
