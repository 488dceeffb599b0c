package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
)

type TransferSender struct {
	ID        string          `json:"id"`
	Name      json.RawMessage `json:"name,omitempty"`
	Email     string          `json:"email,omitempty"`
	Phone     json.RawMessage `json:"phone,omitempty"`
	Address   json.RawMessage `json:"address,omitempty"`
	Meta      Meta            `json:"meta,omitempty"`
	CreatedAt string          `json:"created_datetime,omitempty"`
}

// TransferSenderList is the cursor-paginated sender listing.
type TransferSenderList struct {
	Senders []TransferSender `json:"senders"`
	core.CursorPagination
}

type TransferSenderRequest struct {
	Name    json.RawMessage `json:"name,omitempty"`
	Email   string          `json:"email,omitempty"`
	Phone   json.RawMessage `json:"phone,omitempty"`
	Address json.RawMessage `json:"address,omitempty"`
	Meta    Meta            `json:"meta,omitempty"`
}

// TransferSendersService wraps the /transfers/senders resource group.
type TransferSendersService struct {
	client *Client
}

func NewTransferSendersService(client *Client) *TransferSendersService {
	return &TransferSendersService{client: client}
}

func (s *TransferSendersService) List(ctx context.Context, query CursorQuery, opts ...CallOption) (TransferSenderList, error) {
	return fetch[TransferSenderList](s.client, ctx, "/transfers/senders", nil, query.params(), opts)
}

func (s *TransferSendersService) Create(ctx context.Context, req TransferSenderRequest, opts ...CallOption) (TransferSender, error) {
	return submit[TransferSender](s.client, ctx, http.MethodPost, "/transfers/senders", nil, req, opts)
}

func (s *TransferSendersService) Retrieve(ctx context.Context, id string, opts ...CallOption) (TransferSender, error) {
	return fetch[TransferSender](s.client, ctx, "/transfers/senders/{id}", routing.Params{routing.P("id", id)}, nil, opts)
}

func (s *TransferSendersService) Update(ctx context.Context, id string, req TransferSenderRequest, opts ...CallOption) (TransferSender, error) {
	return submit[TransferSender](s.client, ctx, http.MethodPut, "/transfers/senders/{id}", routing.Params{routing.P("id", id)}, req, opts)
}

func (s *TransferSendersService) Delete(ctx context.Context, id string, opts ...CallOption) error {
	_, err := s.client.send(ctx, http.MethodDelete, "/transfers/senders/{id}", routing.Params{routing.P("id", id)}, nil, nil, opts)
	return err
}
