package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
)

type Transfer struct {
	ID            string          `json:"id"`
	Action        string          `json:"action,omitempty"`
	Reference     string          `json:"reference"`
	Status        string          `json:"status"`
	SourceAmount  float64         `json:"source_amount,omitempty"`
	SourceCcy     string          `json:"source_currency,omitempty"`
	DestAmount    float64         `json:"destination_amount,omitempty"`
	DestCcy       string          `json:"destination_currency,omitempty"`
	RecipientID   string          `json:"recipient_id,omitempty"`
	Narration     string          `json:"narration,omitempty"`
	PaymentDetail json.RawMessage `json:"payment_instruction,omitempty"`
	Meta          Meta            `json:"meta,omitempty"`
	CreatedAt     string          `json:"created_datetime,omitempty"`
}

// TransferList is the cursor-paginated transfer listing. The body carries
// the page directly, there is no data envelope to unwrap.
type TransferList struct {
	Transfers []Transfer `json:"transfers"`
	core.CursorPagination
}

type TransferCreateRequest struct {
	Action          string          `json:"action"`
	Reference       string          `json:"reference"`
	PaymentInstruct json.RawMessage `json:"payment_instruction"`
	Callback        string          `json:"callback_url,omitempty"`
	Meta            Meta            `json:"meta,omitempty"`
}

type TransferUpdateRequest struct {
	Status string `json:"status,omitempty"`
	Meta   Meta   `json:"meta,omitempty"`
}

// TransfersService wraps the /transfers resource group.
type TransfersService struct {
	client *Client
}

func NewTransfersService(client *Client) *TransfersService {
	return &TransfersService{client: client}
}

func (s *TransfersService) List(ctx context.Context, query CursorQuery, opts ...CallOption) (TransferList, error) {
	return fetch[TransferList](s.client, ctx, "/transfers", nil, query.params(), opts)
}

func (s *TransfersService) Create(ctx context.Context, req TransferCreateRequest, opts ...CallOption) (Transfer, error) {
	return submit[Transfer](s.client, ctx, http.MethodPost, "/transfers", nil, req, opts)
}

func (s *TransfersService) Retrieve(ctx context.Context, id string, opts ...CallOption) (Transfer, error) {
	return fetch[Transfer](s.client, ctx, "/transfers/{id}", routing.Params{routing.P("id", id)}, nil, opts)
}

func (s *TransfersService) Update(ctx context.Context, id string, req TransferUpdateRequest, opts ...CallOption) (Transfer, error) {
	return submit[Transfer](s.client, ctx, http.MethodPut, "/transfers/{id}", routing.Params{routing.P("id", id)}, req, opts)
}

// Retry requeues a failed transfer under a fresh attempt.
func (s *TransfersService) Retry(ctx context.Context, id string, opts ...CallOption) (Transfer, error) {
	return submit[Transfer](s.client, ctx, http.MethodPost, "/transfers/{id}/retries", routing.Params{routing.P("id", id)}, nil, opts)
}
