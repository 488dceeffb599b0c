package api

import (
	"context"
	"net/http"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
)

type Refund struct {
	ID        string  `json:"id"`
	ChargeID  string  `json:"charge_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency,omitempty"`
	Status    string  `json:"status"`
	Reason    string  `json:"reason,omitempty"`
	Meta      Meta    `json:"meta,omitempty"`
	CreatedAt string  `json:"created_datetime,omitempty"`
}

type RefundCreateRequest struct {
	ChargeID string  `json:"charge_id"`
	Amount   float64 `json:"amount,omitempty"`
	Reason   string  `json:"reason,omitempty"`
	Meta     Meta    `json:"meta,omitempty"`
}

type RefundsListQuery struct {
	ListQuery
	ChargeID string
	Status   string
}

func (q RefundsListQuery) params() routing.Params {
	params := q.ListQuery.params()
	if q.ChargeID != "" {
		params = append(params, routing.P("charge_id", q.ChargeID))
	}
	if q.Status != "" {
		params = append(params, routing.P("status", q.Status))
	}
	return params
}

// RefundsService wraps the /refunds resource group, including the completed
// refunds listing.
type RefundsService struct {
	client *Client
}

func NewRefundsService(client *Client) *RefundsService {
	return &RefundsService{client: client}
}

func (s *RefundsService) List(ctx context.Context, query RefundsListQuery, opts ...CallOption) ([]Refund, core.PageInfoMeta, error) {
	return fetchPage[[]Refund](s.client, ctx, "/refunds", query.params(), opts)
}

func (s *RefundsService) Create(ctx context.Context, req RefundCreateRequest, opts ...CallOption) (Refund, error) {
	return submit[Refund](s.client, ctx, http.MethodPost, "/refunds", nil, req, opts)
}

func (s *RefundsService) Retrieve(ctx context.Context, id string, opts ...CallOption) (Refund, error) {
	return fetch[Refund](s.client, ctx, "/refunds/{id}", routing.Params{routing.P("id", id)}, nil, opts)
}

// ListCompleted returns refunds that have fully settled.
func (s *RefundsService) ListCompleted(ctx context.Context, query RefundsListQuery, opts ...CallOption) ([]Refund, core.PageInfoMeta, error) {
	return fetchPage[[]Refund](s.client, ctx, "/refunds/completed", query.params(), opts)
}
