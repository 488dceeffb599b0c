package api

import (
	"context"
	"strconv"

	"github.com/toneflix/flutterwave-go/routing"
)

type TransactionFee struct {
	Fee         float64 `json:"fee"`
	Currency    string  `json:"currency"`
	ChargeType  string  `json:"charge_type,omitempty"`
	MerchantFee float64 `json:"merchant_fee,omitempty"`
}

type FeeQuery struct {
	Amount            float64
	Currency          string
	PaymentMethodType string
}

func (q FeeQuery) params() routing.Params {
	params := routing.Params{
		routing.P("amount", strconv.FormatFloat(q.Amount, 'f', -1, 64)),
		routing.P("currency", q.Currency),
	}
	if q.PaymentMethodType != "" {
		params = append(params, routing.P("payment_method_type", q.PaymentMethodType))
	}
	return params
}

// FeesService wraps the fees lookup endpoint.
type FeesService struct {
	client *Client
}

func NewFeesService(client *Client) *FeesService {
	return &FeesService{client: client}
}

func (s *FeesService) Retrieve(ctx context.Context, query FeeQuery, opts ...CallOption) (TransactionFee, error) {
	return fetch[TransactionFee](s.client, ctx, "fees", nil, query.params(), opts)
}
