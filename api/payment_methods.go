package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
	"github.com/toneflix/flutterwave-go/security"
)

type PaymentMethod struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	CustomerID string          `json:"customer_id,omitempty"`
	Card       json.RawMessage `json:"card,omitempty"`
	MobileMon  json.RawMessage `json:"mobile_money,omitempty"`
	Bank       json.RawMessage `json:"bank_transfer,omitempty"`
	USSD       json.RawMessage `json:"ussd,omitempty"`
	Meta       Meta            `json:"meta,omitempty"`
	CreatedAt  string          `json:"created_datetime,omitempty"`
}

// PaymentMethodCreateRequest builds a payment method. When Type is "card"
// and Card is set, the card details are encrypted client side before the
// request leaves the process.
type PaymentMethodCreateRequest struct {
	Type        string                `json:"type"`
	Card        *security.CardDetails `json:"-"`
	MobileMoney json.RawMessage       `json:"mobile_money,omitempty"`
	BankTrans   json.RawMessage       `json:"bank_transfer,omitempty"`
	USSD        json.RawMessage       `json:"ussd,omitempty"`
	Meta        Meta                  `json:"meta,omitempty"`
}

type paymentMethodCreateBody struct {
	PaymentMethodCreateRequest
	Card *security.EncryptedCardDetails `json:"card,omitempty"`
}

// PaymentMethodsService wraps the /payment-methods resource group.
type PaymentMethodsService struct {
	client *Client
}

func NewPaymentMethodsService(client *Client) *PaymentMethodsService {
	return &PaymentMethodsService{client: client}
}

func (s *PaymentMethodsService) List(ctx context.Context, query ListQuery, opts ...CallOption) ([]PaymentMethod, core.PageInfoMeta, error) {
	return fetchPage[[]PaymentMethod](s.client, ctx, "/payment-methods", query.params(), opts)
}

func (s *PaymentMethodsService) Create(ctx context.Context, req PaymentMethodCreateRequest, opts ...CallOption) (PaymentMethod, error) {
	body := paymentMethodCreateBody{PaymentMethodCreateRequest: req}
	if req.Card != nil {
		if s.client.encryptor == nil {
			return PaymentMethod{}, core.ConfigError("card payment methods need an encryption key")
		}
		encrypted, err := s.client.encryptor.EncryptCard(*req.Card)
		if err != nil {
			return PaymentMethod{}, err
		}
		body.Card = &encrypted
	}
	return submit[PaymentMethod](s.client, ctx, http.MethodPost, "/payment-methods", nil, body, opts)
}

func (s *PaymentMethodsService) Retrieve(ctx context.Context, id string, opts ...CallOption) (PaymentMethod, error) {
	return fetch[PaymentMethod](s.client, ctx, "/payment-methods/{id}", routing.Params{routing.P("id", id)}, nil, opts)
}
