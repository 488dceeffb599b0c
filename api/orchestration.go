package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// DirectChargeRequest creates the customer, payment method and charge in a
// single orchestrated call.
type DirectChargeRequest struct {
	Amount        float64         `json:"amount"`
	Currency      string          `json:"currency"`
	Reference     string          `json:"reference"`
	Customer      json.RawMessage `json:"customer"`
	PaymentMethod json.RawMessage `json:"payment_method"`
	RedirectURL   string          `json:"redirect_url,omitempty"`
	Meta          Meta            `json:"meta,omitempty"`
}

// DirectTransferRequest creates the recipient and transfer in a single
// orchestrated call.
type DirectTransferRequest struct {
	Action          string          `json:"action,omitempty"`
	Reference       string          `json:"reference"`
	PaymentInstruct json.RawMessage `json:"payment_instruction"`
	Meta            Meta            `json:"meta,omitempty"`
}

// OrchestrationService wraps the combined create endpoints that fold the
// usual multi-step flows into one request.
type OrchestrationService struct {
	client *Client
}

func NewOrchestrationService(client *Client) *OrchestrationService {
	return &OrchestrationService{client: client}
}

func (s *OrchestrationService) DirectCharge(ctx context.Context, req DirectChargeRequest, opts ...CallOption) (Charge, error) {
	return submit[Charge](s.client, ctx, http.MethodPost, "/orchestration/direct-charges", nil, req, opts)
}

func (s *OrchestrationService) DirectTransfer(ctx context.Context, req DirectTransferRequest, opts ...CallOption) (Transfer, error) {
	return submit[Transfer](s.client, ctx, http.MethodPost, "/orchestration/direct-transfers", nil, req, opts)
}
