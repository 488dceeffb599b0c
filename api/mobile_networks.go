package api

import (
	"context"

	"github.com/toneflix/flutterwave-go/routing"
)

type MobileNetwork struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Code    string `json:"code,omitempty"`
	Country string `json:"country,omitempty"`
}

// MobileNetworksService wraps the mobile money network directory.
type MobileNetworksService struct {
	client *Client
}

func NewMobileNetworksService(client *Client) *MobileNetworksService {
	return &MobileNetworksService{client: client}
}

func (s *MobileNetworksService) List(ctx context.Context, country string, opts ...CallOption) ([]MobileNetwork, error) {
	var query routing.Params
	if country != "" {
		query = routing.Params{routing.P("country", country)}
	}
	return fetch[[]MobileNetwork](s.client, ctx, "/mobile-networks", nil, query, opts)
}
