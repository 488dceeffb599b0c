package core

import (
	"encoding/json"
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Logger is the structured logger contract shared across the SDK.
type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger

// Environment selects which Flutterwave origin the client talks to.
type Environment string

const (
	EnvironmentSandbox Environment = "sandbox"
	EnvironmentLive    Environment = "live"
)

// ParseEnvironment normalizes an environment value. Anything other than
// "live" resolves to sandbox, mirroring the upstream API's opt-in policy.
func ParseEnvironment(value string) Environment {
	if strings.EqualFold(strings.TrimSpace(value), string(EnvironmentLive)) {
		return EnvironmentLive
	}
	return EnvironmentSandbox
}

// Response is the normalized envelope produced for every successful call.
// Data holds the raw payload; decode it with DecodeData. Meta is present only
// for paginated endpoints.
type Response struct {
	Success bool
	Message string
	Data    json.RawMessage
	Meta    json.RawMessage
}

// DecodeData unmarshals the response payload into the requested shape.
func DecodeData[T any](res Response) (T, error) {
	var out T
	if len(res.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(res.Data, &out); err != nil {
		return out, fmt.Errorf("core: decode response data: %w", err)
	}
	return out, nil
}

// DecodeMeta unmarshals the response meta block into the requested shape.
func DecodeMeta[M any](res Response) (M, error) {
	var out M
	if len(res.Meta) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(res.Meta, &out); err != nil {
		return out, fmt.Errorf("core: decode response meta: %w", err)
	}
	return out, nil
}

// ValidationError is a single field-level failure reported by the API.
type ValidationError struct {
	Field   string `json:"field_name"`
	Message string `json:"message"`
}

// ErrorEnvelope is the normalized error shape built from any non-2xx
// response or transport failure.
type ErrorEnvelope struct {
	Type             string            `json:"type"`
	Code             string            `json:"code"`
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validation_errors"`
}

// PageInfo describes page-based pagination.
type PageInfo struct {
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// PageInfoMeta is the meta block carried by page-based list endpoints.
type PageInfoMeta struct {
	PageInfo PageInfo `json:"page_info"`
}

// CursorPagination is returned alongside the result array by cursor-based
// list endpoints (transfers, recipients, senders).
type CursorPagination struct {
	Next         string `json:"next"`
	Previous     string `json:"previous"`
	Limit        int    `json:"limit"`
	Total        int    `json:"total"`
	HasMoreItems bool   `json:"has_more_items"`
}

// AuthToken is the identity provider's client-credentials grant response.
type AuthToken struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in"`
	TokenType        string `json:"token_type"`
	Scope            string `json:"scope"`
}
