// Package api hosts the per-resource Flutterwave clients. Every method runs
// the same sequence: ensure a valid token, build the target URL, dispatch,
// decode the payload.
package api

import (
	"context"
	"net/http"

	"github.com/toneflix/flutterwave-go/auth"
	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
	"github.com/toneflix/flutterwave-go/security"
	"github.com/toneflix/flutterwave-go/transport"
)

// Client is the shared backend the resource services dispatch through.
type Client struct {
	credentials *auth.CredentialManager
	dispatcher  *transport.Dispatcher
	builder     *routing.Builder
	encryptor   *security.CardEncryptor
}

func NewClient(
	credentials *auth.CredentialManager,
	dispatcher *transport.Dispatcher,
	builder *routing.Builder,
	encryptor *security.CardEncryptor,
) *Client {
	return &Client{
		credentials: credentials,
		dispatcher:  dispatcher,
		builder:     builder,
		encryptor:   encryptor,
	}
}

// CallOption supplies the optional pass-through headers a single call may
// carry.
type CallOption func(*callOptions)

type callOptions struct {
	traceID        string
	idempotencyKey string
	scenarioKey    string
}

func WithTraceID(id string) CallOption {
	return func(o *callOptions) {
		o.traceID = id
	}
}

func WithIdempotencyKey(key string) CallOption {
	return func(o *callOptions) {
		o.idempotencyKey = key
	}
}

func WithScenarioKey(key string) CallOption {
	return func(o *callOptions) {
		o.scenarioKey = key
	}
}

// headersFor renders the optional headers, omitting anything unset.
func headersFor(opts []CallOption) map[string]string {
	options := callOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	headers := map[string]string{}
	if options.traceID != "" {
		headers["X-Trace-Id"] = options.traceID
	}
	if options.idempotencyKey != "" {
		headers["X-Idempotency-Key"] = options.idempotencyKey
	}
	if options.scenarioKey != "" {
		headers["X-Scenario-Key"] = options.scenarioKey
	}
	return headers
}

func (c *Client) get(ctx context.Context, path string, pathParams routing.Params, query routing.Params, opts []CallOption) (core.Response, error) {
	return c.send(ctx, http.MethodGet, path, pathParams, query, nil, opts)
}

func (c *Client) send(ctx context.Context, method string, path string, pathParams routing.Params, query routing.Params, body any, opts []CallOption) (core.Response, error) {
	if err := c.credentials.EnsureTokenIsValid(ctx); err != nil {
		return core.Response{}, err
	}
	target := c.builder.BuildTargetURL(path, pathParams, query)
	return c.dispatcher.Send(ctx, method, target, body, headersFor(opts))
}

// fetch runs a GET and decodes the payload.
func fetch[T any](c *Client, ctx context.Context, path string, pathParams routing.Params, query routing.Params, opts []CallOption) (T, error) {
	var zero T
	res, err := c.get(ctx, path, pathParams, query, opts)
	if err != nil {
		return zero, err
	}
	return core.DecodeData[T](res)
}

// submit runs a body-carrying request and decodes the payload.
func submit[T any](c *Client, ctx context.Context, method string, path string, pathParams routing.Params, body any, opts []CallOption) (T, error) {
	var zero T
	res, err := c.send(ctx, method, path, pathParams, nil, body, opts)
	if err != nil {
		return zero, err
	}
	return core.DecodeData[T](res)
}

// fetchPage runs a paginated GET and decodes both payload and page meta.
func fetchPage[T any](c *Client, ctx context.Context, path string, query routing.Params, opts []CallOption) (T, core.PageInfoMeta, error) {
	var zero T
	res, err := c.get(ctx, path, nil, query, opts)
	if err != nil {
		return zero, core.PageInfoMeta{}, err
	}
	data, err := core.DecodeData[T](res)
	if err != nil {
		return zero, core.PageInfoMeta{}, err
	}
	meta, err := core.DecodeMeta[core.PageInfoMeta](res)
	if err != nil {
		return zero, core.PageInfoMeta{}, err
	}
	return data, meta, nil
}
