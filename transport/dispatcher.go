package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/toneflix/flutterwave-go/core"
)

const defaultClientTimeout = 30 * time.Second
const defaultResponseBodyLimit int64 = 10 << 20 // 10 MiB

const defaultSuccessMessage = "Request successful"

// HTTPDoer is the seam between the dispatcher and the underlying transport.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Dispatcher performs authenticated HTTP dispatch: it attaches default JSON
// headers and the registered bearer token, normalizes success and failure
// envelopes, and raises taxonomy errors. The bearer slot and last-exception
// sink are instance-scoped; two dispatchers never share credentials.
type Dispatcher struct {
	client               HTTPDoer
	logger               core.Logger
	metrics              core.MetricsRecorder
	maxResponseBodyBytes int64
	debugLevel           int

	mu            sync.Mutex
	bearerToken   string
	lastException *goerrors.Error
}

type Option func(*Dispatcher)

func WithLogger(logger core.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

func WithMetricsRecorder(recorder core.MetricsRecorder) Option {
	return func(d *Dispatcher) {
		d.metrics = recorder
	}
}

func WithDebugLevel(level int) Option {
	return func(d *Dispatcher) {
		d.debugLevel = level
	}
}

func WithMaxResponseBodyBytes(limit int64) Option {
	return func(d *Dispatcher) {
		if limit > 0 {
			d.maxResponseBodyBytes = limit
		}
	}
}

func NewDispatcher(client HTTPDoer, opts ...Option) *Dispatcher {
	if client == nil {
		client = &http.Client{Timeout: defaultClientTimeout}
	}
	d := &Dispatcher{
		client:               client,
		logger:               glog.Nop(),
		metrics:              core.NopMetricsRecorder{},
		maxResponseBodyBytes: defaultResponseBodyLimit,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// SetBearerToken registers the token attached as Authorization on every
// subsequent request.
func (d *Dispatcher) SetBearerToken(token string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bearerToken = strings.TrimSpace(token)
}

func (d *Dispatcher) BearerToken() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bearerToken
}

func (d *Dispatcher) SetDebugLevel(level int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.debugLevel = level
}

// LastException returns the most recent taxonomy error raised by this
// dispatcher, for out-of-band inspection.
func (d *Dispatcher) LastException() *goerrors.Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastException
}

func (d *Dispatcher) Get(ctx context.Context, target string, headers map[string]string) (core.Response, error) {
	return d.Send(ctx, http.MethodGet, target, nil, headers)
}

func (d *Dispatcher) Post(ctx context.Context, target string, body any, headers map[string]string) (core.Response, error) {
	return d.Send(ctx, http.MethodPost, target, body, headers)
}

func (d *Dispatcher) Put(ctx context.Context, target string, body any, headers map[string]string) (core.Response, error) {
	return d.Send(ctx, http.MethodPut, target, body, headers)
}

func (d *Dispatcher) Delete(ctx context.Context, target string, headers map[string]string) (core.Response, error) {
	return d.Send(ctx, http.MethodDelete, target, nil, headers)
}

// Send issues one HTTP request and normalizes the result. On 2xx it returns
// the unified response envelope; on any failure it records and returns a
// taxonomy error carrying the normalized error envelope and the cause.
func (d *Dispatcher) Send(ctx context.Context, method string, target string, body any, headers map[string]string) (core.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	method = strings.TrimSpace(strings.ToUpper(method))
	if method == "" {
		method = http.MethodGet
	}

	payload, contentType, err := encodeBody(body)
	if err != nil {
		return core.Response{}, d.raise(http.StatusInternalServerError, core.ErrorEnvelope{}, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, strings.TrimSpace(target), bytes.NewReader(payload))
	if err != nil {
		return core.Response{}, d.raise(http.StatusInternalServerError, core.ErrorEnvelope{}, err)
	}
	d.applyHeaders(httpReq, contentType, headers)

	startedAt := time.Now().UTC()
	d.debugRequest(ctx, method, target, payload)

	httpRes, err := d.client.Do(httpReq)
	if err != nil {
		d.observe(ctx, method, 0, startedAt)
		return core.Response{}, d.raise(http.StatusInternalServerError, core.ErrorEnvelope{}, err)
	}
	defer httpRes.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpRes.Body, d.maxResponseBodyBytes))
	if err != nil {
		d.observe(ctx, method, httpRes.StatusCode, startedAt)
		return core.Response{}, d.raise(http.StatusInternalServerError, core.ErrorEnvelope{}, err)
	}

	d.observe(ctx, method, httpRes.StatusCode, startedAt)
	d.debugResponse(ctx, method, target, httpRes.StatusCode, raw)

	if httpRes.StatusCode < 200 || httpRes.StatusCode >= 300 {
		return core.Response{}, d.raise(httpRes.StatusCode, decodeErrorEnvelope(raw), nil)
	}
	return unwrapResponse(raw), nil
}

func (d *Dispatcher) applyHeaders(req *http.Request, contentType string, headers map[string]string) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)
	if token := d.BearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	// Caller headers win on conflict; empty values are treated as absent.
	for key, value := range headers {
		if strings.TrimSpace(key) == "" || strings.TrimSpace(value) == "" {
			continue
		}
		req.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
}

func (d *Dispatcher) raise(status int, envelope core.ErrorEnvelope, cause error) error {
	err := core.FromStatus(status, envelope, cause)
	d.mu.Lock()
	d.lastException = err
	d.mu.Unlock()

	if d.logger != nil {
		d.logger.Error("request failed",
			"status_code", status,
			"error_code", core.ErrorCode(err),
			"error", err.Error(),
		)
	}
	return err
}

func (d *Dispatcher) observe(ctx context.Context, method string, status int, startedAt time.Time) {
	if d.metrics == nil {
		return
	}
	tags := map[string]string{
		"method": method,
		"status": statusClass(status),
	}
	d.metrics.IncCounter(ctx, "flutterwave.request.total", 1, tags)
	d.metrics.ObserveHistogram(ctx, "flutterwave.request.duration_ms", float64(time.Since(startedAt).Milliseconds()), tags)
}

func (d *Dispatcher) debugRequest(ctx context.Context, method string, target string, payload []byte) {
	if d.debugLevel <= 0 || d.logger == nil {
		return
	}
	logger := d.logger.WithContext(ctx)
	if d.debugLevel >= 2 {
		logger.Info("dispatching request", "method", method, "url", target, "body", string(payload))
		return
	}
	logger.Info("dispatching request", "method", method, "url", target)
}

func (d *Dispatcher) debugResponse(ctx context.Context, method string, target string, status int, raw []byte) {
	if d.debugLevel < 2 || d.logger == nil {
		return
	}
	d.logger.WithContext(ctx).Info("received response",
		"method", method,
		"url", target,
		"status_code", status,
		"body", string(raw),
	)
}

// encodeBody renders the request body. url.Values are form-encoded (the
// token grant), everything else is JSON.
func encodeBody(body any) ([]byte, string, error) {
	switch v := body.(type) {
	case nil:
		return nil, "application/json", nil
	case url.Values:
		return []byte(v.Encode()), "application/x-www-form-urlencoded", nil
	case json.RawMessage:
		return v, "application/json", nil
	case []byte:
		return v, "application/json", nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return encoded, "application/json", nil
	}
}

// unwrapResponse normalizes the two upstream success shapes: bodies that
// wrap the payload in a data field keep their meta, everything else is
// treated as the payload itself.
func unwrapResponse(raw []byte) core.Response {
	res := core.Response{
		Success: true,
		Message: defaultSuccessMessage,
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return res
	}

	var probe struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
		Meta    json.RawMessage `json:"meta"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Data == nil {
		res.Data = json.RawMessage(raw)
		return res
	}

	res.Data = probe.Data
	res.Meta = probe.Meta
	if strings.TrimSpace(probe.Message) != "" {
		res.Message = probe.Message
	}
	return res
}

// decodeErrorEnvelope extracts the best-available error body. The error
// field may be an object or a bare string; missing pieces fall back to
// upstream alternates and finally to defaults inside core.FromStatus.
func decodeErrorEnvelope(raw []byte) core.ErrorEnvelope {
	envelope := core.ErrorEnvelope{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return envelope
	}

	var probe struct {
		Message          string          `json:"message"`
		ErrorDescription string          `json:"error_description"`
		Error            json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return envelope
	}

	if len(probe.Error) > 0 {
		var errorType string
		if json.Unmarshal(probe.Error, &errorType) == nil {
			envelope.Type = errorType
		} else {
			var detail struct {
				Type             string                 `json:"type"`
				Code             string                 `json:"code"`
				Message          string                 `json:"message"`
				ValidationErrors []core.ValidationError `json:"validation_errors"`
			}
			if json.Unmarshal(probe.Error, &detail) == nil {
				envelope.Type = detail.Type
				envelope.Code = detail.Code
				envelope.Message = detail.Message
				envelope.ValidationErrors = detail.ValidationErrors
			}
		}
	}
	if envelope.Message == "" {
		envelope.Message = probe.ErrorDescription
	}
	if envelope.Message == "" {
		envelope.Message = probe.Message
	}
	return envelope
}

func statusClass(status int) string {
	switch {
	case status == 0:
		return "transport_error"
	case status >= 200 && status < 300:
		return "success"
	default:
		return "failure"
	}
}
