package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/toneflix/flutterwave-go/core"
)

func TestSendUnwrapsDataEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","message":"Charges fetched","data":[{"id":"chg_1"}],"meta":{"page_info":{"total":1,"current_page":1,"total_pages":1}}}`))
	}))
	defer server.Close()

	d := NewDispatcher(server.Client())
	res, err := d.Get(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success envelope")
	}
	if res.Message != "Charges fetched" {
		t.Fatalf("message = %q", res.Message)
	}

	var items []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(res.Data, &items); err != nil || len(items) != 1 || items[0].ID != "chg_1" {
		t.Fatalf("data = %s (%v)", res.Data, err)
	}
	meta, err := core.DecodeMeta[core.PageInfoMeta](res)
	if err != nil || meta.PageInfo.Total != 1 {
		t.Fatalf("meta = %+v (%v)", meta, err)
	}
}

func TestSendTreatsBareBodyAsPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"tok_1","expires_in":600}`))
	}))
	defer server.Close()

	d := NewDispatcher(server.Client())
	res, err := d.Post(context.Background(), server.URL, nil, nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if res.Message != "Request successful" {
		t.Fatalf("default message = %q", res.Message)
	}
	token, err := core.DecodeData[core.AuthToken](res)
	if err != nil || token.AccessToken != "tok_1" || token.ExpiresIn != 600 {
		t.Fatalf("token = %+v (%v)", token, err)
	}
}

func TestSendNormalizes401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"unauthorized","code":"10401","message":"bad creds"}}`))
	}))
	defer server.Close()

	d := NewDispatcher(server.Client())
	_, err := d.Get(context.Background(), server.URL, nil)
	if err == nil {
		t.Fatalf("expected error for 401")
	}
	if !core.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized classification: %v", err)
	}
	envelope, ok := core.EnvelopeFrom(err)
	if !ok {
		t.Fatalf("envelope missing")
	}
	if envelope.Message != "bad creds" {
		t.Fatalf("message = %q", envelope.Message)
	}
	if core.ErrorCode(err) != "10401" {
		t.Fatalf("code = %q", core.ErrorCode(err))
	}
	if envelope.Type != "UNAUTHORIZED" {
		t.Fatalf("type = %q", envelope.Type)
	}
	if core.StatusCode(err) != http.StatusUnauthorized {
		t.Fatalf("status = %d", core.StatusCode(err))
	}
}

func TestSendRecordsLastException(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"type":"forbidden","code":"10403","message":"no access"}}`))
	}))
	defer server.Close()

	d := NewDispatcher(server.Client())
	if d.LastException() != nil {
		t.Fatalf("fresh dispatcher should have no last exception")
	}
	_, err := d.Get(context.Background(), server.URL, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	last := d.LastException()
	if last == nil {
		t.Fatalf("last exception not recorded")
	}
	if !errors.Is(err, last) && err.Error() != last.Error() {
		t.Fatalf("last exception does not match returned error")
	}
	if !core.IsForbidden(last) {
		t.Fatalf("expected forbidden: %v", last)
	}
}

func TestSendTransportFailureMapsToGenericHTTP(t *testing.T) {
	d := NewDispatcher(nil)
	_, err := d.Get(context.Background(), "http://127.0.0.1:1", nil)
	if err == nil {
		t.Fatalf("expected transport failure")
	}
	if core.StatusCode(err) != http.StatusInternalServerError {
		t.Fatalf("status = %d", core.StatusCode(err))
	}
	if core.IsUnauthorized(err) || core.IsBadRequest(err) || core.IsForbidden(err) {
		t.Fatalf("transport failures must map to the generic variant")
	}
}

func TestSendHeaderHandling(t *testing.T) {
	var seen http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	d := NewDispatcher(server.Client())
	d.SetBearerToken("tok_abc")
	_, err := d.Send(context.Background(), http.MethodPost, server.URL, map[string]string{"k": "v"}, map[string]string{
		"Accept":     "application/vnd.test+json",
		"X-Trace-Id": "trace_1",
		"X-Empty":    "",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if got := seen.Get("Authorization"); got != "Bearer tok_abc" {
		t.Fatalf("authorization = %q", got)
	}
	if got := seen.Get("Accept"); got != "application/vnd.test+json" {
		t.Fatalf("caller header should win: %q", got)
	}
	if got := seen.Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type = %q", got)
	}
	if got := seen.Get("X-Trace-Id"); got != "trace_1" {
		t.Fatalf("trace header = %q", got)
	}
	if _, ok := seen["X-Empty"]; ok {
		t.Fatalf("empty headers must be dropped")
	}
}

func TestSendFormEncodesURLValues(t *testing.T) {
	var contentType, body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		body = r.PostForm.Encode()
		_, _ = w.Write([]byte(`{"access_token":"tok_1","expires_in":600}`))
	}))
	defer server.Close()

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", "profile email")

	d := NewDispatcher(server.Client())
	if _, err := d.Post(context.Background(), server.URL, form, nil); err != nil {
		t.Fatalf("send: %v", err)
	}
	if contentType != "application/x-www-form-urlencoded" {
		t.Fatalf("content type = %q", contentType)
	}
	parsed, err := url.ParseQuery(body)
	if err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if parsed.Get("grant_type") != "client_credentials" || parsed.Get("scope") != "profile email" {
		t.Fatalf("form body = %q", body)
	}
}

func TestSendBadRequestCarriesValidationErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"validation_error","code":"10400","message":"invalid payload","validation_errors":[{"field_name":"amount","message":"must be positive"}]}}`))
	}))
	defer server.Close()

	d := NewDispatcher(server.Client())
	_, err := d.Post(context.Background(), server.URL, map[string]string{}, nil)
	if !core.IsBadRequest(err) {
		t.Fatalf("expected bad request: %v", err)
	}
	envelope, _ := core.EnvelopeFrom(err)
	if len(envelope.ValidationErrors) != 1 || envelope.ValidationErrors[0].Field != "amount" {
		t.Fatalf("validation errors = %+v", envelope.ValidationErrors)
	}
}

func TestSendErrorDescriptionFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"Invalid client credentials"}`))
	}))
	defer server.Close()

	d := NewDispatcher(server.Client())
	_, err := d.Get(context.Background(), server.URL, nil)
	envelope, ok := core.EnvelopeFrom(err)
	if !ok {
		t.Fatalf("envelope missing: %v", err)
	}
	if envelope.Type != "INVALID_CLIENT" {
		t.Fatalf("type = %q", envelope.Type)
	}
	if envelope.Message != "Invalid client credentials" {
		t.Fatalf("message = %q", envelope.Message)
	}
}
