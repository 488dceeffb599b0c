package flutterwave

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/toneflix/flutterwave-go/api"
	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/security"
)

func TestNewFailsFastWithoutCredentials(t *testing.T) {
	_, err := New(Config{}, WithConfigLoader(core.StaticConfigLoader(map[string]any{})))
	if err == nil {
		t.Fatalf("expected config error")
	}
	if !core.IsConfigError(err) {
		t.Fatalf("expected config classification: %v", err)
	}
}

func TestNewRejectsUnknownEnvironment(t *testing.T) {
	_, err := New(Config{
		ClientID:     "cid",
		ClientSecret: "sec",
		Environment:  "staging",
	}, WithConfigLoader(core.StaticConfigLoader(map[string]any{})))
	if err == nil {
		t.Fatalf("expected validation failure")
	}
}

func TestClientEndToEnd(t *testing.T) {
	var mu sync.Mutex
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/token":
			_, _ = w.Write([]byte(`{"access_token":"tok_e2e","expires_in":600}`))
		case "/customers":
			_, _ = w.Write([]byte(`{"message":"Customer created","data":{"id":"cus_1","email":"test@example.com"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := New(Config{
		ClientID:     "cid_e2e",
		ClientSecret: "sec_e2e",
		TokenURL:     server.URL + "/token",
	},
		WithConfigLoader(core.StaticConfigLoader(map[string]any{})),
		WithHTTPClient(server.Client()),
		WithBaseURL(server.URL+"/"),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.Environment() != EnvironmentSandbox {
		t.Fatalf("environment = %q", client.Environment())
	}
	if client.BaseURL() != server.URL+"/" {
		t.Fatalf("base url = %q", client.BaseURL())
	}

	customer, err := client.Customers.Create(context.Background(), api.CustomerCreateRequest{
		Email: "test@example.com",
		Name:  api.CustomerName{First: "Forrest", Last: "Green"},
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if customer.ID != "cus_1" {
		t.Fatalf("customer = %+v", customer)
	}
	if client.AccessToken() != "tok_e2e" {
		t.Fatalf("access token = %q", client.AccessToken())
	}

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 2 || calls[0] != "POST /token" || calls[1] != "POST /customers" {
		t.Fatalf("calls = %v", calls)
	}
}

func TestSecurityAccessorsRequireConfiguration(t *testing.T) {
	client, err := New(Config{
		ClientID:     "cid",
		ClientSecret: "sec",
	}, WithConfigLoader(core.StaticConfigLoader(map[string]any{})))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Cards(); !core.IsConfigError(err) {
		t.Fatalf("expected config error from Cards: %v", err)
	}
	if _, err := client.Webhooks(); !core.IsConfigError(err) {
		t.Fatalf("expected config error from Webhooks: %v", err)
	}
}

func TestSecurityAccessorsWhenConfigured(t *testing.T) {
	key := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	client, err := New(Config{
		ClientID:      "cid",
		ClientSecret:  "sec",
		EncryptionKey: key,
		SecretHash:    "whsec_test",
	}, WithConfigLoader(core.StaticConfigLoader(map[string]any{})))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	cards, err := client.Cards()
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	card := security.CardDetails{CardNumber: "4242424242424242", CVV: "123", ExpiryMonth: "09", ExpiryYear: "29"}
	if _, err := cards.EncryptCard(card); err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	webhooks, err := client.Webhooks()
	if err != nil {
		t.Fatalf("webhooks: %v", err)
	}
	body := []byte(`{"type":"charge.completed"}`)
	signature, err := webhooks.GenerateSignature(body)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if !webhooks.Validate(body, signature) {
		t.Fatalf("signature round trip failed")
	}
}

func TestHeaderIDHelpersProduceUniqueValues(t *testing.T) {
	if NewTraceID() == NewTraceID() {
		t.Fatalf("trace ids must be unique")
	}
	if NewIdempotencyKey() == "" {
		t.Fatalf("idempotency key must not be empty")
	}
}
