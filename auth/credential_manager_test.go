package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/transport"
)

func tokenServer(t *testing.T, grants *atomic.Int64, expiresIn int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.PostForm.Get("grant_type"); got != "client_credentials" {
			t.Errorf("grant_type = %q", got)
		}
		if got := r.PostForm.Get("scope"); got != core.DefaultScope {
			t.Errorf("scope = %q", got)
		}
		if got := r.PostForm.Get("client_id"); got != "cid_1" {
			t.Errorf("client_id = %q", got)
		}
		n := grants.Add(1)
		w.Header().Set("Content-Type", "application/json")
		body := fmt.Sprintf(`{"access_token":"tok_%d","expires_in":%d,"token_type":"Bearer"}`, n, expiresIn)
		_, _ = w.Write([]byte(body))
	}))
}

func TestNewCredentialManagerRequiresCredentials(t *testing.T) {
	_, err := NewCredentialManager(Config{ClientID: " ", ClientSecret: ""}, transport.NewDispatcher(nil), nil)
	if err == nil {
		t.Fatalf("expected config error")
	}
	if !core.IsConfigError(err) {
		t.Fatalf("expected config classification: %v", err)
	}
}

func TestGenerateAccessTokenStoresAndPropagates(t *testing.T) {
	var grants atomic.Int64
	server := tokenServer(t, &grants, 600)
	defer server.Close()

	dispatcher := transport.NewDispatcher(server.Client())
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	manager, err := NewCredentialManager(Config{
		ClientID:     "cid_1",
		ClientSecret: "sec_1",
		TokenURL:     server.URL,
		Now:          func() time.Time { return now },
	}, dispatcher, nil)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	token, err := manager.GenerateAccessToken(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" || manager.AccessToken() != token {
		t.Fatalf("token not stored: %q vs %q", token, manager.AccessToken())
	}
	if dispatcher.BearerToken() != token {
		t.Fatalf("bearer not propagated: %q", dispatcher.BearerToken())
	}
	state := manager.State()
	if state.ExpiresIn != 600*time.Second || !state.RefreshedAt.Equal(now) {
		t.Fatalf("state = %+v", state)
	}
}

func TestEnsureTokenIsValidRefreshWindow(t *testing.T) {
	var grants atomic.Int64
	server := tokenServer(t, &grants, 120)
	defer server.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	manager, err := NewCredentialManager(Config{
		ClientID:     "cid_1",
		ClientSecret: "sec_1",
		TokenURL:     server.URL,
		Now:          func() time.Time { return now },
	}, transport.NewDispatcher(server.Client()), nil)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	// No token yet: first ensure must fetch one.
	if err := manager.EnsureTokenIsValid(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if got := grants.Load(); got != 1 {
		t.Fatalf("grants = %d, want 1", got)
	}

	// 30s into a 120s token: still fresh.
	now = now.Add(30 * time.Second)
	if err := manager.EnsureTokenIsValid(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if got := grants.Load(); got != 1 {
		t.Fatalf("grants = %d, want 1 after 30s", got)
	}

	// 61s in: less than 60s of validity left, exactly one more refresh.
	now = now.Add(31 * time.Second)
	if err := manager.EnsureTokenIsValid(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if got := grants.Load(); got != 2 {
		t.Fatalf("grants = %d, want 2 after 61s", got)
	}
}

func TestGenerateAccessTokenWrapsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"Invalid client credentials"}`))
	}))
	defer server.Close()

	manager, err := NewCredentialManager(Config{
		ClientID:     "cid_1",
		ClientSecret: "bad",
		TokenURL:     server.URL,
	}, transport.NewDispatcher(server.Client()), nil)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	_, err = manager.GenerateAccessToken(context.Background())
	if err == nil {
		t.Fatalf("expected grant failure")
	}
	if !core.IsAccessTokenError(err) {
		t.Fatalf("expected access token classification: %v", err)
	}
	if manager.AccessToken() != "" {
		t.Fatalf("failed grant must not store a token")
	}
}

func TestRefreshTokenIsGenerateAlias(t *testing.T) {
	var grants atomic.Int64
	server := tokenServer(t, &grants, 600)
	defer server.Close()

	manager, err := NewCredentialManager(Config{
		ClientID:     "cid_1",
		ClientSecret: "sec_1",
		TokenURL:     server.URL,
	}, transport.NewDispatcher(server.Client()), nil)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if err := manager.RefreshToken(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if grants.Load() != 1 || manager.AccessToken() == "" {
		t.Fatalf("refresh did not run the grant")
	}
}
