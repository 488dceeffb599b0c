package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/transport"
)

// Config carries the client identity and the refresh policy. ClientID and
// ClientSecret must be non-empty; everything else has working defaults.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scope        string
	RenewBefore  time.Duration
	Now          func() time.Time
}

// CredentialManager owns the client identity and the token lifecycle. It
// exposes EnsureTokenIsValid as the single freshness guard every resource
// call must pass through before dispatching.
type CredentialManager struct {
	config     Config
	dispatcher *transport.Dispatcher
	logger     core.Logger

	mu    sync.Mutex
	state core.TokenState
}

func NewCredentialManager(cfg Config, dispatcher *transport.Dispatcher, logger core.Logger) (*CredentialManager, error) {
	cfg.ClientID = strings.TrimSpace(cfg.ClientID)
	cfg.ClientSecret = strings.TrimSpace(cfg.ClientSecret)
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, core.ConfigError("auth: client id and client secret are required")
	}
	if strings.TrimSpace(cfg.TokenURL) == "" {
		cfg.TokenURL = core.DefaultTokenURL
	}
	if strings.TrimSpace(cfg.Scope) == "" {
		cfg.Scope = core.DefaultScope
	}
	if cfg.RenewBefore <= 0 {
		cfg.RenewBefore = core.DefaultTokenRenewBefore
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	if logger == nil {
		logger = glog.Nop()
	}
	return &CredentialManager{
		config:     cfg,
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

// GenerateAccessToken performs the client-credentials grant against the
// identity provider, stores the issued token atomically with its expiry
// bookkeeping, and propagates it into the dispatcher's bearer slot.
func (m *CredentialManager) GenerateAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.config.ClientID)
	form.Set("client_secret", m.config.ClientSecret)
	form.Set("scope", m.config.Scope)

	res, err := m.dispatcher.Send(ctx, http.MethodPost, m.config.TokenURL, form, nil)
	if err != nil {
		return "", core.AccessTokenError(err, "auth: access token request failed")
	}
	token, err := core.DecodeData[core.AuthToken](res)
	if err != nil {
		return "", core.AccessTokenError(err, "auth: decode access token response")
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		return "", core.AccessTokenError(nil, "auth: identity provider returned an empty access token")
	}

	m.mu.Lock()
	m.state = core.TokenState{
		AccessToken: token.AccessToken,
		ExpiresIn:   time.Duration(token.ExpiresIn) * time.Second,
		RefreshedAt: m.config.Now(),
	}
	m.mu.Unlock()
	m.dispatcher.SetBearerToken(token.AccessToken)

	m.logger.Info("access token refreshed", "expires_in_s", token.ExpiresIn)
	return token.AccessToken, nil
}

// RefreshToken is an alias for GenerateAccessToken, kept for semantic
// clarity at call sites.
func (m *CredentialManager) RefreshToken(ctx context.Context) error {
	_, err := m.GenerateAccessToken(ctx)
	return err
}

// EnsureTokenIsValid refreshes the token when none has ever been issued or
// when less than the renew window of validity remains. Concurrent callers
// racing an expired token may each trigger their own refresh; the duplicate
// grant is harmless and the last writer wins.
func (m *CredentialManager) EnsureTokenIsValid(ctx context.Context) error {
	m.mu.Lock()
	fresh := !m.state.ShouldRefresh(m.config.Now(), m.config.RenewBefore)
	m.mu.Unlock()
	if fresh {
		return nil
	}
	return m.RefreshToken(ctx)
}

// AccessToken returns the current token, empty before the first refresh.
func (m *CredentialManager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.AccessToken
}

// State returns a snapshot of the token lifecycle bookkeeping.
func (m *CredentialManager) State() core.TokenState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
