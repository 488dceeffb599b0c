package core

import (
	"strings"
	"time"
)

// DefaultTokenRenewBefore is how much validity must remain before a request
// proceeds without refreshing the token first.
const DefaultTokenRenewBefore = 60 * time.Second

// TokenState is the credential lifecycle bookkeeping owned by the credential
// manager. AccessToken is empty until the first successful refresh; once set,
// RefreshedAt and ExpiresIn are always updated together.
type TokenState struct {
	AccessToken string
	ExpiresIn   time.Duration
	RefreshedAt time.Time
}

// HasToken reports whether a token has ever been issued.
func (s TokenState) HasToken() bool {
	return strings.TrimSpace(s.AccessToken) != ""
}

// Remaining returns the validity left at the given instant.
func (s TokenState) Remaining(now time.Time) time.Duration {
	return s.ExpiresIn - now.Sub(s.RefreshedAt)
}

// ShouldRefresh reports whether a refresh must run before the next request:
// true when no token was ever issued or when less than renewBefore of
// validity remains.
func (s TokenState) ShouldRefresh(now time.Time, renewBefore time.Duration) bool {
	if !s.HasToken() {
		return true
	}
	if renewBefore <= 0 {
		renewBefore = DefaultTokenRenewBefore
	}
	return s.Remaining(now) < renewBefore
}
