package core

import (
	"fmt"
	"strings"
)

const (
	// DefaultTokenURL is the fixed identity-provider endpoint for the
	// client-credentials grant.
	DefaultTokenURL = "https://idp.flutterwave.com/realms/flutterwave/protocol/openid-connect/token"

	// DefaultScope is the fixed scope requested with every token grant.
	DefaultScope = "profile email"
)

// Config carries the client identity and environment selection. Values are
// resolved once at construction: runtime arguments win over environment
// variables, which win over defaults.
type Config struct {
	ClientID      string `koanf:"client_id" mapstructure:"client_id"`
	ClientSecret  string `koanf:"client_secret" mapstructure:"client_secret"`
	EncryptionKey string `koanf:"encryption_key" mapstructure:"encryption_key"`
	SecretHash    string `koanf:"secret_hash" mapstructure:"secret_hash"`
	Environment   string `koanf:"environment" mapstructure:"environment"`
	Scope         string `koanf:"scope" mapstructure:"scope"`
	TokenURL      string `koanf:"token_url" mapstructure:"token_url"`
	BaseURL       string `koanf:"base_url" mapstructure:"base_url"`
	DebugLevel    int    `koanf:"debug_level" mapstructure:"debug_level"`
}

func DefaultConfig() Config {
	return Config{
		Environment: string(EnvironmentSandbox),
		Scope:       DefaultScope,
		TokenURL:    DefaultTokenURL,
	}
}

func (c Config) Validate() error {
	env := strings.TrimSpace(c.Environment)
	if env != "" && !strings.EqualFold(env, string(EnvironmentSandbox)) && !strings.EqualFold(env, string(EnvironmentLive)) {
		return fmt.Errorf("core: environment must be %q or %q", EnvironmentSandbox, EnvironmentLive)
	}
	return nil
}

// ResolvedEnvironment returns the environment the config selects, defaulting
// to sandbox.
func (c Config) ResolvedEnvironment() Environment {
	return ParseEnvironment(c.Environment)
}
