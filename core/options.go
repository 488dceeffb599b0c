package core

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-config/cfgx"
	opts "github.com/goliatone/go-options"
	"github.com/joho/godotenv"
)

// ConfigProvider loads a Config from some backing source, layered over the
// supplied defaults.
type ConfigProvider interface {
	Load(ctx context.Context, defaults Config) (Config, error)
}

// RawConfigLoader produces the raw key/value map a ConfigProvider builds from.
type RawConfigLoader interface {
	LoadRaw(ctx context.Context) (map[string]any, error)
}

// OptionsResolver merges defaults, loaded, and runtime config layers.
type OptionsResolver interface {
	Resolve(defaults Config, loaded Config, runtime Config) (Config, error)
}

// EnvLoader reads configuration from process environment variables, using
// the CLIENT_ID / CLIENT_SECRET naming convention. When Path is set (or a .env
// file exists) it is loaded first without overriding existing variables.
type EnvLoader struct {
	Path string
}

var envKeys = map[string]string{
	"client_id":      "CLIENT_ID",
	"client_secret":  "CLIENT_SECRET",
	"encryption_key": "ENCRYPTION_KEY",
	"secret_hash":    "SECRET_HASH",
	"environment":    "ENVIRONMENT",
}

func (l EnvLoader) LoadRaw(context.Context) (map[string]any, error) {
	if strings.TrimSpace(l.Path) != "" {
		_ = godotenv.Load(l.Path)
	} else {
		_ = godotenv.Load()
	}

	raw := map[string]any{}
	for key, envKey := range envKeys {
		if value := strings.TrimSpace(os.Getenv(envKey)); value != "" {
			raw[key] = value
		}
	}
	if value := strings.TrimSpace(os.Getenv("DEBUG_LEVEL")); value != "" {
		if level, err := strconv.Atoi(value); err == nil {
			raw["debug_level"] = level
		}
	}
	return raw, nil
}

type staticRawConfigLoader struct {
	Values map[string]any
}

func (l staticRawConfigLoader) LoadRaw(context.Context) (map[string]any, error) {
	if len(l.Values) == 0 {
		return map[string]any{}, nil
	}
	out := make(map[string]any, len(l.Values))
	for key, value := range l.Values {
		out[key] = value
	}
	return out, nil
}

// StaticConfigLoader returns a RawConfigLoader serving a fixed map, useful
// for tests.
func StaticConfigLoader(values map[string]any) RawConfigLoader {
	return staticRawConfigLoader{Values: values}
}

type CfgxConfigProvider struct {
	Loader RawConfigLoader
}

func NewCfgxConfigProvider(loader RawConfigLoader) *CfgxConfigProvider {
	return &CfgxConfigProvider{Loader: loader}
}

func (p *CfgxConfigProvider) Load(ctx context.Context, defaults Config) (Config, error) {
	if p == nil {
		return defaults, nil
	}
	loader := p.Loader
	if loader == nil {
		loader = staticRawConfigLoader{}
	}
	raw, err := loader.LoadRaw(ctx)
	if err != nil {
		return Config{}, err
	}
	cfg, err := cfgx.Build[Config](raw,
		cfgx.WithDefaults(defaults),
		cfgx.WithValidator[Config]((*Config).Validate),
	)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// GoOptionsResolver layers defaults < loaded < runtime through a go-options
// stack, then rebuilds and validates the merged Config.
type GoOptionsResolver struct{}

func (GoOptionsResolver) Resolve(defaults Config, loaded Config, runtime Config) (Config, error) {
	stack, err := opts.NewStack(
		opts.NewLayer(
			opts.NewScope("defaults", 0),
			configToLayerMap(defaults, true),
			opts.WithSnapshotID[map[string]any]("defaults"),
		),
		opts.NewLayer(
			opts.NewScope("config", 10),
			configToLayerMap(loaded, false),
			opts.WithSnapshotID[map[string]any]("config"),
		),
		opts.NewLayer(
			opts.NewScope("runtime", 20),
			configToLayerMap(runtime, false),
			opts.WithSnapshotID[map[string]any]("runtime"),
		),
	)
	if err != nil {
		return Config{}, fmt.Errorf("core: options stack build failed: %w", err)
	}
	merged, err := stack.Merge()
	if err != nil {
		return Config{}, fmt.Errorf("core: options merge failed: %w", err)
	}
	resolved, err := cfgx.Build[Config](merged.Value,
		cfgx.WithDefaults(defaults),
		cfgx.WithValidator[Config]((*Config).Validate),
	)
	if err != nil {
		return Config{}, err
	}
	if err := resolved.Validate(); err != nil {
		return Config{}, err
	}
	return resolved, nil
}

func configToLayerMap(cfg Config, includeZero bool) map[string]any {
	layer := map[string]any{}
	set := func(key string, value string) {
		if includeZero || strings.TrimSpace(value) != "" {
			layer[key] = value
		}
	}
	set("client_id", cfg.ClientID)
	set("client_secret", cfg.ClientSecret)
	set("encryption_key", cfg.EncryptionKey)
	set("secret_hash", cfg.SecretHash)
	set("environment", cfg.Environment)
	set("scope", cfg.Scope)
	set("token_url", cfg.TokenURL)
	set("base_url", cfg.BaseURL)
	if includeZero || cfg.DebugLevel != 0 {
		layer["debug_level"] = cfg.DebugLevel
	}
	return layer
}
