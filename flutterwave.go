// Package flutterwave is a typed client for the Flutterwave v4 REST API.
// Construct a Client with New, then call the resource services hung off it.
// Token acquisition and refresh happen transparently before every call.
package flutterwave

import (
	"context"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/toneflix/flutterwave-go/api"
	"github.com/toneflix/flutterwave-go/auth"
	"github.com/toneflix/flutterwave-go/core"
	"github.com/toneflix/flutterwave-go/routing"
	"github.com/toneflix/flutterwave-go/security"
	"github.com/toneflix/flutterwave-go/transport"
)

// Config is the runtime configuration layer. Anything left zero falls back
// to environment variables and then built-in defaults.
type Config = core.Config

// Environment selects which Flutterwave base URL requests go to.
type Environment = core.Environment

const (
	EnvironmentSandbox = core.EnvironmentSandbox
	EnvironmentLive    = core.EnvironmentLive
)

// Client is the SDK entry point. Every resource service shares one
// dispatcher, one credential manager, and one URL builder.
type Client struct {
	config      core.Config
	logger      core.Logger
	dispatcher  *transport.Dispatcher
	credentials *auth.CredentialManager
	builder     *routing.Builder
	encryptor   *security.CardEncryptor
	webhooks    *security.WebhookValidator

	Banks              *api.BanksService
	Charges            *api.ChargesService
	Chargebacks        *api.ChargebacksService
	Customers          *api.CustomersService
	Fees               *api.FeesService
	MobileNetworks     *api.MobileNetworksService
	Orchestration      *api.OrchestrationService
	Orders             *api.OrdersService
	PaymentMethods     *api.PaymentMethodsService
	Refunds            *api.RefundsService
	Settlements        *api.SettlementsService
	TransferRates      *api.TransferRatesService
	TransferRecipients *api.TransferRecipientsService
	TransferSenders    *api.TransferSendersService
	Transfers          *api.TransfersService
	VirtualAccounts    *api.VirtualAccountsService
	Wallets            *api.WalletsService
}

type clientBuilder struct {
	runtimeConfig   core.Config
	logger          core.Logger
	loggerProvider  core.LoggerProvider
	metricsRecorder core.MetricsRecorder
	httpClient      transport.HTTPDoer
	configProvider  core.ConfigProvider
	optionsResolver core.OptionsResolver
}

// Option customizes Client construction.
type Option func(*clientBuilder)

func WithLogger(logger core.Logger) Option {
	return func(b *clientBuilder) {
		b.logger = logger
	}
}

func WithLoggerProvider(provider core.LoggerProvider) Option {
	return func(b *clientBuilder) {
		b.loggerProvider = provider
	}
}

func WithMetricsRecorder(recorder core.MetricsRecorder) Option {
	return func(b *clientBuilder) {
		b.metricsRecorder = recorder
	}
}

// WithHTTPClient swaps the underlying HTTP client, mostly useful for
// transports with custom TLS or proxy setups.
func WithHTTPClient(client *http.Client) Option {
	return func(b *clientBuilder) {
		b.httpClient = client
	}
}

// WithConfigLoader replaces the default environment-variable loader with a
// custom raw source.
func WithConfigLoader(loader core.RawConfigLoader) Option {
	return func(b *clientBuilder) {
		b.configProvider = core.NewCfgxConfigProvider(loader)
	}
}

func WithConfigProvider(provider core.ConfigProvider) Option {
	return func(b *clientBuilder) {
		b.configProvider = provider
	}
}

func WithOptionsResolver(resolver core.OptionsResolver) Option {
	return func(b *clientBuilder) {
		b.optionsResolver = resolver
	}
}

// WithBaseURL overrides the environment-derived base URL, mostly useful for
// pointing the client at a local stub.
func WithBaseURL(raw string) Option {
	return func(b *clientBuilder) {
		b.runtimeConfig.BaseURL = raw
	}
}

// New resolves configuration, validates credentials, and wires every
// resource service. It fails fast with a config error when the client id or
// secret cannot be resolved from any layer.
func New(cfg Config, opts ...Option) (*Client, error) {
	builder := clientBuilder{runtimeConfig: cfg}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve("flutterwave", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("flutterwave"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.metricsRecorder == nil {
		builder.metricsRecorder = core.NopMetricsRecorder{}
	}
	if builder.configProvider == nil {
		builder.configProvider = core.NewCfgxConfigProvider(core.EnvLoader{})
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = core.GoOptionsResolver{}
	}

	defaults := core.DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, core.ConfigError("flutterwave: config load failed: " + err.Error())
	}
	resolved, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, core.ConfigError("flutterwave: config resolve failed: " + err.Error())
	}

	dispatcher := transport.NewDispatcher(builder.httpClient,
		transport.WithLogger(logger),
		transport.WithMetricsRecorder(builder.metricsRecorder),
		transport.WithDebugLevel(resolved.DebugLevel),
	)

	credentials, err := auth.NewCredentialManager(auth.Config{
		ClientID:     resolved.ClientID,
		ClientSecret: resolved.ClientSecret,
		TokenURL:     resolved.TokenURL,
		Scope:        resolved.Scope,
	}, dispatcher, logger)
	if err != nil {
		return nil, err
	}

	var urlBuilder *routing.Builder
	if resolved.BaseURL != "" {
		urlBuilder = routing.NewBuilderWithBaseURL(resolved.BaseURL)
	} else {
		urlBuilder = routing.NewBuilder(resolved.ResolvedEnvironment())
	}

	var encryptor *security.CardEncryptor
	if resolved.EncryptionKey != "" {
		encryptor, err = security.NewCardEncryptor(resolved.EncryptionKey)
		if err != nil {
			return nil, err
		}
	}

	var webhooks *security.WebhookValidator
	if resolved.SecretHash != "" {
		webhooks, err = security.NewWebhookValidator(resolved.SecretHash)
		if err != nil {
			return nil, err
		}
	}

	backend := api.NewClient(credentials, dispatcher, urlBuilder, encryptor)

	client := &Client{
		config:      resolved,
		logger:      logger,
		dispatcher:  dispatcher,
		credentials: credentials,
		builder:     urlBuilder,
		encryptor:   encryptor,
		webhooks:    webhooks,

		Banks:              api.NewBanksService(backend),
		Charges:            api.NewChargesService(backend),
		Chargebacks:        api.NewChargebacksService(backend),
		Customers:          api.NewCustomersService(backend),
		Fees:               api.NewFeesService(backend),
		MobileNetworks:     api.NewMobileNetworksService(backend),
		Orchestration:      api.NewOrchestrationService(backend),
		Orders:             api.NewOrdersService(backend),
		PaymentMethods:     api.NewPaymentMethodsService(backend),
		Refunds:            api.NewRefundsService(backend),
		Settlements:        api.NewSettlementsService(backend),
		TransferRates:      api.NewTransferRatesService(backend),
		TransferRecipients: api.NewTransferRecipientsService(backend),
		TransferSenders:    api.NewTransferSendersService(backend),
		Transfers:          api.NewTransfersService(backend),
		VirtualAccounts:    api.NewVirtualAccountsService(backend),
		Wallets:            api.NewWalletsService(backend),
	}
	return client, nil
}

// GenerateAccessToken forces a fresh token grant and returns the token.
func (c *Client) GenerateAccessToken(ctx context.Context) (string, error) {
	return c.credentials.GenerateAccessToken(ctx)
}

// EnsureTokenIsValid refreshes the token only when it is missing or about
// to expire.
func (c *Client) EnsureTokenIsValid(ctx context.Context) error {
	return c.credentials.EnsureTokenIsValid(ctx)
}

// AccessToken returns the current bearer token, empty when none was issued.
func (c *Client) AccessToken() string {
	return c.credentials.AccessToken()
}

// Environment reports the environment the client was built for.
func (c *Client) Environment() Environment {
	return c.config.ResolvedEnvironment()
}

// BaseURL reports the resolved API base URL.
func (c *Client) BaseURL() string {
	return c.builder.BaseURL()
}

// LastException returns the most recent normalized API error, nil when the
// last call succeeded.
func (c *Client) LastException() *goerrors.Error {
	return c.dispatcher.LastException()
}

// SetDebugLevel adjusts request/response logging verbosity at runtime:
// 0 silent, 1 request lines, 2 full bodies.
func (c *Client) SetDebugLevel(level int) {
	c.dispatcher.SetDebugLevel(level)
}

// Cards returns the card encryptor. It errors when no encryption key was
// configured.
func (c *Client) Cards() (*security.CardEncryptor, error) {
	if c.encryptor == nil {
		return nil, core.ConfigError("flutterwave: no encryption key configured")
	}
	return c.encryptor, nil
}

// Webhooks returns the webhook validator. It errors when no secret hash was
// configured.
func (c *Client) Webhooks() (*security.WebhookValidator, error) {
	if c.webhooks == nil {
		return nil, core.ConfigError("flutterwave: no secret hash configured")
	}
	return c.webhooks, nil
}
