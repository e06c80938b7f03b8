// Package handler adapts the toggle to a Lambda invocation.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"github.com/vvka-141/paramflip/internal/config"
	"github.com/vvka-141/paramflip/internal/db"
	"github.com/vvka-141/paramflip/internal/logging"
	"github.com/vvka-141/paramflip/internal/rdsadmin"
	"github.com/vvka-141/paramflip/internal/services"
	"github.com/vvka-141/paramflip/pkg/paramflip"
)

// StoreFactory builds the ParameterStore for one invocation.
type StoreFactory func(ctx context.Context, cfg *config.Config, logger paramflip.Logger) (paramflip.ParameterStore, error)

// Prober reads the live value of a setting from the database.
type Prober interface {
	CurrentSetting(ctx context.Context, name string) (string, bool, error)
}

// ProbeFactory builds the Prober used after a successful toggle.
type ProbeFactory func(cfg *config.Config) (Prober, error)

// Handler serves toggle invocations. Safe for concurrent use; every call
// builds its own store and logger prefix.
type Handler struct {
	cfg      *config.Config
	logger   *logging.ConsoleLogger
	newStore StoreFactory
	newProbe ProbeFactory
}

// Option is a functional option for configuring Handler.
type Option func(*Handler)

// WithStoreFactory replaces the RDS-backed store, mainly for tests.
func WithStoreFactory(f StoreFactory) Option {
	return func(h *Handler) {
		h.newStore = f
	}
}

// WithProbeFactory replaces the IAM-authenticated PostgreSQL probe.
func WithProbeFactory(f ProbeFactory) Option {
	return func(h *Handler) {
		h.newProbe = f
	}
}

// New creates a Handler for cfg. The config is validated per invocation so a
// broken deployment reports 500 instead of failing to start.
func New(cfg *config.Config, logger *logging.ConsoleLogger, opts ...Option) *Handler {
	h := &Handler{
		cfg:      cfg,
		logger:   logger,
		newStore: DefaultStoreFactory,
		newProbe: DefaultProbeFactory,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// DefaultStoreFactory connects to RDS with the default AWS credential chain.
func DefaultStoreFactory(ctx context.Context, cfg *config.Config, logger paramflip.Logger) (paramflip.ParameterStore, error) {
	client, err := rdsadmin.NewFromConfig(ctx, cfg.Region,
		rdsadmin.WithLogger(logger),
		rdsadmin.WithPageSize(cfg.PageSize),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", paramflip.ErrAdminAPI, err)
	}
	return client, nil
}

// DefaultProbeFactory authenticates to the probe endpoint with an RDS IAM token.
func DefaultProbeFactory(cfg *config.Config) (Prober, error) {
	host, port, err := db.SplitEndpoint(cfg.Probe.Endpoint)
	if err != nil {
		return nil, err
	}

	region := cfg.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}

	endpoint := net.JoinHostPort(host, strconv.Itoa(port))
	tp, err := db.NewAWSIAMTokenProvider(endpoint, region, cfg.Probe.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", paramflip.ErrInvalidConfig, err)
	}

	return db.NewProbe(db.ProbeOptions{
		Endpoint: endpoint,
		Database: cfg.Probe.Database,
		Username: cfg.Probe.Username,
		SSLMode:  cfg.Probe.SSLMode,
	}, tp)
}

// Handle toggles the configured parameter. The event is not inspected.
// The returned error is always nil; failures are reported as status 500.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (paramflip.Result, error) {
	log := h.logger.WithPrefix(RequestID(ctx))

	if err := h.cfg.Validate(); err != nil {
		log.Error("Invalid configuration: %v", err)
		return errorResult(err), nil
	}

	// Validate has already parsed both.
	policy, _ := h.cfg.Policy()
	timeout, _ := h.cfg.TimeoutDuration()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	store, err := h.newStore(ctx, h.cfg, log)
	if err != nil {
		log.Error("Error creating RDS client: %v", err)
		return errorResult(err), nil
	}

	svc := services.NewToggleService(store, log, policy)
	result := svc.Invoke(ctx, h.cfg.ParameterGroup, h.cfg.ParameterName)

	if result.StatusCode == paramflip.StatusOK && h.cfg.Probe.Enabled {
		h.probe(ctx, log)
	}

	return result, nil
}

// probe logs the live value. Failures are logged and never change the result.
func (h *Handler) probe(ctx context.Context, log paramflip.Logger) {
	p, err := h.newProbe(h.cfg)
	if err != nil {
		log.Warn("Probe disabled: %v", err)
		return
	}

	value, ok, err := p.CurrentSetting(ctx, h.cfg.ParameterName)
	switch {
	case err != nil:
		log.Warn("Probe failed: %v", err)
	case !ok:
		log.Warn("Probe: server does not report setting '%s'; the probe reads PostgreSQL settings only", h.cfg.ParameterName)
	default:
		log.Info("Probe: live value of '%s' is '%s'", h.cfg.ParameterName, value)
	}
}

// RequestID returns the Lambda request ID, or a fresh UUID outside Lambda.
func RequestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}

func errorResult(err error) paramflip.Result {
	return paramflip.Result{
		StatusCode: paramflip.StatusError,
		Body:       fmt.Sprintf("Error: %v", err),
	}
}
