package db

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vvka-141/paramflip/pkg/paramflip"
)

// ProbeOptions locate the database whose live setting is read.
type ProbeOptions struct {
	Endpoint string // host or host:port; port defaults to 5432
	Database string
	Username string
	SSLMode  string
}

// Probe reads a server setting over a short-lived connection.
// It never writes.
type Probe struct {
	host          string
	port          int
	opts          ProbeOptions
	tokenProvider TokenProvider
}

// NewProbe validates opts and returns a Probe that authenticates with tokens
// from tp.
func NewProbe(opts ProbeOptions, tp TokenProvider) (*Probe, error) {
	if tp == nil {
		return nil, fmt.Errorf("%w: probe requires a token provider", paramflip.ErrInvalidConfig)
	}
	if opts.Database == "" || opts.Username == "" {
		return nil, fmt.Errorf("%w: probe requires database and username", paramflip.ErrInvalidConfig)
	}

	host, port, err := SplitEndpoint(opts.Endpoint)
	if err != nil {
		return nil, err
	}

	if opts.SSLMode == "" {
		opts.SSLMode = "require"
	}

	return &Probe{host: host, port: port, opts: opts, tokenProvider: tp}, nil
}

// SplitEndpoint splits "host[:port]" and applies the default PostgreSQL port.
func SplitEndpoint(endpoint string) (string, int, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", 0, fmt.Errorf("%w: probe endpoint is required", paramflip.ErrInvalidConfig)
	}

	host, portStr, err := net.SplitHostPort(endpoint)
	if err != nil {
		// No port present.
		return endpoint, paramflip.DefaultProbePort, nil
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, fmt.Errorf("%w: invalid probe port %q", paramflip.ErrInvalidConfig, portStr)
	}
	return host, port, nil
}

// Endpoint returns the normalized host:port, the form RDS IAM tokens are signed for.
func (p *Probe) Endpoint() string {
	return net.JoinHostPort(p.host, strconv.Itoa(p.port))
}

// CurrentSetting returns current_setting(name) as seen by a new session.
// The boolean is false when the server does not know the setting.
func (p *Probe) CurrentSetting(ctx context.Context, name string) (string, bool, error) {
	token, _, err := p.tokenProvider.GetToken(ctx)
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %w", paramflip.ErrProbeFailed, p.tokenProvider, err)
	}

	connConfig, err := pgx.ParseConfig(p.connString())
	if err != nil {
		return "", false, fmt.Errorf("%w: failed to parse connection config: %w", paramflip.ErrProbeFailed, err)
	}
	connConfig.Password = token

	conn, err := pgx.ConnectConfig(ctx, connConfig)
	if err != nil {
		return "", false, fmt.Errorf("%w: failed to connect to %s: %w", paramflip.ErrProbeFailed, p.Endpoint(), err)
	}
	defer conn.Close(context.WithoutCancel(ctx))

	var value *string
	if err := conn.QueryRow(ctx, "SELECT current_setting($1, true)", name).Scan(&value); err != nil {
		return "", false, fmt.Errorf("%w: failed to read setting %s: %w", paramflip.ErrProbeFailed, name, err)
	}
	if value == nil {
		return "", false, nil
	}
	return *value, true, nil
}

// connString builds a keyword/value connection string without the password.
func (p *Probe) connString() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s sslmode=%s",
		quoteValue(p.host), p.port, quoteValue(p.opts.Database), quoteValue(p.opts.Username), quoteValue(p.opts.SSLMode))
}

// quoteValue quotes a libpq keyword/value parameter.
func quoteValue(s string) string {
	if s != "" && !strings.ContainsAny(s, ` '\`) {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
