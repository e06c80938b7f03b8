package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/paramflip/pkg/paramflip"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProbeConfig describes the optional post-write check against the database.
// The probe reads current_setting() over a PostgreSQL connection, so it only
// sees PostgreSQL parameters. MySQL/MariaDB parameters such as the default
// slow_query_log are reported as unknown to the server.
type ProbeConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint,omitempty"` // host or host:port
	Database string `yaml:"database,omitempty"`
	Username string `yaml:"username,omitempty"`
	SSLMode  string `yaml:"sslmode,omitempty"`
}

type Config struct {
	Region           string      `yaml:"region,omitempty"`
	ParameterGroup   string      `yaml:"parameter_group"`
	ParameterName    string      `yaml:"parameter_name"`
	MissingPolicy    string      `yaml:"missing_policy,omitempty"`
	UnexpectedPolicy string      `yaml:"unexpected_policy,omitempty"`
	Timeout          string      `yaml:"timeout,omitempty"`
	PageSize         int32       `yaml:"page_size,omitempty"`
	Verbose          bool        `yaml:"verbose,omitempty"`
	Probe            ProbeConfig `yaml:"probe,omitempty"`
}

const (
	ConfigFileName = "paramflip.yaml"

	// EnvConfigPath names the config file when no --config flag is given.
	EnvConfigPath = "PARAMFLIP_CONFIG"

	envPrefix = "PARAMFLIP_"
)

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		ParameterGroup:   paramflip.DefaultParameterGroup,
		ParameterName:    paramflip.DefaultParameterName,
		MissingPolicy:    string(paramflip.MissingSkip),
		UnexpectedPolicy: string(paramflip.UnexpectedSkip),
		Timeout:          paramflip.DefaultTimeout.String(),
		Probe: ProbeConfig{
			SSLMode: "require",
		},
	}
}

// Load reads a YAML config file on top of Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", paramflip.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default() when path is empty,
// or when path is the implicit default file and it does not exist.
func LoadOrDefault(path string, explicit bool) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, ErrConfigNotFound) && !explicit {
		return Default(), nil
	}
	return cfg, err
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables already set are not overridden.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from PARAMFLIP_* variables. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(envPrefix + key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a boolean", paramflip.ErrInvalidConfig, envPrefix, key, v)
		}
		*dst = b
		return nil
	}

	str("REGION", &c.Region)
	str("PARAMETER_GROUP", &c.ParameterGroup)
	str("PARAMETER_NAME", &c.ParameterName)
	str("MISSING_POLICY", &c.MissingPolicy)
	str("UNEXPECTED_POLICY", &c.UnexpectedPolicy)
	str("TIMEOUT", &c.Timeout)
	str("PROBE_ENDPOINT", &c.Probe.Endpoint)
	str("PROBE_DATABASE", &c.Probe.Database)
	str("PROBE_USERNAME", &c.Probe.Username)
	str("PROBE_SSLMODE", &c.Probe.SSLMode)

	if v, ok := lookup(envPrefix + "PAGE_SIZE"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %sPAGE_SIZE=%q is not an integer", paramflip.ErrInvalidConfig, envPrefix, v)
		}
		c.PageSize = int32(n)
	}
	if err := boolean("VERBOSE", &c.Verbose); err != nil {
		return err
	}
	return boolean("PROBE_ENABLED", &c.Probe.Enabled)
}

// Policy returns the parsed toggle policy.
func (c *Config) Policy() (paramflip.Policy, error) {
	missing, err := paramflip.ParseMissingPolicy(c.MissingPolicy)
	if err != nil {
		return paramflip.Policy{}, err
	}
	unexpected, err := paramflip.ParseUnexpectedPolicy(c.UnexpectedPolicy)
	if err != nil {
		return paramflip.Policy{}, err
	}
	return paramflip.Policy{Missing: missing, Unexpected: unexpected}, nil
}

// TimeoutDuration parses Timeout; an empty value yields the default.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if strings.TrimSpace(c.Timeout) == "" {
		return paramflip.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid timeout %q: %w", paramflip.ErrInvalidConfig, c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout must be positive, got %s", paramflip.ErrInvalidConfig, d)
	}
	return d, nil
}

// Validate checks that the configuration can drive a toggle.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ParameterGroup) == "" {
		return fmt.Errorf("%w: parameter group is required", paramflip.ErrInvalidConfig)
	}
	if strings.TrimSpace(c.ParameterName) == "" {
		return fmt.Errorf("%w: parameter name is required", paramflip.ErrInvalidConfig)
	}
	if c.PageSize != 0 && (c.PageSize < 20 || c.PageSize > 100) {
		return fmt.Errorf("%w: page size must be between 20 and 100, got %d", paramflip.ErrInvalidConfig, c.PageSize)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	if c.Probe.Enabled {
		if c.Probe.Endpoint == "" || c.Probe.Database == "" || c.Probe.Username == "" {
			return fmt.Errorf("%w: probe requires endpoint, database and username", paramflip.ErrInvalidConfig)
		}
	}
	return nil
}
