package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/paramflip/internal/config"
	"github.com/vvka-141/paramflip/internal/handler"
	"github.com/vvka-141/paramflip/pkg/paramflip"
)

var rootCmd = &cobra.Command{
	Use:   "paramflip",
	Short: "Toggle a binary parameter of an RDS DB parameter group",
	Long: `paramflip flips a "0"/"1" parameter (slow_query_log by default) in an
Amazon RDS DB parameter group and applies the change immediately.

The same binary runs as an AWS Lambda function when AWS_LAMBDA_FUNCTION_NAME
is set, and as this command line tool otherwise.

Configuration precedence (highest first):
  flags > PARAMFLIP_* environment > --env-file > paramflip.yaml > defaults

Exit Codes:
  0  - Success (including "no change made")
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - RDS management API call failed`,
	SilenceUsage: true,
}

type globalFlagValues struct {
	verbose          bool
	configPath       string
	envFile          string
	region           string
	group            string
	parameter        string
	missingPolicy    string
	unexpectedPolicy string
	timeout          string
}

var globalFlags globalFlagValues

// storeFactory is replaced in tests to avoid calling AWS.
var storeFactory handler.StoreFactory = handler.DefaultStoreFactory

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&globalFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	pf.StringVarP(&globalFlags.configPath, "config", "c", "",
		"Path to config file (default: $PARAMFLIP_CONFIG or ./"+config.ConfigFileName+" if present)")
	pf.StringVar(&globalFlags.envFile, "env-file", "",
		"Load environment variables from a dotenv file before reading PARAMFLIP_* overrides")
	pf.StringVar(&globalFlags.region, "region", "",
		"AWS region (default: $AWS_REGION or shared config)")
	pf.StringVarP(&globalFlags.group, "group", "g", "",
		"DB parameter group name (default \""+paramflip.DefaultParameterGroup+"\")")
	pf.StringVarP(&globalFlags.parameter, "parameter", "p", "",
		"Parameter to toggle (default \""+paramflip.DefaultParameterName+"\")")
	pf.StringVar(&globalFlags.missingPolicy, "missing-policy", "",
		"What to do when the parameter is absent: skip|assume-off")
	pf.StringVar(&globalFlags.unexpectedPolicy, "unexpected-policy", "",
		"What to do when the value is not 0 or 1: skip|force")
	pf.StringVar(&globalFlags.timeout, "timeout", "",
		"Upper bound for one invocation (e.g. 30s, 2m)")
}

// loadConfig resolves the effective configuration for a command.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if globalFlags.envFile != "" {
		if err := config.LoadEnvFile(globalFlags.envFile); err != nil {
			return nil, fmt.Errorf("%w: %w", paramflip.ErrInvalidConfig, err)
		}
	}

	path, explicit := configPath(cmd)
	cfg, err := config.LoadOrDefault(path, explicit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load %s: %w", paramflip.ErrInvalidConfig, path, err)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	overrides := []struct {
		flag string
		dst  *string
		val  string
	}{
		{"region", &cfg.Region, globalFlags.region},
		{"group", &cfg.ParameterGroup, globalFlags.group},
		{"parameter", &cfg.ParameterName, globalFlags.parameter},
		{"missing-policy", &cfg.MissingPolicy, globalFlags.missingPolicy},
		{"unexpected-policy", &cfg.UnexpectedPolicy, globalFlags.unexpectedPolicy},
		{"timeout", &cfg.Timeout, globalFlags.timeout},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.dst = o.val
		}
	}
	if globalFlags.verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configPath picks the config file and reports whether it was asked for explicitly.
func configPath(cmd *cobra.Command) (string, bool) {
	if cmd.Flags().Changed("config") {
		return globalFlags.configPath, true
	}
	if p := os.Getenv(config.EnvConfigPath); p != "" {
		return p, true
	}
	return config.ConfigFileName, false
}
