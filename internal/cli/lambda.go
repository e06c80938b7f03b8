package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/vvka-141/paramflip/internal/config"
	"github.com/vvka-141/paramflip/internal/handler"
	"github.com/vvka-141/paramflip/internal/logging"
	"github.com/vvka-141/paramflip/pkg/paramflip"
)

// IsLambda reports whether the process runs inside the Lambda runtime.
func IsLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// StartLambda serves invocations until the runtime shuts the process down.
func StartLambda() {
	lambda.Start(lambdaEntry())
}

// lambdaEntry builds the function passed to lambda.Start. A configuration
// that cannot be loaded still yields a handler, one that reports 500.
func lambdaEntry() func(context.Context, json.RawMessage) (paramflip.Result, error) {
	cfg, err := loadLambdaConfig(os.Getenv(config.EnvConfigPath), os.LookupEnv)
	if err != nil {
		logging.NewConsoleLogger(false).Error("Failed to load configuration: %v", err)
		return func(context.Context, json.RawMessage) (paramflip.Result, error) {
			return paramflip.Result{StatusCode: paramflip.StatusError, Body: fmt.Sprintf("Error: %v", err)}, nil
		}
	}

	h := handler.New(cfg, logging.NewConsoleLogger(cfg.Verbose))
	return h.Handle
}

// loadLambdaConfig reads the optional config file and PARAMFLIP_* overrides.
// Validation is left to the handler so every invocation reports it.
func loadLambdaConfig(path string, lookup func(string) (string, bool)) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(path, path != "")
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}
