package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/paramflip/internal/handler"
	"github.com/vvka-141/paramflip/internal/logging"
	"github.com/vvka-141/paramflip/internal/tui"
	"github.com/vvka-141/paramflip/internal/ui"
	"github.com/vvka-141/paramflip/pkg/paramflip"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Toggle the parameter once, exactly as the Lambda function would",
	Long: `Invoke runs one toggle locally using the default AWS credential chain.

The invocation result ({"statusCode": ..., "body": ...}) is printed to stdout
as JSON; log lines go to stderr.

Examples:
  # Toggle slow_query_log in my-database-pg
  paramflip invoke

  # Toggle general_log in another group, treating a missing parameter as 0
  paramflip invoke -g reporting-pg -p general_log --missing-policy assume-off

  # Skip the confirmation prompt
  paramflip invoke --yes`,
	Args: cobra.NoArgs,
	RunE: runInvoke,
}

type invokeFlagValues struct {
	yes bool
}

var invokeFlags invokeFlagValues

func init() {
	rootCmd.AddCommand(invokeCmd)

	invokeCmd.Flags().BoolVarP(&invokeFlags.yes, "yes", "y", false,
		"Do not ask for confirmation.\n"+
			"Confirmation is only requested when stdin is a terminal.")
}

// canPrompt is swapped in tests.
var canPrompt = tui.CanPrompt

func newApprover(cmd *cobra.Command) paramflip.Approver {
	if invokeFlags.yes || !canPrompt() {
		return ui.NewAutoApprover()
	}
	return ui.NewInteractiveApprover(cmd.InOrStdin(), cmd.ErrOrStderr())
}

func runInvoke(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	approved, err := newApprover(cmd).RequestApproval(ctx, cfg.ParameterGroup, cfg.ParameterName)
	if err != nil {
		return err
	}
	if !approved {
		return nil
	}

	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), cfg.Verbose)
	h := handler.New(cfg, logger, handler.WithStoreFactory(storeFactory))

	result, err := h.Handle(ctx, nil)
	if err != nil {
		return err
	}

	out, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if result.StatusCode != paramflip.StatusOK {
		return fmt.Errorf("%w: %s", paramflip.ErrAdminAPI, result.Body)
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
