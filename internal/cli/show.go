package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/paramflip/internal/logging"
	"github.com/vvka-141/paramflip/internal/services"
	"github.com/vvka-141/paramflip/internal/tui"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current value and what a toggle would do, without writing",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Validate has already parsed both.
	policy, _ := cfg.Policy()
	timeout, _ := cfg.TimeoutDuration()

	ctx, cancel := context.WithTimeout(commandContext(cmd), timeout)
	defer cancel()

	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), cfg.Verbose)
	styled := tui.IsInteractive()

	store, err := storeFactory(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderError(err, styled))
		return err
	}

	report, err := services.NewToggleService(store, logger, policy).Inspect(ctx, cfg.ParameterGroup, cfg.ParameterName)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderError(err, styled))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderReport(report, styled))
	return nil
}
