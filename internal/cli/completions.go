package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/paramflip/pkg/paramflip"
)

var (
	missingPolicies    = []string{string(paramflip.MissingSkip), string(paramflip.MissingAssumeOff)}
	unexpectedPolicies = []string{string(paramflip.UnexpectedSkip), string(paramflip.UnexpectedForce)}
)

// completeFrom returns a completion func offering the values that start with
// the typed prefix.
func completeFrom(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var matches []string
		for _, v := range values {
			if strings.HasPrefix(v, toComplete) {
				matches = append(matches, v)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}

func init() {
	_ = rootCmd.RegisterFlagCompletionFunc("missing-policy", completeFrom(missingPolicies))
	_ = rootCmd.RegisterFlagCompletionFunc("unexpected-policy", completeFrom(unexpectedPolicies))
}
