package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okottawar/Finsight/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finsight",
		Short:   "Bank statement analytics",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newTotalsCommand())
	rootCmd.AddCommand(newCategoriesCommand())
	rootCmd.AddCommand(newRecurringCommand())
	rootCmd.AddCommand(newTopCommand())
	rootCmd.AddCommand(newAnomaliesCommand())
	rootCmd.AddCommand(newTrendCommand())
	rootCmd.AddCommand(newRemarksCommand())
	rootCmd.AddCommand(newAskCommand())

	return rootCmd
}
