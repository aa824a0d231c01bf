package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/okottawar/Finsight/internal/insights"
)

func newTrendCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "trend <statement.csv>",
		Short: "Monthly closing balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrend(cmd.OutOrStdout(), args[0], configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "finsight.yaml", "config file")

	return cmd
}

func runTrend(w io.Writer, statementPath, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	set, err := loadStatement(statementPath, cfg)
	if err != nil {
		return err
	}

	trend := insights.BalanceTrend(set)
	if len(trend) == 0 {
		fmt.Fprintln(w, "No dated transactions found.")
		return nil
	}
	for _, mb := range trend {
		fmt.Fprintf(w, "%04d-%02d  %s\n", mb.Year, int(mb.Month), mb.Balance.StringFixed(2))
	}
	return nil
}
