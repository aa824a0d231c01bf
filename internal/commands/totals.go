package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/okottawar/Finsight/internal/insights"
)

func newTotalsCommand() *cobra.Command {
	var configPath, from, to string

	cmd := &cobra.Command{
		Use:   "totals <statement.csv>",
		Short: "Overall spending vs income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTotals(cmd.OutOrStdout(), args[0], configPath, from, to)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "finsight.yaml", "config file")
	cmd.Flags().StringVar(&from, "from", "", "start date (MM/DD/YYYY)")
	cmd.Flags().StringVar(&to, "to", "", "end date (MM/DD/YYYY)")

	return cmd
}

func runTotals(w io.Writer, statementPath, configPath, from, to string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	set, err := loadStatement(statementPath, cfg)
	if err != nil {
		return err
	}

	start, err := parseBound(from)
	if err != nil {
		return fmt.Errorf("parsing --from: %w", err)
	}
	end, err := parseBound(to)
	if err != nil {
		return fmt.Errorf("parsing --to: %w", err)
	}

	summary := insights.Totals(set, start, end)
	fmt.Fprintf(w, "Total spent:    %s\n", summary.TotalSpent.StringFixed(2))
	fmt.Fprintf(w, "Total received: %s\n", summary.TotalReceived.StringFixed(2))
	fmt.Fprintf(w, "Net balance:    %s\n", summary.NetBalance.StringFixed(2))
	return nil
}
