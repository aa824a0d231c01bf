package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/okottawar/Finsight/internal/insights"
)

func newRecurringCommand() *cobra.Command {
	var configPath string
	var threshold int

	cmd := &cobra.Command{
		Use:   "recurring <statement.csv>",
		Short: "Transactions whose remark repeats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecurring(cmd.OutOrStdout(), args[0], configPath, threshold)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "finsight.yaml", "config file")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "minimum occurrences (default from config)")

	return cmd
}

func runRecurring(w io.Writer, statementPath, configPath string, threshold int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	set, err := loadStatement(statementPath, cfg)
	if err != nil {
		return err
	}

	if threshold <= 0 {
		threshold = cfg.Analysis.RecurringThreshold
	}

	groups := insights.Recurring(set, threshold)
	if len(groups) == 0 {
		fmt.Fprintln(w, "No recurring transactions found.")
		return nil
	}

	// Most frequent first; ties resolve alphabetically for stable output.
	remarks := make([]string, 0, len(groups))
	for remark := range groups {
		remarks = append(remarks, remark)
	}
	sort.Slice(remarks, func(i, j int) bool {
		if groups[remarks[i]].Frequency != groups[remarks[j]].Frequency {
			return groups[remarks[i]].Frequency > groups[remarks[j]].Frequency
		}
		return remarks[i] < remarks[j]
	})

	for _, remark := range remarks {
		g := groups[remark]
		fmt.Fprintf(w, "%dx  withdrawals=%s  deposits=%s  %s\n",
			g.Frequency, g.Withdrawals.StringFixed(2), g.Deposits.StringFixed(2), remark)
	}
	return nil
}
