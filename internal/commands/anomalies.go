package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/okottawar/Finsight/internal/insights"
)

func newAnomaliesCommand() *cobra.Command {
	var configPath string
	var zThreshold float64

	cmd := &cobra.Command{
		Use:   "anomalies <statement.csv>",
		Short: "Statistically unusual transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnomalies(cmd.OutOrStdout(), args[0], configPath, zThreshold)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "finsight.yaml", "config file")
	cmd.Flags().Float64Var(&zThreshold, "z-threshold", 0, "z-score cutoff (default from config)")

	return cmd
}

func runAnomalies(w io.Writer, statementPath, configPath string, zThreshold float64) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	set, err := loadStatement(statementPath, cfg)
	if err != nil {
		return err
	}

	if zThreshold <= 0 {
		zThreshold = cfg.Analysis.ZThreshold
	}

	flagged := insights.Anomalies(set, zThreshold)
	if len(flagged) == 0 {
		fmt.Fprintln(w, "No anomalous transactions found.")
		return nil
	}
	for _, txn := range flagged {
		printTransaction(w, txn)
	}
	return nil
}
