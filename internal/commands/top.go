package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/okottawar/Finsight/internal/insights"
)

func newTopCommand() *cobra.Command {
	var configPath string
	var count int

	cmd := &cobra.Command{
		Use:   "top <statement.csv>",
		Short: "Largest withdrawals and deposits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTop(cmd.OutOrStdout(), args[0], configPath, count)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "finsight.yaml", "config file")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "transactions per side (default from config)")

	return cmd
}

func runTop(w io.Writer, statementPath, configPath string, count int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	set, err := loadStatement(statementPath, cfg)
	if err != nil {
		return err
	}

	if count <= 0 {
		count = cfg.Analysis.TopN
	}

	top := insights.Top(set, count)
	fmt.Fprintln(w, "Top withdrawals:")
	for _, txn := range top.Withdrawals {
		printTransaction(w, txn)
	}
	fmt.Fprintln(w, "Top deposits:")
	for _, txn := range top.Deposits {
		printTransaction(w, txn)
	}
	return nil
}
