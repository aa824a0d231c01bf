package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/okottawar/Finsight/internal/insights"
)

func newRemarksCommand() *cobra.Command {
	var configPath string
	var count int

	cmd := &cobra.Command{
		Use:   "remarks <statement.csv>",
		Short: "Most frequent transaction remarks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemarks(cmd.OutOrStdout(), args[0], configPath, count)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "finsight.yaml", "config file")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of remarks")

	return cmd
}

func runRemarks(w io.Writer, statementPath, configPath string, count int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	set, err := loadStatement(statementPath, cfg)
	if err != nil {
		return err
	}

	for _, rc := range insights.RemarkFrequency(set, count) {
		fmt.Fprintf(w, "%dx  %s\n", rc.Count, rc.Remark)
	}
	return nil
}
