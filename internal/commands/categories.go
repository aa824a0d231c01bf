package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/okottawar/Finsight/internal/insights"
	"github.com/okottawar/Finsight/internal/model"
)

func newCategoriesCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "categories <statement.csv>",
		Short: "Spending and income by category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(cmd.OutOrStdout(), args[0], configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "finsight.yaml", "config file")

	return cmd
}

func runCategories(w io.Writer, statementPath, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	set, err := loadStatement(statementPath, cfg)
	if err != nil {
		return err
	}

	breakdown := insights.Breakdown(set)

	fmt.Fprintln(w, "Spending by category:")
	for _, c := range model.Categories() {
		if total, ok := breakdown.Spending[c]; ok {
			fmt.Fprintf(w, "  %-13s %s\n", c, total.StringFixed(2))
		}
	}
	fmt.Fprintln(w, "Income by category:")
	for _, c := range model.Categories() {
		if total, ok := breakdown.Income[c]; ok {
			fmt.Fprintf(w, "  %-13s %s\n", c, total.StringFixed(2))
		}
	}
	return nil
}
