package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okottawar/Finsight/internal/query"
)

func newAskCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "ask <statement.csv> <question...>",
		Short: "Ask a question about the statement",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args[1:], " ")
			return runAsk(cmd.OutOrStdout(), args[0], configPath, question)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "finsight.yaml", "config file")

	return cmd
}

func runAsk(w io.Writer, statementPath, configPath, question string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	set, err := loadStatement(statementPath, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, query.Answer(question, set))
	return nil
}
