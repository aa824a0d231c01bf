package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/okottawar/Finsight/internal/category"
	"github.com/okottawar/Finsight/internal/config"
	"github.com/okottawar/Finsight/internal/model"
	"github.com/okottawar/Finsight/internal/statement"
)

const flagDateFormat = "01/02/2006"

// loadConfig reads the config at path, falling back to defaults when the
// file does not exist. A config that exists but fails to parse is an error.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadStatement normalizes the statement at path using the configured
// category rules.
func loadStatement(path string, cfg *config.Config) (*model.TransactionSet, error) {
	cat := category.NewCategorizer(cfg.Rules())
	return statement.Load(path, cat)
}

// parseBound parses an optional MM/DD/YYYY date flag; empty means the
// bound is open.
func parseBound(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(flagDateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected MM/DD/YYYY, got %q", s)
	}
	return t, nil
}

// printTransaction renders one transaction for CLI output.
func printTransaction(w io.Writer, txn model.Transaction) {
	date := "-"
	if !txn.TransactionDate.IsZero() {
		date = txn.TransactionDate.Format(flagDateFormat)
	}
	fmt.Fprintf(w, "#%d  %s  %-12s  withdrawal=%s  deposit=%s  balance=%s  %s\n",
		txn.SequenceNo, date, txn.Category,
		txn.Withdrawal.StringFixed(2), txn.Deposit.StringFixed(2), txn.Balance.StringFixed(2),
		txn.Remark)
}
