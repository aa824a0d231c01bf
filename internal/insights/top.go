package insights

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/okottawar/Finsight/internal/model"
)

// TopTransactions holds the largest withdrawal and deposit rows.
type TopTransactions struct {
	Withdrawals []model.Transaction
	Deposits    []model.Transaction
}

// Top selects the n largest transactions by withdrawal amount and, independently,
// by deposit amount. Equal amounts keep input order, so the earlier row wins.
// Full transaction records are returned.
func Top(set *model.TransactionSet, n int) TopTransactions {
	return TopTransactions{
		Withdrawals: topBy(set.All(), n, func(t model.Transaction) decimal.Decimal { return t.Withdrawal }),
		Deposits:    topBy(set.All(), n, func(t model.Transaction) decimal.Decimal { return t.Deposit }),
	}
}

func topBy(txns []model.Transaction, n int, amount func(model.Transaction) decimal.Decimal) []model.Transaction {
	if n <= 0 || len(txns) == 0 {
		return nil
	}
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return amount(sorted[i]).GreaterThan(amount(sorted[j]))
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
