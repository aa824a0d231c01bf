package insights

import (
	"github.com/shopspring/decimal"

	"github.com/okottawar/Finsight/internal/model"
)

// RecurringSummary aggregates the repeated transactions of one remark.
type RecurringSummary struct {
	Withdrawals decimal.Decimal
	Deposits    decimal.Decimal
	Frequency   int
}

// Recurring groups transactions by remark text and returns the groups that
// appear at least threshold times. Remarks are compared verbatim, so casing
// and whitespace variants count as distinct remarks.
func Recurring(set *model.TransactionSet, threshold int) map[string]RecurringSummary {
	groups := make(map[string]RecurringSummary)
	for _, txn := range set.All() {
		g := groups[txn.Remark]
		g.Withdrawals = g.Withdrawals.Add(txn.Withdrawal)
		g.Deposits = g.Deposits.Add(txn.Deposit)
		g.Frequency++
		groups[txn.Remark] = g
	}
	for remark, g := range groups {
		if g.Frequency < threshold {
			delete(groups, remark)
		}
	}
	return groups
}
