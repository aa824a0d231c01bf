package insights

import (
	"github.com/shopspring/decimal"

	"github.com/okottawar/Finsight/internal/model"
)

// CategoryBreakdown groups withdrawal and deposit totals by category.
type CategoryBreakdown struct {
	Spending map[model.Category]decimal.Decimal
	Income   map[model.Category]decimal.Decimal
}

// Breakdown sums withdrawals (spending) and deposits (income) per
// category. Spending values are reported as magnitudes. Categories with no
// activity on a side are left out of that map rather than zero-filled.
func Breakdown(set *model.TransactionSet) CategoryBreakdown {
	spending := make(map[model.Category]decimal.Decimal)
	income := make(map[model.Category]decimal.Decimal)
	for _, txn := range set.All() {
		if !txn.Withdrawal.IsZero() {
			spending[txn.Category] = spending[txn.Category].Add(txn.Withdrawal.Abs())
		}
		if !txn.Deposit.IsZero() {
			income[txn.Category] = income[txn.Category].Add(txn.Deposit)
		}
	}
	return CategoryBreakdown{Spending: spending, Income: income}
}
