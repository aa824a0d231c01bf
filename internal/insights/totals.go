// Package insights implements the analytics queries over a normalized
// statement. Every query is a pure function of its TransactionSet: nothing
// here mutates the set, so queries can run concurrently against the same
// snapshot.
package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/okottawar/Finsight/internal/model"
)

// Summary holds aggregate spending vs income over a date range.
type Summary struct {
	TotalSpent    decimal.Decimal
	TotalReceived decimal.Decimal
	NetBalance    decimal.Decimal
}

// Totals sums withdrawals and deposits for transactions whose transaction
// date falls within [start, end]. A zero start or end leaves that bound
// open; rows without a transaction date are skipped whenever a bound is
// set. An empty filtered set yields zeros.
func Totals(set *model.TransactionSet, start, end time.Time) Summary {
	spent := decimal.Zero
	received := decimal.Zero
	for _, txn := range set.All() {
		if !inRange(txn.TransactionDate, start, end) {
			continue
		}
		spent = spent.Add(txn.Withdrawal)
		received = received.Add(txn.Deposit)
	}
	return Summary{
		TotalSpent:    spent,
		TotalReceived: received,
		NetBalance:    received.Sub(spent),
	}
}

func inRange(date, start, end time.Time) bool {
	if start.IsZero() && end.IsZero() {
		return true
	}
	if date.IsZero() {
		return false
	}
	if !start.IsZero() && date.Before(start) {
		return false
	}
	if !end.IsZero() && date.After(end) {
		return false
	}
	return true
}
