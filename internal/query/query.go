// Package query answers a fixed set of natural-language question templates
// by delegating to the analytics queries. It is keyword matching, not NLP:
// triggers are checked in a fixed order against the lower-cased question.
package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okottawar/Finsight/internal/insights"
	"github.com/okottawar/Finsight/internal/model"
)

// Canned responses for questions the dispatcher cannot route.
const (
	MsgNoBalance       = "No balance information available."
	MsgInvalidCategory = "Please specify a valid category."
	MsgNotUnderstood   = "I couldn't understand the query. Try rephrasing or ask about total spent, total deposited, largest transactions, or balance."
	msgNoWithdrawals   = "No withdrawal transactions found."
	msgNoDeposits      = "No deposit transactions found."
)

// Answer routes a question to the matching analytics query and formats the
// result. It never fails: unmatched questions get MsgNotUnderstood.
func Answer(text string, set *model.TransactionSet) string {
	q := strings.ToLower(text)

	switch {
	case strings.Contains(q, "total withdrawn") || strings.Contains(q, "total spent"):
		totals := insights.Totals(set, time.Time{}, time.Time{})
		return "Total money withdrawn: " + totals.TotalSpent.StringFixed(2)

	case strings.Contains(q, "total deposited") || strings.Contains(q, "total received"):
		totals := insights.Totals(set, time.Time{}, time.Time{})
		return "Total money deposited: " + totals.TotalReceived.StringFixed(2)

	case strings.Contains(q, "largest withdrawal"):
		top := insights.Top(set, 1)
		if len(top.Withdrawals) == 0 || top.Withdrawals[0].Withdrawal.IsZero() {
			return msgNoWithdrawals
		}
		return "Largest withdrawal: " + describe(top.Withdrawals[0], top.Withdrawals[0].Withdrawal)

	case strings.Contains(q, "largest deposit"):
		top := insights.Top(set, 1)
		if len(top.Deposits) == 0 || top.Deposits[0].Deposit.IsZero() {
			return msgNoDeposits
		}
		return "Largest deposit: " + describe(top.Deposits[0], top.Deposits[0].Deposit)

	case strings.Contains(q, "balance"):
		last, ok := set.Last()
		if !ok {
			return MsgNoBalance
		}
		return "Current balance: " + last.Balance.StringFixed(2)

	case strings.Contains(q, "category") && strings.Contains(q, "spent"):
		return categorySpent(q, set)
	}

	return MsgNotUnderstood
}

// categorySpent scans the set's distinct categories for one named in the
// question and sums its withdrawals.
func categorySpent(q string, set *model.TransactionSet) string {
	seen := make(map[model.Category]bool)
	for _, txn := range set.All() {
		if seen[txn.Category] {
			continue
		}
		seen[txn.Category] = true
		if strings.Contains(q, strings.ToLower(string(txn.Category))) {
			total := decimal.Zero
			for _, t := range set.All() {
				if t.Category == txn.Category {
					total = total.Add(t.Withdrawal)
				}
			}
			return fmt.Sprintf("Total spent on %s: %s", txn.Category, total.StringFixed(2))
		}
	}
	return MsgInvalidCategory
}

func describe(txn model.Transaction, amount decimal.Decimal) string {
	date := "unknown date"
	if !txn.TransactionDate.IsZero() {
		date = txn.TransactionDate.Format("01/02/2006")
	}
	return fmt.Sprintf("%s on %s (%s)", amount.StringFixed(2), date, txn.Remark)
}
