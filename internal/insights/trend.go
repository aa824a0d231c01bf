package insights

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okottawar/Finsight/internal/model"
)

// MonthBalance is the closing balance of one calendar month.
type MonthBalance struct {
	Year    int
	Month   time.Month
	Balance decimal.Decimal
}

// BalanceTrend returns the last known balance of each calendar month, in
// chronological order. Rows without a transaction date are ignored. Within
// a month the latest date wins; same-date rows resolve to the later row.
func BalanceTrend(set *model.TransactionSet) []MonthBalance {
	type monthKey struct {
		year  int
		month time.Month
	}
	latestDate := make(map[monthKey]time.Time)
	closing := make(map[monthKey]decimal.Decimal)

	for _, txn := range set.All() {
		if txn.TransactionDate.IsZero() {
			continue
		}
		key := monthKey{txn.TransactionDate.Year(), txn.TransactionDate.Month()}
		if seen, ok := latestDate[key]; ok && txn.TransactionDate.Before(seen) {
			continue
		}
		latestDate[key] = txn.TransactionDate
		closing[key] = txn.Balance
	}

	trend := make([]MonthBalance, 0, len(closing))
	for key, balance := range closing {
		trend = append(trend, MonthBalance{Year: key.year, Month: key.month, Balance: balance})
	}
	sort.Slice(trend, func(i, j int) bool {
		if trend[i].Year != trend[j].Year {
			return trend[i].Year < trend[j].Year
		}
		return trend[i].Month < trend[j].Month
	})
	return trend
}

// RemarkCount is how often one remark appears in the statement.
type RemarkCount struct {
	Remark string
	Count  int
}

// RemarkFrequency returns the n most frequent remarks, most frequent
// first. Remarks are trimmed for counting and blank remarks are excluded;
// ties keep first-appearance order.
func RemarkFrequency(set *model.TransactionSet, n int) []RemarkCount {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, txn := range set.All() {
		remark := strings.TrimSpace(txn.Remark)
		if remark == "" {
			continue
		}
		if _, seen := counts[remark]; !seen {
			order = append(order, remark)
		}
		counts[remark]++
	}

	result := make([]RemarkCount, 0, len(order))
	for _, remark := range order {
		result = append(result, RemarkCount{Remark: remark, Count: counts[remark]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if n < len(result) {
		result = result[:n]
	}
	return result
}
