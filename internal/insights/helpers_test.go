package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/okottawar/Finsight/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// txn builds a transaction with string amounts; "" means zero.
func txn(seq int, d time.Time, remark, withdrawal, deposit string, cat model.Category) model.Transaction {
	t := model.Transaction{
		SequenceNo:      seq,
		TransactionDate: d,
		Remark:          remark,
		Category:        cat,
	}
	if withdrawal != "" {
		t.Withdrawal = dec(withdrawal)
	}
	if deposit != "" {
		t.Deposit = dec(deposit)
	}
	return t
}

func newSet(txns ...model.Transaction) *model.TransactionSet {
	return model.NewTransactionSet(txns)
}
