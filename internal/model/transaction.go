package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one normalized bank-statement row.
type Transaction struct {
	SequenceNo      int
	ValueDate       time.Time // zero when the source value was absent or unparseable
	TransactionDate time.Time // zero when the source value was absent or unparseable
	ChequeNumber    string
	Remark          string
	Withdrawal      decimal.Decimal // non-negative; zero means no withdrawal
	Deposit         decimal.Decimal // non-negative; zero means no deposit
	Balance         decimal.Decimal
	Category        Category
}
