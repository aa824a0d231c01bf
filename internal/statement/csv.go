package statement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okottawar/Finsight/internal/category"
	"github.com/okottawar/Finsight/internal/model"
)

// Sentinel errors for statement loading. Both abort the whole load.
var (
	// ErrMissingColumn means a required header is absent.
	ErrMissingColumn = errors.New("missing column")
	// ErrMalformedAmount means an amount field failed to parse after
	// stripping thousands separators.
	ErrMalformedAmount = errors.New("malformed amount")
)

const dateFormat = "01/02/2006"

// Required statement columns, by header name.
const (
	ColSeqNo      = "Sr. No."
	ColValueDate  = "Value date"
	ColTxnDate    = "Transaction Date"
	ColCheque     = "Cheque Number"
	ColRemarks    = "Transacting Remarks"
	ColWithdrawal = "Withdrawal Amount"
	ColDeposit    = "Deposit Amount"
	ColBalance    = "Balance"
)

var requiredColumns = []string{
	ColSeqNo,
	ColValueDate,
	ColTxnDate,
	ColCheque,
	ColRemarks,
	ColWithdrawal,
	ColDeposit,
	ColBalance,
}

// Parse reads a statement CSV and returns the normalized TransactionSet.
// The header row is validated before any row is processed; a malformed
// amount in any row fails the whole statement.
func Parse(r io.Reader, cat *category.Categorizer) (*model.TransactionSet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty statement: %w", ErrMissingColumn)
	}

	cols, err := indexColumns(records[0])
	if err != nil {
		return nil, err
	}

	txns := make([]model.Transaction, 0, len(records)-1)
	for i, rec := range records[1:] {
		txn, err := parseRow(rec, cols, i+1, cat)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return model.NewTransactionSet(txns), nil
}

// Load parses the statement file at path.
func Load(path string, cat *category.Categorizer) (*model.TransactionSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	set, err := Parse(f, cat)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return set, nil
}

// indexColumns maps header names to positions and checks that every
// required column is present.
func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return cols, nil
}

func parseRow(rec []string, cols map[string]int, position int, cat *category.Categorizer) (model.Transaction, error) {
	field := func(name string) string {
		idx := cols[name]
		if idx >= len(rec) {
			return ""
		}
		return rec[idx]
	}

	// Row identifiers are copied verbatim; a blank or junk value falls
	// back to the 1-based row position so sequence numbers stay unique.
	seqNo, err := strconv.Atoi(strings.TrimSpace(field(ColSeqNo)))
	if err != nil {
		seqNo = position
	}

	withdrawal, err := parseAmount(field(ColWithdrawal))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("withdrawal: %w", err)
	}
	deposit, err := parseAmount(field(ColDeposit))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("deposit: %w", err)
	}
	balance, err := parseAmount(field(ColBalance))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("balance: %w", err)
	}

	// The remark is stored verbatim: recurrence grouping matches remarks
	// by exact string equality.
	remark := field(ColRemarks)

	return model.Transaction{
		SequenceNo:      seqNo,
		ValueDate:       parseDate(field(ColValueDate)),
		TransactionDate: parseDate(field(ColTxnDate)),
		ChequeNumber:    strings.TrimSpace(field(ColCheque)),
		Remark:          remark,
		Withdrawal:      withdrawal,
		Deposit:         deposit,
		Balance:         balance,
		Category:        cat.Categorize(remark),
	}, nil
}

// parseDate returns the zero time when the value is absent or malformed,
// so date-filtered queries silently skip the row.
func parseDate(s string) time.Time {
	t, err := time.Parse(dateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseAmount strips thousands separators and parses a non-negative
// decimal. A blank cell means no amount of that type and parses as zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	cleaned := strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}
	return d, nil
}
