package insights

import (
	"math"

	"github.com/okottawar/Finsight/internal/model"
)

// Anomalies flags transactions whose withdrawal or deposit amount sits more
// than zThreshold standard deviations from its series mean. Zero amounts
// mean "no transaction of that type" and do not contribute to the mean or
// stddev, but every row is still scored against those parameters. A series
// with fewer than two nonzero values, or with no variance, flags nothing.
// Flagged transactions come back in input order; scores are local to the
// call and never written onto the set.
func Anomalies(set *model.TransactionSet, zThreshold float64) []model.Transaction {
	txns := set.All()

	withdrawals := make([]float64, len(txns))
	deposits := make([]float64, len(txns))
	for i, txn := range txns {
		withdrawals[i] = txn.Withdrawal.InexactFloat64()
		deposits[i] = txn.Deposit.InexactFloat64()
	}

	withdrawalScores := zScores(withdrawals)
	depositScores := zScores(deposits)

	var flagged []model.Transaction
	for i, txn := range txns {
		if math.Abs(withdrawalScores[i]) > zThreshold || math.Abs(depositScores[i]) > zThreshold {
			flagged = append(flagged, txn)
		}
	}
	return flagged
}

// zScores scores every value against the mean and population stddev of the
// nonzero values. A degenerate distribution yields all-zero scores.
func zScores(values []float64) []float64 {
	var nonzero []float64
	for _, v := range values {
		if v != 0 {
			nonzero = append(nonzero, v)
		}
	}

	scores := make([]float64, len(values))
	if len(nonzero) < 2 {
		return scores
	}

	sum := 0.0
	for _, v := range nonzero {
		sum += v
	}
	mean := sum / float64(len(nonzero))

	variance := 0.0
	for _, v := range nonzero {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(nonzero))
	if variance == 0 {
		return scores
	}

	stddev := math.Sqrt(variance)
	for i, v := range values {
		scores[i] = (v - mean) / stddev
	}
	return scores
}
