package insights

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okottawar/Finsight/internal/model"
)

func TestAnomaliesFlagsOutlier(t *testing.T) {
	// Ten routine withdrawals and one an order of magnitude larger.
	txns := make([]model.Transaction, 0, 11)
	for i := 1; i <= 10; i++ {
		txns = append(txns, txn(i, date(2025, 1, i), fmt.Sprintf("routine %d", i), "100", "", model.CategoryOther))
	}
	txns = append(txns, txn(11, date(2025, 1, 20), "huge", "10000", "", model.CategoryOther))

	flagged := Anomalies(newSet(txns...), 3)
	require.Len(t, flagged, 1)
	assert.Equal(t, "huge", flagged[0].Remark)
}

func TestAnomaliesZeroVariance(t *testing.T) {
	// All withdrawals identical: no variance, no anomalies, no panic.
	set := newSet(
		txn(1, date(2025, 1, 2), "a", "100", "", model.CategoryOther),
		txn(2, date(2025, 1, 3), "b", "100", "", model.CategoryOther),
		txn(3, date(2025, 1, 4), "c", "100", "", model.CategoryOther),
	)

	assert.Empty(t, Anomalies(set, 3))
}

func TestAnomaliesDegenerateSeries(t *testing.T) {
	// Fewer than two nonzero values per series flags nothing.
	set := newSet(
		txn(1, date(2025, 1, 2), "a", "100", "", model.CategoryOther),
		txn(2, date(2025, 1, 3), "b", "", "500", model.CategoryOther),
	)
	assert.Empty(t, Anomalies(set, 3))

	assert.Empty(t, Anomalies(newSet(), 3))
}

func TestAnomaliesZerosScoredButExcludedFromParams(t *testing.T) {
	// The nonzero withdrawals are tightly clustered around 1000, so a
	// zero-withdrawal row scores far outside the distribution.
	set := newSet(
		txn(1, date(2025, 1, 2), "a", "1000", "", model.CategoryOther),
		txn(2, date(2025, 1, 3), "b", "1000", "", model.CategoryOther),
		txn(3, date(2025, 1, 4), "c", "1000", "", model.CategoryOther),
		txn(4, date(2025, 1, 5), "d", "1001", "", model.CategoryOther),
		txn(5, date(2025, 1, 6), "no withdrawal", "", "", model.CategoryOther),
	)

	flagged := Anomalies(set, 3)
	require.Len(t, flagged, 1)
	assert.Equal(t, "no withdrawal", flagged[0].Remark)
}

func TestAnomaliesEitherSeriesFlags(t *testing.T) {
	txns := make([]model.Transaction, 0, 22)
	seq := 1
	for i := 1; i <= 10; i++ {
		txns = append(txns, txn(seq, date(2025, 1, i), fmt.Sprintf("w%d", i), "100", "", model.CategoryOther))
		seq++
	}
	for i := 1; i <= 10; i++ {
		txns = append(txns, txn(seq, date(2025, 2, i), fmt.Sprintf("d%d", i), "", "200", model.CategoryOther))
		seq++
	}
	txns = append(txns, txn(seq, date(2025, 3, 1), "big withdrawal", "10000", "", model.CategoryOther))
	seq++
	txns = append(txns, txn(seq, date(2025, 3, 2), "big deposit", "", "20000", model.CategoryOther))

	flagged := Anomalies(newSet(txns...), 3)
	require.Len(t, flagged, 2)

	// Output preserves input order among flagged rows.
	assert.Equal(t, "big withdrawal", flagged[0].Remark)
	assert.Equal(t, "big deposit", flagged[1].Remark)
}

func TestAnomaliesDoNotMutateSet(t *testing.T) {
	set := newSet(
		txn(1, date(2025, 1, 2), "a", "100", "", model.CategoryOther),
		txn(2, time.Time{}, "b", "10000", "", model.CategoryOther),
		txn(3, date(2025, 1, 4), "c", "100", "", model.CategoryOther),
	)
	before := make([]model.Transaction, set.Len())
	copy(before, set.All())

	_ = Anomalies(set, 0.5)

	assert.Equal(t, before, set.All())
}
