package model

// TransactionSet is the ordered collection of transactions from one
// statement. It is immutable after construction: every analytics query
// reads the same snapshot, so queries may run concurrently against it.
type TransactionSet struct {
	txns []Transaction
}

// NewTransactionSet copies txns into a new set, preserving input order.
func NewTransactionSet(txns []Transaction) *TransactionSet {
	copied := make([]Transaction, len(txns))
	copy(copied, txns)
	return &TransactionSet{txns: copied}
}

// All returns the transactions in input order. Callers must not modify the
// returned slice.
func (s *TransactionSet) All() []Transaction {
	return s.txns
}

// Len returns the number of transactions.
func (s *TransactionSet) Len() int {
	return len(s.txns)
}

// Last returns the final transaction, or false for an empty set.
func (s *TransactionSet) Last() (Transaction, bool) {
	if len(s.txns) == 0 {
		return Transaction{}, false
	}
	return s.txns[len(s.txns)-1], true
}
