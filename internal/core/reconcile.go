package core

import (
	"cmp"
	"slices"
	"strings"
)

// Reconcile normalizes records from one source, keeps the first record seen for each hash
// and orders the result by block number then transaction index.
func Reconcile(records []SourceRecord, sort string) ([]Transaction, error) {
	txs, err := NormalizeAll(records)
	if err != nil {
		return nil, err
	}

	return Order(txs, sort), nil
}

// Order deduplicates already normalized records and sorts them.
func Order(txs []Transaction, sort string) []Transaction {
	txs = Dedup(txs)
	SortTransactions(txs, sort)
	return txs
}

// Dedup keeps the first occurrence of every hash, preserving order.
func Dedup(txs []Transaction) []Transaction {
	seen := make(map[string]struct{}, len(txs))
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		key := strings.ToLower(tx.Hash)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tx)
	}
	return out
}

// SortTransactions is stable: records with equal keys keep their relative order.
func SortTransactions(txs []Transaction, sort string) {
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		c := cmp.Or(
			cmp.Compare(a.BlockNumber, b.BlockNumber),
			cmp.Compare(a.TransactionIndex, b.TransactionIndex),
		)
		if sort == SortAsc {
			return c
		}
		return -c
	})
}
