// Package txndb holds the read-only transaction database and appearance
// index the mining core consumes: the weighted transactions, their items,
// and the per-item appearance lists described in the specification's §3
// ("Appearance index (cooperation-owned, read-only during search)"). Nothing
// in this package depends on solver or coop, so it can be loaded once and
// shared, unsynchronized, across every worker goroutine.
package txndb

// Database is the immutable input every worker reads from during search. It
// is built once (by a Loader) and never mutated afterwards: the
// specification's non-interference invariant (§5) depends on that.
type Database struct {
	NbItems int // items are numbered [0, NbItems)
	NbTrans int // transactions are numbered [0, NbTrans)

	// Transactions[t] lists the items (0-based) contained in transaction t.
	Transactions [][]int
	// Weights[t][i] is the weight item Transactions[t][i] contributes in
	// transaction t.
	Weights [][]int
	// Appearances[item] lists the ids of every transaction containing
	// item, in increasing order.
	Appearances [][]int
	// ItemWeight[item] is the total weight item accumulates across every
	// transaction that contains it: sum over t in Appearances[item] of
	// the weight item carries in t. Used to fast-reject a guiding-path
	// head whose item can never reach min_supp on its own (§4.7).
	ItemWeight []int

	// Items is the ordered list of item variables the guiding-path
	// encoder strides over (the "allItems" list of the original source),
	// index k giving the (k+1)-th guiding path's head item.
	Items []int

	MinSupp int
}

// TotalWeight returns the sum of ItemWeight across the given (0-based)
// items. coop.Hub reports it as the weight of every itemset it emits.
func (db *Database) TotalWeight(items []int) int {
	total := 0
	for _, it := range items {
		total += db.ItemWeight[it]
	}
	return total
}
