package txndb

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Loader parses a CSV transaction database external to the mining core, the
// way gophersat's solver.ParseCNF parses a DIMACS file external to the SAT
// engine proper: it is a collaborator the core consumes through the
// Database type, not part of the core's own responsibility (§1: "Deliberately
// out of scope ... the DIMACS/CSV input parser").
//
// Expected format: one transaction per line, each line a comma-separated
// list of "item:weight" tokens, items given as 1-based ids, e.g.:
//
//	1:3,2:1,5:4
//	2:2,3:1
//
// Blank lines and lines starting with '#' are ignored.
type Loader struct {
	MinSupp int
}

// Load reads every transaction from r and builds the corresponding Database.
// Any malformed line is a fatal input-constraint violation (§7): the loader
// returns an error rather than letting the core observe an inconsistent
// database.
func (l Loader) Load(r io.Reader) (*Database, error) {
	var transactions [][]int
	var weights [][]int
	maxItem := 0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.Split(line, ",")
		items := make([]int, 0, len(tokens))
		itemWeights := make([]int, 0, len(tokens))
		seen := make(map[int]bool, len(tokens))
		for _, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			item, weight, err := parseItemWeight(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "txndb: line %d: invalid token %q", lineNo, tok)
			}
			if item < 1 {
				return nil, errors.Errorf("txndb: line %d: item ids are 1-based, got %d", lineNo, item)
			}
			if seen[item] {
				return nil, errors.Errorf("txndb: line %d: item %d repeated in the same transaction", lineNo, item)
			}
			seen[item] = true
			items = append(items, item-1)
			itemWeights = append(itemWeights, weight)
			if item > maxItem {
				maxItem = item
			}
		}
		transactions = append(transactions, items)
		weights = append(weights, itemWeights)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "txndb: scanning input")
	}

	db := &Database{
		NbItems:      maxItem,
		NbTrans:      len(transactions),
		Transactions: transactions,
		Weights:      weights,
		Appearances:  make([][]int, maxItem),
		ItemWeight:   make([]int, maxItem),
		MinSupp:      l.MinSupp,
	}
	for t, items := range transactions {
		for i, item := range items {
			db.Appearances[item] = append(db.Appearances[item], t)
			db.ItemWeight[item] += weights[t][i]
		}
	}
	db.Items = orderedItems(db)
	return db, nil
}

func parseItemWeight(tok string) (item, weight int, err error) {
	parts := strings.SplitN(tok, ":", 2)
	item, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.Wrap(err, "item id")
	}
	if len(parts) == 1 {
		return item, 1, nil
	}
	weight, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errors.Wrap(err, "weight")
	}
	if weight < 0 {
		return 0, 0, errors.Errorf("negative weight %d", weight)
	}
	return item, weight, nil
}

// orderedItems returns item ids (0-based) ordered by decreasing total
// weight, ties broken by ascending id. Processing the heaviest items first
// gives the guiding-path encoder's support/closure pruning the most
// opportunity to prune quickly, mirroring the frequency-first ordering
// conventional frequent-itemset miners use for their item order.
func orderedItems(db *Database) []int {
	items := make([]int, db.NbItems)
	for i := range items {
		items[i] = i
	}
	sort.Slice(items, func(i, j int) bool {
		wi, wj := db.ItemWeight[items[i]], db.ItemWeight[items[j]]
		if wi != wj {
			return wi > wj
		}
		return items[i] < items[j]
	})
	return items
}
