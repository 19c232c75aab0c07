package coop

import (
	"fmt"
	"sort"
	"strings"
)

// String renders an itemset as "i1 i2 i3 : weight", 1-based item ids in
// ascending order, the format the original tool's printModels helper used
// (§"Supplemented features").
func (is Itemset) String() string {
	sorted := make([]int, len(is.Items))
	copy(sorted, is.Items)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, item := range sorted {
		parts[i] = fmt.Sprintf("%d", item)
	}
	return fmt.Sprintf("%s : %d", strings.Join(parts, " "), is.Weight)
}

// Collect drains results into a slice, for callers (tests, or small
// datasets) that would rather not stream. Blocks until the channel closes.
func Collect(results <-chan Itemset) []Itemset {
	var all []Itemset
	for is := range results {
		all = append(all, is)
	}
	return all
}
