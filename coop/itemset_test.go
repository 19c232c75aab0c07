package coop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestItemsetStringSortsItems(t *testing.T) {
	is := Itemset{Items: []int{3, 1, 2}, Weight: 9}
	if got, want := is.String(), "1 2 3 : 9"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCollectDrainsChannel(t *testing.T) {
	ch := make(chan Itemset, 2)
	ch <- Itemset{Items: []int{1}, Weight: 1}
	ch <- Itemset{Items: []int{2}, Weight: 2}
	close(ch)

	want := []Itemset{
		{Items: []int{1}, Weight: 1},
		{Items: []int{2}, Weight: 2},
	}
	got := Collect(ch)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect() mismatch (-want +got):\n%s", diff)
	}
}
