package txndb

import (
	"strings"
	"testing"
)

func TestLoadBasic(t *testing.T) {
	input := "1:3,2:1\n2:2,3:1\n# a comment\n\n1:1,3:4\n"
	db, err := Loader{MinSupp: 2}.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.NbItems != 3 || db.NbTrans != 3 {
		t.Fatalf("got NbItems=%d NbTrans=%d, want 3 and 3", db.NbItems, db.NbTrans)
	}
	// item 1 (0-based id 0) appears in transactions 0 and 2, weights 3 and 1.
	if got := db.ItemWeight[0]; got != 4 {
		t.Errorf("ItemWeight[0] = %d, want 4", got)
	}
	if len(db.Appearances[0]) != 2 {
		t.Errorf("item 0 should appear in 2 transactions, got %d", len(db.Appearances[0]))
	}
}

func TestLoadDefaultsWeightToOne(t *testing.T) {
	db, err := Loader{}.Load(strings.NewReader("1,2\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.ItemWeight[0] != 1 || db.ItemWeight[1] != 1 {
		t.Errorf("unweighted tokens should default to weight 1, got %v", db.ItemWeight)
	}
}

func TestLoadRejectsZeroBasedItems(t *testing.T) {
	_, err := Loader{}.Load(strings.NewReader("0:1\n"))
	if err == nil {
		t.Fatalf("expected an error for a 0-based item id")
	}
}

func TestLoadRejectsDuplicateItemInTransaction(t *testing.T) {
	_, err := Loader{}.Load(strings.NewReader("1:1,1:2\n"))
	if err == nil {
		t.Fatalf("expected an error for a repeated item within one transaction")
	}
}

func TestOrderedItemsDescendingWeight(t *testing.T) {
	db, err := Loader{}.Load(strings.NewReader("1:1,2:5,3:3\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 0} // item 2 (weight 5), item 3 (weight 3), item 1 (weight 1)
	for i, item := range db.Items {
		if item != want[i] {
			t.Errorf("Items[%d] = %d, want %d (full: %v)", i, item, want[i], db.Items)
		}
	}
}

func TestDatabaseTotalWeight(t *testing.T) {
	db, err := Loader{}.Load(strings.NewReader("1:2,2:3\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := db.TotalWeight([]int{0, 1}); got != 5 {
		t.Errorf("TotalWeight = %d, want 5", got)
	}
}
