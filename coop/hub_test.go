package coop

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/crillab/satchuim/solver"
	"github.com/crillab/satchuim/txndb"
)

func TestHubEmitsOnlyItemsetsMeetingMinSupp(t *testing.T) {
	input := "1:2,2:1\n1:3,2:1\n2:4\n"
	db, err := txndb.Loader{MinSupp: 3}.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("loading fixture database: %v", err)
	}

	hub := New(db, solver.DefaultConfig(), 1, nil)
	results := make(chan Itemset, 64)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- hub.Run(ctx, results) }()

	for is := range results {
		if is.Weight < db.MinSupp {
			t.Errorf("itemset %v emitted with weight %d below min_supp %d", is.Items, is.Weight, db.MinSupp)
		}
		if len(is.Items) == 0 {
			t.Errorf("emitted an empty itemset")
		}
	}
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestHubStridePartitionsDisjointly(t *testing.T) {
	input := "1:1,2:1,3:1\n1:1,2:1\n2:1,3:1\n1:1,3:1\n"
	db, err := txndb.Loader{MinSupp: 2}.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("loading fixture database: %v", err)
	}

	cfg := solver.DefaultConfig()
	hub := New(db, cfg, 2, nil)
	results := make(chan Itemset, 64)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- hub.Run(ctx, results) }()

	seen := map[string]bool{}
	for is := range results {
		key := is.String()
		if seen[key] {
			t.Errorf("itemset %s reported more than once across the worker pool", key)
		}
		seen[key] = true
	}
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
}
