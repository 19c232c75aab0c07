// Package coop implements the parallel cooperation layer described in the
// specification's §4.8: a fixed pool of solver.Worker goroutines, each
// striding over a disjoint slice of guiding-path indices, with per-worker
// inboxes for learned unit and short clauses. Each worker drains its inbox
// between restarts; the search driver never publishes units or clauses to
// the inboxes, so they stay empty. No worker ever
// reads another worker's trail, watch lists or clause arena directly —
// the only shared state is the read-only *txndb.Database and the Hub's
// inboxes.
package coop

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/crillab/satchuim/solver"
	"github.com/crillab/satchuim/txndb"
)

// Itemset is one frequent (or, with closure enumeration on, closed) itemset
// found by some worker, plus the sum of its items' total weights
// (txndb.Database.TotalWeight).
type Itemset struct {
	Items  []int
	Weight int
}

// Hub owns a fixed pool of workers and the inboxes they exchange learned
// clauses through. It is created once per mining run and discarded after
// Run returns.
type Hub struct {
	log     *logrus.Logger
	db      *txndb.Database
	cfg     solver.Config
	workers []*solver.Worker

	mu      sync.Mutex
	inboxes []inbox
}

type inbox struct {
	units   []solver.Lit
	clauses [][]solver.Lit
}

// New builds a Hub with nbWorkers CDCL workers over db, each configured
// with cfg. Worker t starts its guiding-path stride at index t (§4.8
// "Stride partitioning").
func New(db *txndb.Database, cfg solver.Config, nbWorkers int, log *logrus.Logger) *Hub {
	if log == nil {
		log = logrus.New()
	}
	h := &Hub{
		log:     log,
		db:      db,
		cfg:     cfg,
		inboxes: make([]inbox, nbWorkers),
	}
	h.workers = make([]*solver.Worker, nbWorkers)
	for t := 0; t < nbWorkers; t++ {
		entry := log.WithField("worker", t)
		h.workers[t] = solver.NewWorker(t, nbWorkers, db, cfg, &exporter{hub: h, id: t}, entry)
	}
	return h
}

// Run starts every worker and blocks until each has returned Unsat (the
// item list is exhausted). Cancelling ctx stops the delivery of further
// itemsets to results, but the workers do not observe ctx: Run still waits
// for every worker's Solve to return. Every itemset found
// by any worker is sent to results, in discovery order per worker but with
// no ordering guarantee across workers (§7 "Partition disjointness" only
// promises the same multiset, not the same order).
func (h *Hub) Run(ctx context.Context, results chan<- Itemset) error {
	defer close(results)
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range h.workers {
		w := w
		g.Go(func() error {
			w.Solve(func(items []int) {
				ids := make([]int, len(items))
				for i, it := range items {
					ids[i] = it - 1 // itemsets are 1-based, the Database is 0-based
				}
				select {
				case results <- Itemset{Items: items, Weight: h.db.TotalWeight(ids)}:
				case <-ctx.Done():
				}
			})
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// Stats aggregates every worker's Stats, for reporting once Run returns.
func (h *Hub) Stats() solver.Stats {
	var total solver.Stats
	for _, w := range h.workers {
		s := w.Stats
		total.NbRestarts += s.NbRestarts
		total.NbConflicts += s.NbConflicts
		total.NbDecisions += s.NbDecisions
		total.NbModels += s.NbModels
		total.NbGuidingPaths += s.NbGuidingPaths
		total.NbUnitLearned += s.NbUnitLearned
		total.NbLearned += s.NbLearned
		total.NbGC += s.NbGC
		total.NbImportedUnits += s.NbImportedUnits
		total.NbImportedClauses += s.NbImportedClauses
	}
	return total
}
