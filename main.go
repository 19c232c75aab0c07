package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/crillab/satchuim/config"
	"github.com/crillab/satchuim/coop"
	"github.com/crillab/satchuim/txndb"
)

func main() {
	debug.SetGCPercent(300)

	opts := config.Default()

	// A first, lenient pass just to find --config before the real parse,
	// since pflag has no notion of flag priority.
	pre := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	pre.Usage = func() {}
	pre.ParseErrorsWhitelist.UnknownFlags = true
	config.FlagSet(&opts, pre)
	_ = pre.Parse(os.Args[1:])

	if opts.ConfigFile != "" {
		loaded, err := config.LoadFile(opts, opts.ConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "satchuim: %v\n", err)
			os.Exit(1)
		}
		opts = loaded
	}

	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.FlagSet(&opts, fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	opts.Finalize()

	if err := opts.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.PrintDefaults()
		os.Exit(1)
	}

	log := logrus.New()
	if opts.Verbosity == 0 {
		log.SetLevel(logrus.WarnLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	f, err := os.Open(opts.Input)
	if err != nil {
		log.Fatalf("opening %s: %v", opts.Input, err)
	}
	defer f.Close()

	loader := txndb.Loader{MinSupp: opts.MinSupp}
	db, err := loader.Load(f)
	if err != nil {
		log.Fatalf("loading database: %v", err)
	}

	log.WithFields(logrus.Fields{
		"items":        db.NbItems,
		"transactions": db.NbTrans,
		"min_supp":     db.MinSupp,
		"workers":      opts.NbWorkers,
		"enum_closed":  opts.EnumClosed,
	}).Info("starting search")

	hub := coop.New(db, opts.Solver, opts.NbWorkers, log)
	results := make(chan coop.Itemset, 64)

	go func() {
		if err := hub.Run(context.Background(), results); err != nil {
			log.Errorf("search: %v", err)
		}
	}()

	nb := 0
	for is := range results {
		fmt.Println(is.String())
		nb++
	}

	stats := hub.Stats()
	log.WithFields(logrus.Fields{
		"models":     nb,
		"restarts":   stats.NbRestarts,
		"conflicts":  stats.NbConflicts,
		"learned":    stats.NbLearned,
		"gc_runs":    stats.NbGC,
		"imports_un": stats.NbImportedUnits,
		"imports_cl": stats.NbImportedClauses,
	}).Info("search complete")
}
