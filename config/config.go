// Package config loads satchuim's run options, layering three sources in
// increasing priority: solver.DefaultConfig()'s built-in defaults, an
// optional JSON file decoded through mapstructure, and command-line flags
// bound with pflag — the same defaults-then-file-then-flags layering the
// teacher's CLI uses, generalized to mining-specific knobs (input path,
// minimum support, worker count) the CDCL engine itself knows nothing
// about.
package config

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/crillab/satchuim/solver"
)

// Options bundles everything a mining run needs beyond the solver.Config
// tunables: where the database comes from, the mining threshold, and how
// many workers to run (§6 "External interfaces").
type Options struct {
	Input      string `mapstructure:"input"`
	MinSupp    int    `mapstructure:"min_supp"`
	NbWorkers  int    `mapstructure:"nb_workers"`
	EnumClosed bool   `mapstructure:"enum_clos"`
	ConfigFile string `mapstructure:"-"`
	Verbosity  int    `mapstructure:"verbosity"`

	Solver solver.Config `mapstructure:",squash"`
}

// Default returns the layer-0 options: the solver's documented defaults
// plus a single worker and no input file.
func Default() Options {
	return Options{
		NbWorkers: 1,
		Solver:    solver.DefaultConfig(),
	}
}

// LoadFile decodes a JSON options file into a copy of base, overriding only
// the fields present in the file (mapstructure leaves the rest untouched).
func LoadFile(base Options, path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, errors.Wrapf(err, "config: opening %s", path)
	}
	defer f.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return base, errors.Wrapf(err, "config: decoding %s", path)
	}

	out := base
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		Squash:           true,
		ErrorUnused:      true,
	})
	if err != nil {
		return base, errors.Wrap(err, "config: building decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return base, errors.Wrapf(err, "config: applying %s", path)
	}
	return out, nil
}

// FlagSet builds the pflag.FlagSet mirroring Options, pre-populated with
// opts' current values as defaults (the file layer, if any, having already
// been applied). Every flag is bound directly to a field of opts, so
// fs.Parse writes the parsed values straight into opts.
func FlagSet(opts *Options, fs *pflag.FlagSet) {
	fs.StringVar(&opts.Input, "input", opts.Input, "path to the transaction database (CSV, item:weight per line)")
	fs.IntVar(&opts.MinSupp, "min-supp", opts.MinSupp, "minimum aggregate weight for an itemset to be reported")
	fs.IntVar(&opts.NbWorkers, "workers", opts.NbWorkers, "number of cooperating CDCL workers")
	fs.BoolVar(&opts.EnumClosed, "enum-closed", opts.EnumClosed, "enumerate closed itemsets instead of frequent ones")
	fs.IntVar(&opts.Verbosity, "verbosity", opts.Verbosity, "log verbosity (0 = warnings only)")
	fs.StringVar(&opts.ConfigFile, "config", opts.ConfigFile, "optional JSON options file")

	fs.Float64Var(&opts.Solver.VarDecay, "var-decay", opts.Solver.VarDecay, "variable activity decay factor")
	fs.Float64Var(&opts.Solver.ClauseDecay, "clause-decay", opts.Solver.ClauseDecay, "clause activity decay factor")
	fs.IntVar(&opts.Solver.CCMinMode, "ccmin-mode", opts.Solver.CCMinMode, "conflict clause minimization mode (0, 1 or 2)")
	fs.IntVar(&opts.Solver.PhaseSaving, "phase-saving", opts.Solver.PhaseSaving, "phase saving mode (0, 1 or 2)")
	fs.BoolVar(&opts.Solver.LubyRestart, "luby", opts.Solver.LubyRestart, "use the Luby restart sequence")
	fs.IntVar(&opts.Solver.RestartFirst, "restart-first", opts.Solver.RestartFirst, "conflict budget of the first restart window")
	fs.Float64Var(&opts.Solver.RestartInc, "restart-inc", opts.Solver.RestartInc, "restart window growth factor")
	fs.Float64Var(&opts.Solver.GarbageFrac, "garbage-frac", opts.Solver.GarbageFrac, "wasted-arena fraction (accepted but not consulted by the solver)")
	fs.IntVar(&opts.Solver.MaxClausesInit, "max-clauses-init", opts.Solver.MaxClausesInit, "initial clause-count GC threshold")
	fs.IntVar(&opts.Solver.ExportSizeCap, "export-size-cap", opts.Solver.ExportSizeCap, "max size of a learned clause exported to siblings")
	fs.BoolVar(&opts.Solver.EmitRedundantSupportClauses, "emit-redundant-support-clauses", opts.Solver.EmitRedundantSupportClauses, "also emit the logically redundant support-clause direction")
}

// Finalize copies opts.EnumClosed into the embedded solver.Config, since
// the solver only sees its own Config, never the surrounding Options.
func (o *Options) Finalize() {
	o.Solver.EnumClosed = o.EnumClosed
}

// Validate checks the combination of options the solver package itself
// does not validate (it trusts its caller).
func (o Options) Validate() error {
	if o.Input == "" {
		return errors.New("config: input is required")
	}
	if o.MinSupp < 0 {
		return errors.New("config: min-supp must be non-negative")
	}
	if o.NbWorkers < 1 {
		return errors.New("config: workers must be at least 1")
	}
	return nil
}
