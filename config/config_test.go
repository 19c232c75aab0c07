package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestDefaultMatchesSolverDefaults(t *testing.T) {
	opts := Default()
	if opts.NbWorkers != 1 {
		t.Errorf("default NbWorkers = %d, want 1", opts.NbWorkers)
	}
	if opts.Solver.RestartFirst != 100 {
		t.Errorf("default Solver.RestartFirst = %d, want 100", opts.Solver.RestartFirst)
	}
}

func TestLoadFileOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.json")
	if err := os.WriteFile(path, []byte(`{"min_supp": 42, "nb_workers": 4}`), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	base := Default()
	out, err := LoadFile(base, path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if out.MinSupp != 42 {
		t.Errorf("MinSupp = %d, want 42", out.MinSupp)
	}
	if out.NbWorkers != 4 {
		t.Errorf("NbWorkers = %d, want 4", out.NbWorkers)
	}
	if out.Solver.RestartFirst != base.Solver.RestartFirst {
		t.Errorf("fields absent from the file must keep their base value")
	}
}

func TestFlagSetOverridesDefaults(t *testing.T) {
	opts := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	FlagSet(&opts, fs)
	if err := fs.Parse([]string{"--min-supp", "7", "--workers", "3"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.MinSupp != 7 || opts.NbWorkers != 3 {
		t.Errorf("got MinSupp=%d NbWorkers=%d, want 7 and 3", opts.MinSupp, opts.NbWorkers)
	}
}

func TestValidateRequiresInput(t *testing.T) {
	opts := Default()
	if err := opts.Validate(); err == nil {
		t.Fatalf("expected an error when Input is empty")
	}
	opts.Input = "db.csv"
	if err := opts.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
