// Command seed-check loads a seed data directory into an in-memory catalogue
// and reports what was loaded plus any dangling cross-references. It is meant
// to run in CI against the repository's seed fixtures before they ship.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"materialcore/internal/catalog"
	"materialcore/internal/infra/persistence/memory"
)

var exitFunc = os.Exit

// main runs the command-line interface using the program arguments and exits
// the process with the status code returned by cli.
func main() {
	code := cli(os.Args[1:], os.Stdout, os.Stderr)
	exitFunc(code)
}

func cli(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("seed-check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		dir    string
		strict bool
	)
	fs.StringVar(&dir, "dir", "seed", "path to the seed data directory")
	fs.BoolVar(&strict, "strict", false, "treat dangling references as a failure")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if err := run(dir, strict, stdout); err != nil {
		fmt.Fprintf(stderr, "Seed validation failed: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, "Seed validation passed.")
	return 0
}

// validateDir keeps the seed directory inside the working tree. Absolute and
// traversing paths are rejected.
func validateDir(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", fmt.Errorf("empty path")
	}
	if filepath.IsAbs(p) {
		return "", fmt.Errorf("absolute paths not allowed: %s", p)
	}
	clean := filepath.Clean(p)
	if strings.Contains(clean, "..") {
		return "", fmt.Errorf("path traversal not allowed: %s", p)
	}
	return clean, nil
}

func run(dir string, strict bool, stdout io.Writer) error {
	safeDir, err := validateDir(dir)
	if err != nil {
		return err
	}
	if info, statErr := os.Stat(safeDir); statErr != nil || !info.IsDir() {
		return fmt.Errorf("seed directory %s not found", safeDir)
	}

	ctx := context.Background()
	registry := catalog.DefaultRegistry()
	store := memory.NewStore(registry.Schema())
	loader := catalog.NewSeedLoader(store, registry)

	report, err := loader.Load(ctx, safeDir)
	if err != nil {
		return err
	}
	for _, file := range catalog.SeedLoadOrder() {
		if n, ok := report.Loaded[file.Name]; ok {
			fmt.Fprintf(stdout, "%-32s %d records\n", file.Name, n)
		}
	}
	for _, name := range report.Skipped {
		fmt.Fprintf(stdout, "%-32s missing, skipped\n", name)
	}
	fmt.Fprintf(stdout, "total: %d records\n", report.TotalRecords())

	findings, err := catalog.ReferenceAudit(ctx, store)
	if err != nil {
		return err
	}
	for _, f := range findings {
		fmt.Fprintf(stdout, "dangling reference: %s\n", f)
	}
	if strict && len(findings) > 0 {
		return fmt.Errorf("%d dangling references", len(findings))
	}
	return nil
}
