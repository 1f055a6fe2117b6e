package domain

import (
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TestDomainImportsStayPure enforces the architectural rule that the domain
// layer depends on nothing but the standard library. Persistence drivers,
// blob stores, and observability all live behind interfaces defined here;
// letting an implementation import leak in would invert the dependency
// direction for every backend.
func TestDomainImportsStayPure(t *testing.T) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports}
	pkgs, err := packages.Load(cfg, "materialcore/pkg/domain")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var violations []string
	for _, pkg := range pkgs {
		for importPath := range pkg.Imports {
			first, _, _ := strings.Cut(importPath, "/")
			// Stdlib import paths have no dot in their first element.
			if strings.Contains(first, ".") || strings.HasPrefix(importPath, "materialcore/") {
				violations = append(violations, importPath)
			}
		}
	}

	sort.Strings(violations)
	for _, v := range violations {
		t.Errorf("domain package must not import non-stdlib package: %s", v)
	}
	if len(violations) > 0 {
		t.Fatalf("found %d forbidden imports in domain package", len(violations))
	}
}
