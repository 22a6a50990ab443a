package arch_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// pureCore lists packages that only compute. They take the reference date
// and inputs as arguments and must stay free of I/O, clocks read from the
// environment, configuration, and logging.
var pureCore = []string{"lifechart", "grid", "locale", "share"}

// forbiddenInCore are import paths that would pull I/O or process state into
// a pure package.
var forbiddenInCore = []string{
	"os",
	"io",
	"net/http",
	"github.com/spf13/viper",
	"github.com/spf13/cobra",
	"go.uber.org/zap",
	"github.com/charmbracelet/lipgloss",
}

func TestPureCoreImports(t *testing.T) {
	t.Parallel()

	dir := internalDirPath(t)
	for _, pkg := range pureCore {
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()
			for _, imp := range allImportsOf(t, filepath.Join(dir, pkg)) {
				if slices.Contains(forbiddenInCore, imp) {
					t.Errorf("%s imports %s; keep I/O out of the computation core", pkg, imp)
				}
			}
		})
	}
}

// TestPureCoreNoWallClock checks that core packages never call time.Now. The
// reference date always comes from the caller.
func TestPureCoreNoWallClock(t *testing.T) {
	t.Parallel()

	dir := internalDirPath(t)
	for _, pkg := range pureCore {
		for _, f := range goFilesIn(t, filepath.Join(dir, pkg)) {
			src, err := os.ReadFile(f)
			if err != nil {
				t.Fatalf("reading %s: %v", f, err)
			}
			if strings.Contains(string(src), "time.Now(") {
				t.Errorf("%s/%s calls time.Now; take the reference date as a parameter", pkg, filepath.Base(f))
			}
		}
	}
}

// TestPackagesHaveDoc checks that every internal package carries a package
// comment in at least one of its files.
func TestPackagesHaveDoc(t *testing.T) {
	t.Parallel()

	dir := internalDirPath(t)
	for _, pkg := range internalPackages(t) {
		found := false
		for _, f := range goFilesIn(t, filepath.Join(dir, pkg)) {
			fset := token.NewFileSet()
			node, err := parser.ParseFile(fset, f, nil, parser.PackageClauseOnly|parser.ParseComments)
			if err != nil {
				t.Fatalf("parsing %s: %v", f, err)
			}
			if node.Doc != nil && strings.HasPrefix(node.Doc.Text(), "Package "+pkg) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("package %s has no \"// Package %s\" comment", pkg, pkg)
		}
	}
}
