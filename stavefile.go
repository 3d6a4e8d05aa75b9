//go:build stave

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const binary = "bin/spanscore"

// Default target when running `stave` with no arguments.
var Default = All

// Aliases for common targets.
var Aliases = map[string]interface{}{
	"b": Build,
	"t": Test,
	"l": Lint,
}

// All runs lint, test and build.
func All() error {
	st.Deps(Init)
	st.Deps(Lint, Test)
	st.Deps(Build)
	return nil
}

// Init ensures the module dependencies are up to date.
func Init() error {
	return sh.Run("go", "mod", "tidy")
}

// Build compiles the spanscore binary with version information.
func Build() error {
	st.Deps(Init)

	rebuild, err := target.Glob(binary, "**/*.go", "go.mod", "go.sum")
	if err != nil {
		return fmt.Errorf("checking rebuild: %w", err)
	}
	if !rebuild {
		if st.Verbose() {
			fmt.Println("spanscore is up to date")
		}
		return nil
	}

	return sh.RunV("go", "build", "-ldflags", buildLdflags(), "-o", binary, "./cmd/spanscore")
}

func buildLdflags() string {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	date := time.Now().Format(time.RFC3339)

	return fmt.Sprintf(
		"-X main.version=%s -X main.commit=%s -X main.date=%s",
		strings.TrimSpace(version),
		strings.TrimSpace(commit),
		date,
	)
}

// Test runs all tests with race detection and coverage.
func Test() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-race", "-cover", "./...")
}

// Lint runs golangci-lint on the codebase.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Eval namespace runs the built binary against labelled files.
type Eval st.Namespace

// evalFile is the file scored by the Eval targets; override with
// SPANSCORE_EVAL_FILE.
func evalFile() string {
	if f := os.Getenv("SPANSCORE_EVAL_FILE"); f != "" {
		return f
	}
	return "testdata/bilou.conll"
}

// Score prints per-type metrics for the evaluation file.
func (Eval) Score() error {
	st.Deps(Build)
	return sh.RunV("./"+binary, "score", "--by-type", "--format", "table", evalFile())
}

// Compare scores the evaluation file under every similarity function.
func (Eval) Compare() error {
	st.Deps(Build)
	return sh.RunV("./"+binary, "compare", "--format", "table", evalFile())
}

// Synthetic generates large labelled files and scores them with parallel
// block scoring.
func (Eval) Synthetic() error {
	st.Deps(Build)
	if err := sh.RunV("go", "run", "./scripts/gen-conll.go"); err != nil {
		return err
	}
	workers := fmt.Sprintf("%d", runtime.NumCPU())
	if err := sh.RunV("./"+binary, "score", "--workers", workers, "--by-type", "--format", "table",
		"testdata/synthetic/BILOU.conll"); err != nil {
		return err
	}
	return sh.RunV("./"+binary, "compare", "--bio", "--workers", workers, "--format", "table",
		"testdata/synthetic/BIO.conll")
}

// CI runs lint, test and build in order.
func CI() error {
	st.Deps(Init)
	st.SerialDeps(Lint, Test, Build)
	return nil
}
