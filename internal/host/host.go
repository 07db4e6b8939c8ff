// Package host is the out-of-scope external interface a process embedding
// elc talks to: a process-wide logger, a greeting used to verify the
// embedding wired things up correctly, and a one-shot "compile this document
// and tell me what happened" entry point. None of it participates in term
// reduction; it only wraps elc for a caller that doesn't want to construct
// a Context itself.
package host

import (
	"fmt"
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/radian628/elc"
)

var (
	initOnce sync.Once
	logger   hclog.Logger
)

// Init sets up the package-wide logger. Safe to call more than once; only
// the first call takes effect, matching the original source's init_elc
// (idempotent setup invoked once per process).
func Init() {
	initOnce.Do(func() {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "elc-host",
			Level:  hclog.Info,
			Output: os.Stderr,
		})
	})
}

func activeLogger() hclog.Logger {
	if logger == nil {
		return hclog.NewNullLogger()
	}
	return logger
}

// Greet returns a human-readable banner, adapted from the original source's
// greet(name). It exists purely to give an embedder an easy smoke test that
// the module is linked in correctly.
func Greet(name string) string {
	activeLogger().Debug("greet", "name", name)
	return fmt.Sprintf("Hello, %s! This is the extensible lambda calculus engine.", name)
}

// TestCompile compiles input as a full document and returns the rendered,
// auto-detected form of its "out" binding (adapted from the original
// source's test_compile_lc, which just logged the pretty-printed term; this
// uses elc.Describe to pick the most informative textual form instead).
func TestCompile(input string) (string, error) {
	log := activeLogger().Named("test-compile")

	term, err := elc.CompileDocument(log, input)
	if err != nil {
		log.Error("compilation failed", "error", err)
		return "", err
	}

	result := elc.Describe(term)
	log.Info("compiled", "result", result)
	return result, nil
}
