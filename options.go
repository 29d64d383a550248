package finalizerkit

import (
	"fmt"
	"log/slog"

	"github.com/giantswarm/finalizerkit/internal/core"
)

// mutatorConfig holds configuration assembled from MutatorOptions before a
// Mutator is built.
type mutatorConfig struct {
	logger     *slog.Logger
	recorder   core.Recorder
	batchLimit int
}

// defaultMutatorConfig returns a mutatorConfig populated with all default
// values. A nil logger means "follow the package-level logger"; a nil
// recorder disables mutation recording.
func defaultMutatorConfig() mutatorConfig {
	return mutatorConfig{
		batchLimit: DefaultBatchLimit,
	}
}

// MutatorOption configures a Mutator during construction via NewMutator.
//
// Several With* functions panic on invalid input (nil logger, nil journal,
// non-positive limits). These panics are intentional: option values are wired
// at construction time, so an invalid value indicates a programmer error
// rather than a runtime condition. The pattern mirrors [regexp.MustCompile] —
// fail fast during initialization instead of returning errors that would be
// universally fatal anyway.
type MutatorOption func(*mutatorConfig)

// WithLogger pins the mutator to the given logger instead of the
// package-level logger set via SetLogger. This enables test doubles that
// capture emitted messages, and per-mutator log attributes.
//
// Panics if l is nil; use SetLogger(nil) to reset the package-level default.
func WithLogger(l *slog.Logger) MutatorOption {
	if l == nil {
		panic("finalizerkit: WithLogger logger must not be nil")
	}
	return func(c *mutatorConfig) {
		c.logger = l
	}
}

// WithJournal records every committed mutation to j. The journal is owned by
// the caller: it may be shared between mutators and must be closed by the
// caller once all of them are done. Journal write failures are logged as
// warnings and never fail the mutation.
//
// Panics if j is nil.
func WithJournal(j *Journal) MutatorOption {
	if j == nil {
		panic("finalizerkit: WithJournal journal must not be nil")
	}
	return func(c *mutatorConfig) {
		c.recorder = j
	}
}

// WithBatchLimit sets the maximum number of concurrent per-object operations
// in AddFinalizerAll and RemoveFinalizerAll.
//
// Default: DefaultBatchLimit.
//
// Panics if limit <= 0.
func WithBatchLimit(limit int) MutatorOption {
	if limit <= 0 {
		panic(fmt.Sprintf("finalizerkit: batch limit must be greater than 0, got %d", limit))
	}
	return func(c *mutatorConfig) {
		c.batchLimit = limit
	}
}
