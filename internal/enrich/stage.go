// Package enrich provides a small, generic pipeline abstraction for applying
// independent per-record enrichment steps (classification, location
// resolution) in parallel within a stage, while enforcing sequential
// execution between stages.
package enrich

import (
	"context"
)

// Step is a single enrichment operation that mutates the given item.
// Implementations must be safe to run concurrently with the other steps in
// the same stage operating on the same item; in practice each step writes
// its own fields. A failing step returns an error that the pipeline logs
// and otherwise ignores.
type Step[T any] func(ctx context.Context, item *T) error

// Stage groups steps that are safe to execute in parallel for a single
// item. All steps in a stage start together and the pipeline waits for
// every one before moving to the next stage.
type Stage[T any] struct {
	steps []Step[T]
}

// NewStage constructs a Stage from the provided steps.
func NewStage[T any](steps ...Step[T]) Stage[T] {
	return Stage[T]{steps: steps}
}
