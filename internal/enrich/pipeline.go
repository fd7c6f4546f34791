package enrich

import (
	"context"
	"log"
	"sync"
)

// Pipeline coordinates the execution of a sequence of stages for items
// flowing through a channel. For each incoming item, steps within the same
// stage run in parallel, and stages themselves run sequentially. Step errors
// are logged and do not stop processing of the current item.
//
// Pipeline is generic over the item type T.
type Pipeline[T any] struct {
	stages []Stage[T]
}

// NewPipeline constructs a Pipeline from the provided stages. Stages are
// applied to each item in order.
func NewPipeline[T any](stages ...Stage[T]) *Pipeline[T] {
	return &Pipeline[T]{stages: stages}
}

// Process consumes items from the input channel and returns a channel that
// emits the same items, in input order, after all stages have been applied.
// For each item:
//   - All steps in a stage are started concurrently and must complete before
//     the next stage runs (a stage barrier).
//   - Errors returned by steps are logged and ignored so the pipeline can
//     continue processing.
//   - Steps may observe ctx for cancellation; the pipeline itself drains the
//     input channel until it is closed, then closes the output channel.
//
// Items are handled one at a time, so output order matches input order and
// later batch-wide passes (such as round-robin distribution) stay
// deterministic.
func (p *Pipeline[T]) Process(ctx context.Context, in <-chan *T) <-chan *T {
	out := make(chan *T)
	go func() {
		defer close(out)
		for item := range in {
			for _, stage := range p.stages {
				var wg sync.WaitGroup
				for _, step := range stage.steps {
					wg.Add(1)
					go func(step Step[T]) {
						defer wg.Done()
						if err := step(ctx, item); err != nil {
							log.Printf("Enrichment step failed: %v", err)
						}
					}(step)
				}
				wg.Wait() // stage barrier
			}
			out <- item
		}
	}()
	return out
}
