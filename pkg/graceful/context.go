package graceful

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// Context creates a context that is canceled when an OS interrupt signal is
// received, allowing the HTTP server to drain in-flight requests before the
// process exits.
func Context(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received termination signal, shutting down...")
		cancel()
	}()

	return ctx, cancel
}
