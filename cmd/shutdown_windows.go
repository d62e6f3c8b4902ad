//go:build windows

package cmd

import (
	"context"
	"os"
	"os/signal"
)

// setupShutdownHandler returns a context that is canceled on Ctrl+C; the
// poll loops treat cancellation as a quit request.
func setupShutdownHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		<-sigChan
		signal.Stop(sigChan) // Unregister handler to prevent leak
		cancel()
	}()

	return ctx, cancel
}
