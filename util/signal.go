// Package util holds small process level helpers.
package util

import (
	"os"
	"os/signal"
)

// RegisterSignalHandler calls notifyFn with the first of sigs that is received. The returned function
// stops listening, after it returns notifyFn is never called.
func RegisterSignalHandler(notifyFn func(sig os.Signal), sigs ...os.Signal) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, sigs...)

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)

		select {
		case sig := <-sigCh:
			notifyFn(sig)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
		<-stopped
	}
}
