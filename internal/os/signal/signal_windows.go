//go:build windows

package signal

import (
	"os"
)

// InterruptSignals contains a list of signals that are treated as interrupts.
var InterruptSignals = []os.Signal{os.Interrupt}
