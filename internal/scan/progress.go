package scan

import (
	"fmt"
	"os"

	"github.com/claimsight/loopscan/internal/logger"
)

// Notifier receives periodic progress updates. done is the number of
// groups processed so far; total is negative when the group count is
// not known up front (streaming mode).
type Notifier func(done, total int)

// StderrNotifier is the default Notifier. It writes plain progress
// lines to the diagnostic stream, never to standard output.
func StderrNotifier(done, total int) {
	if total < 0 {
		fmt.Fprintf(os.Stderr, "Progress: %d groups\n", done)
		return
	}
	fmt.Fprintf(os.Stderr, "Progress: %d/%d groups\n", done, total)
}

// Options tunes an aggregator. The zero value is usable: defaults are
// filled in by withDefaults.
type Options struct {
	// ProgressInterval is the number of groups between progress
	// notices. Defaults to 100000.
	ProgressInterval int

	// Notify receives progress updates. Defaults to StderrNotifier.
	Notify Notifier

	// Log receives debug diagnostics. Defaults to the stderr logger.
	Log *logger.Logger
}

func (o Options) withDefaults() Options {
	if o.ProgressInterval <= 0 {
		o.ProgressInterval = 100000
	}
	if o.Notify == nil {
		o.Notify = StderrNotifier
	}
	if o.Log == nil {
		o.Log = logger.NewDefault()
	}
	return o
}
