package finalizerkit

import (
	"log/slog"

	"github.com/giantswarm/finalizerkit/internal/core"
)

// SetLogger replaces the package-level logger used by finalizerkit.
// This allows applications to integrate finalizerkit logging with their own
// logging infrastructure. The provided logger should already have any desired
// attributes; finalizerkit will not add additional attributes.
//
// If l is nil, the logger resets to the default: slog.Default() with a
// "component" attribute, re-derived on the next use and then cached. Call
// SetLogger(nil) after slog.SetDefault() to pick up changes.
//
// SetLogger is safe to call concurrently with in-flight mutations; mutators
// constructed without WithLogger observe the change on their next call.
//
// Example:
//
//	finalizerkit.SetLogger(myLogger.With("component", "finalizerkit"))
func SetLogger(l *slog.Logger) {
	core.SetLogger(l)
}
