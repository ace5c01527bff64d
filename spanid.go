// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 identifying a conversion span.
//
// A span covers the lifecycle of a single conversion, for example reading
// a stream through [*BytesOfReader.AsBytes] from bytesReadStart to
// bytesReadDone. Attach the ID to the logger passed to a constructor
// using [*slog.Logger.With] to correlate the events of a span.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
