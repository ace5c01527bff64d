// SPDX-License-Identifier: GPL-3.0-or-later

// Package lazy provides composable primitives for deferred text and byte values.
//
// # Core Abstractions
//
// The package is built around three single-method interfaces:
//
//	type Scalar[T any] interface {
//		Value() (T, error)
//	}
//
//	type Text interface {
//		AsString() (string, error)
//	}
//
//	type Bytes interface {
//		AsBytes() ([]byte, error)
//	}
//
// Each instance represents a computation that has not happened yet. The
// computation runs when Value, AsString, or AsBytes is called, and runs
// again on every call unless wrapped by [NewSticky].
//
// # Available Primitives
//
// Deferred values:
//   - [ScalarFunc], [TextFunc], [BytesFunc]: wrap functions as primitives
//   - [ConstScalar], [ConstText], [ConstBytes]: lift pure values
//   - [Mapped]: chain a [Scalar] and a fallible transformation
//   - [Sticky]: cache the first successful value
//
// Comparison:
//   - [Equals]: tell whether two deferred values are equal
//   - [Hash]: hash a deferred [Text] using [HashString]
//   - [ComparableText]: ordering, equality and hashing for a [Text]
//
// Conversion to bytes:
//   - [BytesOfReader]: read a byte stream to its end
//   - [BytesOfText]: encode a [Text]
//   - [BytesOfChars]: encode a UTF-8 character stream while reading it
//   - [BytesOfError], [BytesOfFrames]: render an error and its stack trace
//   - [TextOfBytes]: decode [Bytes] back into a [Text]
//
// # Failures
//
// Operations that can fail return an error, which flows unchanged through
// every decorator. Operations that cannot return an error, namely
// [*ComparableText.Compare], [*ComparableText.Equal], and
// [*ComparableText.Hash], evaluate their inputs through [Unchecked], which
// panics with a [*FatalError] wrapping the original error. A [*FatalError]
// signals a defect at the call site and is not meant to be recovered.
//
// # Streams
//
// Converters reading from an [io.ReadCloser] own it: they read it to its
// end and close it exactly once before AsBytes returns, whether reading
// succeeded or not. The read buffer size comes from [Config.BufferSize] and
// affects efficiency only, never the result.
//
// Character encodings are [encoding.Encoding] values from golang.org/x/text.
// The default is UTF-8. Use [EncodingByName] to resolve IANA names.
//
// # Observability
//
// Stream converters support structured logging via [SLogger] (compatible
// with [log/slog]). By default, logging is disabled. Pass a custom
// [*slog.Logger] to the constructor to enable logging. Error classification
// is configurable via [ErrClassifier].
//
// A conversion emits bytesReadStart and bytesReadDone at [slog.LevelInfo],
// readStart and readDone for each read at [slog.LevelDebug], and closeDone
// at [slog.LevelInfo] when the stream is closed. Use [NewSpanID] to tag the
// events of one conversion.
//
// # Design Boundaries
//
// Every operation is synchronous. No operation takes a context: timeouts,
// if any, belong to the underlying stream. No type in this package is safe
// for concurrent use.
package lazy
