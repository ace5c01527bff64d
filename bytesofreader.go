// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import (
	"io"
	"log/slog"
	"time"
)

// NewBytesOfReader returns a new [*BytesOfReader] for the given stream.
//
// The cfg argument contains the common configuration for lazy operations.
//
// The r argument is the stream to read. The [*BytesOfReader] takes
// ownership of r and closes it once AsBytes returns.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewBytesOfReader(cfg *Config, r io.ReadCloser, logger SLogger) *BytesOfReader {
	return &BytesOfReader{
		BufferSize:    cfg.BufferSize,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		Reader:        r,
		TimeNow:       cfg.TimeNow,
	}
}

// BytesOfReader reads a byte stream to its end.
//
// The stream is read using a buffer of BufferSize bytes. The buffer size
// affects efficiency only: the result is the full content, in order, for
// any BufferSize >= 1. The stream is closed exactly once on every exit
// path, including failures and an invalid BufferSize.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [AsBytes].
type BytesOfReader struct {
	// BufferSize is the size of the read buffer in bytes.
	//
	// Set by [NewBytesOfReader] from [Config.BufferSize].
	BufferSize int

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewBytesOfReader] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewBytesOfReader] to the user-provided logger.
	Logger SLogger

	// Reader is the stream to read.
	//
	// Set by [NewBytesOfReader] to the user-provided stream.
	Reader io.ReadCloser

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewBytesOfReader] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ Bytes = &BytesOfReader{}

// AsBytes implements [Bytes].
func (b *BytesOfReader) AsBytes() ([]byte, error) {
	if b.Reader == nil {
		return nil, ErrNilSource
	}
	rc := observeReader(b.Reader, b.ErrClassifier, b.Logger, b.TimeNow)
	t0 := b.TimeNow()
	b.logReadStart(t0)
	data, err := readAll(rc, b.BufferSize)
	b.logReadDone(t0, len(data), err)
	return data, err
}

func (b *BytesOfReader) logReadStart(t0 time.Time) {
	b.Logger.Info(
		"bytesReadStart",
		slog.Int("bufferSize", b.BufferSize),
		slog.Time("t", t0),
	)
}

func (b *BytesOfReader) logReadDone(t0 time.Time, count int, err error) {
	b.Logger.Info(
		"bytesReadDone",
		slog.Int("bufferSize", b.BufferSize),
		slog.Int("ioBytesCount", count),
		slog.Any("err", err),
		slog.String("errClass", b.ErrClassifier.Classify(err)),
		slog.Time("t0", t0),
		slog.Time("t", b.TimeNow()),
	)
}
