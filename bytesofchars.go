// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import (
	"io"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// NewBytesOfChars returns a new [*BytesOfChars] for the given character stream.
//
// The cfg argument contains the common configuration for lazy operations.
//
// The r argument is a stream of UTF-8 text. The [*BytesOfChars] takes
// ownership of r and closes it once AsBytes returns.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewBytesOfChars(cfg *Config, r io.ReadCloser, logger SLogger) *BytesOfChars {
	return &BytesOfChars{
		BufferSize:    cfg.BufferSize,
		Encoding:      cfg.Encoding,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		Reader:        r,
		TimeNow:       cfg.TimeNow,
	}
}

// BytesOfChars encodes a character stream using an [encoding.Encoding].
//
// The stream is transcoded chunk by chunk while reading with a buffer of
// BufferSize bytes. The encoder keeps incomplete multi-byte sequences
// until the rest arrives, so the result is the same as encoding the whole
// text at once, for any BufferSize >= 1. The stream is closed exactly once
// on every exit path.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [AsBytes].
type BytesOfChars struct {
	// BufferSize is the size of the read buffer in bytes.
	//
	// Set by [NewBytesOfChars] from [Config.BufferSize].
	BufferSize int

	// Encoding is the target encoding.
	//
	// Set by [NewBytesOfChars] from [Config.Encoding].
	Encoding encoding.Encoding

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewBytesOfChars] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewBytesOfChars] to the user-provided logger.
	Logger SLogger

	// Reader is the UTF-8 character stream to encode.
	//
	// Set by [NewBytesOfChars] to the user-provided stream.
	Reader io.ReadCloser

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewBytesOfChars] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ Bytes = &BytesOfChars{}

// AsBytes implements [Bytes].
func (b *BytesOfChars) AsBytes() ([]byte, error) {
	if b.Reader == nil {
		return nil, ErrNilSource
	}
	if b.Encoding == nil {
		_ = b.Reader.Close()
		return nil, ErrNilSource
	}
	encoded := &readCloser{
		Reader: transform.NewReader(b.Reader, b.Encoding.NewEncoder()),
		Closer: b.Reader,
	}
	inner := &BytesOfReader{
		BufferSize:    b.BufferSize,
		ErrClassifier: b.ErrClassifier,
		Logger:        b.Logger,
		Reader:        encoded,
		TimeNow:       b.TimeNow,
	}
	return inner.AsBytes()
}
