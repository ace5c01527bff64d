// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import (
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// DefaultBufferSize is the buffer size set by [NewConfig].
const DefaultBufferSize = 16 << 10

// Config holds common configuration for lazy operations.
//
// Pass this to constructor functions to pre-wire dependencies.
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// BufferSize is the size in bytes of the buffer used to read streams.
	//
	// Set by [NewConfig] to [DefaultBufferSize].
	BufferSize int

	// Encoding is the character encoding used to convert between text and bytes.
	//
	// Set by [NewConfig] to [unicode.UTF8].
	Encoding encoding.Encoding

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConfig] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		BufferSize:    DefaultBufferSize,
		Encoding:      unicode.UTF8,
		ErrClassifier: DefaultErrClassifier,
		TimeNow:       time.Now,
	}
}
