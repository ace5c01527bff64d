// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import "errors"

var (
	// ErrNilSource indicates that a required source (text, reader, error) is nil.
	ErrNilSource = errors.New("lazy: nil source")

	// ErrInvalidBufferSize indicates a buffer size smaller than one byte.
	ErrInvalidBufferSize = errors.New("lazy: invalid buffer size")

	// ErrUnknownEncoding indicates an encoding name that cannot be resolved.
	ErrUnknownEncoding = errors.New("lazy: unknown encoding")
)

// FatalError is the value [*Unchecked] panics with when the wrapped
// [Scalar] fails.
//
// A FatalError signals a defect at a call site that must not fail
// (ordering, equality, hashing). It always carries the original error.
type FatalError struct {
	// Cause is the error returned by the wrapped [Scalar].
	Cause error
}

// Error implements error.
func (e *FatalError) Error() string {
	return "lazy: fatal: " + e.Cause.Error()
}

// Unwrap returns the underlying cause.
func (e *FatalError) Unwrap() error {
	return e.Cause
}
