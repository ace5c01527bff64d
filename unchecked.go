// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import "github.com/bassosimone/runtimex"

// NewUnchecked returns a new [*Unchecked] wrapping the given [Scalar].
func NewUnchecked[T any](origin Scalar[T]) *Unchecked[T] {
	runtimex.Assert(origin != nil)
	return &Unchecked[T]{origin: origin}
}

// Unchecked evaluates a [Scalar] in a context that cannot return errors.
//
// Value panics with a [*FatalError] wrapping the original error when the
// wrapped [Scalar] fails. Each call evaluates the wrapped [Scalar] again;
// there is no caching and no retry.
type Unchecked[T any] struct {
	origin Scalar[T]
}

// Value returns the value of the wrapped [Scalar] or panics with [*FatalError].
func (u *Unchecked[T]) Value() T {
	value, err := u.origin.Value()
	if err != nil {
		panic(&FatalError{Cause: err})
	}
	return value
}
