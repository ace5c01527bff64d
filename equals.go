// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

// NewEquals returns a new [*Equals] comparing the values of first and second.
func NewEquals[T comparable](first, second Scalar[T]) *Equals[T] {
	return &Equals[T]{first: first, second: second}
}

// Equals is a [Scalar] telling whether two deferred values are equal.
//
// Value evaluates first and then second. An error from either side is
// returned unchanged; second is not evaluated when first fails.
type Equals[T comparable] struct {
	first  Scalar[T]
	second Scalar[T]
}

var _ Scalar[bool] = &Equals[string]{}

// Value implements [Scalar].
func (e *Equals[T]) Value() (bool, error) {
	if e.first == nil || e.second == nil {
		return false, ErrNilSource
	}
	left, err := e.first.Value()
	if err != nil {
		return false, err
	}
	right, err := e.second.Value()
	if err != nil {
		return false, err
	}
	return left == right, nil
}
