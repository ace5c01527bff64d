// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

// NewSticky returns a new [*Sticky] wrapping the given [Scalar].
func NewSticky[T any](origin Scalar[T]) *Sticky[T] {
	return &Sticky[T]{origin: origin}
}

// Sticky is a [Scalar] that caches the first successful value of the
// wrapped [Scalar].
//
// Failures are not cached: a subsequent call to Value evaluates the
// wrapped [Scalar] again. This type is not safe for concurrent use.
type Sticky[T any] struct {
	origin Scalar[T]
	done   bool
	value  T
}

var _ Scalar[int] = &Sticky[int]{}

// Value implements [Scalar].
func (s *Sticky[T]) Value() (T, error) {
	if s.done {
		return s.value, nil
	}
	value, err := s.origin.Value()
	if err != nil {
		return value, err
	}
	s.value, s.done = value, true
	return s.value, nil
}
