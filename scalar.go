// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

// Scalar is a deferred computation producing a value of type T.
//
// Each call to Value performs the computation again. Scalar instances
// do not cache unless explicitly wrapped (see [*Sticky]).
//
// Scalar instances can be chained using [Mapped] to build deferred
// pipelines where a failure in one stage prevents the next stage from running.
type Scalar[T any] interface {
	Value() (T, error)
}

// ScalarFunc wraps a function as a [Scalar] implementation.
//
// Use this to create ad-hoc [Scalar] instances from closures or method
// values (e.g., `ScalarFunc[string](text.AsString)`).
type ScalarFunc[T any] func() (T, error)

// Value implements [Scalar].
func (f ScalarFunc[T]) Value() (T, error) {
	return f()
}

// ConstScalar returns a [Scalar] that always returns the given value.
//
// This lifts a pure value into the [Scalar] world.
func ConstScalar[T any](value T) Scalar[T] {
	return &constScalar[T]{value}
}

type constScalar[T any] struct {
	value T
}

func (c *constScalar[T]) Value() (T, error) {
	return c.value, nil
}

// Mapped chains a [Scalar] and a fallible transformation.
//
// The value of s becomes the input to fn. If s returns an error,
// fn is not called and the error is returned unchanged.
func Mapped[A, B any](s Scalar[A], fn func(A) (B, error)) Scalar[B] {
	return &mapped[A, B]{s, fn}
}

type mapped[A, B any] struct {
	s  Scalar[A]
	fn func(A) (B, error)
}

func (m *mapped[A, B]) Value() (B, error) {
	res, err := m.s.Value()
	if err != nil {
		var zero B
		return zero, err
	}
	return m.fn(res)
}
