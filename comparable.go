// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import (
	"strings"

	"github.com/bassosimone/runtimex"
)

// NewComparableText returns a new [*ComparableText] decorating the given [Text].
func NewComparableText(text Text) *ComparableText {
	runtimex.Assert(text != nil)
	return &ComparableText{text: text}
}

// ComparableText adds ordering, value equality and hashing to a [Text].
//
// Compare, Equal and Hash cannot return errors. When the underlying [Text]
// fails they panic with a [*FatalError] (see [*Unchecked]).
//
// Ordering is case-sensitive and byte-wise over the UTF-8 representation,
// which is the same as Unicode code point order. Note that it differs from
// UTF-16 code unit order for characters outside the Basic Multilingual Plane.
//
// Equal, Hash and Compare are mutually consistent: texts that are Equal have
// the same Hash and Compare to zero.
type ComparableText struct {
	text Text
}

var _ Text = &ComparableText{}

// AsString implements [Text].
//
// A nil *ComparableText fails with [ErrNilSource].
func (c *ComparableText) AsString() (string, error) {
	if c == nil {
		return "", ErrNilSource
	}
	return c.text.AsString()
}

// Compare returns an integer comparing the content of c and other
// lexicographically, as [strings.Compare] does.
func (c *ComparableText) Compare(other Text) int {
	return NewUnchecked[int](ScalarFunc[int](func() (int, error) {
		if other == nil {
			return 0, ErrNilSource
		}
		left, err := c.AsString()
		if err != nil {
			return 0, err
		}
		right, err := other.AsString()
		if err != nil {
			return 0, err
		}
		return strings.Compare(left, right), nil
	})).Value()
}

// Equal returns whether other is a [*ComparableText] with the same content.
//
// Values of any other type, including a nil *ComparableText, are never equal.
func (c *ComparableText) Equal(other any) bool {
	that, ok := other.(*ComparableText)
	if !ok || that == nil {
		return false
	}
	return NewUnchecked[bool](NewEquals[string](
		ScalarFunc[string](c.AsString),
		ScalarFunc[string](that.AsString),
	)).Value()
}

// Hash returns the [HashString] of the content.
func (c *ComparableText) Hash() uint64 {
	return NewUnchecked[uint64](NewHash(c)).Value()
}

// CompareText compares a and b using [*ComparableText.Compare].
//
// This function is suitable for [slices.SortFunc]. A nil element panics
// with a [*FatalError] wrapping [ErrNilSource].
func CompareText(a, b *ComparableText) int {
	return a.Compare(b)
}
