// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import "golang.org/x/text/encoding"

// Text is a deferred computation producing a string.
//
// Calling AsString twice may perform the computation twice (e.g., when the
// text is backed by I/O), but both calls must observe the same content.
type Text interface {
	AsString() (string, error)
}

// TextFunc wraps a function as a [Text] implementation.
type TextFunc func() (string, error)

// AsString implements [Text].
func (f TextFunc) AsString() (string, error) {
	return f()
}

// ConstText returns a [Text] that always returns the given string.
func ConstText(s string) Text {
	return constText(s)
}

type constText string

func (c constText) AsString() (string, error) {
	return string(c), nil
}

// NewTextOfBytes returns a new [*TextOfBytes] decoding the given [Bytes].
//
// The cfg argument contains the common configuration for lazy operations.
func NewTextOfBytes(cfg *Config, bytes Bytes) *TextOfBytes {
	return &TextOfBytes{
		Bytes:    bytes,
		Encoding: cfg.Encoding,
	}
}

// TextOfBytes is a [Text] decoding deferred [Bytes] using an [encoding.Encoding].
//
// All fields are safe to modify after construction but before first use.
type TextOfBytes struct {
	// Bytes is the source of the encoded bytes.
	//
	// Set by [NewTextOfBytes] to the user-provided value.
	Bytes Bytes

	// Encoding is the encoding of Bytes.
	//
	// Set by [NewTextOfBytes] from [Config.Encoding].
	Encoding encoding.Encoding
}

var _ Text = &TextOfBytes{}

// AsString implements [Text].
func (t *TextOfBytes) AsString() (string, error) {
	if t.Bytes == nil || t.Encoding == nil {
		return "", ErrNilSource
	}
	return Mapped[[]byte, string](ScalarFunc[[]byte](t.Bytes.AsBytes), t.decode).Value()
}

func (t *TextOfBytes) decode(data []byte) (string, error) {
	out, err := t.Encoding.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
