// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import "golang.org/x/text/encoding"

// NewBytesOfText returns a new [*BytesOfText] encoding the given [Text].
//
// The cfg argument contains the common configuration for lazy operations.
func NewBytesOfText(cfg *Config, text Text) *BytesOfText {
	return &BytesOfText{
		Encoding: cfg.Encoding,
		Text:     text,
	}
}

// BytesOfText encodes a deferred [Text] using an [encoding.Encoding].
//
// The result is identical to encoding the string with the encoder of
// Encoding. Characters the encoding cannot represent cause an error.
//
// All fields are safe to modify after construction but before first use.
type BytesOfText struct {
	// Encoding is the target encoding.
	//
	// Set by [NewBytesOfText] from [Config.Encoding].
	Encoding encoding.Encoding

	// Text is the text to encode.
	//
	// Set by [NewBytesOfText] to the user-provided value.
	Text Text
}

var _ Bytes = &BytesOfText{}

// AsBytes implements [Bytes].
func (b *BytesOfText) AsBytes() ([]byte, error) {
	if b.Text == nil || b.Encoding == nil {
		return nil, ErrNilSource
	}
	return Mapped[string, []byte](ScalarFunc[string](b.Text.AsString), b.encode).Value()
}

func (b *BytesOfText) encode(s string) ([]byte, error) {
	return b.Encoding.NewEncoder().Bytes([]byte(s))
}
