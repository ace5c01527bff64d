// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// HashString returns the standard hash of a string used by this package.
//
// The hash is the first eight bytes of the BLAKE3 digest of the string,
// read as a little endian integer. It does not depend on the process, so
// it is stable across runs and platforms.
func HashString(s string) uint64 {
	sum := blake3.Sum256([]byte(s))
	return binary.LittleEndian.Uint64(sum[:8])
}

// NewHash returns a new [*Hash] of the given [Text].
func NewHash(text Text) *Hash {
	return &Hash{text: text}
}

// Hash is a [Scalar] computing [HashString] of a deferred [Text].
type Hash struct {
	text Text
}

var _ Scalar[uint64] = &Hash{}

// Value implements [Scalar].
func (h *Hash) Value() (uint64, error) {
	if h.text == nil {
		return 0, ErrNilSource
	}
	s, err := h.text.AsString()
	if err != nil {
		return 0, err
	}
	return HashString(s), nil
}
