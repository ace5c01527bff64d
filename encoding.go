// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// EncodingByName resolves an IANA character set name (e.g., "UTF-8",
// "ISO-8859-1", "windows-1251") to an [encoding.Encoding].
//
// Names are matched case-insensitively, aliases included. Returns an error
// wrapping [ErrUnknownEncoding] for names that are unknown or that have
// no available implementation.
func EncodingByName(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}
