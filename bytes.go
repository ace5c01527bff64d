// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import "io"

// Bytes is a deferred computation producing a byte sequence.
//
// Implementations reading from a stream consume it: the first call to
// AsBytes reads and closes the stream, so further calls observe an empty
// or closed stream. Wrap with [NewSticky] to read only once.
type Bytes interface {
	AsBytes() ([]byte, error)
}

// BytesFunc wraps a function as a [Bytes] implementation.
type BytesFunc func() ([]byte, error)

// AsBytes implements [Bytes].
func (f BytesFunc) AsBytes() ([]byte, error) {
	return f()
}

// ConstBytes returns a [Bytes] that always returns a copy of data.
//
// The copy prevents callers from mutating the constant through the result.
func ConstBytes(data []byte) Bytes {
	return constBytes(cloneBytes(data))
}

type constBytes []byte

func (c constBytes) AsBytes() ([]byte, error) {
	return cloneBytes(c), nil
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// readCloser combines a reader with the closer of the stream it reads from.
type readCloser struct {
	io.Reader
	io.Closer
}

// readAll reads rc until EOF using a buffer of bufferSize bytes and then
// closes rc. The stream is closed on every return path. A close error is
// returned only when reading succeeded.
func readAll(rc io.ReadCloser, bufferSize int) (data []byte, err error) {
	defer func() {
		if cerr := rc.Close(); err == nil && cerr != nil {
			data, err = nil, cerr
		}
	}()
	if bufferSize < 1 {
		return nil, ErrInvalidBufferSize
	}
	data = []byte{}
	buf := make([]byte, bufferSize)
	for {
		count, rerr := rc.Read(buf)
		data = append(data, buf[:count]...)
		if rerr == io.EOF {
			return data, nil
		}
		if rerr != nil {
			return nil, rerr
		}
	}
}
