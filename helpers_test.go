// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/bassosimone/slogstub"
	"github.com/stretchr/testify/require"
)

// newCapturingLogger returns a logger that captures all log records into the
// returned slice. The caller can inspect the slice after exercising the code
// under test to verify which events were emitted.
func newCapturingLogger() (*slog.Logger, *[]slog.Record) {
	var records []slog.Record
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			records = append(records, record)
			return nil
		},
	}
	return slog.New(handler), &records
}

// funcReadCloser is an [io.ReadCloser] built from functions that
// counts how many times Close was called.
type funcReadCloser struct {
	ReadFunc  func(buf []byte) (int, error)
	CloseFunc func() error
	closes    int
}

func (rc *funcReadCloser) Read(buf []byte) (int, error) {
	return rc.ReadFunc(buf)
}

func (rc *funcReadCloser) Close() error {
	rc.closes++
	if rc.CloseFunc == nil {
		return nil
	}
	return rc.CloseFunc()
}

// newStringReadCloser returns a [*funcReadCloser] reading the given string.
func newStringReadCloser(s string) *funcReadCloser {
	r := strings.NewReader(s)
	return &funcReadCloser{ReadFunc: r.Read}
}

// newFailingReadCloser returns a [*funcReadCloser] returning prefix and then err.
func newFailingReadCloser(prefix string, err error) *funcReadCloser {
	r := io.MultiReader(strings.NewReader(prefix), &errReader{err})
	return &funcReadCloser{ReadFunc: r.Read}
}

type errReader struct {
	err error
}

func (r *errReader) Read([]byte) (int, error) {
	return 0, r.err
}

// requireFatal runs fn, requires it to panic with a [*FatalError],
// and returns the [*FatalError].
func requireFatal(t *testing.T, fn func()) (fatal *FatalError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		var ok bool
		fatal, ok = r.(*FatalError)
		require.True(t, ok, "expected *FatalError, got %T", r)
	}()
	fn()
	return nil
}

// failingText returns a [Text] that always fails with err.
func failingText(err error) Text {
	return TextFunc(func() (string, error) {
		return "", err
	})
}
