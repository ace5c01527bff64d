// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ioError is an error type used to check how kinds are rendered.
type ioError struct {
	msg string
}

func (e *ioError) Error() string {
	return e.msg
}

func TestRenderStackTrace(t *testing.T) {
	t.Run("headline and frames", func(t *testing.T) {
		err := &ioError{"It doesn't work at all"}
		frames := []string{"main.run(main.go:10)", "main.main(main.go:3)"}

		text := RenderStackTrace(err, frames)

		assert.Equal(t, "github.com/bassosimone/lazy.ioError: It doesn't work at all\n"+
			"\tat main.run(main.go:10)\n"+
			"\tat main.main(main.go:3)\n", text)
	})

	t.Run("empty message", func(t *testing.T) {
		assert.Equal(t, "github.com/bassosimone/lazy.ioError\n", RenderStackTrace(&ioError{}, nil))
	})

	t.Run("caused by", func(t *testing.T) {
		cause := &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}
		err := fmt.Errorf("loading: %w", cause)

		text := RenderStackTrace(err, []string{"main.main(main.go:3)"})

		assert.Equal(t, "fmt.wrapError: loading: open /x: file does not exist\n"+
			"\tat main.main(main.go:3)\n"+
			"Caused by: io/fs.PathError: open /x: file does not exist\n"+
			"Caused by: errors.errorString: file does not exist\n", text)
	})

	t.Run("traced causes carry their frames", func(t *testing.T) {
		inner := &TracedError{Err: &ioError{"inner"}, Frames: []string{"x.y(z.go:2)"}}
		err := &TracedError{Err: fmt.Errorf("outer: %w", inner), Frames: []string{"ignored(a.go:9)"}}

		text := RenderStackTrace(err, []string{"a.b(c.go:1)"})

		assert.Equal(t, "fmt.wrapError: outer: inner\n"+
			"\tat a.b(c.go:1)\n"+
			"Caused by: github.com/bassosimone/lazy.ioError: inner\n"+
			"\tat x.y(z.go:2)\n", text)
	})

	t.Run("frames captured by Traced", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", Traced(&ioError{"inner"}))

		text := RenderStackTrace(err, []string{"a.b(c.go:1)"})

		prefix := "fmt.wrapError: outer: inner\n" +
			"\tat a.b(c.go:1)\n" +
			"Caused by: github.com/bassosimone/lazy.ioError: inner\n" +
			"\tat github.com/bassosimone/lazy.TestRenderStackTrace."
		assert.True(t, strings.HasPrefix(text, prefix), text)
		assert.Contains(t, text, "stacktrace_test.go:")
	})
}

func TestRenderFrames(t *testing.T) {
	assert.Equal(t, "\tat a(a.go:1)\n\tat b(b.go:2)\n", RenderFrames([]string{"a(a.go:1)", "b(b.go:2)"}))
	assert.Equal(t, "", RenderFrames(nil))
}

// Traced captures the stack of its caller.
func TestTraced(t *testing.T) {
	inner := errors.New("boom")
	err := Traced(inner)

	var traced *TracedError
	require.ErrorAs(t, err, &traced)
	require.ErrorIs(t, err, inner)
	assert.Equal(t, "boom", err.Error())
	require.NotEmpty(t, traced.Frames)
	assert.True(t, strings.HasPrefix(traced.Frames[0], "github.com/bassosimone/lazy.TestTraced("), traced.Frames[0])
	assert.Contains(t, traced.Frames[0], "stacktrace_test.go:")

	assert.Nil(t, Traced(nil))
}

// CaptureFrames starts from its caller and honors skip.
func TestCaptureFrames(t *testing.T) {
	frames := CaptureFrames(0)
	require.NotEmpty(t, frames)
	assert.True(t, strings.HasPrefix(frames[0], "github.com/bassosimone/lazy.TestCaptureFrames("), frames[0])

	helper := func() []string { return CaptureFrames(1) }
	skipped := helper()
	require.NotEmpty(t, skipped)
	assert.True(t, strings.HasPrefix(skipped[0], "github.com/bassosimone/lazy.TestCaptureFrames("), skipped[0])
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "errors.errorString", errorKind(errors.New("x")))
	assert.Equal(t, "io/fs.PathError", errorKind(&fs.PathError{}))
	assert.Equal(t, "github.com/bassosimone/lazy.FatalError", errorKind(&FatalError{Cause: errors.New("x")}))
}
