// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
)

// maxFrames is the maximum number of frames captured by [CaptureFrames].
const maxFrames = 64

// TracedError is an error carrying the stack frames captured by [Traced].
//
// TracedError is transparent: its message is the message of Err and
// [RenderStackTrace] reports the kind of Err.
type TracedError struct {
	// Err is the traced error.
	Err error

	// Frames describes the stack where [Traced] was called, innermost first.
	Frames []string
}

// Error implements error.
func (e *TracedError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the traced error.
func (e *TracedError) Unwrap() error {
	return e.Err
}

// Traced wraps err with the frames of the stack of its caller.
//
// Returns nil when err is nil.
func Traced(err error) error {
	if err == nil {
		return nil
	}
	return &TracedError{Err: err, Frames: CaptureFrames(1)}
}

// CaptureFrames describes the stack of the calling goroutine, innermost
// first, starting from the caller of CaptureFrames. The skip argument
// drops that many additional frames.
//
// Each frame is formatted as `<function>(<file>:<line>)`, for example
// `github.com/bassosimone/lazy.TestTraced(stacktrace_test.go:17)`.
func CaptureFrames(skip int) []string {
	pcs := make([]uintptr, maxFrames)
	count := runtime.Callers(skip+2, pcs)
	frames := runtime.CallersFrames(pcs[:count])
	out := make([]string, 0, count)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			out = append(out, fmt.Sprintf("%s(%s:%d)", frame.Function, filepath.Base(frame.File), frame.Line))
		}
		if !more {
			break
		}
	}
	return out
}

// RenderStackTrace renders err and the given frames as text.
//
// The first line is `<kind>: <message>`, or just `<kind>` when the message
// is empty. Each frame follows on its own line as `\tat <frame>`. Then,
// for each error wrapped by err (as returned by [errors.Unwrap]), a line
// `Caused by: <kind>: <message>` follows, plus the frames of the cause when
// it was wrapped by [Traced]. Every line ends with "\n".
//
// The kind is the fully qualified name of the error type, with pointers
// dereferenced (e.g., `io/fs.PathError`). [*TracedError] wrappers are skipped.
//
// A nil err renders the frames only, as [RenderFrames] does.
func RenderStackTrace(err error, frames []string) string {
	var sb strings.Builder
	_, err = untraced(err)
	if err == nil {
		return RenderFrames(frames)
	}
	writeHeadline(&sb, err)
	writeFrames(&sb, frames)
	causeFrames, cause := untraced(errors.Unwrap(err))
	for cause != nil {
		sb.WriteString("Caused by: ")
		writeHeadline(&sb, cause)
		writeFrames(&sb, causeFrames)
		causeFrames, cause = untraced(errors.Unwrap(cause))
	}
	return sb.String()
}

// RenderFrames renders only the frame lines of [RenderStackTrace].
func RenderFrames(frames []string) string {
	var sb strings.Builder
	writeFrames(&sb, frames)
	return sb.String()
}

func writeHeadline(sb *strings.Builder, err error) {
	sb.WriteString(errorKind(err))
	if msg := err.Error(); msg != "" {
		sb.WriteString(": ")
		sb.WriteString(msg)
	}
	sb.WriteString("\n")
}

func writeFrames(sb *strings.Builder, frames []string) {
	for _, frame := range frames {
		sb.WriteString("\tat ")
		sb.WriteString(frame)
		sb.WriteString("\n")
	}
}

// untraced returns the frames of the outermost [*TracedError] wrapping err
// and err with those wrappers stripped.
func untraced(err error) ([]string, error) {
	var frames []string
	for {
		traced, ok := err.(*TracedError)
		if !ok {
			return frames, err
		}
		if frames == nil {
			frames = traced.Frames
		}
		err = traced.Err
	}
}

// errorKind returns the fully qualified name of the type of err.
func errorKind(err error) string {
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
