// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import "golang.org/x/text/encoding"

// NewBytesOfError returns a new [*BytesOfError] rendering the given error.
//
// The cfg argument contains the common configuration for lazy operations.
//
// The frames are taken from the [*TracedError] wrapping err. When err has
// not been [Traced], the frames are captured here, so they describe the
// stack of the caller of NewBytesOfError. Traced errors deeper in the chain
// keep their own frames, rendered after their `Caused by:` line.
func NewBytesOfError(cfg *Config, err error) *BytesOfError {
	frames, _ := untraced(err)
	if frames == nil {
		frames = CaptureFrames(1)
	}
	return &BytesOfError{
		Encoding: cfg.Encoding,
		Err:      err,
		Frames:   frames,
	}
}

// BytesOfError renders an error and its stack trace as bytes.
//
// The text is produced by [RenderStackTrace] and then encoded with Encoding.
//
// All fields are safe to modify after construction but before first use.
type BytesOfError struct {
	// Encoding is the target encoding.
	//
	// Set by [NewBytesOfError] from [Config.Encoding].
	Encoding encoding.Encoding

	// Err is the error to render.
	//
	// Set by [NewBytesOfError] to the user-provided error.
	Err error

	// Frames describes the stack trace of Err, innermost first.
	//
	// Set by [NewBytesOfError] as documented there.
	Frames []string
}

var _ Bytes = &BytesOfError{}

// AsBytes implements [Bytes].
func (b *BytesOfError) AsBytes() ([]byte, error) {
	if b.Err == nil {
		return nil, ErrNilSource
	}
	text := TextFunc(func() (string, error) {
		return RenderStackTrace(b.Err, b.Frames), nil
	})
	return (&BytesOfText{Encoding: b.Encoding, Text: text}).AsBytes()
}

// NewBytesOfFrames returns a new [*BytesOfFrames] rendering the given frames.
//
// The cfg argument contains the common configuration for lazy operations.
//
// Use this constructor with frames obtained from [CaptureFrames] or from
// [TracedError.Frames].
func NewBytesOfFrames(cfg *Config, frames []string) *BytesOfFrames {
	return &BytesOfFrames{
		Encoding: cfg.Encoding,
		Frames:   frames,
	}
}

// BytesOfFrames renders stack frames as bytes, one `\tat <frame>` line
// each, as produced by [RenderFrames], encoded with Encoding.
//
// All fields are safe to modify after construction but before first use.
type BytesOfFrames struct {
	// Encoding is the target encoding.
	//
	// Set by [NewBytesOfFrames] from [Config.Encoding].
	Encoding encoding.Encoding

	// Frames contains the frames to render.
	//
	// Set by [NewBytesOfFrames] to the user-provided frames.
	Frames []string
}

var _ Bytes = &BytesOfFrames{}

// AsBytes implements [Bytes].
func (b *BytesOfFrames) AsBytes() ([]byte, error) {
	return (&BytesOfText{Encoding: b.Encoding, Text: ConstText(RenderFrames(b.Frames))}).AsBytes()
}
