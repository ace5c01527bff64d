// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import (
	"io"
	"log/slog"
	"time"
)

// observeReader wraps a stream so that we emit structured log events
// for each Read (readStart/readDone, at debug level) and for Close
// (closeDone, at info level). Close has "once" semantics: only the first
// call closes the underlying stream.
func observeReader(
	rc io.ReadCloser,
	errClass ErrClassifier,
	logger SLogger,
	timeNow func() time.Time,
) *observedReader {
	return &observedReader{
		closed:   false,
		errClass: errClass,
		logger:   logger,
		rc:       rc,
		timeNow:  timeNow,
	}
}

type observedReader struct {
	// closed tracks whether Close was already called.
	closed bool

	// errClass is the err classifier in use.
	errClass ErrClassifier

	// logger is the [SLogger] in use.
	logger SLogger

	// rc is the actual stream.
	rc io.ReadCloser

	// timeNow mocks [time.Now].
	timeNow func() time.Time
}

var _ io.ReadCloser = &observedReader{}

// Close implements [io.ReadCloser].
func (r *observedReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	t0 := r.timeNow()
	err := r.rc.Close()
	r.logger.Info(
		"closeDone",
		slog.Any("err", err),
		slog.String("errClass", r.errClass.Classify(err)),
		slog.Time("t0", t0),
		slog.Time("t", r.timeNow()),
	)
	return err
}

// Read implements [io.ReadCloser].
func (r *observedReader) Read(buf []byte) (int, error) {
	t0 := r.timeNow()
	r.logger.Debug(
		"readStart",
		slog.Int("ioBufferSize", len(buf)),
		slog.Time("t", t0),
	)

	count, err := r.rc.Read(buf)

	r.logger.Debug(
		"readDone",
		slog.Int("ioBytesCount", count),
		slog.Any("err", err),
		slog.String("errClass", r.errClass.Classify(err)),
		slog.Time("t0", t0),
		slog.Time("t", r.timeNow()),
	)

	return count, err
}
