package testutil

import (
	"errors"
	"io"
)

// ErrInjected is the default error returned by the failing readers and writers.
var ErrInjected = errors.New("injected failure")

// FailingReader yields Data and then fails with Err instead of io.EOF.
//
// Err defaults to ErrInjected.
type FailingReader struct {
	Data []byte
	Err  error
	pos  int
}

// NewFailingReader returns a reader that fails after delivering data.
func NewFailingReader(data []byte) *FailingReader {
	return &FailingReader{Data: data}
}

func (r *FailingReader) Read(p []byte) (int, error) {
	if r.pos < len(r.Data) {
		n := copy(p, r.Data[r.pos:])
		r.pos += n
		return n, nil
	}
	if r.Err != nil {
		return 0, r.Err
	}
	return 0, ErrInjected
}

// FailingWriter accepts Limit bytes and then fails every write with Err.
//
// Bytes accepted before the failure are kept in Written.
type FailingWriter struct {
	Limit   int
	Err     error
	Written []byte
}

// NewFailingWriter returns a writer that fails once limit bytes are written.
func NewFailingWriter(limit int) *FailingWriter {
	return &FailingWriter{Limit: limit}
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	room := w.Limit - len(w.Written)
	if room >= len(p) {
		w.Written = append(w.Written, p...)
		return len(p), nil
	}
	if room > 0 {
		w.Written = append(w.Written, p[:room]...)
	} else {
		room = 0
	}
	if w.Err != nil {
		return room, w.Err
	}
	return room, ErrInjected
}

// ShortWriter reports writing one byte fewer than asked, without an error,
// for any write longer than one byte.
type ShortWriter struct {
	Written []byte
}

func (w *ShortWriter) Write(p []byte) (int, error) {
	if len(p) <= 1 {
		w.Written = append(w.Written, p...)
		return len(p), nil
	}
	w.Written = append(w.Written, p[:len(p)-1]...)
	return len(p) - 1, nil
}

// ClosingReader records whether Close was called.
type ClosingReader struct {
	io.Reader
	Closed bool
}

func (c *ClosingReader) Close() error {
	c.Closed = true
	return nil
}
