// Package iobp provides io helpers shared by pointsgen packages.
package iobp

import (
	"io"
)

// CountingWriter passes writes through to W and counts how many bytes W
// accepted.
//
// A CountingWriter is not safe for concurrent use.
type CountingWriter struct {
	W io.Writer

	n int64
}

var _ io.Writer = (*CountingWriter)(nil)

// NewCountingWriter wraps w.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{W: w}
}

func (cw *CountingWriter) Write(buf []byte) (int, error) {
	n, err := cw.W.Write(buf)
	cw.n += int64(n)
	return n, err
}

// Size returns the number of bytes written so far.
func (cw *CountingWriter) Size() int64 {
	return cw.n
}
