package iobp_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/quick"

	"github.com/reddit/pointsgen/iobp"
)

func TestCountingWriter(t *testing.T) {
	f := func(s uint16) bool {
		buf := make([]byte, s)
		var dst bytes.Buffer
		cw := iobp.NewCountingWriter(&dst)
		if _, err := io.Copy(cw, bytes.NewReader(buf)); err != nil {
			t.Errorf("Failed to copy into CountingWriter: %v", err)
		}
		if size := cw.Size(); size != int64(s) {
			t.Errorf("Expected size %d, got %d", s, size)
		}
		if dst.Len() != int(s) {
			t.Errorf("Expected %d bytes to reach the underlying writer, got %d", s, dst.Len())
		}
		return !t.Failed()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

type shortWriter struct {
	limit int
}

var errShort = errors.New("short write")

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, errShort
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestCountingWriterPartial(t *testing.T) {
	cw := iobp.NewCountingWriter(&shortWriter{limit: 5})
	if _, err := cw.Write([]byte("abc")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, err := cw.Write([]byte("defg")); !errors.Is(err, errShort) {
		t.Errorf("second write: expected %v, got %v", errShort, err)
	}
	if got, want := cw.Size(), int64(5); got != want {
		t.Errorf("Expected size %d, got %d", want, got)
	}
}
