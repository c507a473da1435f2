package points

import (
	"fmt"
	"os"

	"github.com/reddit/pointsgen/errorsbp"
	"github.com/reddit/pointsgen/internal/limitopen"
	"github.com/reddit/pointsgen/iobp"
)

// MaxFileSize is the hard limit ReadFile applies.
const MaxFileSize = 64 << 20

// WriteFile creates or truncates the file at path and encodes f into it.
//
// It returns the number of bytes written.
// The file is always closed; a failed write and a failed close are both
// reported. Nothing is cleaned up on failure, a partial file may remain.
// All errors wrap ErrIO.
func WriteFile(path string, f File) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	cw := iobp.NewCountingWriter(file)

	var batch errorsbp.Batch
	batch.AddPrefix("write", Encode(cw, f))
	batch.AddPrefix("close", file.Close())
	if err := batch.Compile(); err != nil {
		return cw.Size(), fmt.Errorf("%w: %w", ErrIO, err)
	}
	return cw.Size(), nil
}

// ReadFile reads and decodes the points file at path.
func ReadFile(path string) (File, error) {
	r, err := limitopen.OpenWithLimit(path, 0, MaxFileSize)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer r.Close()

	f, err := Decode(r)
	if err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
