package points

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// File is the content of a points file.
type File struct {
	Radius float64
	Points []Point
}

// Encode writes f in the points file format:
//
//	<radius>
//	<x1>, <y1>
//	...
//
// Every line, the last one included, ends with "\n".
// The radius is written as is, coordinates are written as they are stored.
func Encode(w io.Writer, f File) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(FormatFloat(f.Radius))
	bw.WriteByte('\n')
	for _, p := range f.Points {
		bw.WriteString(p.String())
		bw.WriteByte('\n')
	}
	// bufio.Writer keeps the first error, Flush reports it.
	return bw.Flush()
}

// Decode reads a points file from r.
//
// The first line must be the radius, every following non-blank line a
// comma separated pair of numbers. Whitespace around numbers is ignored.
// Values are not range checked.
func Decode(r io.Reader) (File, error) {
	var f File
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return f, scanError(1, err)
		}
		return f, fmt.Errorf("%w: missing radius line", ErrMalformed)
	}
	radius, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
	if err != nil {
		return f, fmt.Errorf("%w: line 1: radius: %v", ErrMalformed, err)
	}
	f.Radius = radius

	line := 2
	for ; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		p, err := parsePoint(text)
		if err != nil {
			return f, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		f.Points = append(f.Points, p)
	}
	if err := scanner.Err(); err != nil {
		return f, scanError(line, err)
	}
	return f, nil
}

// scanError wraps lines too long for the scanner as ErrMalformed,
// read errors are returned as is.
func scanError(line int, err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
	}
	return err
}

func parsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("expected \"x, y\", got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Point{}, fmt.Errorf("x: %v", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Point{}, fmt.Errorf("y: %v", err)
	}
	return Point{X: x, Y: y}, nil
}
