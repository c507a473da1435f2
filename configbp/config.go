// Package configbp parses YAML configuration files.
package configbp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/reddit/pointsgen/internal/limitopen"
	"github.com/reddit/pointsgen/log"
)

// MaxConfigSize is the hard limit on the size of config files.
const MaxConfigSize = 1 << 20

type envsubstReader struct {
	buffer bytes.Buffer
	lines  *bufio.Scanner
}

func (r *envsubstReader) Read(buf []byte) (int, error) {
	if r.buffer.Len() > 0 {
		return r.buffer.Read(buf)
	}
	if !r.lines.Scan() {
		if err := r.lines.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	r.buffer.WriteString(os.ExpandEnv(r.lines.Text()))
	r.buffer.WriteString("\n")
	return r.buffer.Read(buf)
}

// ParseStrictFile parses configuration from the file at the given path into
// ptr, which is usually a pointer to a struct.
//
// Only .yaml and .yml files are supported.
// Environment variables (e.g. $FOO and ${FOO}) are substituted before parsing.
func ParseStrictFile(path string, ptr interface{}) error {
	switch ext := filepath.Ext(path); strings.ToLower(ext) {
	case ".yaml", ".yml":
	default:
		return fmt.Errorf("configbp: unsupported config extension %q", ext)
	}

	f, err := limitopen.OpenWithLimit(path, 0, MaxConfigSize)
	if err != nil {
		return err // contains filename
	}
	defer f.Close()

	if err := ParseStrictYAML(f, ptr); err != nil {
		return fmt.Errorf("configbp: %s: %w", path, err)
	}
	return nil
}

// ParseStrictYAML parses YAML read from reader into ptr.
//
// Unknown fields are errors.
// Environment variables (e.g. $FOO and ${FOO}) are substituted before parsing.
func ParseStrictYAML(reader io.Reader, ptr interface{}) error {
	reader = &envsubstReader{
		lines: bufio.NewScanner(reader),
	}

	var debugOutput strings.Builder
	if log.With().Desugar().Core().Enabled(zap.DebugLevel) {
		reader = io.TeeReader(reader, &debugOutput)
	}

	dec := yaml.NewDecoder(reader)
	dec.SetStrict(true)
	if err := dec.Decode(ptr); err != nil && err != io.EOF {
		if debugOutput.Len() > 0 {
			log.Debugf("Partial configuration for decoding into %T: (error: %s)\n%s", ptr, err, debugOutput.String())
		}
		return fmt.Errorf("parsing YAML into %T: %w", ptr, err)
	}

	if debugOutput.Len() > 0 {
		log.Debugf("Parsed configuration as %T:\n%s", ptr, debugOutput.String())
	}
	return nil
}
