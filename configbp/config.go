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

	"github.com/reddit/twister.go/log"
)

type envsubstReader struct {
	buffer bytes.Buffer
	lines  *bufio.Scanner
}

func (r *envsubstReader) Read(buf []byte) (int, error) {
	// Keep flushing pending data if we have it
	if r.buffer.Len() > 0 {
		return r.buffer.Read(buf)
	}

	// Fill the buffer with the next line
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

// ParseStrictFile parses configuration from the file at the given path.
//
// Environment variables (e.g. $FOO and ${FOO}) are substituted from the
// environment before parsing.
// Unknown keys are errors.
func ParseStrictFile(path string, ptr interface{}) error {
	switch ext := filepath.Ext(path); strings.ToLower(ext) {
	case ".yaml", ".yml":
	default:
		return fmt.Errorf("configbp: unsupported config extension %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return err // contains filename
	}
	defer f.Close() // safe to blindly close read-only files

	return ParseStrictYAML(f, ptr)
}

// ParseStrictYAML parses YAML read from the given Reader.
//
// Environment variables (e.g. $FOO and ${FOO}) are substituted from the
// environment before parsing.
// Unknown keys are errors.
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
	if err := dec.Decode(ptr); err != nil {
		if debugOutput.Len() > 0 {
			log.Debugf("Partial configuration for decoding into %T: (error: %s)\n%s", ptr, err, debugOutput.String())
		}
		return fmt.Errorf("configbp: parsing YAML into %T: %w", ptr, err)
	}

	if debugOutput.Len() > 0 {
		log.Debugf("Parsed configuration as %T:\n%s", ptr, debugOutput.String())
	}
	return nil
}
