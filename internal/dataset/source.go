// Package dataset reads labeled categorical rows from delimited text and
// HTML tables.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html/charset"
)

// Format is an input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

// Source yields rows of raw cells under a fixed header. Next returns io.EOF
// after the last row.
type Source interface {
	Header() []string
	Next() ([]string, error)
}

// Options configures Open.
type Options struct {
	// Format forces the input format; empty means detect from the file extension.
	Format Format
	// Encoding names the input charset (e.g. "latin1"); empty means detect,
	// falling back to UTF-8 compatible decoding.
	Encoding string
	// Comma is the CSV field delimiter; zero means ','.
	Comma rune
}

// DetectFormat guesses the format of path from its extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatCSV
	}
}

// Open opens path ("-" for stdin) and returns a Source over it. The returned
// closer must be closed once the source is drained.
func Open(path string, opts Options) (Source, io.Closer, error) {
	var f io.ReadCloser
	if path == "-" || path == "" {
		f = io.NopCloser(os.Stdin)
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("dataset: %w", err)
		}
		f = file
	}

	format := opts.Format
	if format == "" {
		format = DetectFormat(path)
	}
	src, err := NewSource(f, format, opts)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return src, f, nil
}

// NewSource decodes r to UTF-8 and wraps it in a Source of the given format.
func NewSource(r io.Reader, format Format, opts Options) (Source, error) {
	contentType := "text/csv"
	if format == FormatHTML {
		contentType = "text/html"
	}
	if opts.Encoding != "" {
		contentType += "; charset=" + opts.Encoding
	}
	utf8Reader, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("dataset: decode %s input: %w", format, err)
	}

	switch format {
	case FormatCSV:
		return NewCSVSource(utf8Reader, opts.Comma)
	case FormatHTML:
		return NewHTMLSource(utf8Reader)
	default:
		return nil, fmt.Errorf("dataset: unknown format %q", format)
	}
}

// ErrNoHeader is returned for inputs without a header row.
var ErrNoHeader = errors.New("dataset: missing header row")
