package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// CSVSource reads rows from delimited text whose first record is the header.
type CSVSource struct {
	r      *csv.Reader
	header []string
	n      int
}

// NewCSVSource reads the header from r. comma is the field delimiter; zero means ','.
func NewCSVSource(r io.Reader, comma rune) (*CSVSource, error) {
	cr := csv.NewReader(r)
	if comma != 0 {
		cr.Comma = comma
	}
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}
	// Records must match the header width from here on.
	cr.FieldsPerRecord = len(header)
	return &CSVSource{r: cr, header: header}, nil
}

// Header returns the column names.
func (s *CSVSource) Header() []string {
	return s.header
}

// Next returns the next record. A record with the wrong number of fields
// yields a *RowError; reading can continue after it.
func (s *CSVSource) Next() ([]string, error) {
	rec, err := s.r.Read()
	if errors.Is(err, io.EOF) {
		return nil, err
	}
	s.n++
	if err == nil {
		return rec, nil
	}
	var pe *csv.ParseError
	if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
		return nil, &RowError{Record: s.n, Err: pe}
	}
	return nil, fmt.Errorf("dataset: %w", err)
}
