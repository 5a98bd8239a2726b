package dataset

import (
	"fmt"
	"io"

	"github.com/happyhackingspace/catenc/internal/htmlutil"
)

// HTMLSource reads rows from the first <table> of an HTML document. The first
// row of the table is the header.
type HTMLSource struct {
	header []string
	rows   [][]string
	pos    int
}

// NewHTMLSource parses the whole document from r.
func NewHTMLSource(r io.Reader) (*HTMLSource, error) {
	doc, err := htmlutil.LoadHTML(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: parse html: %w", err)
	}
	tables := htmlutil.GetTables(doc)
	if len(tables) == 0 {
		return nil, fmt.Errorf("dataset: no <table> in document")
	}
	rows := htmlutil.TableRows(tables[0])
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}
	return &HTMLSource{header: rows[0], rows: rows[1:]}, nil
}

// Header returns the column names.
func (s *HTMLSource) Header() []string {
	return s.header
}

// Next returns the next table row. Rows narrower or wider than the header
// yield a *RowError.
func (s *HTMLSource) Next() ([]string, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	if len(row) != len(s.header) {
		return nil, &RowError{Record: s.pos, Err: fmt.Errorf("row has %d cells, header has %d", len(row), len(s.header))}
	}
	return row, nil
}
