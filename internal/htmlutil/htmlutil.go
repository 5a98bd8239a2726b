// Package htmlutil extracts tabular data from HTML documents.
package htmlutil

import (
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LoadHTML parses HTML bytes into a goquery Document.
func LoadHTML(r io.Reader) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(r)
}

// GetTables returns all <table> elements in the document.
func GetTables(doc *goquery.Document) []*goquery.Selection {
	var tables []*goquery.Selection
	doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		tables = append(tables, s)
	})
	return tables
}

// TableRows returns the cell texts of every row of table, header rows
// included. Rows of nested tables are skipped.
func TableRows(table *goquery.Selection) [][]string {
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.ParentsFiltered("table").First().Get(0) != table.Get(0) {
			return
		}
		var cells []string
		tr.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, CellText(cell))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})
	return rows
}

var multiSpaceRe = regexp.MustCompile(`\s+`)

// CellText returns the text of a cell with whitespace runs collapsed and trimmed.
func CellText(cell *goquery.Selection) string {
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(cell.Text(), " "))
}
