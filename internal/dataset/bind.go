package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/happyhackingspace/catenc/internal/textutil"
)

// ErrBadLabel is wrapped by row errors for labels that are not integers.
var ErrBadLabel = errors.New("label is not an integer")

// RowError reports a single unusable record. Streams skip such records.
type RowError struct {
	// Record is the 1-based index of the data record, header excluded.
	Record int
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("dataset: record %d: %v", e.Record, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Binding selects the columns feeding the encoders.
type Binding struct {
	Scalar []string
	List   []string
	Label  string
	// Splitter splits list-column cells into entries.
	Splitter textutil.Splitter
}

// Example is one bound record.
type Example struct {
	Record  int
	Scalars []string
	Lists   [][]string
	Label   int
	// Raw holds the record's cells in header order.
	Raw []string
}

// Binder maps records of a fixed header onto a Binding.
type Binder struct {
	scalarIdx []int
	listIdx   []int
	labelIdx  int
	split     textutil.Splitter
}

// NewBinder resolves the binding's columns against header. All named columns
// must be present.
func NewBinder(header []string, b Binding) (*Binder, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	wanted := append(append(append([]string{}, b.Scalar...), b.List...), b.Label)
	missing := lo.Filter(wanted, func(name string, _ int) bool {
		_, ok := index[name]
		return !ok
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset: columns not found in header: %s", strings.Join(lo.Uniq(missing), ", "))
	}

	resolve := func(names []string) []int {
		return lo.Map(names, func(name string, _ int) int { return index[name] })
	}
	return &Binder{
		scalarIdx: resolve(b.Scalar),
		listIdx:   resolve(b.List),
		labelIdx:  index[b.Label],
		split:     b.Splitter,
	}, nil
}

// Bind extracts an Example from rec, the record-th data record.
func (b *Binder) Bind(record int, rec []string) (Example, error) {
	raw := strings.TrimSpace(rec[b.labelIdx])
	label, err := strconv.Atoi(raw)
	if err != nil {
		return Example{}, &RowError{Record: record, Err: fmt.Errorf("%w: %q", ErrBadLabel, raw)}
	}

	ex := Example{
		Record:  record,
		Scalars: make([]string, len(b.scalarIdx)),
		Lists:   make([][]string, len(b.listIdx)),
		Label:   label,
		Raw:     rec,
	}
	for i, idx := range b.scalarIdx {
		ex.Scalars[i] = rec[idx]
	}
	for i, idx := range b.listIdx {
		ex.Lists[i] = b.split.Split(rec[idx])
	}
	return ex, nil
}
