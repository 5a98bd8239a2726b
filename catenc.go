// Package catenc turns streams of categorical rows into target-statistic
// scores for a downstream binary classifier.
//
// A Pipeline owns one scalar encoder for single-valued columns and one list
// encoder for multi-valued columns, and emits their scores side by side:
//
//	p, _ := catenc.New(catenc.Schema{
//	    Scalar: []string{"city", "device"},
//	    List:   []string{"tags"},
//	}, encoder.DefaultConfig(10))
//	scores, _ := p.Transform([]string{"paris", "ios"}, [][]string{{"a", "b"}}, 1)
//
// Scores are computed before the row's label is folded into the statistics.
package catenc

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/happyhackingspace/catenc/encoder"
)

// ColumnSuffix is appended to input column names to name output columns.
const ColumnSuffix = "_te"

// Schema names the input columns of a pipeline.
type Schema struct {
	Scalar []string `json:"scalar" yaml:"scalar"`
	List   []string `json:"list" yaml:"list"`
}

// Pipeline encodes rows with a scalar and a list encoder.
type Pipeline struct {
	schema Schema
	scalar *encoder.Scalar
	list   *encoder.List
	rows   int64
}

// New creates a Pipeline. Scalar columns use cfg.Blend, list columns use
// cfg.Weighting and cfg.BlendPrior.
func New(schema Schema, cfg encoder.Config) (*Pipeline, error) {
	if len(schema.Scalar)+len(schema.List) == 0 {
		return nil, fmt.Errorf("catenc: schema has no columns")
	}
	if dup := lo.FindDuplicates(append(append([]string{}, schema.Scalar...), schema.List...)); len(dup) > 0 {
		return nil, fmt.Errorf("catenc: duplicate columns %v", dup)
	}
	scalar, err := encoder.NewScalarWithConfig(len(schema.Scalar), cfg)
	if err != nil {
		return nil, fmt.Errorf("catenc: %w", err)
	}
	list, err := encoder.NewListWithConfig(len(schema.List), cfg)
	if err != nil {
		return nil, fmt.Errorf("catenc: %w", err)
	}
	return &Pipeline{schema: schema, scalar: scalar, list: list}, nil
}

// Transform encodes one row and returns the scalar scores followed by the
// list scores. Both inputs are checked before any statistics change.
func (p *Pipeline) Transform(scalars []string, lists [][]string, label int) ([]float64, error) {
	if len(scalars) != p.scalar.Dim() {
		return nil, fmt.Errorf("catenc: scalar columns: %w: got %d, want %d",
			encoder.ErrDimensionMismatch, len(scalars), p.scalar.Dim())
	}
	if len(lists) != p.list.Dim() {
		return nil, fmt.Errorf("catenc: list columns: %w: got %d, want %d",
			encoder.ErrDimensionMismatch, len(lists), p.list.Dim())
	}

	out := make([]float64, 0, len(scalars)+len(lists))
	scores, err := p.scalar.Transform(scalars, label)
	if err != nil {
		return nil, fmt.Errorf("catenc: %w", err)
	}
	out = append(out, scores...)

	scores, err = p.list.Transform(lists, label)
	if err != nil {
		return nil, fmt.Errorf("catenc: %w", err)
	}
	out = append(out, scores...)
	p.rows++
	return out, nil
}

// Columns returns the output column names in Transform order.
func (p *Pipeline) Columns() []string {
	inputs := append(append([]string{}, p.schema.Scalar...), p.schema.List...)
	return lo.Map(inputs, func(name string, _ int) string {
		return name + ColumnSuffix
	})
}

// Schema returns the pipeline's input columns.
func (p *Pipeline) Schema() Schema {
	return p.schema
}

// Config returns the encoder settings shared by both encoders.
func (p *Pipeline) Config() encoder.Config {
	return p.scalar.Config()
}

// Rows returns the number of rows encoded so far.
func (p *Pipeline) Rows() int64 {
	return p.rows
}

// Prior returns the positive rate over all rows encoded so far.
func (p *Pipeline) Prior() float64 {
	return p.scalar.Prior().Probability()
}

// Cardinality returns the number of categories tracked per input column, in
// Columns order.
func (p *Pipeline) Cardinality() []int {
	sizes := make([]int, 0, p.scalar.Dim()+p.list.Dim())
	for i := 0; i < p.scalar.Dim(); i++ {
		sizes = append(sizes, p.scalar.Size(i))
	}
	for i := 0; i < p.list.Dim(); i++ {
		sizes = append(sizes, p.list.Size(i))
	}
	return sizes
}
