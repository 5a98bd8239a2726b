package encoder

import "fmt"

// List encodes rows whose feature slots each hold a variable-length list of
// category values. Each slot yields one score aggregated over its entries.
type List struct {
	tables  []Table
	prior   Accumulator
	cfg     Config
	seen    []Accumulator
	pending []*Accumulator
}

// NewList creates a list encoder with dim feature slots and equal entry weighting.
func NewList(dim int, param float64) (*List, error) {
	return NewListWithConfig(dim, DefaultConfig(param))
}

// NewListWithConfig creates a list encoder with dim feature slots.
func NewListWithConfig(dim int, cfg Config) (*List, error) {
	if err := cfg.validate(dim); err != nil {
		return nil, err
	}
	tables, err := cfg.newTables(dim)
	if err != nil {
		return nil, err
	}
	return &List{tables: tables, cfg: cfg}, nil
}

// Transform encodes row and then updates the statistics with label.
//
// An empty list scores 0. Each entry scores with the statistics it had when
// it was read; Config.Update decides whether earlier entries of the same list
// are updated by then.
func (l *List) Transform(row [][]string, label int) ([]float64, error) {
	if len(row) != len(l.tables) {
		return nil, fmt.Errorf("%w: row has %d lists, encoder has %d slots",
			ErrDimensionMismatch, len(row), len(l.tables))
	}
	if err := l.cfg.checkLabel(label); err != nil {
		return nil, err
	}

	prior := l.prior.Probability()
	encoded := make([]float64, len(row))
	for i, entries := range row {
		seen, pending := l.seen[:0], l.pending[:0]
		for _, value := range entries {
			acc := l.tables[i].Get(value)
			seen = append(seen, *acc)
			if l.cfg.Update == PerEntry {
				acc.Increment(label)
			} else {
				pending = append(pending, acc)
			}
		}
		encoded[i] = l.aggregate(seen, prior)
		for _, acc := range pending {
			acc.Increment(label)
		}
		l.seen, l.pending = seen[:0], pending[:0]
	}
	l.prior.Increment(label)
	return encoded, nil
}

func (l *List) aggregate(seen []Accumulator, prior float64) float64 {
	if len(seen) == 0 {
		return 0.0
	}

	var total int64
	if l.cfg.Weighting == ListShrinkage {
		for _, acc := range seen {
			total += acc.Total
		}
	}

	var sum, weights float64
	for _, acc := range seen {
		w := 1.0
		switch l.cfg.Weighting {
		case PerEntryShrinkage:
			w = Weight(acc.Total, l.cfg.Param)
		case ListShrinkage:
			w = ListWeight(acc.Total, total, l.cfg.Param)
		}
		sum += w * acc.Probability()
		weights += w
	}
	// ListWeight is already normalized by the list total.
	if l.cfg.Weighting != ListShrinkage {
		n := float64(len(seen))
		sum /= n
		weights /= n
	}
	if l.cfg.BlendPrior {
		sum += (1 - weights) * prior
	}
	return sum
}

// Dim returns the number of feature slots.
func (l *List) Dim() int {
	return len(l.tables)
}

// Prior returns a copy of the global accumulator.
func (l *List) Prior() Accumulator {
	return l.prior
}

// Stats returns a copy of the accumulator of category in slot.
func (l *List) Stats(slot int, category string) (Accumulator, bool) {
	return lookup(l.tables, slot, category)
}

// Size returns the number of categories tracked in slot.
func (l *List) Size(slot int) int {
	if slot < 0 || slot >= len(l.tables) {
		return 0
	}
	return l.tables[slot].Len()
}
