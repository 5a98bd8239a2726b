package encoder

import "fmt"

// Scalar encodes rows holding one category value per feature slot.
type Scalar struct {
	tables []Table
	prior  Accumulator
	cfg    Config
}

// NewScalar creates a scalar encoder with dim feature slots and the default
// shrinkage blend.
func NewScalar(dim int, param float64) (*Scalar, error) {
	return NewScalarWithConfig(dim, DefaultConfig(param))
}

// NewScalarWithConfig creates a scalar encoder with dim feature slots.
func NewScalarWithConfig(dim int, cfg Config) (*Scalar, error) {
	if err := cfg.validate(dim); err != nil {
		return nil, err
	}
	tables, err := cfg.newTables(dim)
	if err != nil {
		return nil, err
	}
	return &Scalar{tables: tables, cfg: cfg}, nil
}

// Transform encodes row and then updates the statistics with label.
// Each score is computed from rows seen before this one. On error nothing is
// updated.
func (s *Scalar) Transform(row []string, label int) ([]float64, error) {
	if len(row) != len(s.tables) {
		return nil, fmt.Errorf("%w: row has %d values, encoder has %d slots",
			ErrDimensionMismatch, len(row), len(s.tables))
	}
	if err := s.cfg.checkLabel(label); err != nil {
		return nil, err
	}

	prior := s.prior.Probability()
	encoded := make([]float64, len(row))
	for i, value := range row {
		acc := s.tables[i].Get(value)
		encoded[i] = s.score(acc, prior)
		acc.Increment(label)
	}
	s.prior.Increment(label)
	return encoded, nil
}

func (s *Scalar) score(acc *Accumulator, prior float64) float64 {
	if s.cfg.Blend == RawRatio {
		return acc.Probability()
	}
	w := Weight(acc.Total, s.cfg.Param)
	return w*acc.Probability() + (1-w)*prior
}

// Dim returns the number of feature slots.
func (s *Scalar) Dim() int {
	return len(s.tables)
}

// Config returns the encoder configuration.
func (s *Scalar) Config() Config {
	return s.cfg
}

// Prior returns a copy of the global accumulator.
func (s *Scalar) Prior() Accumulator {
	return s.prior
}

// Stats returns a copy of the accumulator of category in slot.
func (s *Scalar) Stats(slot int, category string) (Accumulator, bool) {
	return lookup(s.tables, slot, category)
}

// Size returns the number of categories tracked in slot.
func (s *Scalar) Size(slot int) int {
	if slot < 0 || slot >= len(s.tables) {
		return 0
	}
	return s.tables[slot].Len()
}

func lookup(tables []Table, slot int, category string) (Accumulator, bool) {
	if slot < 0 || slot >= len(tables) {
		return Accumulator{}, false
	}
	acc, ok := tables[slot].Lookup(category)
	if !ok {
		return Accumulator{}, false
	}
	return *acc, true
}
