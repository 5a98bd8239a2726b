package encoder

import (
	"fmt"
	"math"
)

// BlendPolicy selects how the scalar encoder turns a category's statistics
// into a score.
type BlendPolicy int

const (
	// ShrinkageBlend interpolates between the category probability and the
	// prior with Weight(n, param).
	ShrinkageBlend BlendPolicy = iota
	// RawRatio emits the category probability as is, 0 on cold start.
	RawRatio
)

// ListWeighting selects how the list encoder weights the entries of a list.
type ListWeighting int

const (
	// EqualWeight averages the entry probabilities.
	EqualWeight ListWeighting = iota
	// PerEntryShrinkage weights each entry by Weight(n, param) of its own
	// count before averaging.
	PerEntryShrinkage
	// ListShrinkage weights each entry by ListWeight(n, total, param), where
	// total sums the counts of every entry in the list.
	ListShrinkage
)

// ListUpdate selects when the list encoder folds the label into the
// statistics of a list's entries.
type ListUpdate int

const (
	// PerEntry reads and then updates each entry in list order. A value
	// repeated inside one list sees the updates of its earlier occurrences,
	// including the current label.
	PerEntry ListUpdate = iota
	// AfterList reads every entry of the list before updating any of them, so
	// no entry sees the current label.
	AfterList
)

var blendNames = map[BlendPolicy]string{
	ShrinkageBlend: "shrinkage",
	RawRatio:       "raw",
}

var weightingNames = map[ListWeighting]string{
	EqualWeight:       "equal",
	PerEntryShrinkage: "entry",
	ListShrinkage:     "list",
}

var updateNames = map[ListUpdate]string{
	PerEntry:  "entry",
	AfterList: "list",
}

func (p BlendPolicy) String() string {
	if s, ok := blendNames[p]; ok {
		return s
	}
	return fmt.Sprintf("BlendPolicy(%d)", int(p))
}

func (w ListWeighting) String() string {
	if s, ok := weightingNames[w]; ok {
		return s
	}
	return fmt.Sprintf("ListWeighting(%d)", int(w))
}

func (u ListUpdate) String() string {
	if s, ok := updateNames[u]; ok {
		return s
	}
	return fmt.Sprintf("ListUpdate(%d)", int(u))
}

// ParseBlendPolicy parses "shrinkage" or "raw".
func ParseBlendPolicy(s string) (BlendPolicy, error) {
	for p, name := range blendNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown blend policy %q", ErrInvalidParam, s)
}

// ParseListWeighting parses "equal", "entry" or "list".
func ParseListWeighting(s string) (ListWeighting, error) {
	for w, name := range weightingNames {
		if name == s {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown list weighting %q", ErrInvalidParam, s)
}

// ParseListUpdate parses "entry" or "list".
func ParseListUpdate(s string) (ListUpdate, error) {
	for u, name := range updateNames {
		if name == s {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown list update %q", ErrInvalidParam, s)
}

// Config holds encoder settings. The zero value of every field except Param
// is the default behavior.
type Config struct {
	// Param is the smoothing strength, > 0.
	Param float64
	// Blend is used by the scalar encoder.
	Blend BlendPolicy
	// Weighting and BlendPrior are used by the list encoder. With BlendPrior
	// the weight missing from the entries goes to the prior.
	Weighting  ListWeighting
	BlendPrior bool
	// Update is used by the list encoder.
	Update ListUpdate

	// StrictLabels rejects labels other than 0 and 1 with ErrInvalidLabel.
	StrictLabels bool
	// NewTable builds each slot's category table; nil means MapTable.
	NewTable TableFactory
}

// DefaultConfig returns the default configuration for the given smoothing strength.
func DefaultConfig(param float64) Config {
	return Config{Param: param}
}

func (c Config) validate(dim int) error {
	if dim < 0 {
		return fmt.Errorf("%w: dimensionality %d", ErrInvalidParam, dim)
	}
	if c.Param <= 0 || math.IsNaN(c.Param) || math.IsInf(c.Param, 0) {
		return fmt.Errorf("%w: smoothing param %v", ErrInvalidParam, c.Param)
	}
	if _, ok := blendNames[c.Blend]; !ok {
		return fmt.Errorf("%w: %v", ErrInvalidParam, c.Blend)
	}
	if _, ok := weightingNames[c.Weighting]; !ok {
		return fmt.Errorf("%w: %v", ErrInvalidParam, c.Weighting)
	}
	if _, ok := updateNames[c.Update]; !ok {
		return fmt.Errorf("%w: %v", ErrInvalidParam, c.Update)
	}
	return nil
}

func (c Config) newTables(dim int) ([]Table, error) {
	factory := c.NewTable
	if factory == nil {
		factory = MapTable
	}
	tables := make([]Table, dim)
	for i := range tables {
		t, err := factory()
		if err != nil {
			return nil, err
		}
		tables[i] = t
	}
	return tables, nil
}

func (c Config) checkLabel(label int) error {
	if c.StrictLabels && label != 0 && label != 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLabel, label)
	}
	return nil
}
