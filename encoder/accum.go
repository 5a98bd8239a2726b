// Package encoder implements online target-statistic encoding of categorical
// features.
//
// Every Transform call reads the statistics accumulated from earlier rows,
// emits one score per feature slot and only then folds the row's own label
// into those statistics, so a row never sees its own label. The one exception
// is a value repeated inside a single list under the default PerEntry update
// order; see ListUpdate.
//
//	enc, _ := encoder.NewScalar(2, 10)
//	for _, r := range rows {
//	    scores, err := enc.Transform(r.Values, r.Label)
//	    ...
//	}
//
// Encoders are not safe for concurrent use.
package encoder

// Accumulator counts observations and the subset of them with a positive label.
type Accumulator struct {
	Total    int64 `json:"total"`
	Positive int64 `json:"positive"`
}

// Probability returns Positive/Total, or 0 when nothing has been observed.
func (a Accumulator) Probability() float64 {
	if a.Total == 0 {
		return 0.0
	}
	return float64(a.Positive) / float64(a.Total)
}

// Increment records one observation. Only a label of exactly 1 is positive.
func (a *Accumulator) Increment(label int) {
	a.Total++
	if label == 1 {
		a.Positive++
	}
}
