package catenc

import (
	"fmt"
	"math"
	"sort"
)

// logLossEps clips scores away from 0 and 1 before taking logs.
const logLossEps = 1e-15

// ColumnReport holds the quality of one output column's online scores.
type ColumnReport struct {
	Column  string
	LogLoss float64
	// AUC is NaN when only one class has been seen.
	AUC       float64
	Positives int
	Negatives int
}

// Evaluation collects online scores with their labels. Because each score is
// produced before its own label is seen, the metrics are out-of-sample.
type Evaluation struct {
	columns []string
	scores  [][]float64
	labels  []bool
}

// NewEvaluation creates an Evaluation for the given output columns.
func NewEvaluation(columns []string) *Evaluation {
	return &Evaluation{
		columns: columns,
		scores:  make([][]float64, len(columns)),
	}
}

// Add records one row of scores. Only a label of exactly 1 is positive.
func (e *Evaluation) Add(scores []float64, label int) error {
	if len(scores) != len(e.columns) {
		return fmt.Errorf("catenc: evaluation expects %d scores, got %d", len(e.columns), len(scores))
	}
	for i, s := range scores {
		e.scores[i] = append(e.scores[i], s)
	}
	e.labels = append(e.labels, label == 1)
	return nil
}

// Len returns the number of rows recorded.
func (e *Evaluation) Len() int {
	return len(e.labels)
}

// Report computes per-column metrics.
func (e *Evaluation) Report() []ColumnReport {
	pos := 0
	for _, l := range e.labels {
		if l {
			pos++
		}
	}
	reports := make([]ColumnReport, len(e.columns))
	for i, col := range e.columns {
		reports[i] = ColumnReport{
			Column:    col,
			LogLoss:   LogLoss(e.scores[i], e.labels),
			AUC:       AUC(e.scores[i], e.labels),
			Positives: pos,
			Negatives: len(e.labels) - pos,
		}
	}
	return reports
}

// LogLoss returns the mean binary cross-entropy of scores against labels.
// It returns NaN for empty input.
func LogLoss(scores []float64, labels []bool) float64 {
	if len(scores) == 0 {
		return math.NaN()
	}
	var sum float64
	for i, s := range scores {
		s = math.Min(math.Max(s, logLossEps), 1-logLossEps)
		if labels[i] {
			sum -= math.Log(s)
		} else {
			sum -= math.Log(1 - s)
		}
	}
	return sum / float64(len(scores))
}

// AUC returns the area under the ROC curve, counting ties as one half
// (Mann-Whitney U). It returns NaN unless both classes are present.
func AUC(scores []float64, labels []bool) float64 {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] < scores[idx[b]]
	})

	var pos, neg float64
	var rankSum float64
	for start := 0; start < len(idx); {
		end := start
		for end < len(idx) && scores[idx[end]] == scores[idx[start]] {
			end++
		}
		// Average 1-based rank of the tie group.
		rank := float64(start+end+1) / 2
		for _, j := range idx[start:end] {
			if labels[j] {
				pos++
				rankSum += rank
			} else {
				neg++
			}
		}
		start = end
	}
	if pos == 0 || neg == 0 {
		return math.NaN()
	}
	return (rankSum - pos*(pos+1)/2) / (pos * neg)
}
