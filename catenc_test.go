package catenc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyhackingspace/catenc/encoder"
)

func TestPipelineTransform(t *testing.T) {
	p, err := New(Schema{Scalar: []string{"color"}, List: []string{"tags"}}, encoder.DefaultConfig(1.0))
	require.NoError(t, err)
	assert.Equal(t, []string{"color_te", "tags_te"}, p.Columns())

	got, err := p.Transform([]string{"red"}, [][]string{{"a", "b"}}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, got)

	got, err = p.Transform([]string{"red"}, [][]string{{"a"}}, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, got)

	got, err = p.Transform([]string{"blue"}, [][]string{{}}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0}, got)

	assert.Equal(t, int64(3), p.Rows())
	assert.InDelta(t, 2.0/3.0, p.Prior(), 1e-12)
	assert.Equal(t, []int{2, 2}, p.Cardinality())
	assert.Equal(t, encoder.DefaultConfig(1.0), p.Config())
}

func TestPipelineRejectsBadRowsWithoutSideEffects(t *testing.T) {
	p, err := New(Schema{Scalar: []string{"a", "b"}, List: []string{"c"}}, encoder.DefaultConfig(1.0))
	require.NoError(t, err)

	_, err = p.Transform([]string{"x", "y"}, nil, 1)
	assert.ErrorIs(t, err, encoder.ErrDimensionMismatch)
	_, err = p.Transform([]string{"x"}, [][]string{{"z"}}, 1)
	assert.ErrorIs(t, err, encoder.ErrDimensionMismatch)

	assert.Equal(t, int64(0), p.Rows())
	assert.Equal(t, []int{0, 0, 0}, p.Cardinality())
}

func TestPipelineStrictLabels(t *testing.T) {
	cfg := encoder.DefaultConfig(1.0)
	cfg.StrictLabels = true
	p, err := New(Schema{Scalar: []string{"a"}, List: []string{"b"}}, cfg)
	require.NoError(t, err)
	_, err = p.Transform([]string{"x"}, [][]string{{"y"}}, 7)
	assert.ErrorIs(t, err, encoder.ErrInvalidLabel)
	assert.Equal(t, []int{0, 0}, p.Cardinality())
}

func TestNewPipelineErrors(t *testing.T) {
	_, err := New(Schema{}, encoder.DefaultConfig(1))
	assert.Error(t, err)

	_, err = New(Schema{Scalar: []string{"a"}, List: []string{"a"}}, encoder.DefaultConfig(1))
	assert.ErrorContains(t, err, "duplicate")

	_, err = New(Schema{Scalar: []string{"a"}}, encoder.DefaultConfig(0))
	assert.ErrorIs(t, err, encoder.ErrInvalidParam)
}

func TestAUC(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		labels []bool
		want   float64
	}{
		{"perfect", []float64{0.1, 0.2, 0.8, 0.9}, []bool{false, false, true, true}, 1},
		{"inverted", []float64{0.9, 0.8, 0.2, 0.1}, []bool{false, false, true, true}, 0},
		{"all tied", []float64{0.5, 0.5, 0.5, 0.5}, []bool{false, true, false, true}, 0.5},
		{"mixed", []float64{0.1, 0.4, 0.35, 0.8}, []bool{false, false, true, true}, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AUC(tt.scores, tt.labels), 1e-12)
		})
	}
	assert.True(t, math.IsNaN(AUC([]float64{0.1, 0.2}, []bool{true, true})))
}

func TestLogLoss(t *testing.T) {
	got := LogLoss([]float64{0.5, 0.5}, []bool{true, false})
	assert.InDelta(t, math.Log(2), got, 1e-12)

	// Clipping keeps confident mistakes finite.
	got = LogLoss([]float64{0}, []bool{true})
	assert.False(t, math.IsInf(got, 0))
	assert.True(t, math.IsNaN(LogLoss(nil, nil)))
}

func TestEvaluation(t *testing.T) {
	ev := NewEvaluation([]string{"a_te"})
	require.NoError(t, ev.Add([]float64{0.2}, 0))
	require.NoError(t, ev.Add([]float64{0.7}, 1))
	require.NoError(t, ev.Add([]float64{0.6}, 2))
	assert.Error(t, ev.Add([]float64{0.1, 0.2}, 1))
	assert.Equal(t, 3, ev.Len())

	reports := ev.Report()
	require.Len(t, reports, 1)
	assert.Equal(t, "a_te", reports[0].Column)
	assert.Equal(t, 1, reports[0].Positives)
	assert.Equal(t, 2, reports[0].Negatives)
	assert.InDelta(t, 1.0, reports[0].AUC, 1e-12)
}
