package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulatorProbability(t *testing.T) {
	var acc Accumulator
	assert.Equal(t, 0.0, acc.Probability())

	acc.Increment(1)
	acc.Increment(0)
	assert.Equal(t, 0.5, acc.Probability())

	enc, err := NewScalar(1, 1.0)
	assert.NoError(t, err)
	_, err = enc.Transform([]string{"a"}, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, enc.Prior().Probability())
	assert.Equal(t, 0.25, Accumulator{Total: 4, Positive: 1}.Probability())
}

func TestAccumulatorOnlyExactOneIsPositive(t *testing.T) {
	var acc Accumulator
	for _, label := range []int{1, 0, 2, -1, 1, 100} {
		acc.Increment(label)
	}
	assert.Equal(t, int64(6), acc.Total)
	assert.Equal(t, int64(2), acc.Positive)
}

func TestWeight(t *testing.T) {
	for _, param := range []float64{0.01, 1, 10, 1000} {
		assert.Equal(t, 0.0, Weight(0, param), "param=%v", param)
		prev := Weight(0, param)
		for n := int64(1); n < 50; n++ {
			w := Weight(n, param)
			assert.Greater(t, w, prev, "n=%d param=%v", n, param)
			assert.Less(t, w, 1.0)
			prev = w
		}
	}
	assert.Equal(t, 0.5, Weight(1, 1))
	assert.Less(t, Weight(5, 10), Weight(5, 1), "larger param smooths more")
	assert.InDelta(t, 1.0, Weight(1<<40, 1), 1e-9)
}

func TestListWeight(t *testing.T) {
	assert.Equal(t, 0.0, ListWeight(0, 10, 1))
	assert.InDelta(t, 0.4, ListWeight(2, 4, 1), 1e-12)
	assert.Less(t, ListWeight(2, 20, 1), ListWeight(2, 4, 1))
}
