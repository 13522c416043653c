package topology

import (
	"cadcalc/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodePairs(c *types.Circuit) []Pair {
	pairs := make([]Pair, len(c.Resistors))
	for i, r := range c.Resistors {
		pairs[i] = Pair{r.PositiveNode, r.NegativeNode}
	}
	return pairs
}

func TestBuildSeries(t *testing.T) {
	cases := []struct {
		values []float64
		pairs  []Pair
		source Pair
	}{
		{[]float64{10, 20, 30}, []Pair{{1, 2}, {2, 3}, {3, 4}}, Pair{1, 5}},
		{[]float64{1, 2, 3, 4}, []Pair{{1, 2}, {1, 2}, {2, 3}, {3, 4}}, Pair{1, 6}},
		{[]float64{1, 2, 3, 4, 5}, []Pair{{1, 2}, {1, 2}, {2, 3}, {2, 3}, {3, 4}}, Pair{1, 7}},
	}
	for _, tc := range cases {
		c, err := Build(types.Series, 12, tc.values)
		require.NoError(t, err)
		assert.Equal(t, types.Series, c.Type)
		assert.Equal(t, tc.pairs, nodePairs(c))
		assert.Equal(t, tc.source, Pair{c.Source.PositiveNode, c.Source.NegativeNode})
		assert.Equal(t, "DC", c.Source.Kind)
		assert.Equal(t, tc.values, c.Values())
	}
}

func TestBuildParallel(t *testing.T) {
	for count := types.MinResistors; count <= types.MaxResistors; count++ {
		values := make([]float64, count)
		for i := range values {
			values[i] = float64(10 * (i + 1))
		}
		c, err := Build(types.Parallel, 5, values)
		require.NoError(t, err)
		assert.Equal(t, Pair{1, 2}, Pair{c.Source.PositiveNode, c.Source.NegativeNode})
		for _, p := range nodePairs(c) {
			assert.Equal(t, Pair{1, 2}, p)
		}
	}
}

func TestBuildInvalid(t *testing.T) {
	_, err := Build(types.Series, 12, []float64{1, 2})
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = Build(types.Parallel, 12, []float64{1, 2, 3, 4, 5, 6})
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = Build(types.Series, 12, []float64{1, 0, 3})
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = Build(types.Series, -1, []float64{1, 2, 3})
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = Build(types.CircuitType(7), 12, []float64{1, 2, 3})
	assert.ErrorIs(t, err, types.ErrInvalidCircuitType)
}

func TestNodesTableIsCopied(t *testing.T) {
	pairs, _, err := Nodes(types.Series, 4)
	require.NoError(t, err)
	pairs[0] = Pair{9, 9}
	again, _, err := Nodes(types.Series, 4)
	require.NoError(t, err)
	assert.Equal(t, Pair{1, 2}, again[0])
}
