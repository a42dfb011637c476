package vectorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	a := Vector{Indices: []int{0, 2}, Values: []float64{1, 1}}
	b := Vector{Indices: []int{0, 2}, Values: []float64{2, 2}}
	c := Vector{Indices: []int{1}, Values: []float64{3}}

	assert.InDelta(t, 1.0, Cosine(a, b), 1e-9, "parallel vectors")
	assert.InDelta(t, 0.0, Cosine(a, c), 1e-9, "orthogonal vectors")
}

func TestCosineZeroNorm(t *testing.T) {
	zero := Vector{}
	v := Vector{Indices: []int{0}, Values: []float64{1}}

	assert.Equal(t, 0.0, Cosine(zero, v))
	assert.Equal(t, 0.0, Cosine(v, zero))
	assert.Equal(t, 0.0, Cosine(zero, zero))
}

func TestDotSkipsDisjointIndices(t *testing.T) {
	a := Vector{Indices: []int{1, 3, 5}, Values: []float64{1, 2, 3}}
	b := Vector{Indices: []int{0, 3, 6}, Values: []float64{4, 5, 6}}

	assert.InDelta(t, 10.0, Dot(a, b), 1e-9)
}

func TestTopKOrderingAndThreshold(t *testing.T) {
	query := Vector{Indices: []int{0}, Values: []float64{1}}
	rows := []Vector{
		{Indices: []int{0, 1}, Values: []float64{0.5, 0.8}},  // ~0.53
		{Indices: []int{1}, Values: []float64{1}},            // 0
		{Indices: []int{0}, Values: []float64{1}},            // 1
		{Indices: []int{0, 1}, Values: []float64{0.1, 1.0}}, // ~0.0995 - below threshold
	}

	hits := TopK(query, rows, 10, 0.1)
	require.Len(t, hits, 2)
	assert.Equal(t, 2, hits[0].Row)
	assert.Equal(t, 0, hits[1].Row)
	for _, h := range hits {
		assert.Greater(t, h.Score, 0.1)
	}
}

func TestTopKLimitsResults(t *testing.T) {
	query := Vector{Indices: []int{0}, Values: []float64{1}}
	rows := make([]Vector, 10)
	for i := range rows {
		rows[i] = Vector{Indices: []int{0}, Values: []float64{1}}
	}

	hits := TopK(query, rows, 3, 0.1)
	require.Len(t, hits, 3)

	// Equal scores keep row order.
	assert.Equal(t, 0, hits[0].Row)
	assert.Equal(t, 1, hits[1].Row)
	assert.Equal(t, 2, hits[2].Row)
}

func TestTopKEmptyCorpus(t *testing.T) {
	query := Vector{Indices: []int{0}, Values: []float64{1}}

	assert.Empty(t, TopK(query, nil, 5, 0.1))
	assert.Empty(t, TopK(query, []Vector{}, 5, 0.1))
	assert.Empty(t, TopK(query, []Vector{{Indices: []int{0}, Values: []float64{1}}}, 0, 0.1))
}

func TestSimilaritiesOnePerRow(t *testing.T) {
	query := Vector{Indices: []int{0}, Values: []float64{1}}
	rows := []Vector{
		{Indices: []int{0}, Values: []float64{1}},
		{},
		{Indices: []int{1}, Values: []float64{1}},
	}

	scores := Similarities(query, rows)
	require.Len(t, scores, 3)
	assert.InDelta(t, 1.0, scores[0], 1e-9)
	assert.Equal(t, 0.0, scores[1])
	assert.Equal(t, 0.0, scores[2])
}
