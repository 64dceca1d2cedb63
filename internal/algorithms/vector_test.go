package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("self similarity is 1", func(t *testing.T) {
		u := []float64{0.3, -1.2, 4.5, 0.01}
		assert.InDelta(t, 1.0, CosineSimilarity(u, u), 1e-9)
	})

	t.Run("opposite vectors are -1", func(t *testing.T) {
		u := []float64{1, 2, 3}
		v := []float64{-1, -2, -3}
		assert.InDelta(t, -1.0, CosineSimilarity(u, v), 1e-9)
	})

	t.Run("orthogonal vectors are 0", func(t *testing.T) {
		u := []float64{1, 0}
		v := []float64{0, 1}
		assert.InDelta(t, 0.0, CosineSimilarity(u, v), 1e-9)
	})

	t.Run("zero vector falls back to 0, not NaN", func(t *testing.T) {
		zero := []float64{0, 0, 0}
		v := []float64{1, 2, 3}
		got := CosineSimilarity(zero, v)
		assert.Equal(t, 0.0, got)
	})

	t.Run("nil and empty input fall back to 0", func(t *testing.T) {
		assert.Equal(t, 0.0, CosineSimilarity(nil, []float64{1}))
		assert.Equal(t, 0.0, CosineSimilarity([]float64{1}, nil))
		assert.Equal(t, 0.0, CosineSimilarity([]float64{}, []float64{}))
	})

	t.Run("length mismatch falls back to 0", func(t *testing.T) {
		assert.Equal(t, 0.0, CosineSimilarity([]float64{1, 2}, []float64{1, 2, 3}))
	})

	t.Run("magnitude independence", func(t *testing.T) {
		u := []float64{1, 2, 3}
		scaled := []float64{10, 20, 30}
		assert.InDelta(t, 1.0, CosineSimilarity(u, scaled), 1e-9)
	})
}
