package algorithms

import "math"

// CosineSimilarity returns the directional alignment of two equal-length
// vectors in [-1, 1]. Absent, empty, mismatched or zero-magnitude input
// yields the neutral 0 so incomplete profiles are never rewarded or crash
// the scorer.
func CosineSimilarity(u, v []float64) float64 {
	if len(u) == 0 || len(v) == 0 || len(u) != len(v) {
		return 0
	}

	var dot, normU, normV float64
	for i := range u {
		dot += u[i] * v[i]
		normU += u[i] * u[i]
		normV += v[i] * v[i]
	}

	if normU == 0 || normV == 0 {
		return 0
	}

	return dot / (math.Sqrt(normU) * math.Sqrt(normV))
}
