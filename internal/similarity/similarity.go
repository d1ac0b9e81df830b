// Package similarity implements mean centering, row norms, and cosine
// similarity over the compressed sparse matrix. Grounded on
// original_source/src/main.c's mean, mean_centering, get_norms, and
// cosine_sim.
package similarity

import (
	"math"

	"github.com/katalvlaran/pc3-recommend/internal/sparse"
)

// MeanCenter returns a matrix sharing src's Ptr and Ind but with each
// row's stored values shifted by the row's own mean (computed over
// stored entries only — zeros are never averaged in, matching §9's
// fixed design decision). The result may contain stored zeros; it is
// not re-canonicalized, so I3 may be temporarily violated while I1, I2,
// I4 still hold.
func MeanCenter(src *sparse.Matrix) *sparse.Matrix {
	dst := &sparse.Matrix{
		MajorDim: src.MajorDim,
		MinorDim: src.MinorDim,
		Ptr:      append([]int(nil), src.Ptr...),
		Ind:      append([]int(nil), src.Ind...),
		Values:   make([]float64, len(src.Values)),
	}

	for row := 0; row < src.MajorDim; row++ {
		start, end := src.Ptr[row], src.Ptr[row+1]
		mu := rowMean(src.Values[start:end])
		for i := start; i < end; i++ {
			dst.Values[i] = src.Values[i] - mu
		}
	}

	return dst
}

func rowMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// RowNorms returns the L2 norm of each row of mat, 0 for an all-zero
// (or empty) row.
func RowNorms(mat *sparse.Matrix) []float64 {
	norms := make([]float64, mat.MajorDim)
	for row := 0; row < mat.MajorDim; row++ {
		_, values := mat.Row(row)
		var sumSq float64
		for _, v := range values {
			sumSq += v * v
		}
		if sumSq > 0 {
			norms[row] = math.Sqrt(sumSq)
		}
	}
	return norms
}

// CosineSim returns the cosine similarity between rows a and b of mat,
// given their precomputed norms. Returns 0 if either norm is zero. The
// dot product is computed by merging the two sorted Ind slices in
// O(|a|+|b|).
func CosineSim(mat *sparse.Matrix, norms []float64, a, b int) float64 {
	if norms[a] == 0 || norms[b] == 0 {
		return 0
	}

	aInd, aVal := mat.Row(a)
	bInd, bVal := mat.Row(b)

	i, j := 0, 0
	var dot float64
	for i < len(aInd) && j < len(bInd) {
		switch {
		case aInd[i] < bInd[j]:
			i++
		case aInd[i] > bInd[j]:
			j++
		default:
			dot += aVal[i] * bVal[j]
			i++
			j++
		}
	}

	return dot / (norms[a] * norms[b])
}
