package sparse

import "github.com/katalvlaran/pc3-recommend/internal/errs"

// Transpose returns a Matrix whose major dimension is src's minor
// dimension and vice versa, preserving every stored value. Destination
// rows come out with Ind already ascending because source rows are
// consumed in ascending major order — no post-sort is required.
// Grounded on original_source/src/sparse_comp.c:comp_transpose.
func Transpose(src *Matrix) (*Matrix, error) {
	const op = "sparse.Transpose"
	if src == nil {
		return nil, errs.New(op, errs.KindInvalid)
	}

	dst := &Matrix{MajorDim: src.MinorDim, MinorDim: src.MajorDim}
	nnz := src.NNZ()

	dst.Ptr = make([]int, dst.MajorDim+1)
	for _, j := range src.Ind {
		dst.Ptr[j+1]++
	}
	for i := 0; i < dst.MajorDim; i++ {
		dst.Ptr[i+1] += dst.Ptr[i]
	}

	dst.Ind = make([]int, nnz)
	dst.Values = make([]float64, nnz)

	cursor := make([]int, dst.MajorDim)
	copy(cursor, dst.Ptr[:dst.MajorDim])

	for i := 0; i < src.MajorDim; i++ {
		for k := src.Ptr[i]; k < src.Ptr[i+1]; k++ {
			j := src.Ind[k]
			pos := cursor[j]
			cursor[j]++
			dst.Ind[pos] = i
			dst.Values[pos] = src.Values[k]
		}
	}

	return dst, nil
}
