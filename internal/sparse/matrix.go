// Package sparse implements the compressed sparse matrix engine: COO to
// compressed row-major conversion with duplicate coalescing and
// explicit-zero elimination, plus transposition. It is grounded on
// original_source/src/sparse_comp.c and src/csr.c, generalized from a
// fixed csr_mat wrapper to a dimension-agnostic major/minor Matrix.
package sparse

import (
	"sort"

	"github.com/katalvlaran/pc3-recommend/internal/errs"
)

// Matrix is a row-major (or, after Transpose, column-major) compressed
// sparse representation. Ptr has length MajorDim+1; for row i the slice
// Ind[Ptr[i]:Ptr[i+1]] is strictly ascending and parallel to
// Values[Ptr[i]:Ptr[i+1]]. No stored Value is exactly zero once
// BuildFromCOO/Transpose returns (mean-centering is the one stage
// permitted to violate that afterward — see similarity.MeanCenter).
type Matrix struct {
	MajorDim int
	MinorDim int

	Ptr    []int
	Ind    []int
	Values []float64
}

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int {
	if m == nil || len(m.Ptr) == 0 {
		return 0
	}
	return m.Ptr[m.MajorDim]
}

// Row returns the stored (index, value) slices for major row i.
func (m *Matrix) Row(i int) ([]int, []float64) {
	start, end := m.Ptr[i], m.Ptr[i+1]
	return m.Ind[start:end], m.Values[start:end]
}

type entry struct {
	minor int
	value float64
}

// BuildFromCOO constructs a Matrix from an unordered coordinate triplet
// stream: parallel major/minor/value slices of length nval. Duplicate
// (major, minor) pairs are coalesced by summing their values; entries
// whose value is (or becomes, after coalescing) exactly zero are
// dropped. Returns errs.KindInvalid if any index is out of bounds.
func BuildFromCOO(majorDim, minorDim int, major, minor []int, values []float64) (*Matrix, error) {
	const op = "sparse.BuildFromCOO"
	if len(major) != len(minor) || len(major) != len(values) {
		return nil, errs.New(op, errs.KindInvalid)
	}

	ptr := make([]int, majorDim+1)
	for i := range major {
		if major[i] < 0 || major[i] >= majorDim || minor[i] < 0 || minor[i] >= minorDim {
			return nil, errs.New(op, errs.KindInvalid)
		}
		if values[i] != 0 {
			ptr[major[i]+1]++
		}
	}
	for i := 0; i < majorDim; i++ {
		ptr[i+1] += ptr[i]
	}

	nnz := ptr[majorDim]
	ind := make([]int, nnz)
	vals := make([]float64, nnz)

	cursor := make([]int, majorDim)
	copy(cursor, ptr[:majorDim])
	for i := range major {
		if values[i] == 0 {
			continue
		}
		pos := cursor[major[i]]
		cursor[major[i]]++
		ind[pos] = minor[i]
		vals[pos] = values[i]
	}

	mat := &Matrix{MajorDim: majorDim, MinorDim: minorDim, Ptr: ptr, Ind: ind, Values: vals}
	canonicalize(mat)
	return mat, nil
}

// canonicalize sorts each row's entries by minor index ascending, folds
// runs sharing a minor index by summing their values, and drops entries
// whose summed value equals zero, compacting survivors in place.
func canonicalize(mat *Matrix) {
	writePos := 0
	var scratch []entry

	for major := 0; major < mat.MajorDim; major++ {
		start, end := mat.Ptr[major], mat.Ptr[major+1]
		length := end - start
		mat.Ptr[major] = writePos

		if length == 0 {
			continue
		}

		if cap(scratch) < length {
			scratch = make([]entry, length)
		}
		scratch = scratch[:length]
		for i := 0; i < length; i++ {
			scratch[i] = entry{minor: mat.Ind[start+i], value: mat.Values[start+i]}
		}
		sort.SliceStable(scratch, func(a, b int) bool { return scratch[a].minor < scratch[b].minor })

		outLen := 1
		for i := 1; i < length; i++ {
			if scratch[i].minor == scratch[outLen-1].minor {
				scratch[outLen-1].value += scratch[i].value
			} else {
				scratch[outLen] = scratch[i]
				outLen++
			}
		}

		for i := 0; i < outLen; i++ {
			if scratch[i].value == 0 {
				continue
			}
			mat.Ind[writePos] = scratch[i].minor
			mat.Values[writePos] = scratch[i].value
			writePos++
		}
	}

	mat.Ptr[mat.MajorDim] = writePos
	mat.Ind = mat.Ind[:writePos]
	mat.Values = mat.Values[:writePos]
}
