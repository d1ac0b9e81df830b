package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspose_Scenario(t *testing.T) {
	// Scenario 2 from the spec.
	src := &Matrix{
		MajorDim: 2, MinorDim: 3,
		Ptr:    []int{0, 2, 3},
		Ind:    []int{0, 2, 1},
		Values: []float64{1, 2, 3},
	}

	dst, err := Transpose(src)
	require.NoError(t, err)

	assert.Equal(t, 3, dst.MajorDim)
	assert.Equal(t, 2, dst.MinorDim)
	assert.Equal(t, []int{0, 1, 2, 3}, dst.Ptr)
	assert.Equal(t, []int{0, 1, 0}, dst.Ind)
	assert.Equal(t, []float64{1, 3, 2}, dst.Values)
}

func TestTranspose_DoubleRoundTrip(t *testing.T) {
	src, err := BuildFromCOO(3, 4,
		[]int{0, 0, 1, 2, 2},
		[]int{3, 0, 1, 0, 2},
		[]float64{1, 2, 3, 4, 5},
	)
	require.NoError(t, err)

	once, err := Transpose(src)
	require.NoError(t, err)
	twice, err := Transpose(once)
	require.NoError(t, err)

	assert.Equal(t, src.MajorDim, twice.MajorDim)
	assert.Equal(t, src.MinorDim, twice.MinorDim)
	assert.Equal(t, src.Ptr, twice.Ptr)
	assert.Equal(t, src.Ind, twice.Ind)
	assert.Equal(t, src.Values, twice.Values)
}

func TestTranspose_NilSource(t *testing.T) {
	_, err := Transpose(nil)
	require.Error(t, err)
}
