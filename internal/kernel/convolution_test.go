package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticework/tensorkernel/internal/tensor"
)

func TestConvOutputSize(t *testing.T) {
	assert.Equal(t, 2, ConvOutputSize(4, 3, 1))
	assert.Equal(t, 3, ConvOutputSize(6, 2, 2))
}

func TestIm2Col(t *testing.T) {
	// 1x1x3x3 image, 2x2 kernel, stride 1 -> outH=outW=2, col shape [1*2*2, 1*2*2] = [4,4]
	data := make([]float64, 9)
	for i := range data {
		data[i] = float64(i + 1)
	}
	img, err := tensor.FromSlice(data, tensor.Shape{1, 1, 3, 3})
	require.NoError(t, err)

	col, err := Im2Col(img, 2, 2, 1, 1)
	require.NoError(t, err)
	assert.True(t, col.Shape().Equal(tensor.Shape{4, 4}))

	// first output window (top-left patch) is column 0: [1,2,4,5]
	assert.Equal(t, float64(1), col.Data()[0*4+0])
	assert.Equal(t, float64(2), col.Data()[1*4+0])
	assert.Equal(t, float64(4), col.Data()[2*4+0])
	assert.Equal(t, float64(5), col.Data()[3*4+0])
}

func TestCol2ImAdjointSumsOverlaps(t *testing.T) {
	data := make([]float64, 9)
	for i := range data {
		data[i] = 1
	}
	img, err := tensor.FromSlice(data, tensor.Shape{1, 1, 3, 3})
	require.NoError(t, err)

	col, err := Im2Col(img, 2, 2, 1, 1)
	require.NoError(t, err)

	back, err := Col2Im(col, tensor.Shape{1, 1, 3, 3}, 2, 2, 1, 1)
	require.NoError(t, err)

	// The center cell participates in all 4 patches; corners in exactly 1.
	assert.Equal(t, float64(4), back.Data()[4]) // center, index (1,1)
	assert.Equal(t, float64(1), back.Data()[0]) // corner, index (0,0)
}

func TestIm2ColRejectsBadRank(t *testing.T) {
	img, err := tensor.New(tensor.Shape{3, 3})
	require.NoError(t, err)
	_, err = Im2Col(img, 2, 2, 1, 1)
	assert.Error(t, err)
}
