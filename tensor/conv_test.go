package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConv2DOutputShape(t *testing.T) {
	data := make([]float64, 1*1*4*4)
	for i := range data {
		data[i] = float64(i + 1)
	}
	image, err := FromSlice(data, Shape{1, 1, 4, 4})
	require.NoError(t, err)

	kernelData := []float64{1, 0, 0, 1} // 1 out channel, 1 in channel, 2x2
	kern, err := FromSlice(kernelData, Shape{1, 1, 2, 2})
	require.NoError(t, err)

	out, err := Conv2D(image, kern, 1, 1)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(Shape{1, 1, 3, 3}))
}

func TestMaxPool2DAndScatterRoundTrip(t *testing.T) {
	data := []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	image, err := FromSlice(data, Shape{1, 1, 4, 4})
	require.NoError(t, err)

	pooled, offsets, err := MaxPool2D(image, 2, 2, 2, 2)
	require.NoError(t, err)
	assert.True(t, pooled.Shape().Equal(Shape{1, 1, 2, 2}))
	assert.Equal(t, []float64{6, 8, 14, 16}, pooled.Data())

	ones, err := Full(pooled.Shape(), 1)
	require.NoError(t, err)
	scattered, err := MaxPool2DScatter(ones, offsets, image.Shape())
	require.NoError(t, err)

	sum := 0.0
	for _, v := range scattered.Data() {
		sum += v
	}
	assert.Equal(t, float64(len(pooled.Data())), sum)

	// Each unit value lands exactly on the recorded max position.
	for _, off := range offsets.Data() {
		assert.Equal(t, 1.0, scattered.Data()[int(off)])
	}
}

func TestMaxPool2DRejectsBadRank(t *testing.T) {
	x, err := New(Shape{4, 4})
	require.NoError(t, err)
	_, _, err = MaxPool2D(x, 2, 2, 2, 2)
	assert.Error(t, err)
}
