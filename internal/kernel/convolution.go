package kernel

import "github.com/latticework/tensorkernel/internal/tensor"

// ConvOutputSize computes the no-padding output extent for a convolution or
// pooling window: out = (in - kernel)/stride + 1.
func ConvOutputSize(in, kernel, stride int) int {
	return (in-kernel)/stride + 1
}

// Im2Col unfolds each kernel-sized patch of a [N, C, H, W] image into a
// column of length C*kH*kW, producing a matrix of shape
// [C*kH*kW, N*outH*outW] so that convolution reduces to a single matmul.
func Im2Col(image *tensor.Tensor, kh, kw, strideH, strideW int) (*tensor.Tensor, error) {
	shape := image.Shape()
	if len(shape) != 4 {
		return nil, tensor.RankErrorf("im2col: image must be rank 4 [N,C,H,W], got rank %d", len(shape))
	}
	n, c, h, w := shape[0], shape[1], shape[2], shape[3]
	outH := ConvOutputSize(h, kh, strideH)
	outW := ConvOutputSize(w, kw, strideW)
	if outH <= 0 || outW <= 0 {
		return nil, tensor.ShapeErrorf("im2col: kernel %dx%d with stride %d,%d too large for input %dx%d", kh, kw, strideH, strideW, h, w)
	}

	colRows := c * kh * kw
	colCols := n * outH * outW
	col, err := tensor.New(tensor.Shape{colRows, colCols})
	if err != nil {
		return nil, err
	}

	img := image.Data()
	imgStrides := image.Strides()
	dst := col.Data()
	dstStrides := col.Strides()

	for ni := 0; ni < n; ni++ {
		for oh := 0; oh < outH; oh++ {
			for ow := 0; ow < outW; ow++ {
				colIdx := (ni*outH+oh)*outW + ow
				row := 0
				for ci := 0; ci < c; ci++ {
					for ky := 0; ky < kh; ky++ {
						for kx := 0; kx < kw; kx++ {
							srcOffset := ni*imgStrides[0] + ci*imgStrides[1] +
								(oh*strideH+ky)*imgStrides[2] + (ow*strideW+kx)*imgStrides[3]
							dst[row*dstStrides[0]+colIdx*dstStrides[1]] = img[srcOffset]
							row++
						}
					}
				}
			}
		}
	}
	return col, nil
}

// Col2Im is the adjoint of Im2Col: it accumulates column values back into
// their source positions in a [N, C, H, W]-shaped tensor, summing at every
// overlap.
func Col2Im(col *tensor.Tensor, outShape tensor.Shape, kh, kw, strideH, strideW int) (*tensor.Tensor, error) {
	if len(outShape) != 4 {
		return nil, tensor.RankErrorf("col2im: output shape must be rank 4 [N,C,H,W], got rank %d", len(outShape))
	}
	n, c, h, w := outShape[0], outShape[1], outShape[2], outShape[3]
	outH := ConvOutputSize(h, kh, strideH)
	outW := ConvOutputSize(w, kw, strideW)

	image, err := tensor.New(outShape)
	if err != nil {
		return nil, err
	}

	src := col.Data()
	srcStrides := col.Strides()
	dst := image.Data()
	dstStrides := image.Strides()

	for ni := 0; ni < n; ni++ {
		for oh := 0; oh < outH; oh++ {
			for ow := 0; ow < outW; ow++ {
				colIdx := (ni*outH+oh)*outW + ow
				row := 0
				for ci := 0; ci < c; ci++ {
					for ky := 0; ky < kh; ky++ {
						for kx := 0; kx < kw; kx++ {
							dstOffset := ni*dstStrides[0] + ci*dstStrides[1] +
								(oh*strideH+ky)*dstStrides[2] + (ow*strideW+kx)*dstStrides[3]
							dst[dstOffset] += src[row*srcStrides[0]+colIdx*srcStrides[1]]
							row++
						}
					}
				}
			}
		}
	}
	return image, nil
}
