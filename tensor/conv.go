package tensor

import (
	"math"

	"github.com/latticework/tensorkernel/internal/kernel"
	itensor "github.com/latticework/tensorkernel/internal/tensor"
)

// Conv2D convolves a [N,C,H,W] image with a [K,C,kH,kW] kernel (stride,
// no padding), returning a [N,K,outH,outW] result. It is composed as
// matmul(kernelReshaped, im2col(image)) followed by reshape and transpose:
// im2col turns the convolution into a single matmul.
func Conv2D(image, kern *Tensor, strideH, strideW int) (*Tensor, error) {
	imgShape := image.Shape()
	if len(imgShape) != 4 {
		return nil, itensor.RankErrorf("conv2d: image must be rank 4 [N,C,H,W], got rank %d", len(imgShape))
	}
	kShape := kern.Shape()
	if len(kShape) != 4 {
		return nil, itensor.RankErrorf("conv2d: kernel must be rank 4 [K,C,kH,kW], got rank %d", len(kShape))
	}
	n, c := imgShape[0], imgShape[1]
	k, kc, kh, kw := kShape[0], kShape[1], kShape[2], kShape[3]
	if kc != c {
		return nil, itensor.ShapeErrorf("conv2d: kernel channel count %d != image channel count %d", kc, c)
	}

	col, err := kernel.Im2Col(image, kh, kw, strideH, strideW)
	if err != nil {
		return nil, err
	}
	outH := kernel.ConvOutputSize(imgShape[2], kh, strideH)
	outW := kernel.ConvOutputSize(imgShape[3], kw, strideW)

	kernMat, err := kern.Reshape(itensor.Shape{k, c * kh * kw})
	if err != nil {
		return nil, err
	}

	prod, err := MatMul(kernMat, col, false, false) // [k, n*outH*outW]
	if err != nil {
		return nil, err
	}
	reshaped, err := prod.Reshape(itensor.Shape{k, n, outH, outW})
	if err != nil {
		return nil, err
	}
	return reshaped.Transpose([]int{1, 0, 2, 3})
}

// MaxPool2D applies 2-D max pooling to a [N,C,H,W] tensor, returning the
// pooled [N,C,outH,outW] result together with a same-shaped tensor of flat
// buffer offsets recording which input element won each window: the
// bookkeeping MaxPool2DScatter needs to route values back. This scans
// windows directly rather than going through the generic kernel families,
// since overlapping windows aren't expressible as a single shape/stride
// view, so there is no generic walker to reuse here.
func MaxPool2D(t *Tensor, kh, kw, strideH, strideW int) (pooled, offsets *Tensor, err error) {
	shape := t.Shape()
	if len(shape) != 4 {
		return nil, nil, itensor.RankErrorf("maxpool2d: input must be rank 4 [N,C,H,W], got rank %d", len(shape))
	}
	n, c, h, w := shape[0], shape[1], shape[2], shape[3]
	outH := kernel.ConvOutputSize(h, kh, strideH)
	outW := kernel.ConvOutputSize(w, kw, strideW)
	if outH <= 0 || outW <= 0 {
		return nil, nil, itensor.ShapeErrorf("maxpool2d: window %dx%d stride %d,%d too large for input %dx%d", kh, kw, strideH, strideW, h, w)
	}

	pooled, err = itensor.New(itensor.Shape{n, c, outH, outW})
	if err != nil {
		return nil, nil, err
	}
	offsets, err = itensor.New(itensor.Shape{n, c, outH, outW})
	if err != nil {
		return nil, nil, err
	}

	strides := t.Strides()
	data := t.Data()
	pd := pooled.Data()
	pdStrides := pooled.Strides()
	od := offsets.Data()

	for ni := 0; ni < n; ni++ {
		for ci := 0; ci < c; ci++ {
			for oh := 0; oh < outH; oh++ {
				hStart := oh * strideH
				for ow := 0; ow < outW; ow++ {
					wStart := ow * strideW

					maxVal := math.Inf(-1)
					maxOff := 0
					for ky := 0; ky < kh; ky++ {
						for kx := 0; kx < kw; kx++ {
							off := ni*strides[0] + ci*strides[1] + (hStart+ky)*strides[2] + (wStart+kx)*strides[3]
							if v := data[off]; v > maxVal {
								maxVal = v
								maxOff = off
							}
						}
					}

					dstIdx := ni*pdStrides[0] + ci*pdStrides[1] + oh*pdStrides[2] + ow*pdStrides[3]
					pd[dstIdx] = maxVal
					od[dstIdx] = float64(maxOff)
				}
			}
		}
	}
	return pooled, offsets, nil
}

// MaxPool2DScatter routes grad (same shape as a MaxPool2D result) back into
// an inputShape-shaped tensor using the offsets MaxPool2D recorded,
// accumulating at every position so overlapping pooling windows sum their
// contributions: the adjoint of the forward max selection.
func MaxPool2DScatter(grad, offsets *Tensor, inputShape Shape) (*Tensor, error) {
	if !grad.Shape().Equal(offsets.Shape()) {
		return nil, itensor.ShapeErrorf("maxpool2dScatter: grad shape %v != offsets shape %v", grad.Shape(), offsets.Shape())
	}
	dst, err := itensor.New(inputShape)
	if err != nil {
		return nil, err
	}

	gData := grad.Data()
	oData := offsets.Data()
	dData := dst.Data()
	for i := range gData {
		dData[int(oData[i])] += gData[i]
	}
	return dst, nil
}
