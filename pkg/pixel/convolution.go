package pixel

import (
	"image"
	"math"
)

// Convolve applies a square kernel to the RGB channels of img in place,
// blending each filtered value with the original:
//
//	new = old + (filtered - old) * factor
//
// so factor 0 leaves every byte untouched and factor 1 is the raw kernel
// response. Pixels within the kernel margin of any edge are not modified;
// there is no wraparound or edge extension. Alpha is never touched.
// Neighborhood reads come from a snapshot of the input, so in-place writes
// cannot feed back into later pixels.
func Convolve(img *image.NRGBA, kernel []float64, factor float64) {
	if img == nil || factor == 0 || len(kernel) == 0 {
		return
	}
	side := int(math.Sqrt(float64(len(kernel))))
	if side*side != len(kernel) || side%2 == 0 {
		return
	}
	margin := side / 2
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 2*margin || h <= 2*margin {
		return
	}
	src := make([]uint8, len(img.Pix))
	copy(src, img.Pix)

	for y := margin; y < h-margin; y++ {
		for x := margin; x < w-margin; x++ {
			var sr, sg, sb float64
			for ky := -margin; ky <= margin; ky++ {
				for kx := -margin; kx <= margin; kx++ {
					wgt := kernel[(ky+margin)*side+(kx+margin)]
					si := img.PixOffset(x+kx, y+ky)
					sr += float64(src[si+0]) * wgt
					sg += float64(src[si+1]) * wgt
					sb += float64(src[si+2]) * wgt
				}
			}
			i := img.PixOffset(x, y)
			or := float64(src[i+0])
			og := float64(src[i+1])
			ob := float64(src[i+2])
			img.Pix[i+0] = quantize(or + (sr-or)*factor)
			img.Pix[i+1] = quantize(og + (sg-og)*factor)
			img.Pix[i+2] = quantize(ob + (sb-ob)*factor)
		}
	}
}
