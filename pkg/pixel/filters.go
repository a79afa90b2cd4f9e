package pixel

import "image"

// UnsharpMask sharpens the RGB channels of img in place by adding back the
// difference from a Gaussian-blurred copy:
//
//	new = old + (old - blurred) * amount
//
// radius controls the blur window (sigma = radius/3). Amount 0 or a
// non-positive radius is a no-op.
func UnsharpMask(img *image.NRGBA, radius int, amount float64) {
	if img == nil || amount == 0 || radius <= 0 {
		return
	}
	blurred := Clone(img)
	GaussianBlur(blurred, radius)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				old := float64(img.Pix[i+c])
				mask := old - float64(blurred.Pix[i+c])
				img.Pix[i+c] = quantize(old + mask*amount)
			}
		}
	}
}
