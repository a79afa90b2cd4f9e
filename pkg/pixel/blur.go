package pixel

import (
	"image"
	"math"
	"sync"
)

// BlurRadius converts a 0-100 slider amount to a pixel radius. Amounts
// outside [0,100] clamp to the [0,10] radius range.
func BlurRadius(amount float64) int {
	r := int(math.Round(amount / 100 * 10))
	return clampInt(r, 0, 10)
}

// GaussianBlur blurs the RGB channels of img in place using a two-pass
// separable Gaussian of the given radius (sigma = radius/3). Sampling is
// clamped to image bounds so edge pixels reuse the nearest valid pixel.
// Alpha is carried through unchanged. Radius <= 0 is a no-op.
func GaussianBlur(img *image.NRGBA, radius int) {
	if img == nil || radius <= 0 {
		return
	}
	kern := GaussianKernel1D(radius)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	tmp := image.NewNRGBA(image.Rect(0, 0, w, h))

	// horizontal pass, one goroutine per row
	var wg sync.WaitGroup
	for y := 0; y < h; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			for x := 0; x < w; x++ {
				sr, sg, sb := 0.0, 0.0, 0.0
				wsum := 0.0
				for k := -radius; k <= radius; k++ {
					ix := clampInt(x+k, 0, w-1)
					si := img.PixOffset(ix, y)
					wgt := kern[k+radius]
					sr += float64(img.Pix[si+0]) * wgt
					sg += float64(img.Pix[si+1]) * wgt
					sb += float64(img.Pix[si+2]) * wgt
					wsum += wgt
				}
				i := tmp.PixOffset(x, y)
				tmp.Pix[i+0] = quantize(sr / wsum)
				tmp.Pix[i+1] = quantize(sg / wsum)
				tmp.Pix[i+2] = quantize(sb / wsum)
				tmp.Pix[i+3] = img.Pix[img.PixOffset(x, y)+3]
			}
		}(y)
	}
	wg.Wait()

	// vertical pass back into img, one goroutine per column
	for x := 0; x < w; x++ {
		wg.Add(1)
		go func(x int) {
			defer wg.Done()
			for y := 0; y < h; y++ {
				sr, sg, sb := 0.0, 0.0, 0.0
				wsum := 0.0
				for k := -radius; k <= radius; k++ {
					iy := clampInt(y+k, 0, h-1)
					si := tmp.PixOffset(x, iy)
					wgt := kern[k+radius]
					sr += float64(tmp.Pix[si+0]) * wgt
					sg += float64(tmp.Pix[si+1]) * wgt
					sb += float64(tmp.Pix[si+2]) * wgt
					wsum += wgt
				}
				i := img.PixOffset(x, y)
				img.Pix[i+0] = quantize(sr / wsum)
				img.Pix[i+1] = quantize(sg / wsum)
				img.Pix[i+2] = quantize(sb / wsum)
			}
		}(x)
	}
	wg.Wait()
}

// BoxBlur replaces every pixel's RGB channels in place with the unweighted
// mean of the (2*radius+1)^2 window, with window coordinates clamped to
// image bounds. It serves as the fallback for the non-Gaussian blur modes.
// Radius <= 0 is a no-op.
func BoxBlur(img *image.NRGBA, radius int) {
	if img == nil || radius <= 0 {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	src := make([]uint8, len(img.Pix))
	copy(src, img.Pix)
	n := (2*radius + 1) * (2*radius + 1)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sr, sg, sb := 0, 0, 0
			for oy := y - radius; oy <= y+radius; oy++ {
				cy := clampInt(oy, 0, h-1)
				for ox := x - radius; ox <= x+radius; ox++ {
					cx := clampInt(ox, 0, w-1)
					si := img.PixOffset(cx, cy)
					sr += int(src[si+0])
					sg += int(src[si+1])
					sb += int(src[si+2])
				}
			}
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8((sr + n/2) / n)
			img.Pix[i+1] = uint8((sg + n/2) / n)
			img.Pix[i+2] = uint8((sb + n/2) / n)
		}
	}
}
