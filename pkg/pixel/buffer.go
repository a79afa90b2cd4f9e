package pixel

import (
	"image"
	"image/color"
	"math"
)

// ToNRGBA converts any image.Image into a fresh, zero-origin *image.NRGBA
// (non-premultiplied RGBA). The result never aliases src.
func ToNRGBA(src image.Image) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == image.Pt(0, 0) && n.Stride == 4*w {
		copy(out.Pix, n.Pix)
		return out
	}
	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			out.Pix[idx+0] = c.R
			out.Pix[idx+1] = c.G
			out.Pix[idx+2] = c.B
			out.Pix[idx+3] = c.A
			idx += 4
		}
	}
	return out
}

// Clone returns a deep copy of src.
func Clone(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	out := image.NewNRGBA(src.Rect)
	copy(out.Pix, src.Pix)
	return out
}

// clampInt clamps v to [lo,hi]
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clamp255 clamps a float channel value to [0,255].
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// quantize rounds a float channel value to the nearest byte, clamped to
// [0,255]. Rounding, not truncation, keeps uniform inputs invariant under
// weight sums that land within an ulp of the exact value.
func quantize(v float64) uint8 {
	return uint8(clamp255(math.Round(v)))
}

