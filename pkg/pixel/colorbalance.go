package pixel

import (
	"image"
	"image/color"
	"math"
)

// ColorBalance holds the per-pixel grading parameters for ApplyColorBalance.
// Numeric fields are UI slider values in [-100,100]; Hue is in degrees. Tone
// colors are offsets relative to neutral gray 128; a tone with zero alpha is
// treated as unset and its range is left ungraded. The zero value is a
// complete no-op.
type ColorBalance struct {
	Temperature  float64
	Tint         float64
	Hue          float64
	Saturation   float64
	Vibrance     float64
	RedBalance   float64
	GreenBalance float64
	BlueBalance  float64
	Shadows      color.NRGBA
	Midtones     color.NRGBA
	Highlights   color.NRGBA
}

// luminance is the perceptual gray weighting used by the saturation and
// tonal grading stages.
func luminance(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}

// ApplyColorBalance grades every pixel of img in place. Stages run in a
// fixed order: temperature, tint, hue rotation, saturation, vibrance, RGB
// balance, tonal range grading. Channel values clamp to [0,255] after every
// stage, not just at the end; the clamp sequence is part of the contract
// and changing it changes the output. Alpha is never touched.
func ApplyColorBalance(img *image.NRGBA, cb ColorBalance) {
	if img == nil {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	temp := cb.Temperature / 100
	tint := cb.Tint / 100
	hueShift := cb.Hue / 360

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			r := float64(img.Pix[i+0])
			g := float64(img.Pix[i+1])
			bl := float64(img.Pix[i+2])

			// temperature: warm adds red and some green, cool adds blue
			if temp != 0 {
				if temp > 0 {
					r += 40 * temp
					g += 20 * temp
				} else {
					bl -= 40 * temp
				}
				r, g, bl = clamp255(r), clamp255(g), clamp255(bl)
			}

			// tint: positive shifts toward magenta, negative toward green
			if tint != 0 {
				if tint > 0 {
					r += 30 * tint
					bl += 30 * tint
				} else {
					g -= 30 * tint
				}
				r, g, bl = clamp255(r), clamp255(g), clamp255(bl)
			}

			// hue rotation via HSL round trip
			if cb.Hue != 0 {
				hh, ss, ll := rgbToHsl(r/255, g/255, bl/255)
				hh = math.Mod(hh+hueShift, 1)
				if hh < 0 {
					hh++
				}
				nr, ng, nb := hslToRgb(hh, ss, ll)
				r, g, bl = clamp255(nr*255), clamp255(ng*255), clamp255(nb*255)
			}

			// saturation scales distance from perceptual gray
			if cb.Saturation != 0 {
				s := 1 + cb.Saturation/100
				gray := luminance(r, g, bl)
				r = clamp255(gray + (r-gray)*s)
				g = clamp255(gray + (g-gray)*s)
				bl = clamp255(gray + (bl-gray)*s)
			}

			// vibrance boosts muted colors more than saturated ones
			if cb.Vibrance != 0 {
				mx := math.Max(r, math.Max(g, bl))
				avg := (r + g + bl) / 3
				amt := math.Abs(mx-avg) * 2 / 255 * cb.Vibrance / 100 / 3
				if r != mx {
					r += (mx - r) * amt
				}
				if g != mx {
					g += (mx - g) * amt
				}
				if bl != mx {
					bl += (mx - bl) * amt
				}
				r, g, bl = clamp255(r), clamp255(g), clamp255(bl)
			}

			// independent per-channel balance
			if cb.RedBalance != 0 || cb.GreenBalance != 0 || cb.BlueBalance != 0 {
				r = clamp255(r + cb.RedBalance/100*50)
				g = clamp255(g + cb.GreenBalance/100*50)
				bl = clamp255(bl + cb.BlueBalance/100*50)
			}

			// tonal range grading: shadows below 85, midtones below 170,
			// highlights above
			lum := luminance(r, g, bl)
			var tone color.NRGBA
			switch {
			case lum < 85:
				tone = cb.Shadows
			case lum < 170:
				tone = cb.Midtones
			default:
				tone = cb.Highlights
			}
			if tone.A != 0 {
				r = clamp255(r + (float64(tone.R)-128)*0.3)
				g = clamp255(g + (float64(tone.G)-128)*0.3)
				bl = clamp255(bl + (float64(tone.B)-128)*0.3)
			}

			img.Pix[i+0] = quantize(r)
			img.Pix[i+1] = quantize(g)
			img.Pix[i+2] = quantize(bl)
		}
	}
}

// AutoContrast stretches each channel's observed range to the full [0,255]
// span in place. A channel with no spread is left unchanged.
func AutoContrast(img *image.NRGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	minR, minG, minB := 255.0, 255.0, 255.0
	maxR, maxG, maxB := 0.0, 0.0, 0.0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			r := float64(img.Pix[i+0])
			g := float64(img.Pix[i+1])
			bl := float64(img.Pix[i+2])
			minR = math.Min(minR, r)
			minG = math.Min(minG, g)
			minB = math.Min(minB, bl)
			maxR = math.Max(maxR, r)
			maxG = math.Max(maxG, g)
			maxB = math.Max(maxB, bl)
		}
	}
	stretch := func(v, min, max float64) float64 {
		if max <= min {
			return v
		}
		return (v - min) / (max - min) * 255
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = quantize(stretch(float64(img.Pix[i+0]), minR, maxR))
			img.Pix[i+1] = quantize(stretch(float64(img.Pix[i+1]), minG, maxG))
			img.Pix[i+2] = quantize(stretch(float64(img.Pix[i+2]), minB, maxB))
		}
	}
}

// Grayscale replaces each pixel's RGB channels in place with its perceptual
// luminance.
func Grayscale(img *image.NRGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			lum := quantize(luminance(
				float64(img.Pix[i+0]),
				float64(img.Pix[i+1]),
				float64(img.Pix[i+2]),
			))
			img.Pix[i+0] = lum
			img.Pix[i+1] = lum
			img.Pix[i+2] = lum
		}
	}
}

// Invert replaces each RGB channel value v with 255-v in place.
func Invert(img *image.NRGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = 255 - img.Pix[i+0]
			img.Pix[i+1] = 255 - img.Pix[i+1]
			img.Pix[i+2] = 255 - img.Pix[i+2]
		}
	}
}
