package preview

import (
	"image"

	"github.com/Musiitwa-Joel/doclair-sub001/pkg/adjust"
	"github.com/Musiitwa-Joel/doclair-sub001/pkg/pixel"
)

// RenderFunc mutates a working pixel buffer in place. The session always
// hands it a fresh clone of the pristine source, so a render never sees the
// output of a previous render.
type RenderFunc func(*image.NRGBA)

// SharpenBlur composes the render pass for a sharpen/blur snapshot. Stage
// order mirrors the tool page: noise reduction, then blur, then sharpen,
// then edge enhancement.
func SharpenBlur(o adjust.SharpenBlurOptions) RenderFunc {
	o = o.Clamp()
	return func(img *image.NRGBA) {
		if o.NoiseReduction {
			pixel.MedianFilter(img, 1)
		}
		if o.BlurAmount > 0 {
			radius := pixel.BlurRadius(o.BlurAmount)
			if o.BlurType == adjust.BlurGaussian {
				pixel.GaussianBlur(img, radius)
			} else {
				// motion/radial/surface are resolved server-side; the local
				// preview approximates their strength with a box blur
				pixel.BoxBlur(img, radius)
			}
		}
		if o.SharpenAmount > 0 {
			if o.UnsharpMask {
				pixel.UnsharpMask(img, 2, o.SharpenAmount/100)
			} else {
				pixel.Convolve(img, pixel.SharpenKernel(), o.SharpenAmount/100)
			}
		}
		if o.EdgeEnhance > 0 {
			pixel.Convolve(img, pixel.EdgeEnhanceKernel(), o.EdgeEnhance/100)
		}
	}
}

// Grade composes the render pass for a color balance snapshot. It fails
// before touching any pixels when a tonal hex color does not parse.
func Grade(o adjust.ColorBalanceOptions) (RenderFunc, error) {
	o = o.Clamp()
	cb, err := o.Balance()
	if err != nil {
		return nil, err
	}
	return func(img *image.NRGBA) {
		if o.AutoCorrection {
			pixel.AutoContrast(img)
		}
		pixel.ApplyColorBalance(img, cb)
		if o.Grayscale {
			pixel.Grayscale(img)
		}
		if o.Invert {
			pixel.Invert(img)
		}
	}, nil
}
