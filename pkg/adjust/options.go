package adjust

import (
	"fmt"

	"github.com/Musiitwa-Joel/doclair-sub001/pkg/pixel"
)

// BlurType selects the blur algorithm requested by the UI. Only gaussian
// has a dedicated local implementation; the other modes fall back to a box
// blur in the preview and are resolved server-side on submit.
type BlurType string

const (
	BlurGaussian BlurType = "gaussian"
	BlurMotion   BlurType = "motion"
	BlurRadial   BlurType = "radial"
	BlurSurface  BlurType = "surface"
)

// SharpenBlurOptions is the parameter snapshot for the sharpen/blur tool
// family. A fresh value is taken on every control change; rendering never
// mutates it.
type SharpenBlurOptions struct {
	SharpenAmount  float64  `json:"sharpenAmount"`
	UnsharpMask    bool     `json:"unsharpMask"`
	BlurAmount     float64  `json:"blurAmount"`
	BlurType       BlurType `json:"blurType"`
	BlurAngle      float64  `json:"blurAngle"`
	BlurDistance   float64  `json:"blurDistance"`
	EdgeEnhance    float64  `json:"edgeEnhance"`
	NoiseReduction bool     `json:"noiseReduction"`
}

// Field names the multipart form field carrying this snapshot on submit.
func (o SharpenBlurOptions) Field() string { return "sharpenBlurOptions" }

// Clamp returns a copy with every knob forced into its documented range.
func (o SharpenBlurOptions) Clamp() SharpenBlurOptions {
	o.SharpenAmount = clamp(o.SharpenAmount, 0, 100)
	o.BlurAmount = clamp(o.BlurAmount, 0, 100)
	o.BlurAngle = clamp(o.BlurAngle, 0, 360)
	o.BlurDistance = clamp(o.BlurDistance, 0, 100)
	o.EdgeEnhance = clamp(o.EdgeEnhance, 0, 100)
	switch o.BlurType {
	case BlurGaussian, BlurMotion, BlurRadial, BlurSurface:
	default:
		o.BlurType = BlurGaussian
	}
	return o
}

// ColorBalanceOptions is the parameter snapshot for the color balance tool
// family. Tonal colors are hex strings as the UI produces them; empty means
// the tone is not configured.
type ColorBalanceOptions struct {
	Temperature    float64 `json:"temperature"`
	Tint           float64 `json:"tint"`
	Hue            float64 `json:"hue"`
	Saturation     float64 `json:"saturation"`
	Vibrance       float64 `json:"vibrance"`
	RedBalance     float64 `json:"redBalance"`
	GreenBalance   float64 `json:"greenBalance"`
	BlueBalance    float64 `json:"blueBalance"`
	Shadows        string  `json:"shadows,omitempty"`
	Midtones       string  `json:"midtones,omitempty"`
	Highlights     string  `json:"highlights,omitempty"`
	AutoCorrection bool    `json:"autoCorrection"`
	Grayscale      bool    `json:"grayscale"`
	Invert         bool    `json:"invert"`
}

// Field names the multipart form field carrying this snapshot on submit.
func (o ColorBalanceOptions) Field() string { return "colorBalanceOptions" }

// Clamp returns a copy with every numeric knob forced into its documented
// range. Hex strings are validated separately by Balance.
func (o ColorBalanceOptions) Clamp() ColorBalanceOptions {
	o.Temperature = clamp(o.Temperature, -100, 100)
	o.Tint = clamp(o.Tint, -100, 100)
	o.Hue = clamp(o.Hue, -180, 180)
	o.Saturation = clamp(o.Saturation, -100, 100)
	o.Vibrance = clamp(o.Vibrance, -100, 100)
	o.RedBalance = clamp(o.RedBalance, -100, 100)
	o.GreenBalance = clamp(o.GreenBalance, -100, 100)
	o.BlueBalance = clamp(o.BlueBalance, -100, 100)
	return o
}

// Balance resolves the snapshot into the pixel engine's stage parameters,
// parsing the tonal hex colors. An unparseable hex string fails the whole
// snapshot so the caller can surface it before any pixels are touched.
func (o ColorBalanceOptions) Balance() (pixel.ColorBalance, error) {
	cb := pixel.ColorBalance{
		Temperature:  o.Temperature,
		Tint:         o.Tint,
		Hue:          o.Hue,
		Saturation:   o.Saturation,
		Vibrance:     o.Vibrance,
		RedBalance:   o.RedBalance,
		GreenBalance: o.GreenBalance,
		BlueBalance:  o.BlueBalance,
	}
	if o.Shadows != "" {
		c, err := ParseHexColor(o.Shadows)
		if err != nil {
			return pixel.ColorBalance{}, fmt.Errorf("shadows: %w", err)
		}
		cb.Shadows = c
	}
	if o.Midtones != "" {
		c, err := ParseHexColor(o.Midtones)
		if err != nil {
			return pixel.ColorBalance{}, fmt.Errorf("midtones: %w", err)
		}
		cb.Midtones = c
	}
	if o.Highlights != "" {
		c, err := ParseHexColor(o.Highlights)
		if err != nil {
			return pixel.ColorBalance{}, fmt.Errorf("highlights: %w", err)
		}
		cb.Highlights = c
	}
	return cb, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
