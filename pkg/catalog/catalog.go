package catalog

import "fmt"

// ParamSpec describes a single knob on a tool's settings panel. Fields are
// textual and intended for help/validation UI rather than machine-enforced
// typing.
type ParamSpec struct {
	Name        string   // JSON field name in the options snapshot
	Type        string   // "amount", "degrees", "bool", "enum", "color", "int"
	Min, Max    float64  // numeric range for amount/degrees/int knobs
	Default     string   // textual default (for help only)
	Enum        []string // legal values for enum knobs
	Description string
}

// ToolSpec defines a single catalogued tool.
type ToolSpec struct {
	Slug        string // API slug, also the CLI tool name
	Title       string
	Category    string // "image", "pdf"
	Field       string // multipart field carrying the options snapshot
	LivePreview bool   // whether the local pixel engine can preview it
	Params      []ParamSpec
	Description string
}

// Param returns the named knob's spec.
func (t ToolSpec) Param(name string) (ParamSpec, bool) {
	for _, p := range t.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// CheckRange validates a numeric value against the named knob's range.
func (t ToolSpec) CheckRange(name string, v float64) error {
	p, ok := t.Param(name)
	if !ok {
		return fmt.Errorf("%s: unknown parameter %q", t.Slug, name)
	}
	if p.Min == 0 && p.Max == 0 {
		return nil
	}
	if v < p.Min || v > p.Max {
		return fmt.Errorf("%s: %s=%v outside [%v,%v]", t.Slug, name, v, p.Min, p.Max)
	}
	return nil
}

// Lookup finds a tool by slug.
func Lookup(slug string) (ToolSpec, bool) {
	for _, t := range Tools {
		if t.Slug == slug {
			return t, true
		}
	}
	return ToolSpec{}, false
}

// LivePreviewTools returns the subset of the catalog the local pixel engine
// can preview without a server round-trip.
func LivePreviewTools() []ToolSpec {
	var out []ToolSpec
	for _, t := range Tools {
		if t.LivePreview {
			out = append(out, t)
		}
	}
	return out
}

// Tools is the authoritative tool catalog. Keep the live-preview entries
// synchronized with the render passes in pkg/preview; the server-only
// entries exist so the CLI can list and submit to them.
var Tools = []ToolSpec{
	{
		Slug:        "image-sharpen-blur",
		Title:       "Sharpen & Blur",
		Category:    "image",
		Field:       "sharpenBlurOptions",
		LivePreview: true,
		Params: []ParamSpec{
			{Name: "sharpenAmount", Type: "amount", Min: 0, Max: 100, Default: "0", Description: "sharpen strength"},
			{Name: "unsharpMask", Type: "bool", Default: "false", Description: "use unsharp masking instead of the fixed kernel"},
			{Name: "blurAmount", Type: "amount", Min: 0, Max: 100, Default: "0", Description: "blur strength"},
			{Name: "blurType", Type: "enum", Default: "gaussian", Enum: []string{"gaussian", "motion", "radial", "surface"}, Description: "blur algorithm"},
			{Name: "blurAngle", Type: "degrees", Min: 0, Max: 360, Default: "0", Description: "motion blur angle (server-side)"},
			{Name: "blurDistance", Type: "amount", Min: 0, Max: 100, Default: "0", Description: "motion blur distance (server-side)"},
			{Name: "edgeEnhance", Type: "amount", Min: 0, Max: 100, Default: "0", Description: "edge enhancement strength"},
			{Name: "noiseReduction", Type: "bool", Default: "false", Description: "median denoise before other stages"},
		},
		Description: "Sharpen, blur and denoise with a live local preview.",
	},
	{
		Slug:        "image-color-balance",
		Title:       "Color Balance",
		Category:    "image",
		Field:       "colorBalanceOptions",
		LivePreview: true,
		Params: []ParamSpec{
			{Name: "temperature", Type: "amount", Min: -100, Max: 100, Default: "0", Description: "warm/cool shift"},
			{Name: "tint", Type: "amount", Min: -100, Max: 100, Default: "0", Description: "magenta/green shift"},
			{Name: "hue", Type: "degrees", Min: -180, Max: 180, Default: "0", Description: "hue rotation"},
			{Name: "saturation", Type: "amount", Min: -100, Max: 100, Default: "0", Description: "saturation scale"},
			{Name: "vibrance", Type: "amount", Min: -100, Max: 100, Default: "0", Description: "muted-color saturation boost"},
			{Name: "redBalance", Type: "amount", Min: -100, Max: 100, Default: "0", Description: "red channel offset"},
			{Name: "greenBalance", Type: "amount", Min: -100, Max: 100, Default: "0", Description: "green channel offset"},
			{Name: "blueBalance", Type: "amount", Min: -100, Max: 100, Default: "0", Description: "blue channel offset"},
			{Name: "shadows", Type: "color", Description: "shadow grading color (hex)"},
			{Name: "midtones", Type: "color", Description: "midtone grading color (hex)"},
			{Name: "highlights", Type: "color", Description: "highlight grading color (hex)"},
			{Name: "autoCorrection", Type: "bool", Default: "false", Description: "per-channel contrast stretch before grading"},
			{Name: "grayscale", Type: "bool", Default: "false", Description: "convert to luminance gray"},
			{Name: "invert", Type: "bool", Default: "false", Description: "invert colors"},
		},
		Description: "Temperature, tint, hue, saturation and tonal grading with a live local preview.",
	},
	{
		Slug:     "image-crop",
		Title:    "Crop Image",
		Category: "image",
		Field:    "cropOptions",
		Params: []ParamSpec{
			{Name: "x", Type: "int", Min: 0, Max: 65535, Default: "0", Description: "left edge"},
			{Name: "y", Type: "int", Min: 0, Max: 65535, Default: "0", Description: "top edge"},
			{Name: "width", Type: "int", Min: 1, Max: 65535, Description: "crop width"},
			{Name: "height", Type: "int", Min: 1, Max: 65535, Description: "crop height"},
		},
		Description: "Crop to a pixel rectangle (processed server-side).",
	},
	{
		Slug:        "remove-background",
		Title:       "Remove Background",
		Category:    "image",
		Field:       "options",
		Description: "AI background removal (processed server-side).",
	},
	{
		Slug:     "scratch-removal",
		Title:    "Scratch Removal",
		Category: "image",
		Field:    "scratchOptions",
		Params: []ParamSpec{
			{Name: "intensity", Type: "amount", Min: 0, Max: 100, Default: "50", Description: "repair intensity"},
		},
		Description: "Repair scratches and dust (processed server-side).",
	},
	{
		Slug:     "hdr-effect",
		Title:    "HDR Effect",
		Category: "image",
		Field:    "hdrOptions",
		Params: []ParamSpec{
			{Name: "strength", Type: "amount", Min: 0, Max: 100, Default: "50", Description: "effect strength"},
		},
		Description: "High dynamic range tone effect (processed server-side).",
	},
	{
		Slug:        "pdf-to-word",
		Title:       "PDF to Word",
		Category:    "pdf",
		Field:       "options",
		Description: "Convert PDF documents to Word (processed server-side).",
	},
}
