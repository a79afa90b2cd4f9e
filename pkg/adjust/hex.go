package adjust

import (
	"fmt"
	"image/color"
	"strconv"
)

// ParseHexColor parses a CSS-style hex color (#rgb, #rgba, #rrggbb or
// #rrggbbaa) into a non-premultiplied color. Alpha defaults to 255 when the
// string carries no alpha digits.
func ParseHexColor(s string) (color.NRGBA, error) {
	if len(s) < 2 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	hex := s[1:]
	var ch []uint8
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			v, err := strconv.ParseUint(string(hex[i]), 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
			}
			ch = append(ch, uint8(v*17))
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
			}
			ch = append(ch, uint8(v))
		}
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	c := color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}
	if len(ch) == 4 {
		c.A = ch[3]
	}
	return c, nil
}
