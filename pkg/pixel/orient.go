package pixel

import "image"

// AutoOrient normalizes src according to an EXIF orientation value (1..8)
// so that the buffer reads top-left first. Orientation 1, or any value
// outside 1..8, returns src untouched.
func AutoOrient(src *image.NRGBA, orientation int) *image.NRGBA {
	if src == nil {
		return nil
	}
	switch orientation {
	case 2:
		return flipH(src)
	case 3:
		return rotate180(src)
	case 4:
		return flipV(src)
	case 5:
		// transpose
		return flipH(rotate90CW(src))
	case 6:
		return rotate90CW(src)
	case 7:
		// transverse
		return flipH(rotate90CCW(src))
	case 8:
		return rotate90CCW(src)
	default:
		return src
	}
}

func flipV(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(x, y)
			di := out.PixOffset(x, h-1-y)
			copy(out.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return out
}

func flipH(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(x, y)
			di := out.PixOffset(w-1-x, y)
			copy(out.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return out
}

func rotate180(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(x, y)
			di := out.PixOffset(w-1-x, h-1-y)
			copy(out.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return out
}

func rotate90CW(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(x, y)
			di := out.PixOffset(h-1-y, x)
			copy(out.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return out
}

func rotate90CCW(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(x, y)
			di := out.PixOffset(y, w-1-x)
			copy(out.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return out
}
