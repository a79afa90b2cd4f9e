package pixel

import (
	"image"
	"sort"
)

// MedianFilter replaces each interior pixel's RGB channels in place with the
// per-channel median of the (2*radius+1)^2 window. Pixels within radius of
// any edge are left unmodified, so the window never leaves the image. Alpha
// is never touched. Radius <= 0 is a no-op.
func MedianFilter(img *image.NRGBA, radius int) {
	if img == nil || radius <= 0 {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 2*radius || h <= 2*radius {
		return
	}
	src := make([]uint8, len(img.Pix))
	copy(src, img.Pix)

	win := (2*radius + 1) * (2*radius + 1)
	mid := win / 2
	rs := make([]int, win)
	gs := make([]int, win)
	bs := make([]int, win)

	for y := radius; y < h-radius; y++ {
		for x := radius; x < w-radius; x++ {
			n := 0
			for oy := y - radius; oy <= y+radius; oy++ {
				for ox := x - radius; ox <= x+radius; ox++ {
					si := img.PixOffset(ox, oy)
					rs[n] = int(src[si+0])
					gs[n] = int(src[si+1])
					bs[n] = int(src[si+2])
					n++
				}
			}
			sort.Ints(rs)
			sort.Ints(gs)
			sort.Ints(bs)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(rs[mid])
			img.Pix[i+1] = uint8(gs[mid])
			img.Pix[i+2] = uint8(bs[mid])
		}
	}
}
