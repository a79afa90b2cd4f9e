package pixel

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSniffFormat(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}, "jpeg"},
		{"png", []byte("\x89PNG\r\n\x1a\n\x00\x00"), "png"},
		{"gif87", []byte("GIF87a......"), "gif"},
		{"gif89", []byte("GIF89a......"), "gif"},
		{"webp", []byte("RIFF\x24\x00\x00\x00WEBPVP8 "), "webp"},
		{"bmp", []byte("BM\x36\x00\x00\x00"), "bmp"},
		{"text", []byte("hello world, not an image"), ""},
		{"short", []byte{0xFF}, ""},
		{"empty", nil, ""},
	}
	for _, c := range cases {
		if got := SniffFormat(c.data); got != c.want {
			t.Fatalf("%s: SniffFormat = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestMIMEType(t *testing.T) {
	cases := map[string]string{
		"jpeg":  "image/jpeg",
		"png":   "image/png",
		"gif":   "image/gif",
		"webp":  "image/webp",
		"bmp":   "image/bmp",
		"":      "",
		"weird": "",
	}
	for format, want := range cases {
		if got := MIMEType(format); got != want {
			t.Fatalf("MIMEType(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestDecodePNGRoundTrip(t *testing.T) {
	src := makeRandom(8, 6, 31)
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, format, err := Decode(buf.Bytes(), 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if format != "png" {
		t.Fatalf("format = %q, want png", format)
	}
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Fatalf("PNG round trip altered pixels")
	}
}

func TestDecodeRejectsOversizedData(t *testing.T) {
	src := makeRandom(16, 16, 3)
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	_, _, err := Decode(buf.Bytes(), 10)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestDecodeRejectsUnknownFormat(t *testing.T) {
	_, _, err := Decode([]byte("definitely not an image"), 0)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

// exifPayload builds a minimal TIFF block whose IFD0 carries a single
// inline orientation SHORT.
func exifPayload(order binary.ByteOrder, orientation uint16) []byte {
	var tiff bytes.Buffer
	if order == binary.LittleEndian {
		tiff.WriteString("II")
	} else {
		tiff.WriteString("MM")
	}
	binary.Write(&tiff, order, uint16(0x002A))
	binary.Write(&tiff, order, uint32(8)) // IFD0 follows the header
	binary.Write(&tiff, order, uint16(1)) // entry count
	binary.Write(&tiff, order, uint16(0x0112))
	binary.Write(&tiff, order, uint16(3)) // SHORT
	binary.Write(&tiff, order, uint32(1))
	binary.Write(&tiff, order, orientation)
	binary.Write(&tiff, order, uint16(0)) // value field padding
	binary.Write(&tiff, order, uint32(0)) // no next IFD
	return tiff.Bytes()
}

// withAPP1 splices an Exif APP1 segment directly after the SOI marker.
func withAPP1(jpegBytes, payload []byte) []byte {
	var app1 bytes.Buffer
	app1.Write([]byte{0xFF, 0xE1})
	binary.Write(&app1, binary.BigEndian, uint16(len(payload)+8))
	app1.WriteString("Exif\x00\x00")
	app1.Write(payload)
	out := make([]byte, 0, len(jpegBytes)+app1.Len())
	out = append(out, jpegBytes[:2]...)
	out = append(out, app1.Bytes()...)
	out = append(out, jpegBytes[2:]...)
	return out
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeAppliesJPEGOrientation(t *testing.T) {
	plain := encodeJPEG(t, 3, 2)
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		data := withAPP1(plain, exifPayload(order, 6))
		if got := jpegOrientation(data); got != 6 {
			t.Fatalf("%v: jpegOrientation = %d, want 6", order, got)
		}
		img, format, err := Decode(data, 0)
		if err != nil {
			t.Fatalf("%v: decode: %v", order, err)
		}
		if format != "jpeg" {
			t.Fatalf("%v: format = %q, want jpeg", order, format)
		}
		// a 90 degree rotation swaps the dimensions
		if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 3 {
			t.Fatalf("%v: bounds = %v, want 2x3", order, b)
		}
	}
}

func TestDecodeJPEGWithoutExifKeepsDimensions(t *testing.T) {
	img, _, err := Decode(encodeJPEG(t, 3, 2), 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, want 3x2", b)
	}
}

func TestJPEGOrientationMalformedIFD(t *testing.T) {
	var tiff bytes.Buffer
	tiff.WriteString("II")
	binary.Write(&tiff, binary.LittleEndian, uint16(0x002A))
	binary.Write(&tiff, binary.LittleEndian, uint32(0xFFFFFF)) // IFD far out of range
	data := withAPP1(encodeJPEG(t, 2, 2), tiff.Bytes())
	if got := jpegOrientation(data); got != 1 {
		t.Fatalf("malformed IFD: orientation = %d, want fallback 1", got)
	}
	if got := jpegOrientation([]byte("not a jpeg at all")); got != 1 {
		t.Fatalf("garbage input: orientation = %d, want fallback 1", got)
	}
	if got := jpegOrientation(encodeJPEG(t, 2, 2)); got != 1 {
		t.Fatalf("no APP1: orientation = %d, want fallback 1", got)
	}
}

func TestJPEGOrientationOutOfRangeValueIgnored(t *testing.T) {
	data := withAPP1(encodeJPEG(t, 2, 2), exifPayload(binary.LittleEndian, 0))
	if got := jpegOrientation(data); got != 1 {
		t.Fatalf("orientation 0 should fall back to 1, got %d", got)
	}
	data = withAPP1(encodeJPEG(t, 2, 2), exifPayload(binary.BigEndian, 9))
	if got := jpegOrientation(data); got != 1 {
		t.Fatalf("orientation 9 should fall back to 1, got %d", got)
	}
}

func TestLoadFileRejectsOversizedFromStat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.png")
	if err := os.WriteFile(path, make([]byte, 4096), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, _, err := LoadFile(path, 100)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestSaveFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	src := makeRandom(10, 7, 19)
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255 // opaque survives every codec
	}

	pngPath := filepath.Join(dir, "out.png")
	if err := SaveFile(pngPath, src); err != nil {
		t.Fatalf("save png: %v", err)
	}
	got, format, err := LoadFile(pngPath, 0)
	if err != nil {
		t.Fatalf("load png: %v", err)
	}
	if format != "png" || !bytes.Equal(got.Pix, src.Pix) {
		t.Fatalf("png round trip failed (format %q)", format)
	}

	for ext, wantFormat := range map[string]string{"out.jpg": "jpeg", "out.webp": "webp"} {
		path := filepath.Join(dir, ext)
		if err := SaveFile(path, src); err != nil {
			t.Fatalf("save %s: %v", ext, err)
		}
		img, format, err := LoadFile(path, 0)
		if err != nil {
			t.Fatalf("load %s: %v", ext, err)
		}
		if format != wantFormat {
			t.Fatalf("%s: format = %q, want %q", ext, format, wantFormat)
		}
		if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 7 {
			t.Fatalf("%s: bounds = %v, want 10x7", ext, b)
		}
	}
}
