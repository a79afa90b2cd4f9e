package pixel

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Validation errors reported before any pixel buffer is created.
var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrTooLarge          = errors.New("image file too large")
)

// SniffFormat reports the image format of raw bytes from their magic
// number: "jpeg", "png", "gif", "webp", "bmp", or "" when unrecognized.
func SniffFormat(b []byte) string {
	switch {
	case len(b) >= 3 && bytes.Equal(b[:3], []byte{0xFF, 0xD8, 0xFF}):
		return "jpeg"
	case len(b) >= 8 && bytes.Equal(b[:8], []byte("\x89PNG\r\n\x1a\n")):
		return "png"
	case len(b) >= 6 && (bytes.Equal(b[:6], []byte("GIF87a")) || bytes.Equal(b[:6], []byte("GIF89a"))):
		return "gif"
	case len(b) >= 12 && bytes.Equal(b[:4], []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP")):
		return "webp"
	case len(b) >= 2 && b[0] == 'B' && b[1] == 'M':
		return "bmp"
	}
	return ""
}

// MIMEType maps a sniffed format name to its MIME type, or "" when unknown.
func MIMEType(format string) string {
	switch format {
	case "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "bmp":
		return "image/bmp"
	}
	return ""
}

// Decode validates and decodes raw image bytes into a zero-origin NRGBA
// buffer, applying any JPEG EXIF orientation. The size and format checks
// run before any buffer is created. maxBytes <= 0 disables the size check.
// The second return value is the sniffed format name.
func Decode(data []byte, maxBytes int64) (*image.NRGBA, string, error) {
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, len(data), maxBytes)
	}
	format := SniffFormat(data)
	if format == "" {
		return nil, "", ErrUnsupportedFormat
	}
	orientation := 1
	if format == "jpeg" {
		orientation = jpegOrientation(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", format, err)
	}
	buf := ToNRGBA(img)
	if orientation != 1 {
		buf = AutoOrient(buf, orientation)
	}
	return buf, format, nil
}

// LoadFile reads a file from disk and decodes it via Decode. Oversized
// files are rejected from their stat size without being read.
func LoadFile(path string, maxBytes int64) (*image.NRGBA, string, error) {
	if maxBytes > 0 {
		if fi, err := os.Stat(path); err == nil && fi.Size() > maxBytes {
			return nil, "", fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, filepath.Base(path), fi.Size(), maxBytes)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return Decode(data, maxBytes)
}

// SaveFile writes img to path in the format implied by the file extension.
// Supports .png, .jpg/.jpeg, .webp and .gif; anything else falls back to
// PNG.
func SaveFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 92})
	case ".webp":
		return webp.Encode(f, img, &webp.Options{Quality: 90})
	case ".gif":
		return gif.Encode(f, img, nil)
	default:
		return png.Encode(f, img)
	}
}
