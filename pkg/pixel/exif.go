package pixel

import "encoding/binary"

// jpegOrientation returns the EXIF orientation (1..8) embedded in JPEG
// bytes, or 1 when no usable tag is present. Only the 0th IFD is scanned;
// the orientation tag never lives anywhere else.
func jpegOrientation(data []byte) int {
	ts := tiffStart(data)
	if ts < 0 || ts+8 > len(data) {
		return 1
	}
	var order binary.ByteOrder
	switch {
	case data[ts] == 'I' && data[ts+1] == 'I':
		order = binary.LittleEndian
	case data[ts] == 'M' && data[ts+1] == 'M':
		order = binary.BigEndian
	default:
		return 1
	}
	if order.Uint16(data[ts+2:ts+4]) != 0x002A {
		return 1
	}
	ifd := ts + int(order.Uint32(data[ts+4:ts+8]))
	if ifd <= ts || ifd+2 > len(data) {
		return 1
	}
	n := int(order.Uint16(data[ifd : ifd+2]))
	for e := 0; e < n; e++ {
		ent := ifd + 2 + e*12
		if ent+12 > len(data) {
			break
		}
		if order.Uint16(data[ent:ent+2]) != 0x0112 {
			continue
		}
		// orientation is a single SHORT stored inline
		if order.Uint16(data[ent+2:ent+4]) != 3 {
			continue
		}
		v := int(order.Uint16(data[ent+8 : ent+10]))
		if v >= 1 && v <= 8 {
			return v
		}
	}
	return 1
}

// tiffStart scans JPEG segments for an APP1 Exif block and returns the
// offset where the TIFF header begins, or -1 if none exists.
func tiffStart(data []byte) int {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return -1
	}
	i := 2
	for i+4 <= len(data) {
		if data[i] != 0xFF {
			i++
			continue
		}
		marker := data[i+1]
		if marker == 0xDA { // start of scan
			break
		}
		segLen := int(data[i+2])<<8 | int(data[i+3])
		if marker == 0xE1 && segLen >= 8 && i+10 <= len(data) && string(data[i+4:i+10]) == "Exif\x00\x00" {
			return i + 10
		}
		if segLen < 2 {
			i += 2
		} else {
			i += 2 + segLen
		}
	}
	return -1
}
