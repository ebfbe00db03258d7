package metadata

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	jpegExifPrefix = "Exif\x00\x00"
	jpegXMPPrefix  = "http://ns.adobe.com/xap/1.0/\x00"
)

// jpegCarriers walks the marker segments before the entropy-coded data and
// collects the Exif and XMP APP1 payloads. The Exif payload comes back
// with its container prefix already removed.
func jpegCarriers(data []byte) (exifBlob, xmpPacket []byte, err error) {
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		return nil, nil, errors.New("malformed jpeg: missing SOI")
	}

	rest := data[2:]
	for len(rest) >= 2 {
		if rest[0] != 0xFF {
			return exifBlob, xmpPacket, errors.New("malformed jpeg: expected marker")
		}
		marker := rest[1]

		// Metadata lives before the scan; stop at image data or EOI.
		if marker == 0xDA || marker == 0xD9 {
			return exifBlob, xmpPacket, nil
		}

		if len(rest) < 4 {
			return exifBlob, xmpPacket, errors.New("truncated jpeg segment header")
		}
		length := int(binary.BigEndian.Uint16(rest[2:4]))
		if length < 2 || len(rest) < 2+length {
			return exifBlob, xmpPacket, errors.New("truncated jpeg segment")
		}
		payload := rest[4 : 2+length]

		if marker == 0xE1 {
			switch {
			case bytes.HasPrefix(payload, []byte(jpegExifPrefix)):
				exifBlob = payload[len(jpegExifPrefix):]
			case bytes.HasPrefix(payload, []byte(jpegXMPPrefix)):
				xmpPacket = payload[len(jpegXMPPrefix):]
			}
		}

		rest = rest[2+length:]
	}
	return exifBlob, xmpPacket, nil
}
