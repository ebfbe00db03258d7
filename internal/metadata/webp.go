package metadata

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// webpCarriers walks the RIFF chunk list for the EXIF and XMP chunks.
// Chunk payloads are padded to even lengths per RIFF; a final chunk whose
// pad byte was cut off is tolerated.
func webpCarriers(data []byte) (exifBlob, xmpPacket []byte, err error) {
	if len(data) < 12 || string(data[:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		return nil, nil, errors.New("malformed webp header")
	}

	rest := data[12:]
	for len(rest) >= 8 {
		fourCC := string(rest[:4])
		size := int(binary.LittleEndian.Uint32(rest[4:8]))
		if size < 0 || len(rest) < 8+size {
			return exifBlob, xmpPacket, fmt.Errorf("truncated %q chunk", fourCC)
		}
		body := rest[8 : 8+size]

		switch fourCC {
		case "EXIF":
			exifBlob = body
		case "XMP ":
			xmpPacket = body
		}

		advance := 8 + size + size%2
		if advance > len(rest) {
			break
		}
		rest = rest[advance:]
	}
	return exifBlob, xmpPacket, nil
}
