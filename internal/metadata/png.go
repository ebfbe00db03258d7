package metadata

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const pngSignature = "\x89PNG\r\n\x1a\n"

// xmpKeyword is the registered iTXt keyword for XMP packets.
const xmpKeyword = "XML:com.adobe.xmp"

// pngCarriers walks the chunk stream and pulls out the eXIf payload and
// the XMP iTXt packet. The walk is forgiving: CRCs are not verified and a
// truncated stream returns whatever was found before the damage.
func pngCarriers(data []byte) (exifBlob, xmpPacket []byte, err error) {
	if len(data) < len(pngSignature) || string(data[:len(pngSignature)]) != pngSignature {
		return nil, nil, errors.New("malformed png signature")
	}

	rest := data[len(pngSignature):]
	for len(rest) >= 8 {
		length := int(binary.BigEndian.Uint32(rest[:4]))
		typ := string(rest[4:8])
		if length < 0 || len(rest) < 8+length+4 {
			return exifBlob, xmpPacket, fmt.Errorf("truncated %s chunk", typ)
		}
		body := rest[8 : 8+length]

		switch typ {
		case "eXIf":
			exifBlob = body
		case "iTXt":
			if packet, ok := itxtXMP(body); ok {
				xmpPacket = packet
			}
		case "IEND":
			return exifBlob, xmpPacket, nil
		}

		rest = rest[8+length+4:]
	}
	return exifBlob, xmpPacket, nil
}

// itxtXMP decodes an iTXt chunk body and returns the text when the chunk
// keyword marks an XMP packet. Compressed packets (flag 1, zlib method 0)
// are inflated; any other compression is skipped.
func itxtXMP(body []byte) ([]byte, bool) {
	nul := bytes.IndexByte(body, 0)
	if nul < 0 || string(body[:nul]) != xmpKeyword {
		return nil, false
	}
	rest := body[nul+1:]
	if len(rest) < 2 {
		return nil, false
	}
	compression, method := rest[0], rest[1]
	rest = rest[2:]

	// Skip the null-terminated language tag and translated keyword.
	for i := 0; i < 2; i++ {
		n := bytes.IndexByte(rest, 0)
		if n < 0 {
			return nil, false
		}
		rest = rest[n+1:]
	}

	switch {
	case compression == 0:
		return rest, true
	case compression == 1 && method == 0:
		zr, err := zlib.NewReader(bytes.NewReader(rest))
		if err != nil {
			return nil, false
		}
		defer zr.Close()
		text, err := io.ReadAll(zr)
		if err != nil {
			return nil, false
		}
		return text, true
	}
	return nil, false
}
