// Package testimg assembles minimal but well-formed image files carrying
// generation metadata, so reader tests run against real container bytes
// without binary fixtures checked into the repository.
//
// The builders mirror what the production pipeline writes: a TIFF blob
// whose Exif sub-IFD holds a JSON user comment, a PNG with eXIf and iTXt
// chunks, a JPEG with the two APP1 segments, and a WebP with EXIF and
// XMP RIFF chunks.
package testimg

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"sort"

	"github.com/tdh-archive/mflux/pkg/mflux"
)

// exifASCIIPrefix is the EXIF character-code marker the producer writes in
// front of the JSON user comment.
const exifASCIIPrefix = "ASCII\x00\x00\x00"

// xmpKeyword is the iTXt keyword PNG readers look XMP packets up under.
const xmpKeyword = "XML:com.adobe.xmp"

const (
	pngSignature = "\x89PNG\r\n\x1a\n"
	jpegXMPURI   = "http://ns.adobe.com/xap/1.0/\x00"
)

// UserComment marshals the record and prepends the EXIF character-code
// prefix, yielding the exact user-comment bytes the producer stores.
func UserComment(attrs *mflux.Attributes) []byte {
	doc, err := json.Marshal(attrs)
	if err != nil {
		// Attributes contains only marshalable field types.
		panic(err)
	}
	return append([]byte(exifASCIIPrefix), doc...)
}

// TIFF builds a little-endian TIFF blob whose Exif sub-IFD carries the
// given user-comment bytes. The blob doubles as a standalone .tiff file
// and as the payload of PNG eXIf chunks, JPEG Exif segments and WebP EXIF
// chunks.
func TIFF(comment []byte) []byte {
	const (
		tagExifIFDPointer = 0x8769
		tagUserComment    = 0x9286
		typeLong          = 4
		typeUndefined     = 7
	)

	var b bytes.Buffer
	le := binary.LittleEndian

	// Header: byte order, magic, offset of IFD0.
	b.WriteString("II")
	binary.Write(&b, le, uint16(42))
	binary.Write(&b, le, uint32(8))

	// IFD0 at offset 8: a single pointer to the Exif sub-IFD.
	exifIFDOffset := uint32(8 + 2 + 12 + 4)
	binary.Write(&b, le, uint16(1))
	binary.Write(&b, le, uint16(tagExifIFDPointer))
	binary.Write(&b, le, uint16(typeLong))
	binary.Write(&b, le, uint32(1))
	binary.Write(&b, le, exifIFDOffset)
	binary.Write(&b, le, uint32(0))

	// Exif sub-IFD at offset 26: the user comment entry.
	dataOffset := exifIFDOffset + 2 + 12 + 4
	binary.Write(&b, le, uint16(1))
	binary.Write(&b, le, uint16(tagUserComment))
	binary.Write(&b, le, uint16(typeUndefined))
	binary.Write(&b, le, uint32(len(comment)))
	if len(comment) <= 4 {
		inline := make([]byte, 4)
		copy(inline, comment)
		b.Write(inline)
		binary.Write(&b, le, uint32(0))
		return b.Bytes()
	}
	binary.Write(&b, le, dataOffset)
	binary.Write(&b, le, uint32(0))
	b.Write(comment)

	return b.Bytes()
}

// PNG assembles a 1x1 PNG carrying the given metadata. Either carrier may
// be empty to leave its chunk out.
func PNG(exifBlob []byte, xmpPacket string) []byte {
	return buildPNG(exifBlob, xmpPacket, false)
}

// PNGCompressedXMP is PNG with the XMP packet stored zlib-compressed in
// the iTXt chunk, which writers may do for large packets.
func PNGCompressedXMP(exifBlob []byte, xmpPacket string) []byte {
	return buildPNG(exifBlob, xmpPacket, true)
}

func buildPNG(exifBlob []byte, xmpPacket string, compressXMP bool) []byte {
	var b bytes.Buffer
	b.WriteString(pngSignature)

	// 1x1 8-bit grayscale.
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], 1)
	binary.BigEndian.PutUint32(ihdr[4:], 1)
	ihdr[8] = 8
	writePNGChunk(&b, "IHDR", ihdr)

	if len(exifBlob) > 0 {
		writePNGChunk(&b, "eXIf", exifBlob)
	}
	if xmpPacket != "" {
		writePNGChunk(&b, "iTXt", itxtData(xmpKeyword, xmpPacket, compressXMP))
	}

	// One zlib-deflated scanline: filter byte plus a single pixel.
	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	zw.Write([]byte{0, 0})
	zw.Close()
	writePNGChunk(&b, "IDAT", idat.Bytes())

	writePNGChunk(&b, "IEND", nil)
	return b.Bytes()
}

func writePNGChunk(b *bytes.Buffer, typ string, data []byte) {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(data)))
	b.Write(length[:])
	b.WriteString(typ)
	b.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	b.Write(sum[:])
}

func itxtData(keyword, text string, compress bool) []byte {
	var b bytes.Buffer
	b.WriteString(keyword)
	b.WriteByte(0)
	if compress {
		b.WriteByte(1) // compression flag
		b.WriteByte(0) // compression method: zlib
	} else {
		b.WriteByte(0)
		b.WriteByte(0)
	}
	b.WriteByte(0) // empty language tag
	b.WriteByte(0) // empty translated keyword
	if compress {
		zw := zlib.NewWriter(&b)
		zw.Write([]byte(text))
		zw.Close()
	} else {
		b.WriteString(text)
	}
	return b.Bytes()
}

// JPEG assembles a JPEG stream with Exif and XMP APP1 segments. Either
// carrier may be empty to leave its segment out.
func JPEG(exifBlob []byte, xmpPacket string) []byte {
	var b bytes.Buffer
	b.Write([]byte{0xFF, 0xD8}) // SOI

	if len(exifBlob) > 0 {
		writeJPEGSegment(&b, 0xE1, append([]byte("Exif\x00\x00"), exifBlob...))
	}
	if xmpPacket != "" {
		writeJPEGSegment(&b, 0xE1, append([]byte(jpegXMPURI), xmpPacket...))
	}

	b.Write([]byte{0xFF, 0xD9}) // EOI
	return b.Bytes()
}

func writeJPEGSegment(b *bytes.Buffer, marker byte, payload []byte) {
	b.WriteByte(0xFF)
	b.WriteByte(marker)
	// Segment length counts its own two bytes.
	var length [2]byte
	binary.BigEndian.PutUint16(length[:], uint16(len(payload)+2))
	b.Write(length[:])
	b.Write(payload)
}

// WebP assembles a RIFF/WEBP container with EXIF and XMP chunks. A
// placeholder bitstream chunk with an odd payload length precedes them, so
// walkers must honor RIFF padding to find the metadata.
func WebP(exifBlob []byte, xmpPacket string) []byte {
	var payload bytes.Buffer
	payload.WriteString("WEBP")

	writeRIFFChunk(&payload, "VP8L", []byte{0x2F, 0x00, 0x00, 0x00, 0x00})
	if len(exifBlob) > 0 {
		writeRIFFChunk(&payload, "EXIF", exifBlob)
	}
	if xmpPacket != "" {
		writeRIFFChunk(&payload, "XMP ", []byte(xmpPacket))
	}

	var b bytes.Buffer
	b.WriteString("RIFF")
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(payload.Len()))
	b.Write(size[:])
	b.Write(payload.Bytes())
	return b.Bytes()
}

func writeRIFFChunk(b *bytes.Buffer, fourCC string, data []byte) {
	b.WriteString(fourCC)
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(data)))
	b.Write(size[:])
	b.Write(data)
	if len(data)%2 == 1 {
		b.WriteByte(0)
	}
}

// xmpTemplates maps the short tag names the reader understands to their
// XML spellings inside the packet.
var xmpTemplates = map[string]struct{ open, close string }{
	"description":     {`<dc:description><rdf:Alt><rdf:li xml:lang="x-default">`, `</rdf:li></rdf:Alt></dc:description>`},
	"creator":         {`<dc:creator><rdf:Seq><rdf:li>`, `</rdf:li></rdf:Seq></dc:creator>`},
	"rights":          {`<dc:rights><rdf:Alt><rdf:li xml:lang="x-default">`, `</rdf:li></rdf:Alt></dc:rights>`},
	"creator_tool":    {`<xmp:CreatorTool>`, `</xmp:CreatorTool>`},
	"category":        {`<photoshop:Category>`, `</photoshop:Category>`},
	"credit":          {`<photoshop:Credit>`, `</photoshop:Credit>`},
	"seed":            {`<mflux:seed>`, `</mflux:seed>`},
	"steps":           {`<mflux:steps>`, `</mflux:steps>`},
	"guidance":        {`<mflux:guidance>`, `</mflux:guidance>`},
	"model":           {`<mflux:model>`, `</mflux:model>`},
	"loras":           {`<mflux:loras>`, `</mflux:loras>`},
	"generation_time": {`<mflux:generationTime>`, `</mflux:generationTime>`},
}

// XMPPacket renders an XMP packet with the given tag values, spelled the
// way the production pipeline writes them. Unknown keys panic: a typo in a
// fixture should fail loudly, not silently weaken a test.
func XMPPacket(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if _, ok := xmpTemplates[k]; !ok {
			panic(fmt.Sprintf("testimg: unknown xmp tag %q", k))
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	b.WriteString(`<?xpacket begin="` + "\uFEFF" + `" id="W5M0MpCehiHzreSzNTczkc9d"?>`)
	b.WriteString(`<x:xmpmeta xmlns:x="adobe:ns:meta/">`)
	b.WriteString(`<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">`)
	b.WriteString(`<rdf:Description rdf:about=""` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/"` +
		` xmlns:xmp="http://ns.adobe.com/xap/1.0/"` +
		` xmlns:photoshop="http://ns.adobe.com/photoshop/1.0/"` +
		` xmlns:mflux="http://mflux.ai/ns/1.0/">`)
	for _, k := range keys {
		tpl := xmpTemplates[k]
		b.WriteString(tpl.open)
		b.WriteString(values[k])
		b.WriteString(tpl.close)
	}
	b.WriteString(`</rdf:Description></rdf:RDF></x:xmpmeta>`)
	b.WriteString(`<?xpacket end="w"?>`)
	return b.String()
}
