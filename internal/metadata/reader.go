package metadata

import (
	"fmt"
	"os"

	"github.com/tdh-archive/mflux/internal/logging"
	"github.com/tdh-archive/mflux/pkg/mflux"
)

// imageFormat identifies the container of an image byte stream.
type imageFormat int

const (
	formatUnknown imageFormat = iota
	formatPNG
	formatJPEG
	formatWebP
	formatTIFF
)

func (f imageFormat) String() string {
	switch f {
	case formatPNG:
		return "png"
	case formatJPEG:
		return "jpeg"
	case formatWebP:
		return "webp"
	case formatTIFF:
		return "tiff"
	}
	return "unknown"
}

// detectFormat sniffs the container from its magic bytes. Extensions are
// ignored; renamed files keep working.
func detectFormat(data []byte) imageFormat {
	switch {
	case len(data) >= 8 && string(data[:8]) == pngSignature:
		return formatPNG
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return formatJPEG
	case len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return formatWebP
	case len(data) >= 4 && (string(data[:4]) == "II*\x00" || string(data[:4]) == "MM\x00*"):
		return formatTIFF
	}
	return formatUnknown
}

// Reader extracts the generation metadata groups from image files.
type Reader struct {
	log mflux.Logger
}

// NewReader creates a Reader. A nil logger silences diagnostics.
func NewReader(log mflux.Logger) *Reader {
	if log == nil {
		log = logging.NewNullLogger()
	}
	return &Reader{log: log}
}

// ReadAll reads both metadata groups from the image at path. Groups whose
// carrier is missing or unreadable come back absent; the only error is a
// failed file read.
func (r *Reader) ReadAll(path string) (*mflux.ImageMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return r.Read(data), nil
}

// Read extracts both metadata groups from an in-memory image.
func (r *Reader) Read(data []byte) *mflux.ImageMetadata {
	meta := &mflux.ImageMetadata{}

	var exifBlob, xmpPacket []byte
	var err error

	format := detectFormat(data)
	switch format {
	case formatPNG:
		exifBlob, xmpPacket, err = pngCarriers(data)
	case formatJPEG:
		exifBlob, xmpPacket, err = jpegCarriers(data)
	case formatWebP:
		exifBlob, xmpPacket, err = webpCarriers(data)
	case formatTIFF:
		exifBlob = data
	default:
		r.log.Verbose("unrecognized image container, no metadata carriers")
		return meta
	}
	if err != nil {
		// Keep whatever the walk found before it stopped.
		r.log.Verbose("%s carrier walk stopped early: %v", format, err)
	}

	if len(exifBlob) > 0 {
		r.log.Verbose("%s: exif carrier found (%d bytes)", format, len(exifBlob))
		meta.Exif = r.decodeExif(exifBlob)
	}
	if len(xmpPacket) > 0 {
		r.log.Verbose("%s: xmp carrier found (%d bytes)", format, len(xmpPacket))
		meta.XMP = parseXMP(xmpPacket)
	}
	return meta
}
