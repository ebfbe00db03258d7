package metadata

import (
	"bytes"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/tdh-archive/mflux/pkg/mflux"
)

// asciiCommentPrefix is the EXIF character-code marker in front of the
// JSON user comment. The producer always writes it; readers accept its
// absence.
const asciiCommentPrefix = "ASCII\x00\x00\x00"

// decodeExif turns a raw TIFF carrier into the typed attribute record.
// Every failure degrades to an absent group: a corrupt carrier, a missing
// user comment and a non-JSON comment all read as "no primary metadata".
// A decoded record with no recorded values also counts as absent, so the
// caller sees one representation of "nothing there".
func (r *Reader) decodeExif(blob []byte) *mflux.Attributes {
	blob = bytes.TrimPrefix(blob, []byte(jpegExifPrefix))

	x, err := exif.Decode(bytes.NewReader(blob))
	if err != nil {
		r.log.Verbose("exif decode failed: %v", err)
		return nil
	}

	tag, err := x.Get(exif.UserComment)
	if err != nil {
		r.log.Verbose("no user comment tag: %v", err)
		return nil
	}
	if tag.Type != tiff.DTUndefined && tag.Type != tiff.DTAscii {
		r.log.Verbose("user comment has non-text type %d", tag.Type)
		return nil
	}

	comment := bytes.TrimPrefix(tag.Val, []byte(asciiCommentPrefix))
	comment = bytes.TrimRight(comment, "\x00")
	attrs, err := mflux.DecodeAttributes(comment)
	if err != nil {
		r.log.Verbose("user comment is not a JSON record: %v", err)
		return nil
	}
	if attrs.IsZero() {
		return nil
	}
	return attrs
}
