// Package metadata reads the generation metadata embedded in images by the
// mflux pipeline.
//
// # Metadata Groups
//
// An image carries up to two independent groups:
//   - Primary ("exif-like"): a JSON document of generation attributes
//     stored in the EXIF UserComment tag (0x9286), behind the standard
//     "ASCII\0\0\0" character-code prefix.
//   - Secondary ("xmp-like"): a fixed set of Dublin Core, XMP, Photoshop
//     and mflux tags inside an XMP packet.
//
// The report renders the primary group; the secondary group only
// participates in the "no metadata at all" decision.
//
// # Carriers
//
// Each container format stores the groups in its own carrier:
//
//	PNG   eXIf chunk (raw TIFF)        iTXt chunk "XML:com.adobe.xmp"
//	JPEG  APP1 "Exif\0\0" segment      APP1 XMP-URI segment
//	WebP  RIFF "EXIF" chunk            RIFF "XMP " chunk
//	TIFF  the file itself              (no XMP carrier)
//
// Carrier payloads that arrive with a leading "Exif\0\0" marker are
// accepted with or without it; writers disagree on this.
//
// # Degradation
//
// Reading is best-effort throughout: an unrecognized container, a corrupt
// carrier, a missing tag or a malformed JSON document all degrade to an
// absent group, never to a process error. The only hard error is failing
// to read the file itself. This mirrors how the producing tool reads its
// own metadata back and keeps the CLI's outcome model to exactly
// "report", "no metadata" or "missing file".
//
// # Package Structure
//
//   - reader.go: Reader, container sniffing, group assembly
//   - png.go, jpeg.go, webp.go: carrier extraction per container
//   - exif.go: TIFF decode and user-comment JSON handling
//   - xmp.go: literal tag scan over the XMP packet
package metadata
