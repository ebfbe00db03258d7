package metadata

import (
	"strings"

	"github.com/tdh-archive/mflux/pkg/mflux"
)

// xmpTags lists the packet tags the producer writes, with the exact open
// and close spellings it emits. Dublin Core list values close at their
// rdf:li item tag; everything else closes at its own element.
var xmpTags = []struct {
	key   string
	open  string
	close string
}{
	{"description", `<dc:description><rdf:Alt><rdf:li xml:lang="x-default">`, "</rdf:li>"},
	{"creator", "<dc:creator><rdf:Seq><rdf:li>", "</rdf:li>"},
	{"rights", `<dc:rights><rdf:Alt><rdf:li xml:lang="x-default">`, "</rdf:li>"},
	{"creator_tool", "<xmp:CreatorTool>", "</xmp:CreatorTool>"},
	{"category", "<photoshop:Category>", "</photoshop:Category>"},
	{"credit", "<photoshop:Credit>", "</photoshop:Credit>"},
	{"seed", "<mflux:seed>", "</mflux:seed>"},
	{"steps", "<mflux:steps>", "</mflux:steps>"},
	{"guidance", "<mflux:guidance>", "</mflux:guidance>"},
	{"model", "<mflux:model>", "</mflux:model>"},
	{"loras", "<mflux:loras>", "</mflux:loras>"},
	{"generation_time", "<mflux:generationTime>", "</mflux:generationTime>"},
}

// parseXMP extracts the known tags from an XMP packet. A tag whose open
// or close spelling is missing is simply absent. Returns nil when the
// packet contains none of the tags.
func parseXMP(packet []byte) mflux.XMPAttributes {
	text := string(packet)

	var attrs mflux.XMPAttributes
	for _, tag := range xmpTags {
		start := strings.Index(text, tag.open)
		if start < 0 {
			continue
		}
		rest := text[start+len(tag.open):]
		end := strings.Index(rest, tag.close)
		if end < 0 {
			continue
		}
		if attrs == nil {
			attrs = make(mflux.XMPAttributes, len(xmpTags))
		}
		attrs[tag.key] = rest[:end]
	}
	return attrs
}
