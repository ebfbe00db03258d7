package metadata

import (
	"testing"

	"github.com/tdh-archive/mflux/internal/testimg"
)

func TestParseXMP_AllTags(t *testing.T) {
	values := map[string]string{
		"description":     "a lighthouse at dusk",
		"creator":         "operator",
		"rights":          "CC0",
		"creator_tool":    "MFLUX",
		"category":        "generated",
		"credit":          "mflux pipeline",
		"seed":            "42",
		"steps":           "20",
		"guidance":        "3.5",
		"model":           "dev",
		"loras":           "style.safetensors",
		"generation_time": "12.3",
	}

	attrs := parseXMP([]byte(testimg.XMPPacket(values)))
	if attrs == nil {
		t.Fatal("parseXMP returned nil for a full packet")
	}
	if len(attrs) != len(values) {
		t.Errorf("parsed %d tags, want %d: %v", len(attrs), len(values), attrs)
	}
	for key, want := range values {
		if attrs[key] != want {
			t.Errorf("attrs[%q] = %q, want %q", key, attrs[key], want)
		}
	}
}

func TestParseXMP_SubsetOfTags(t *testing.T) {
	packet := testimg.XMPPacket(map[string]string{
		"seed":  "7",
		"model": "schnell",
	})

	attrs := parseXMP([]byte(packet))
	if attrs == nil {
		t.Fatal("parseXMP returned nil")
	}
	if attrs["seed"] != "7" || attrs["model"] != "schnell" {
		t.Errorf("attrs = %v", attrs)
	}
	if _, ok := attrs["description"]; ok {
		t.Error("description should be absent")
	}
}

func TestParseXMP_NoKnownTags(t *testing.T) {
	packet := `<x:xmpmeta xmlns:x="adobe:ns:meta/"><rdf:RDF></rdf:RDF></x:xmpmeta>`

	if attrs := parseXMP([]byte(packet)); attrs != nil {
		t.Errorf("parseXMP() = %v, want nil", attrs)
	}
}

func TestParseXMP_EmptyPacket(t *testing.T) {
	if attrs := parseXMP(nil); attrs != nil {
		t.Errorf("parseXMP(nil) = %v, want nil", attrs)
	}
}

func TestParseXMP_UnterminatedTag(t *testing.T) {
	// An open tag without its closer is treated as absent, not as an
	// error and not as a value running to the end of the packet.
	packet := `<mflux:seed>42<mflux:steps>20</mflux:steps>`

	attrs := parseXMP([]byte(packet))
	if attrs == nil {
		t.Fatal("parseXMP returned nil")
	}
	if _, ok := attrs["seed"]; ok {
		t.Errorf("seed should be absent, got %q", attrs["seed"])
	}
	if attrs["steps"] != "20" {
		t.Errorf("steps = %q, want 20", attrs["steps"])
	}
}

func TestParseXMP_EmptyValue(t *testing.T) {
	packet := `<mflux:model></mflux:model>`

	attrs := parseXMP([]byte(packet))
	if attrs == nil {
		t.Fatal("parseXMP returned nil")
	}
	if v, ok := attrs["model"]; !ok || v != "" {
		t.Errorf("model = %q (present=%v), want empty string present", v, ok)
	}
}
