package mflux_test

import (
	"encoding/json"
	"testing"

	"github.com/tdh-archive/mflux/pkg/mflux"
)

func TestDecodeAttributes_FullRecord(t *testing.T) {
	doc := `{
		"prompt": "a cat in a hat",
		"negative_prompt": "blurry",
		"model": "dev",
		"width": 1024,
		"height": 768,
		"seed": 42,
		"steps": 20,
		"guidance": 3.5,
		"quantize": 8,
		"precision": "bfloat16",
		"lora_paths": ["/loras/a.safetensors"],
		"lora_scales": [0.8],
		"image_path": "/in/source.png",
		"image_strength": 0.4,
		"generation_time_seconds": 12.3,
		"created_at": "2024-03-05T10:15:30",
		"mflux_version": "0.4.1"
	}`

	attrs, err := mflux.DecodeAttributes([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeAttributes returned error: %v", err)
	}

	if attrs.Prompt != "a cat in a hat" {
		t.Errorf("Prompt = %q", attrs.Prompt)
	}
	if attrs.Seed != 42 || attrs.Steps != 20 || attrs.Guidance != 3.5 {
		t.Errorf("sampler settings = %d/%d/%v", attrs.Seed, attrs.Steps, attrs.Guidance)
	}
	if attrs.Quantize != 8 || attrs.Precision != "bfloat16" {
		t.Errorf("technical settings = %d/%q", attrs.Quantize, attrs.Precision)
	}
	if len(attrs.LoraPaths) != 1 || attrs.LoraPaths[0] != "/loras/a.safetensors" {
		t.Errorf("LoraPaths = %v", attrs.LoraPaths)
	}
	if attrs.CreatedAt != "2024-03-05T10:15:30" {
		t.Errorf("CreatedAt = %q", attrs.CreatedAt)
	}
	if attrs.IsZero() {
		t.Error("IsZero() = true for a populated record")
	}
}

func TestDecodeAttributes_EmptyObject(t *testing.T) {
	attrs, err := mflux.DecodeAttributes([]byte(`{}`))
	if err != nil {
		t.Fatalf("DecodeAttributes returned error: %v", err)
	}
	if !attrs.IsZero() {
		t.Errorf("IsZero() = false for an empty document: %+v", attrs)
	}
}

func TestDecodeAttributes_KeepsFieldsPastTypeMismatch(t *testing.T) {
	// A foreign writer stored steps as a string; the rest of the record
	// must survive.
	doc := `{"model": "schnell", "steps": "twenty", "seed": 7}`

	attrs, err := mflux.DecodeAttributes([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeAttributes returned error: %v", err)
	}
	if attrs.Model != "schnell" {
		t.Errorf("Model = %q, want %q", attrs.Model, "schnell")
	}
	if attrs.Seed != 7 {
		t.Errorf("Seed = %d, want 7", attrs.Seed)
	}
	if attrs.Steps != 0 {
		t.Errorf("Steps = %d, want 0 for the mismatched field", attrs.Steps)
	}
}

func TestDecodeAttributes_MalformedJSON(t *testing.T) {
	if _, err := mflux.DecodeAttributes([]byte(`{"model": `)); err == nil {
		t.Fatal("expected error for truncated JSON, got nil")
	}
}

func TestDecodeAttributes_UnknownFieldsIgnored(t *testing.T) {
	attrs, err := mflux.DecodeAttributes([]byte(`{"model": "dev", "sampler": "euler"}`))
	if err != nil {
		t.Fatalf("DecodeAttributes returned error: %v", err)
	}
	if attrs.Model != "dev" {
		t.Errorf("Model = %q, want %q", attrs.Model, "dev")
	}
}

func TestLooseString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want mflux.LooseString
	}{
		{"string", `{"created_at": "2024-03-05T10:15:30"}`, "2024-03-05T10:15:30"},
		{"integer", `{"created_at": 1712345678}`, "1712345678"},
		{"float", `{"created_at": 3.25}`, "3.25"},
		{"boolean", `{"created_at": true}`, "true"},
		{"null", `{"created_at": null}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attrs mflux.Attributes
			if err := json.Unmarshal([]byte(tt.doc), &attrs); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}
			if attrs.CreatedAt != tt.want {
				t.Errorf("CreatedAt = %q, want %q", attrs.CreatedAt, tt.want)
			}
		})
	}
}

func TestAttributes_IsZero(t *testing.T) {
	tests := []struct {
		name  string
		attrs *mflux.Attributes
		want  bool
	}{
		{"nil receiver", nil, true},
		{"zero struct", &mflux.Attributes{}, true},
		{"recorded zeros only", &mflux.Attributes{Steps: 0, Guidance: 0}, true},
		{"prompt set", &mflux.Attributes{Prompt: "x"}, false},
		{"seed set", &mflux.Attributes{Seed: 42}, false},
		{"lora paths set", &mflux.Attributes{LoraPaths: []string{"a"}}, false},
		{"created_at set", &mflux.Attributes{CreatedAt: "now"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attrs.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImageMetadata_Empty(t *testing.T) {
	tests := []struct {
		name string
		meta *mflux.ImageMetadata
		want bool
	}{
		{"nil metadata", nil, true},
		{"both groups absent", &mflux.ImageMetadata{}, true},
		{"zero exif and empty xmp", &mflux.ImageMetadata{Exif: &mflux.Attributes{}, XMP: mflux.XMPAttributes{}}, true},
		{"exif only", &mflux.ImageMetadata{Exif: &mflux.Attributes{Model: "dev"}}, false},
		{"xmp only", &mflux.ImageMetadata{XMP: mflux.XMPAttributes{"seed": "42"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.meta.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}
