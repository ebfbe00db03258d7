package mflux

import (
	"encoding/json"
	"errors"
)

// Attributes is the primary ("exif-like") generation record embedded in an
// image by the mflux pipeline. Every field is optional; the zero value of a
// field means the producer did not record it. Presence checks are truthy:
// a recorded zero (0, 0.0, "") is indistinguishable from an absent field,
// which matches how existing reports were produced and must be preserved.
type Attributes struct {
	// Prompt and NegativePrompt are the free-text conditioning inputs.
	Prompt         string `json:"prompt,omitempty"`
	NegativePrompt string `json:"negative_prompt,omitempty"`

	// Model identifies the checkpoint used for generation.
	Model string `json:"model,omitempty"`

	// Width and Height are the output dimensions in pixels.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Seed, Steps and Guidance are the sampler settings.
	Seed     int64   `json:"seed,omitempty"`
	Steps    int     `json:"steps,omitempty"`
	Guidance float64 `json:"guidance,omitempty"`

	// Quantize is the weight bit-width; Precision is the compute dtype label.
	Quantize  int    `json:"quantize,omitempty"`
	Precision string `json:"precision,omitempty"`

	// LoraPaths lists the applied LoRA weight files. LoraScales is parallel
	// to it by position; a missing tail entry means the default scale 1.0.
	LoraPaths  []string  `json:"lora_paths,omitempty"`
	LoraScales []float64 `json:"lora_scales,omitempty"`

	// ImagePath and ImageStrength describe an image-to-image source.
	ImagePath     string  `json:"image_path,omitempty"`
	ImageStrength float64 `json:"image_strength,omitempty"`

	// ControlnetImagePath and ControlnetStrength describe a ControlNet input.
	ControlnetImagePath string  `json:"controlnet_image_path,omitempty"`
	ControlnetStrength  float64 `json:"controlnet_strength,omitempty"`

	// GenerationTimeSeconds is the wall-clock duration of the run.
	GenerationTimeSeconds float64 `json:"generation_time_seconds,omitempty"`

	// CreatedAt is an ISO-8601 timestamp in well-formed records, but foreign
	// writers may store anything there; see LooseString.
	CreatedAt LooseString `json:"created_at,omitempty"`

	// MfluxVersion is the version tag of the producing tool.
	MfluxVersion string `json:"mflux_version,omitempty"`
}

// IsZero reports whether no field carries a value. A nil receiver counts
// as empty, so callers can pass a missing record without a guard.
func (a *Attributes) IsZero() bool {
	if a == nil {
		return true
	}
	return a.Prompt == "" &&
		a.NegativePrompt == "" &&
		a.Model == "" &&
		a.Width == 0 &&
		a.Height == 0 &&
		a.Seed == 0 &&
		a.Steps == 0 &&
		a.Guidance == 0 &&
		a.Quantize == 0 &&
		a.Precision == "" &&
		len(a.LoraPaths) == 0 &&
		len(a.LoraScales) == 0 &&
		a.ImagePath == "" &&
		a.ImageStrength == 0 &&
		a.ControlnetImagePath == "" &&
		a.ControlnetStrength == 0 &&
		a.GenerationTimeSeconds == 0 &&
		a.CreatedAt == "" &&
		a.MfluxVersion == ""
}

// DecodeAttributes parses the JSON document stored in the EXIF user comment.
// Type mismatches on individual fields are tolerated: the fields that did
// decode are kept and the rest stay at their zero value, so a partially
// foreign document degrades to a shorter report instead of an error.
// Malformed JSON is an error.
func DecodeAttributes(data []byte) (*Attributes, error) {
	var attrs Attributes
	if err := json.Unmarshal(data, &attrs); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}
	return &attrs, nil
}

// LooseString is a string field that tolerates non-string JSON scalars.
// Decoding a number or boolean keeps the raw token text; null decodes to
// the empty string. It never fails, which keeps a malformed created_at
// value renderable as-is instead of aborting the whole record.
type LooseString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *LooseString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err == nil {
		*s = LooseString(v)
		return nil
	}
	if string(data) == "null" {
		*s = ""
		return nil
	}
	*s = LooseString(data)
	return nil
}

// XMPAttributes is the secondary ("xmp-like") metadata group: the fixed set
// of tags the pipeline writes into the XMP packet, keyed by short name
// (description, creator, rights, creator_tool, category, credit, seed,
// steps, guidance, model, loras, generation_time). Tags absent from the
// packet are absent from the map.
type XMPAttributes map[string]string

// ImageMetadata holds both metadata groups read from one image. Either
// group may be nil when its carrier is missing or unreadable. The report
// renders only the Exif group; XMP participates solely in the
// "no metadata at all" decision.
type ImageMetadata struct {
	Exif *Attributes
	XMP  XMPAttributes
}

// Empty reports whether neither group is present.
func (m *ImageMetadata) Empty() bool {
	if m == nil {
		return true
	}
	return m.Exif.IsZero() && len(m.XMP) == 0
}
