package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tdh-archive/mflux/pkg/mflux"
)

const (
	// NoMetadataMessage is the literal report body for an image whose
	// generation record is absent or entirely empty.
	NoMetadataMessage = "No metadata found"

	// reportTitle sits between the header rules of every report.
	reportTitle = "MFLUX Image Information"

	// ruleWidth is the column width of the header and footer rules.
	ruleWidth = 60

	// defaultLoraScale fills entries missing from a lora_scales list that
	// is shorter than lora_paths.
	defaultLoraScale = 1.0
)

// Format renders the generation record as the fixed-order text report and
// returns it as a single string without a trailing newline.
//
// Fields render under truthy presence checks (see the package doc); paths
// render as their basename only, so reports stay stable when images move
// between machines.
func Format(attrs *mflux.Attributes) string {
	if attrs.IsZero() {
		return NoMetadataMessage
	}

	rule := strings.Repeat("=", ruleWidth)
	lines := []string{rule, reportTitle, rule}

	if attrs.Prompt != "" {
		lines = append(lines, "", "Prompt: "+attrs.Prompt)
	}
	if attrs.NegativePrompt != "" {
		lines = append(lines, "Negative Prompt: "+attrs.NegativePrompt)
	}

	// The model group keeps its separator even when empty; the spacing of
	// existing reports depends on it. Same for the sampler and closing
	// groups below.
	lines = append(lines, "")
	if attrs.Model != "" {
		lines = append(lines, "Model: "+attrs.Model)
	}
	if attrs.Width != 0 {
		lines = append(lines, fmt.Sprintf("Width: %d", attrs.Width))
	}
	if attrs.Height != 0 {
		lines = append(lines, fmt.Sprintf("Height: %d", attrs.Height))
	}

	lines = append(lines, "")
	if attrs.Seed != 0 {
		lines = append(lines, fmt.Sprintf("Seed: %d", attrs.Seed))
	}
	if attrs.Steps != 0 {
		lines = append(lines, fmt.Sprintf("Steps: %d", attrs.Steps))
	}
	if attrs.Guidance != 0 {
		lines = append(lines, "Guidance: "+formatNumber(attrs.Guidance))
	}
	if attrs.Quantize != 0 {
		lines = append(lines, fmt.Sprintf("Quantization: %d-bit", attrs.Quantize))
	}
	if attrs.Precision != "" {
		lines = append(lines, "Precision: "+attrs.Precision)
	}

	if len(attrs.LoraPaths) > 0 {
		lines = append(lines, "", fmt.Sprintf("LoRAs (%d):", len(attrs.LoraPaths)))
		for i, path := range attrs.LoraPaths {
			scale := defaultLoraScale
			if i < len(attrs.LoraScales) {
				scale = attrs.LoraScales[i]
			}
			lines = append(lines, fmt.Sprintf("  - %s (scale: %s)", filepath.Base(path), formatNumber(scale)))
		}
	}

	if attrs.ImagePath != "" {
		lines = append(lines, "", "Source Image: "+filepath.Base(attrs.ImagePath))
		if attrs.ImageStrength != 0 {
			lines = append(lines, "Image Strength: "+formatNumber(attrs.ImageStrength))
		}
	}

	if attrs.ControlnetImagePath != "" {
		lines = append(lines, "", "ControlNet Image: "+filepath.Base(attrs.ControlnetImagePath))
		if attrs.ControlnetStrength != 0 {
			lines = append(lines, "ControlNet Strength: "+formatNumber(attrs.ControlnetStrength))
		}
	}

	lines = append(lines, "")
	if attrs.GenerationTimeSeconds != 0 {
		lines = append(lines, fmt.Sprintf("Generation Time: %.2fs", attrs.GenerationTimeSeconds))
	}
	if attrs.CreatedAt != "" {
		lines = append(lines, "Created: "+formatTimestamp(string(attrs.CreatedAt)))
	}
	if attrs.MfluxVersion != "" {
		lines = append(lines, "MFLUX Version: "+attrs.MfluxVersion)
	}

	lines = append(lines, rule)

	return strings.Join(lines, "\n")
}
