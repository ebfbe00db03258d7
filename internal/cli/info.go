package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tdh-archive/mflux/internal/logging"
	"github.com/tdh-archive/mflux/internal/metadata"
	"github.com/tdh-archive/mflux/internal/report"
	"github.com/tdh-archive/mflux/pkg/mflux"
)

var infoCmd = &cobra.Command{
	Use:   "info <image_path>",
	Short: "Print the generation metadata recorded in an image",
	Long: `Print the generation parameters recorded in an image as a fixed,
human-readable report.

Supported containers are PNG, JPEG, WebP and TIFF. An image that carries
no generation record prints "No metadata found" and exits 1.

Examples:
  # Inspect a generated image
  mflux info ./out/image.png

  # With extraction diagnostics
  mflux info ./out/image.png --verbose`,
	Args: RequireImagePath,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	out, err := imageReport(args[0], logger)
	if out != "" {
		fmt.Println(out)
	}
	return err
}

// imageReport produces the exact text the info command prints for path.
// Expected failures return their sentinel alongside the user-facing
// message; the error is nil whenever the text is a real report.
func imageReport(path string, logger mflux.Logger) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return fmt.Sprintf("Error: Image file not found: %s", path), mflux.ErrImageNotFound
	}

	meta, err := metadata.NewReader(logger).ReadAll(path)
	if err != nil {
		return "", err
	}
	if meta.Empty() {
		return report.NoMetadataMessage, mflux.ErrNoMetadata
	}

	return report.Format(meta.Exif), nil
}
