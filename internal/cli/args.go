package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireImagePath validates that exactly one image_path argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireImagePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <image_path>

Usage: %s

Example:
  %s ./out/image.png`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
