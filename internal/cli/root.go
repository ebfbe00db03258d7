package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tdh-archive/mflux/pkg/mflux"
)

var rootCmd = &cobra.Command{
	Use:   "mflux",
	Short: "Inspect generation metadata embedded in mflux images",
	Long: `mflux reads the generation parameters an mflux run records inside its
output images and renders them as a fixed, human-readable report.

The report is built from the primary metadata group embedded in the image:
prompt, model, dimensions, sampler settings, LoRAs, source images and
timing. Images carry the record themselves, so no sidecar files or
databases are consulted.

Exit Codes:
  0 - Report printed
  1 - Image file missing, no metadata present, or any other error`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Expected outcomes (missing file, absent
// metadata) print their own message from the command, so only unexpected
// errors are reported here; without this, SilenceErrors would swallow
// usage mistakes entirely.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, mflux.ErrImageNotFound) && !errors.Is(err, mflux.ErrNoMetadata) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose extraction diagnostics on stderr")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
