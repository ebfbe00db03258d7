package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		printVersionInfo()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// resolveVersionInfo returns the effective version identity. Release
// builds stamp the ldflags variables; `go install` builds fall back to
// the module version and VCS stamps recorded in build info.
func resolveVersionInfo() (string, string, string) {
	v, c, d := version, commit, date
	if v != "dev" {
		return v, c, d
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v, c, d
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if c == "unknown" && setting.Value != "" {
				c = setting.Value
			}
		case "vcs.time":
			if d == "unknown" && setting.Value != "" {
				d = setting.Value
			}
		}
	}
	return v, c, d
}

// printVersionInfo prints the machine-parseable version line to stdout.
func printVersionInfo() {
	v, c, d := resolveVersionInfo()
	fmt.Printf("mflux %s (%s, %s) %s/%s\n", v, c, d, runtime.GOOS, runtime.GOARCH)
}
