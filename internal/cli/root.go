package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "sortvis",
	Short: "Watch sorting algorithms work, one swap at a time",
	Long: `sortvis draws a shuffled sequence as bars and animates nine sorting
algorithms over it: bubble, cocktail, quick, shell, heap, merge, selection,
insertion and gnome. Runs can be paused, fast-forwarded and, for resumable
algorithms, continued where they stopped.

Settings are read from .sortvis/config.yaml in the current directory
(see 'sortvis init') and can be overridden with flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("sortvis version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
