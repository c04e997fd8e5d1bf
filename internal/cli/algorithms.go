package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thruflo/sortvis/internal/engine"
	"github.com/thruflo/sortvis/internal/tui"
)

var algorithmsResumable []string

var algorithmsCmd = &cobra.Command{
	Use:     "algorithms",
	Aliases: []string{"algos", "ls"},
	Short:   "List the available algorithms",
	Args:    cobra.NoArgs,
	RunE:    runAlgorithms,
}

func init() {
	algorithmsCmd.Flags().StringSliceVar(&algorithmsResumable, "resumable", nil, "override the resumable set, or 'all'")
	rootCmd.AddCommand(algorithmsCmd)
}

func runAlgorithms(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	flags := configFlags{resumable: algorithmsResumable, interactive: true}
	cfg, err := loadConfig(cmd, cwd, &flags)
	if err != nil {
		return err
	}
	policy := cfg.Policy()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tKEY\tRESUMABLE")
	for _, k := range engine.Kinds {
		fmt.Fprintf(w, "%s\t%s\t%c\t%s\n", k, k.Title(), tui.SelectKey(k), yesNo(policy.Resumable(k)))
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
