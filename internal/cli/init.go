package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/sortvis/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .sortvis/config.yaml",
	Long: `Creates the .sortvis/ directory in the current directory with a commented
config.yaml and a .gitignore for the run log.

An existing config.yaml is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config.yaml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	wrote, err := config.WriteDefault(cwd, initForce)
	if err != nil {
		return err
	}
	if !wrote {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.Path(cwd))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", config.Path(cwd))
	return nil
}
