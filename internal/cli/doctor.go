package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mvc-kit/create-mvc-structure/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [project-directory]",
	Short: "Verify a generated project",
	Long: `Check that a generated project still has every layout directory and file,
that package.json passes schema and version-range validation, and that .env
defines a numeric PORT. Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		root, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", dir, err)
		}

		report, err := scaffold.CheckProject(afero.NewOsFs(), root)
		if err != nil {
			return err
		}
		report.Print(cmd.OutOrStdout())

		if !report.Healthy() {
			return fmt.Errorf("project check failed for %s", root)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nAll checks passed.")
		return nil
	},
}

