package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mvc-kit/create-mvc-structure/internal/config"
	"github.com/mvc-kit/create-mvc-structure/internal/installer"
	"github.com/mvc-kit/create-mvc-structure/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var createResume bool

func init() {
	rootCmd.Flags().Int("port", config.DefaultPort, "Default port written to .env and index.js")
	rootCmd.Flags().String("package-manager", config.DefaultPackageManager,
		"Package manager used to install dependencies: "+strings.Join(installer.Managers, ", "))
	rootCmd.Flags().Bool("skip-install", false, "Write the project files without installing dependencies")
	rootCmd.Flags().Bool("minimal", false, "Omit the nodemon dev dependency and dev script")
	rootCmd.Flags().BoolVar(&createResume, "resume", false, "Allow an existing project directory and only create missing entries")
}

func runCreate(cmd *cobra.Command, args []string) error {
	projectName := args[0]
	out := cmd.OutOrStdout()

	manager := config.PackageManager()
	skipInstall := config.SkipInstall()
	if !skipInstall && !slices.Contains(installer.Managers, manager) {
		return fmt.Errorf("%w: unsupported package manager %q (supported: %s)",
			ErrUsage, manager, strings.Join(installer.Managers, ", "))
	}

	port, err := config.Port()
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	target := scaffold.PlanTarget(cwd, projectName)

	result, err := scaffold.Generate(afero.NewOsFs(), out, target, scaffold.Options{
		ProjectName: projectName,
		Port:        port,
		Minimal:     config.Minimal(),
		Resume:      createResume,
	})
	if err != nil {
		return err
	}
	printWarnings(out, result)

	if !skipInstall {
		fmt.Fprintln(out, "Installing dependencies...")
		if err := installer.Dispatch(manager).Install(cmd.Context(), target); err != nil {
			return err
		}
	}

	printCompletion(out, completion{
		ProjectName:    projectName,
		Manager:        manager,
		DevScript:      !config.Minimal(),
		InstallSkipped: skipInstall,
	})
	return nil
}
