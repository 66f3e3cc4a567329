package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mvc-kit/create-mvc-structure/internal/branding"
	"github.com/mvc-kit/create-mvc-structure/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// ErrUsage marks errors caused by a malformed invocation.
var ErrUsage = errors.New("usage error")

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-directory>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new directory containing a minimal Express application
laid out as controllers, models, routes, views, config and middleware,
then installs its dependencies with the host package manager.`,
	Example: "  " + branding.CLIName() + " my-app\n" +
		"  " + branding.CLIName() + " my-app --port 8090 --package-manager pnpm",
	Args:          requireProjectDir,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		return config.BindFlags(cmd.Flags())
	},
	RunE: runCreate,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), usageMessage(err))
		} else {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}
	return err
}

// ExitCode maps an Execute error to a process exit status: 1 for any error,
// including a failed package manager whose own status is only reported in
// the error text.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// requireProjectDir accepts exactly one non-empty positional argument.
func requireProjectDir(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("%w: please specify the project directory:\n  %s <project-directory>", ErrUsage, branding.CLIName())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected one project directory, got %d arguments:\n  %s <project-directory>", ErrUsage, len(args), branding.CLIName())
	}
	return nil
}

// usageMessage strips the sentinel prefix so the text reads as plain usage help.
func usageMessage(err error) string {
	return strings.TrimPrefix(err.Error(), ErrUsage.Error()+": ")
}
