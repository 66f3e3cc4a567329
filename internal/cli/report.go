package cli

import (
	"fmt"
	"io"

	"github.com/mvc-kit/create-mvc-structure/internal/config"
	"github.com/mvc-kit/create-mvc-structure/internal/installer"
	"github.com/mvc-kit/create-mvc-structure/internal/manifest"
	"github.com/mvc-kit/create-mvc-structure/internal/scaffold"
)

type completion struct {
	ProjectName    string
	Manager        string
	DevScript      bool
	InstallSkipped bool
}

func printWarnings(w io.Writer, result *scaffold.Result) {
	if len(result.Warnings) == 0 {
		return
	}
	fmt.Fprintln(w, "\nWarnings:")
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  - %s\n", warning)
	}
}

func printCompletion(w io.Writer, c completion) {
	manager := c.Manager
	if manager == "" {
		manager = config.DefaultPackageManager
	}

	fmt.Fprintf(w, "\nMVC Boilerplate has been successfully set up in %s\n", c.ProjectName)
	fmt.Fprintln(w, "\nNext steps:")

	step := 1
	fmt.Fprintf(w, "  %d. cd %s\n", step, c.ProjectName)
	step++
	if c.InstallSkipped {
		fmt.Fprintf(w, "  %d. %s install\n", step, manager)
		step++
	}
	fmt.Fprintf(w, "  %d. %s\n", step, runScript(manager, manifest.ScriptStart))

	if c.DevScript {
		fmt.Fprintf(w, "\nFor development with auto-restart, run: %s\n", runScript(manager, manifest.ScriptDev))
	}
}

// runScript returns the command line that runs a package.json script.
func runScript(manager, script string) string {
	if script == manifest.ScriptStart {
		return manager + " start"
	}
	if manager == installer.ManagerNPM {
		return "npm run " + script
	}
	return manager + " " + script
}
