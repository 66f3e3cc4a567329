package installer

import (
	"context"
	"fmt"
)

// Installer installs the dependencies declared in a project directory.
type Installer interface {
	Install(ctx context.Context, dir string) error
}

// Supported package managers.
const (
	ManagerNPM  = "npm"
	ManagerYarn = "yarn"
	ManagerPNPM = "pnpm"
)

// Managers lists the supported package manager names.
var Managers = []string{ManagerNPM, ManagerYarn, ManagerPNPM}

// Dispatch returns the Installer for the named package manager. Unknown names
// yield an Installer that always fails.
func Dispatch(manager string) Installer {
	switch manager {
	case ManagerNPM, ManagerYarn, ManagerPNPM:
		return &Command{Binary: manager, Args: []string{"install"}}
	default:
		return &unknownManager{name: manager}
	}
}

// ExitError reports a package manager that exited with a non-zero status.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

type unknownManager struct {
	name string
}

func (u *unknownManager) Install(_ context.Context, _ string) error {
	return fmt.Errorf("unknown package manager %q: supported managers are %q, %q and %q",
		u.name, ManagerNPM, ManagerYarn, ManagerPNPM)
}
