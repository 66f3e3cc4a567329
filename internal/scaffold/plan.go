package scaffold

import "path/filepath"

// PlanTarget joins the working directory and the project name into the
// target path. It is a pure function: cwd is passed in rather than read
// from the process, and the name is not checked for ".." segments.
func PlanTarget(cwd, projectName string) string {
	return filepath.Join(cwd, projectName)
}
