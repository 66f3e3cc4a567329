// Package installer runs the host package manager's install command inside a
// generated project. The subprocess inherits the caller's stdio and blocks
// until it exits; a non-zero exit status is returned as *ExitError.
package installer
