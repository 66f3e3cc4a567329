package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command runs Binary with Args in the project directory.
type Command struct {
	Binary string
	Args   []string

	// Stdin, Stdout and Stderr can be set for testing; they default to the
	// process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// String returns the command line, e.g. "npm install".
func (c *Command) String() string {
	return strings.Join(append([]string{c.Binary}, c.Args...), " ")
}

// Install runs the command with dir as its working directory and waits for
// it to exit. No timeout is applied beyond ctx.
func (c *Command) Install(ctx context.Context, dir string) error {
	bin, err := exec.LookPath(c.Binary)
	if err != nil {
		return fmt.Errorf("%s not found: %w", c.Binary, err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = dir
	cmd.Stdin = orReader(c.Stdin, os.Stdin)
	cmd.Stdout = orWriter(c.Stdout, os.Stdout)
	cmd.Stderr = orWriter(c.Stderr, os.Stderr)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: c.String(), Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s in %s: %w", c, dir, err)
	}
	return nil
}

func orReader(r io.Reader, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orWriter(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
