package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/mvc-kit/create-mvc-structure/internal/manifest"
	"github.com/spf13/afero"
	"github.com/subosito/gotenv"
)

// Check status labels.
const (
	StatusOK   = "OK"
	StatusMiss = "MISS"
	StatusFail = "FAIL"
)

// Check is the result of one project health check.
type Check struct {
	Status string
	Name   string
	Detail string
}

// Report collects the checks run against a generated project.
type Report struct {
	Root   string
	Checks []Check
}

// Healthy reports whether every check passed.
func (r *Report) Healthy() bool {
	for _, c := range r.Checks {
		if c.Status != StatusOK {
			return false
		}
	}
	return true
}

// Print writes the report in "[ OK ] name" form.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "Project check: %s\n", r.Root)
	for _, c := range r.Checks {
		line := fmt.Sprintf("  [%-4s] %s", c.Status, c.Name)
		if c.Detail != "" {
			line += " (" + c.Detail + ")"
		}
		fmt.Fprintln(w, line)
	}
}

func (r *Report) add(status, name, detail string) {
	r.Checks = append(r.Checks, Check{Status: status, Name: name, Detail: detail})
}

// CheckProject verifies that root holds the full layout, that the manifest
// validates and that .env defines a numeric PORT. A missing root is an
// error; everything else is reported as a check.
func CheckProject(fsys afero.Fs, root string) (*Report, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("project directory %s does not exist", root)
		}
		return nil, fmt.Errorf("checking %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	r := &Report{Root: root}

	for _, dir := range Directories {
		checkEntry(fsys, r, root, dir, true)
	}
	for _, name := range FileNames() {
		checkEntry(fsys, r, root, name, false)
	}

	checkManifest(fsys, r, filepath.Join(root, ManifestFile))
	checkEnv(fsys, r, filepath.Join(root, EnvFile))

	return r, nil
}

func checkEntry(fsys afero.Fs, r *Report, root, rel string, wantDir bool) {
	info, err := fsys.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.add(StatusMiss, rel, "")
	case err != nil:
		r.add(StatusFail, rel, err.Error())
	case info.IsDir() != wantDir:
		if wantDir {
			r.add(StatusFail, rel, "not a directory")
		} else {
			r.add(StatusFail, rel, "is a directory")
		}
	default:
		r.add(StatusOK, rel, "")
	}
}

func checkManifest(fsys afero.Fs, r *Report, path string) {
	name := manifest.FileName + " schema"
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		r.add(StatusFail, name, "unreadable")
		return
	}
	result, err := manifest.Validate(data)
	if err != nil {
		r.add(StatusFail, name, err.Error())
		return
	}
	if !result.Valid {
		r.add(StatusFail, name, result.Summary())
		for _, issue := range result.Issues {
			r.add(StatusFail, name, issue.String())
		}
		return
	}
	r.add(StatusOK, name, "")
}

func checkEnv(fsys afero.Fs, r *Report, path string) {
	name := EnvFile + " PORT"
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		r.add(StatusFail, name, "unreadable")
		return
	}
	env, err := gotenv.StrictParse(bytes.NewReader(data))
	if err != nil {
		r.add(StatusFail, name, err.Error())
		return
	}
	port, ok := env["PORT"]
	if !ok {
		r.add(StatusMiss, name, "")
		return
	}
	if _, err := strconv.Atoi(port); err != nil {
		r.add(StatusFail, name, fmt.Sprintf("not a number: %q", port))
		return
	}
	r.add(StatusOK, name, "PORT="+port)
}
