package scaffold

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/mvc-kit/create-mvc-structure/internal/manifest"
	"github.com/spf13/afero"
)

// Options configures a Generate run.
type Options struct {
	ProjectName string
	Port        int
	Minimal     bool
	// Resume accepts an existing target and only fills in missing entries.
	Resume bool
}

// Validate checks the options before anything touches the filesystem.
func (o Options) Validate() error {
	if o.ProjectName == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if o.Port < 1 || o.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", o.Port)
	}
	return nil
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Target      string
	Directories []string // created directories
	Files       []string // created files
	Skipped     []string // layout entries that already existed
	Warnings    []string
}

// Generate materializes the project layout at target. Content is resolved
// before the first write. Without Resume the target must not exist.
// Progress lines go to w. Errors are returned as-is with no rollback of
// entries already written.
func Generate(fsys afero.Fs, w io.Writer, target string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	files, err := RenderFiles(NewData(opts.ProjectName, opts.Port, opts.Minimal))
	if err != nil {
		return nil, err
	}

	if opts.Resume {
		if err := fsys.MkdirAll(target, DirPerm); err != nil {
			return nil, fmt.Errorf("creating project directory %s: %w", target, err)
		}
	} else if err := CreateRoot(fsys, target); err != nil {
		return nil, err
	}

	result := &Result{Target: target}

	result.Directories, err = EnsureDirectories(fsys, w, target, Directories)
	if err != nil {
		return result, err
	}
	result.Files, err = EnsureFiles(fsys, w, target, files)
	if err != nil {
		return result, err
	}

	for _, d := range Directories {
		if !slices.Contains(result.Directories, d) {
			result.Skipped = append(result.Skipped, d)
		}
	}
	for _, f := range files {
		if !slices.Contains(result.Files, f.Name) {
			result.Skipped = append(result.Skipped, f.Name)
		}
	}

	result.Warnings = validateManifest(fsys, filepath.Join(target, ManifestFile))
	return result, nil
}

// validateManifest checks the manifest on disk, which under Resume may be a
// pre-existing one, and turns problems into warnings.
func validateManifest(fsys afero.Fs, path string) []string {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return []string{fmt.Sprintf("Could not read %s: %v", manifest.FileName, err)}
	}
	valResult, err := manifest.Validate(data)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate %s: %v", manifest.FileName, err)}
	}
	var warnings []string
	for _, issue := range valResult.Issues {
		warnings = append(warnings, manifest.FileName+" "+issue.String())
	}
	return warnings
}
