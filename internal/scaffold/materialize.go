package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// Permissions for created entries.
const (
	DirPerm  fs.FileMode = 0755
	FilePerm fs.FileMode = 0644
)

// ErrTargetExists is returned when the target directory is already present.
var ErrTargetExists = errors.New("target already exists")

// CreateRoot creates the target directory itself. The parent must exist and
// the target must not; an existing target yields an error wrapping both
// ErrTargetExists and fs.ErrExist.
func CreateRoot(fsys afero.Fs, target string) error {
	if err := fsys.Mkdir(target, DirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s: %w", ErrTargetExists, target, err)
		}
		return fmt.Errorf("creating project directory %s: %w", target, err)
	}
	return nil
}

// EnsureDirectories creates each slash-separated dir (with missing parents)
// under root. Existing directories are skipped silently; each created one is
// logged to w. It returns the dirs that were created.
func EnsureDirectories(fsys afero.Fs, w io.Writer, root string, dirs []string) ([]string, error) {
	var created []string
	for _, dir := range dirs {
		dirPath := filepath.Join(root, filepath.FromSlash(dir))
		found, err := pathExists(fsys, dirPath)
		if err != nil {
			return created, err
		}
		if found {
			continue
		}
		if err := fsys.MkdirAll(dirPath, DirPerm); err != nil {
			return created, fmt.Errorf("creating directory %s: %w", dirPath, err)
		}
		fmt.Fprintf(w, "Created directory: %s\n", dir)
		created = append(created, dir)
	}
	return created, nil
}

// EnsureFiles writes each file under root unless something already exists at
// its path. Each written file is logged to w. It returns the names written.
func EnsureFiles(fsys afero.Fs, w io.Writer, root string, files []File) ([]string, error) {
	var created []string
	for _, f := range files {
		filePath := filepath.Join(root, filepath.FromSlash(f.Name))
		found, err := pathExists(fsys, filePath)
		if err != nil {
			return created, err
		}
		if found {
			continue
		}
		if err := afero.WriteFile(fsys, filePath, f.Content, FilePerm); err != nil {
			return created, fmt.Errorf("writing %s: %w", filePath, err)
		}
		fmt.Fprintf(w, "Created file: %s\n", f.Name)
		created = append(created, f.Name)
	}
	return created, nil
}

// pathExists reports whether anything is present at path. Errors other than
// not-exist are returned.
func pathExists(fsys afero.Fs, path string) (bool, error) {
	if _, err := fsys.Stat(path); err == nil {
		return true, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	return false, nil
}
