package platform

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

const (
	dirPerm os.FileMode = 0755
	ownerRW os.FileMode = 0600
)

// excludedNames are files/directories never copied from a template tree.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// CopyFS recursively copies the src tree into dst, creating directories as
// needed and overwriting files that already exist. It returns the slash
// separated paths of the copied files in walk order.
func CopyFS(src fs.FS, dst string) ([]string, error) {
	if err := os.MkdirAll(dst, dirPerm); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dst, err)
	}

	var copied []string
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}
		if shouldExclude(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(target, dirPerm); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			return nil
		}
		// Skip symlinks and other special files during copy.
		if !d.Type().IsRegular() {
			return nil
		}

		if err := copyFile(src, path, target); err != nil {
			return err
		}
		copied = append(copied, path)
		return nil
	})
	if err != nil {
		return copied, err
	}
	return copied, nil
}

// copyFile copies a single file from the src tree to dst. The source mode is
// kept with the owner read/write bits forced on, since embedded files are
// read-only.
func copyFile(src fs.FS, path, dst string) error {
	data, err := fs.ReadFile(src, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := fs.Stat(src, path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	perm := info.Mode().Perm() | ownerRW

	if err := os.WriteFile(dst, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	// WriteFile keeps the mode of a file it overwrites.
	if err := chmod(dst, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", dst, err)
	}
	return nil
}

// shouldExclude returns true if the name should be excluded during copy.
func shouldExclude(name string) bool {
	return excludedNames[name]
}

// chmod is a no-op on Windows, which has no Unix permission bits.
func chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
