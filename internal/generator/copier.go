package generator

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultExcludes are the directory entry names never copied out of a template
// bundle: build caches, virtual environments, version control metadata, and
// dependency lockfiles left behind by the packaging environment.
var DefaultExcludes = map[string]struct{}{
	"__pycache__":   {},
	".pytest_cache": {},
	".ruff_cache":   {},
	".venv":         {},
	"venv":          {},
	".git":          {},
	"uv.lock":       {},
}

// CopyTree copies the template tree rooted at src into dest, creating dest and
// every subdirectory. Entries whose name appears in excludes are skipped along
// with their whole subtree. Executable permission bits are preserved where the
// source filesystem reports them. Returns the relative paths of the files
// written, in walk order.
//
// The copy aborts on the first I/O error; partial output is left in place.
func CopyTree(src fs.FS, dest string, excludes map[string]struct{}) ([]string, error) {
	var copied []string

	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path != "." {
			if _, skip := excludes[d.Name()]; skip {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
		}

		target := filepath.Join(dest, filepath.FromSlash(path))

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		content, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		mode := fileMode(d)
		if err := os.WriteFile(target, content, mode); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}

		copied = append(copied, path)
		return nil
	})

	return copied, err
}

// fileMode picks the permission bits for a copied file, carrying over the
// executable bit when the source reports one.
func fileMode(d fs.DirEntry) fs.FileMode {
	info, err := d.Info()
	if err == nil && info.Mode()&0o111 != 0 {
		return 0o755
	}
	return 0o644
}
