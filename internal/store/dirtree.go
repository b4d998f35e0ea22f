package store

import (
	"io/fs"
	"os"
	"path/filepath"
)

// ReadDirTree walks a directory on disk and builds a MemTree of its
// regular files and symlinks, keyed by slash-separated paths relative to
// root. This is the CLI's stand-in for a real VCS backend (§1 treats the
// object store itself as an external collaborator); it exists so the
// command-line tool has something concrete to diff without depending on a
// live repository.
func ReadDirTree(root string) (*MemTree, error) {
	entries := make(map[Path]TreeValue)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		info, err := d.Info()
		if err != nil {
			entries[Path(rel)] = NewAccessDenied(err)
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := os.Readlink(path)
			if err != nil {
				entries[Path(rel)] = NewAccessDenied(err)
				return nil
			}
			entries[Path(rel)] = NewSymlink(HashContent([]byte(target)), []byte(target))
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			entries[Path(rel)] = NewAccessDenied(err)
			return nil
		}
		executable := info.Mode()&0o111 != 0
		entries[Path(rel)] = NewFile(HashContent(content), executable, BytesReader(content))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewMemTree(entries), nil
}
