// Package atomicfile replaces files only after their new content is fully
// written.
package atomicfile // import "go.yhsif.com/img2json/atomicfile"

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const tmpSuffix = ".tmp"

// WriteFile writes src into a temporary file next to path, then renames it
// to path, replacing any existing file.
//
// The parent directory of path must already exist.
// On error path is left untouched and the temporary file is removed.
//
// If path is an existing regular file its permission bits are kept.
// If path is a symlink, the symlink itself is replaced instead of being
// written through.
func WriteFile(path string, src io.WriterTo) (err error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("atomicfile.WriteFile: unable to generate uuid: %w", err)
	}
	dir, base := filepath.Split(path)
	tmp := filepath.Join(dir, "."+base+"."+id.String()+tmpSuffix)

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return fmt.Errorf("atomicfile.WriteFile: unable to create %q: %w", tmp, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if info, statErr := os.Lstat(path); statErr == nil && info.Mode().IsRegular() {
		if err = f.Chmod(info.Mode().Perm()); err != nil {
			return fmt.Errorf("atomicfile.WriteFile: unable to chmod %q: %w", tmp, err)
		}
	}
	if _, err = src.WriteTo(f); err != nil {
		return fmt.Errorf("atomicfile.WriteFile: unable to write %q: %w", tmp, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("atomicfile.WriteFile: unable to sync %q: %w", tmp, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("atomicfile.WriteFile: unable to close %q: %w", tmp, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("atomicfile.WriteFile: unable to rename %q to %q: %w", tmp, path, err)
	}
	return nil
}
