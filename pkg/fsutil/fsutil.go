package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/macropower/propedit/pkg/properrors"
)

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return false
	}

	return true
}

// WriteFileAtomic replaces the contents of path with data. The data is
// written to a temporary file in the same directory and renamed over path,
// so readers see either the old or the new contents. An existing file's
// permissions are kept; otherwise perm is used.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("%w %q: %w", properrors.ErrWriteFile, path, err)
	}

	if err := writeAndSync(f, data); err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("%w %q: %w", properrors.ErrWriteFile, path, err)
	}

	// OpenFile applies the umask, so set the mode explicitly.
	if err := os.Chmod(tmp, perm); err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("%w %q: %w", properrors.ErrWriteFile, path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("%w %q: %w", properrors.ErrWriteFile, path, err)
	}

	return nil
}

func writeAndSync(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()

		return fmt.Errorf("write: %w", err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()

		return fmt.Errorf("sync: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}
