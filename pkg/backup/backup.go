package backup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"

	"github.com/macropower/propedit/pkg/properrors"
)

// TimeLayout is the timestamp layout used in snapshot names.
const TimeLayout = "02-01-2006_15:04"

// Snapshotter copies files before they are modified.
type Snapshotter struct {
	now      func() time.Time
	tool     string
	compress bool
}

// Option configures a [Snapshotter].
type Option func(*Snapshotter)

// WithCompression gzips snapshots and adds a ".gz" suffix.
func WithCompression(compress bool) Option {
	return func(s *Snapshotter) {
		s.compress = compress
	}
}

// WithClock sets the clock used to name snapshots.
func WithClock(now func() time.Time) Option {
	return func(s *Snapshotter) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSnapshotter creates a [Snapshotter]. The tool name is part of every
// snapshot name.
func NewSnapshotter(tool string, opts ...Option) *Snapshotter {
	s := &Snapshotter{
		now:  time.Now,
		tool: tool,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the preferred snapshot name for path.
func (s *Snapshotter) Name(path string) string {
	name := fmt.Sprintf("%s.%s-bkup_%s", path, s.tool, s.now().Format(TimeLayout))
	if s.compress {
		name += ".gz"
	}

	return name
}

// Snapshot copies path and returns the location of the copy. If the
// preferred name is taken, a short random suffix is added.
func (s *Snapshotter) Snapshot(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w %q: %w", properrors.ErrBackup, properrors.ErrReadFile, path, err)
	}
	defer src.Close()

	fi, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %w %q: %w", properrors.ErrBackup, properrors.ErrReadFile, path, err)
	}

	dst, name, err := s.create(path, fi.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("%w: %w", properrors.ErrBackup, err)
	}

	if err := s.copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(name)

		return "", fmt.Errorf("%w: %w %q: %w", properrors.ErrBackup, properrors.ErrWriteFile, name, err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("%w: %w %q: %w", properrors.ErrBackup, properrors.ErrWriteFile, name, err)
	}

	return name, nil
}

func (s *Snapshotter) create(path string, perm fs.FileMode) (*os.File, string, error) {
	name := s.Name(path)

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if errors.Is(err, fs.ErrExist) {
		suffix := uuid.NewString()[:8]
		if s.compress {
			name = name[:len(name)-len(".gz")] + "_" + suffix + ".gz"
		} else {
			name = name + "_" + suffix
		}

		f, err = os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	}

	if err != nil {
		return nil, "", fmt.Errorf("%w %q: %w", properrors.ErrWriteFile, name, err)
	}

	return f, name, nil
}

func (s *Snapshotter) copy(dst io.Writer, src io.Reader) error {
	if !s.compress {
		_, err := io.Copy(dst, src)
		if err != nil {
			return fmt.Errorf("copy: %w", err)
		}

		return nil
	}

	zw := gzip.NewWriter(dst)

	if _, err := io.Copy(zw, src); err != nil {
		_ = zw.Close()

		return fmt.Errorf("compress: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	return nil
}
