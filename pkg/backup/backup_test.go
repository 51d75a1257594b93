package backup_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/propedit/pkg/backup"
	"github.com/macropower/propedit/pkg/properrors"
)

func clock() time.Time {
	return time.Date(2026, time.October, 18, 9, 5, 59, 0, time.UTC)
}

func TestSnapshotter_Name(t *testing.T) {
	t.Parallel()

	s := backup.NewSnapshotter("propedit", backup.WithClock(clock))
	assert.Equal(t, "/etc/app.properties.propedit-bkup_18-10-2026_09:05", s.Name("/etc/app.properties"))

	gz := backup.NewSnapshotter("propedit", backup.WithClock(clock), backup.WithCompression(true))
	assert.Equal(t, "app.properties.propedit-bkup_18-10-2026_09:05.gz", gz.Name("app.properties"))
}

func TestSnapshotter_Snapshot(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		compress bool
	}{
		"plain":      {compress: false},
		"compressed": {compress: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			file := filepath.Join(dir, "app.properties")
			require.NoError(t, os.WriteFile(file, []byte("a=1\nb=2\n"), 0o600))

			s := backup.NewSnapshotter("propedit", backup.WithClock(clock), backup.WithCompression(tc.compress))

			first, err := s.Snapshot(file)
			require.NoError(t, err)
			assert.Equal(t, s.Name(file), first)
			assert.Equal(t, "a=1\nb=2\n", readSnapshot(t, first, tc.compress))

			// Same minute: the name is taken, so a suffix is added.
			second, err := s.Snapshot(file)
			require.NoError(t, err)
			assert.NotEqual(t, first, second)
			assert.Equal(t, "a=1\nb=2\n", readSnapshot(t, second, tc.compress))

			if tc.compress {
				assert.True(t, strings.HasSuffix(second, ".gz"))
			}
		})
	}
}

func TestSnapshotter_SnapshotMissing(t *testing.T) {
	t.Parallel()

	s := backup.NewSnapshotter("propedit")

	_, err := s.Snapshot(filepath.Join(t.TempDir(), "missing.properties"))
	require.ErrorIs(t, err, properrors.ErrBackup)
	require.ErrorIs(t, err, properrors.ErrReadFile)
}

func readSnapshot(t *testing.T, path string, compressed bool) string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)

	defer f.Close()

	var r io.Reader = f

	if compressed {
		zr, err := gzip.NewReader(f)
		require.NoError(t, err)

		defer zr.Close()

		r = zr
	}

	b, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(b)
}
