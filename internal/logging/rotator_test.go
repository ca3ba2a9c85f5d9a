package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backups(t *testing.T, dir, base string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), base+".") {
			out = append(out, e.Name())
		}
	}
	return out
}

func TestRotatingFile_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panedrawer.log")
	r, err := NewRotatingFile(path, 1, 2, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	chunk := make([]byte, 700*1024)
	for i := 0; i < 4; i++ {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	assert.Len(t, backups(t, dir, "panedrawer.log"), 2)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestRotatingFile_Compress(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panedrawer.log")
	r, err := NewRotatingFile(path, 1, 0, true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	chunk := make([]byte, 700*1024)
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	names := backups(t, dir, "panedrawer.log")
	require.Len(t, names, 1)
	assert.True(t, strings.HasSuffix(names[0], ".gz"))
}

func TestRotatingFile_ZeroSizeNeverRotates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panedrawer.log")
	r, err := NewRotatingFile(path, 0, 1, false)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := r.Write(make([]byte, 1024))
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())

	assert.Empty(t, backups(t, dir, "panedrawer.log"))
}
