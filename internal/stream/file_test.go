package stream

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// shortReaderAt is a readerAt fixture that always returns fewer bytes
// than requested once past its data, without needing a truncated file on
// disk, so FileStream's read-short handling can be exercised directly.
type shortReaderAt struct {
	data []byte
}

func (m *shortReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(m.data)) {
		return 0, errors.New("offset beyond data")
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, errors.New("short read")
	}
	return n, nil
}

func TestFileStream_InjectedShortReadSetsStickyError(t *testing.T) {
	fs := newFileStreamFromReaderAt(&shortReaderAt{data: []byte{0x11, 0x22, 0x33}}, 3)

	buf := make([]byte, 2)
	n := fs.Read(buf)
	require.Equal(t, 2, n)
	require.NoError(t, fs.Err())

	n = fs.Read(buf)
	require.Equal(t, 1, n)
	require.Error(t, fs.Err())
}

func TestFileStream_OpenAndRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xAA, 0xBB, 0xCC, 0xDD}, 0o600))

	fs, err := OpenFileStream(path)
	require.NoError(t, err)
	defer fs.Close()

	buf := make([]byte, 4)
	n := fs.Read(buf)
	require.Equal(t, 4, n)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, buf)
	require.NoError(t, fs.Err())
}

func TestFileStream_OpenMissingPathFails(t *testing.T) {
	fs, err := OpenFileStream(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
	require.Error(t, fs.Err())
}

func TestFileStream_WriteIsNoOp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x01}, 0o600))

	fs, err := OpenFileStream(path)
	require.NoError(t, err)
	defer fs.Close()

	n := fs.Write([]byte{0xFF})
	require.Equal(t, 0, n)
	require.Error(t, fs.Err())
}

func TestFileStream_ReadPastEndSetsStickyError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x02}, 0o600))

	fs, err := OpenFileStream(path)
	require.NoError(t, err)
	defer fs.Close()

	buf := make([]byte, 4)
	n := fs.Read(buf)
	require.Equal(t, 2, n)
	require.Error(t, fs.Err())
}

func TestFileStream_CloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x01}, 0o600))

	fs, err := OpenFileStream(path)
	require.NoError(t, err)
	require.NoError(t, fs.Close())
	require.NoError(t, fs.Close())
}
