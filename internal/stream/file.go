package stream

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/drxtools/drxfw/internal/utils"
)

// readerAt is the minimal dependency FileStream needs from its backing
// store. *os.File satisfies it; tests inject a fixture that can simulate
// a short read without needing a truncated file on disk.
type readerAt interface {
	ReadAt(p []byte, off int64) (int, error)
}

// FileStream is a read-only stream backed by a readerAt (normally an
// *os.File). Write is a permanent no-op that enters WriteFailed; this
// spec preserves file streams as read-only unless a caller extends them.
type FileStream struct {
	ra     readerAt
	closer io.Closer
	size   int64
	pos    int64
	order  binary.ByteOrder
	state  State
}

// OpenFileStream opens path for read-only, cursor-based access. It fails
// with OpenFailed if the path cannot be opened or stat'd.
func OpenFileStream(path string) (*FileStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return &FileStream{state: OpenFailed, order: binary.LittleEndian}, utils.WrapError(utils.KindOpenFailed, path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return &FileStream{state: OpenFailed, order: binary.LittleEndian}, utils.WrapError(utils.KindOpenFailed, path, err)
	}
	return &FileStream{ra: f, closer: f, size: info.Size(), order: binary.LittleEndian}, nil
}

// newFileStreamFromReaderAt builds a FileStream over an arbitrary readerAt
// fixture of the given logical size, with no underlying Closer. Used by
// tests that need to inject a short or failing read.
func newFileStreamFromReaderAt(ra readerAt, size int64) *FileStream {
	return &FileStream{ra: ra, size: size, order: binary.LittleEndian}
}

// Close releases the underlying file handle. Safe to call multiple times.
func (f *FileStream) Close() error {
	if f.closer == nil {
		return nil
	}
	err := f.closer.Close()
	f.closer = nil
	return err
}

func (f *FileStream) Read(p []byte) int {
	if f.state != OK || f.ra == nil {
		return 0
	}
	avail := f.size - f.pos
	if avail < 0 {
		avail = 0
	}
	n := len(p)
	if int64(n) > avail {
		n = int(avail)
	}
	read, err := f.ra.ReadAt(p[:n], f.pos)
	f.pos += int64(read)
	if err != nil && read < n {
		f.state = ReadFailed
	}
	if read < len(p) {
		f.state = ReadFailed
	}
	return read
}

// Write is a permanent no-op: FileStream is read-only.
func (f *FileStream) Write(p []byte) int {
	f.state = WriteFailed
	return 0
}

func (f *FileStream) Position() int64 {
	return f.pos
}

func (f *FileStream) SetPosition(p int64) {
	if f.state != OK {
		return
	}
	if p < 0 || p > f.size {
		f.state = ReadFailed
		return
	}
	f.pos = p
}

func (f *FileStream) Skip(delta int64) {
	if f.state != OK {
		return
	}
	f.SetPosition(f.pos + delta)
}

func (f *FileStream) Remaining() int64 {
	r := f.size - f.pos
	if r < 0 {
		return 0
	}
	return r
}

func (f *FileStream) SetOrder(order binary.ByteOrder) {
	f.order = order
}

func (f *FileStream) Order() binary.ByteOrder {
	return f.order
}

func (f *FileStream) Err() error {
	if f.state == OK {
		return nil
	}
	return &StreamError{State: f.state}
}
