// Package stream provides a cursor-based byte stream abstraction with
// pluggable endianness and a sticky error model, shared by the format,
// resource, section, and firmware packages.
package stream

import "encoding/binary"

// State is the sticky error state of a Stream. Once a stream enters a
// non-OK state, every subsequent operation is a no-op that preserves the
// state; callers check the state after a logical group of operations
// rather than after every primitive.
type State int

const (
	// OK is the zero value: no error has occurred.
	OK State = iota
	// OpenFailed means a file-backed stream could not open its path.
	OpenFailed
	// ReadFailed means a read transferred fewer bytes than requested.
	ReadFailed
	// WriteFailed means a write transferred fewer bytes than requested,
	// or was attempted on a read-only variant.
	WriteFailed
)

func (s State) String() string {
	switch s {
	case OpenFailed:
		return "open failed"
	case ReadFailed:
		return "read failed"
	case WriteFailed:
		return "write failed"
	default:
		return "ok"
	}
}

// Stream is the common capability set satisfied by VectorStream, ViewStream,
// and FileStream: read, write, seek, position, remaining, and endianness.
// Write-forbidden variants satisfy Write by entering WriteFailed.
type Stream interface {
	// Read transfers up to len(buf) bytes starting at the current position
	// and advances the position by the number of bytes actually read. It
	// returns the number of bytes transferred; a short transfer sets the
	// sticky error.
	Read(buf []byte) int

	// Write transfers len(buf) bytes starting at the current position and
	// advances the position. The growable variant extends its backing
	// buffer on out-of-range writes; read-only variants fail every write.
	Write(buf []byte) int

	// Position returns the current cursor offset.
	Position() int64

	// SetPosition seeks to an absolute offset. An out-of-range seek sets
	// the sticky error on every variant. The read-only variants accept a
	// seek to exactly the end; the growable variant rejects any position
	// at or past its current length (except 0 on an empty buffer), so
	// growth happens only through writes at the cursor.
	SetPosition(p int64)

	// Skip moves the cursor by a signed delta. A negative result below
	// zero sets the sticky error.
	Skip(delta int64)

	// Remaining returns the number of bytes between the cursor and the end
	// of the stream's content.
	Remaining() int64

	// SetOrder selects the byte order used by typed primitive I/O.
	SetOrder(order binary.ByteOrder)

	// Order returns the current byte order.
	Order() binary.ByteOrder

	// Err returns the sticky error, or nil if the stream is in the OK state.
	Err() error
}

// StreamError reports the sticky State a stream entered.
type StreamError struct {
	State State
}

func (e *StreamError) Error() string {
	return "stream: " + e.State.String()
}
