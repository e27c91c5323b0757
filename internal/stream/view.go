package stream

import "encoding/binary"

// ViewStream is a read-only stream over a borrowed, contiguous byte slice.
// It never copies or grows its backing data; the caller must keep the
// underlying slice alive for the stream's lifetime.
type ViewStream struct {
	data  []byte
	pos   int64
	order binary.ByteOrder
	state State
}

// NewViewStream wraps data for read-only, cursor-based access. data is
// borrowed, not copied.
func NewViewStream(data []byte) *ViewStream {
	return &ViewStream{data: data, order: binary.LittleEndian}
}

func (v *ViewStream) Read(p []byte) int {
	if v.state != OK {
		return 0
	}
	avail := int64(len(v.data)) - v.pos
	if avail < 0 {
		avail = 0
	}
	n := len(p)
	if int64(n) > avail {
		n = int(avail)
	}
	copy(p[:n], v.data[v.pos:v.pos+int64(n)])
	v.pos += int64(n)
	if n < len(p) {
		v.state = ReadFailed
	}
	return n
}

// Write always fails: ViewStream is read-only.
func (v *ViewStream) Write(p []byte) int {
	v.state = WriteFailed
	return 0
}

func (v *ViewStream) Position() int64 {
	return v.pos
}

func (v *ViewStream) SetPosition(p int64) {
	if v.state != OK {
		return
	}
	if p < 0 || p > int64(len(v.data)) {
		v.state = ReadFailed
		return
	}
	v.pos = p
}

func (v *ViewStream) Skip(delta int64) {
	if v.state != OK {
		return
	}
	v.SetPosition(v.pos + delta)
}

func (v *ViewStream) Remaining() int64 {
	r := int64(len(v.data)) - v.pos
	if r < 0 {
		return 0
	}
	return r
}

func (v *ViewStream) SetOrder(order binary.ByteOrder) {
	v.order = order
}

func (v *ViewStream) Order() binary.ByteOrder {
	return v.order
}

func (v *ViewStream) Err() error {
	if v.state == OK {
		return nil
	}
	return &StreamError{State: v.state}
}
