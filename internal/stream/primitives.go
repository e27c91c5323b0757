package stream

import "math"

// Typed primitive I/O over a Stream, generalized from the teacher's
// random-access-by-offset style (ReadUint64(r, offset, order)) to
// sequential cursor semantics: every helper here reads or writes at the
// stream's current position and advances it, leaving the sticky error in
// place on a short transfer.

// ReadU8 reads one unsigned byte.
func ReadU8(s Stream) uint8 {
	var b [1]byte
	s.Read(b[:])
	return b[0]
}

// WriteU8 writes one unsigned byte.
func WriteU8(s Stream, v uint8) {
	s.Write([]byte{v})
}

// ReadI8 reads one signed byte.
func ReadI8(s Stream) int8 {
	return int8(ReadU8(s))
}

// WriteI8 writes one signed byte.
func WriteI8(s Stream, v int8) {
	WriteU8(s, uint8(v))
}

// ReadU16 reads a 16-bit unsigned integer in the stream's current order.
func ReadU16(s Stream) uint16 {
	var b [2]byte
	s.Read(b[:])
	return s.Order().Uint16(b[:])
}

// WriteU16 writes a 16-bit unsigned integer in the stream's current order.
func WriteU16(s Stream, v uint16) {
	var b [2]byte
	s.Order().PutUint16(b[:], v)
	s.Write(b[:])
}

// ReadI16 reads a 16-bit signed integer.
func ReadI16(s Stream) int16 {
	return int16(ReadU16(s))
}

// WriteI16 writes a 16-bit signed integer.
func WriteI16(s Stream, v int16) {
	WriteU16(s, uint16(v))
}

// ReadU32 reads a 32-bit unsigned integer in the stream's current order.
func ReadU32(s Stream) uint32 {
	var b [4]byte
	s.Read(b[:])
	return s.Order().Uint32(b[:])
}

// WriteU32 writes a 32-bit unsigned integer in the stream's current order.
func WriteU32(s Stream, v uint32) {
	var b [4]byte
	s.Order().PutUint32(b[:], v)
	s.Write(b[:])
}

// ReadI32 reads a 32-bit signed integer.
func ReadI32(s Stream) int32 {
	return int32(ReadU32(s))
}

// WriteI32 writes a 32-bit signed integer.
func WriteI32(s Stream, v int32) {
	WriteU32(s, uint32(v))
}

// ReadU64 reads a 64-bit unsigned integer in the stream's current order.
func ReadU64(s Stream) uint64 {
	var b [8]byte
	s.Read(b[:])
	return s.Order().Uint64(b[:])
}

// WriteU64 writes a 64-bit unsigned integer in the stream's current order.
func WriteU64(s Stream, v uint64) {
	var b [8]byte
	s.Order().PutUint64(b[:], v)
	s.Write(b[:])
}

// ReadI64 reads a 64-bit signed integer.
func ReadI64(s Stream) int64 {
	return int64(ReadU64(s))
}

// WriteI64 writes a 64-bit signed integer.
func WriteI64(s Stream, v int64) {
	WriteU64(s, uint64(v))
}

// ReadBool reads one byte; non-zero is true.
func ReadBool(s Stream) bool {
	return ReadU8(s) != 0
}

// WriteBool writes a boolean as one byte, 1 or 0.
func WriteBool(s Stream, v bool) {
	if v {
		WriteU8(s, 1)
		return
	}
	WriteU8(s, 0)
}

// ReadF32 reads an IEEE-754 single-precision float via bit-cast.
func ReadF32(s Stream) float32 {
	return math.Float32frombits(ReadU32(s))
}

// WriteF32 writes an IEEE-754 single-precision float via bit-cast.
func WriteF32(s Stream, v float32) {
	WriteU32(s, math.Float32bits(v))
}

// ReadF64 reads an IEEE-754 double-precision float via bit-cast.
func ReadF64(s Stream) float64 {
	return math.Float64frombits(ReadU64(s))
}

// WriteF64 writes an IEEE-754 double-precision float via bit-cast.
func WriteF64(s Stream, v float64) {
	WriteU64(s, math.Float64bits(v))
}

// ReadArray reads a fixed-size span of n raw bytes.
func ReadArray(s Stream, n int) []byte {
	buf := make([]byte, n)
	s.Read(buf)
	return buf
}

// WriteArray writes a fixed-size span of raw bytes verbatim.
func WriteArray(s Stream, buf []byte) {
	s.Write(buf)
}

// Enum is the set of underlying integer widths an enum may be transcoded as.
type Enum interface {
	~uint8 | ~uint16 | ~uint32
}

// ReadEnum reads an enum transcoded as its underlying width.
func ReadEnum[T Enum](s Stream) T {
	switch uint64(^T(0)) {
	case math.MaxUint8:
		return T(ReadU8(s))
	case math.MaxUint16:
		return T(ReadU16(s))
	default:
		return T(ReadU32(s))
	}
}

// WriteEnum writes an enum transcoded as its underlying width.
func WriteEnum[T Enum](s Stream, v T) {
	switch uint64(^T(0)) {
	case math.MaxUint8:
		WriteU8(s, uint8(v))
	case math.MaxUint16:
		WriteU16(s, uint16(v))
	default:
		WriteU32(s, uint32(v))
	}
}
