package section

import "encoding/binary"

// GenericSection is a named, versioned section holding an opaque payload.
// Its size on emit always equals len(Data).
type GenericSection struct {
	NameValue    [4]byte
	VersionValue uint32
	Data         []byte
}

func (g *GenericSection) Name() [4]byte   { return g.NameValue }
func (g *GenericSection) Version() uint32 { return g.VersionValue }
func (g *GenericSection) ToBytes() []byte { return g.Data }

// WriteAt overwrites Data in place starting at offset. It is a no-op if
// offset+len(b) exceeds len(Data); it never extends the payload.
func (g *GenericSection) WriteAt(offset int, b []byte) {
	if offset < 0 || offset+len(b) > len(g.Data) {
		return
	}
	copy(g.Data[offset:offset+len(b)], b)
}

// WriteU16At writes a 16-bit little-endian integer at offset, regardless of
// host endianness. Same no-op-past-end guard as WriteAt.
func (g *GenericSection) WriteU16At(offset int, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	g.WriteAt(offset, b[:])
}

// WriteU32At writes a 32-bit little-endian integer at offset, regardless of
// host endianness. Same no-op-past-end guard as WriteAt.
func (g *GenericSection) WriteU32At(offset int, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	g.WriteAt(offset, b[:])
}

// WriteU64At writes a 64-bit little-endian integer at offset, regardless of
// host endianness. Same no-op-past-end guard as WriteAt.
func (g *GenericSection) WriteU64At(offset int, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	g.WriteAt(offset, b[:])
}
