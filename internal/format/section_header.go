// Package format holds wire-level structs and pure encode/decode functions
// for the firmware container's fixed-size records: section headers, the
// firmware header with its CRC tree, and the outer blob header. It mirrors
// the teacher's internal/core package (superblock, object header), but for
// a container whose firmware image is fully little-endian (only the outer
// blob header is big-endian) instead of HDF5's versioned superblock.
package format

import "github.com/drxtools/drxfw/internal/stream"

// SectionHeaderSize is the on-wire size of a SectionHeader record.
const SectionHeaderSize = 16

// SectionHeader is the 16-byte record describing one section's placement
// and identity within the section region. offset is relative to the start
// of the section region; for the mandatory leading INDX section, offset is
// always 0.
type SectionHeader struct {
	Offset  uint32
	Size    uint32
	Name    [4]byte
	Version uint32
}

// DecodeSectionHeader reads a SectionHeader from s at the current position, in the
// order offset, size, name, version.
func DecodeSectionHeader(s stream.Stream) SectionHeader {
	var h SectionHeader
	h.Offset = stream.ReadU32(s)
	h.Size = stream.ReadU32(s)
	copy(h.Name[:], stream.ReadArray(s, 4))
	h.Version = stream.ReadU32(s)
	return h
}

// Encode writes a SectionHeader to s at the current position.
func (h SectionHeader) Encode(s stream.Stream) {
	stream.WriteU32(s, h.Offset)
	stream.WriteU32(s, h.Size)
	stream.WriteArray(s, h.Name[:])
	stream.WriteU32(s, h.Version)
}

// NameString returns the section name as a string for diagnostics; it does
// not imply names are null-terminated (they never are on the wire).
func (h SectionHeader) NameString() string {
	return string(h.Name[:])
}
