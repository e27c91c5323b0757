package resource

import (
	"github.com/drxtools/drxfw/internal/stream"
	"github.com/drxtools/drxfw/internal/utils"
)

// ResourceSection is an ordered sequence of Resource entries decoded from
// (and emitted as) a descriptor table followed by a shared payload pool.
// Insertion order is preserved explicitly via a slice, never a map, so
// lookups and round-trips see the original ordering.
type ResourceSection struct {
	NameValue    [4]byte
	VersionValue uint32
	resources    []Resource
}

// NewResourceSection creates an empty resource section with the given
// section name and version.
func NewResourceSection(name [4]byte, version uint32) *ResourceSection {
	return &ResourceSection{NameValue: name, VersionValue: version}
}

// Name returns the section's 4-byte name, satisfying the Section interface
// in package section.
func (rs *ResourceSection) Name() [4]byte { return rs.NameValue }

// Version returns the section's version, satisfying the Section interface
// in package section.
func (rs *ResourceSection) Version() uint32 { return rs.VersionValue }

// Resources returns the section's resources in insertion order. The
// returned slice is the section's own backing slice; callers must not
// retain it across a Append.
func (rs *ResourceSection) Resources() []Resource {
	return rs.resources
}

// Append adds a resource to the end of the section's ordered list.
func (rs *ResourceSection) Append(r Resource) {
	rs.resources = append(rs.resources, r)
}

// Resource returns the first resource with the given id in insertion
// order, or (nil, false) if absent.
func (rs *ResourceSection) Resource(id uint16) (Resource, bool) {
	for _, r := range rs.resources {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

// Bitmap returns the first BITMAP resource with the given id, or
// (nil, false) if absent or the id names a resource of a different kind.
func (rs *ResourceSection) Bitmap(id uint16) (*Bitmap, bool) {
	for _, r := range rs.resources {
		if r.ID() != id {
			continue
		}
		if b, ok := r.(*Bitmap); ok {
			return b, true
		}
		return nil, false
	}
	return nil, false
}

// Sound returns the first SOUND resource with the given id, or
// (nil, false) if absent or the id names a resource of a different kind.
func (rs *ResourceSection) Sound(id uint16) (*Sound, bool) {
	for _, r := range rs.resources {
		if r.ID() != id {
			continue
		}
		if snd, ok := r.(*Sound); ok {
			return snd, true
		}
		return nil, false
	}
	return nil, false
}

// Opaque returns the first OPAQUE resource with the given id, or
// (nil, false) if absent or the id names a resource of a different kind.
func (rs *ResourceSection) Opaque(id uint16) (*Opaque, bool) {
	for _, r := range rs.resources {
		if r.ID() != id {
			continue
		}
		if o, ok := r.(*Opaque); ok {
			return o, true
		}
		return nil, false
	}
	return nil, false
}

// DecodeResourceSection parses a descriptor table followed by a shared
// payload pool from s, starting at the current position, tagging the
// result with name and version (normally the enclosing SectionHeader's
// fields, which this codec has no way to observe on its own). Any stream
// error aborts the decode with a DecodeFailed error.
func DecodeResourceSection(s stream.Stream, name [4]byte, version uint32) (*ResourceSection, error) {
	count := stream.ReadU32(s)
	if s.Err() != nil {
		return nil, utils.WrapError(utils.KindDecodeFailed, "resource section descriptor count", s.Err())
	}
	if err := utils.ValidateBufferSize(uint64(count), utils.MaxResourceCount, "resource descriptor count"); err != nil {
		return nil, utils.WrapError(utils.KindDecodeFailed, "resource section descriptor count", err)
	}

	descTableSize, err := utils.SafeMultiply(uint64(count), uint64(DescriptorSize))
	if err != nil {
		return nil, utils.WrapError(utils.KindDecodeFailed, "resource section descriptor table size", err)
	}

	poolStart := s.Position() + int64(descTableSize)

	rs := &ResourceSection{NameValue: name, VersionValue: version, resources: make([]Resource, 0, count)}

	for i := uint32(0); i < count; i++ {
		kind := Kind(stream.ReadU16(s))
		id := stream.ReadU16(s)
		offset := stream.ReadU32(s)
		size := stream.ReadU32(s)
		if s.Err() != nil {
			return nil, utils.WrapError(utils.KindDecodeFailed, "resource descriptor head", s.Err())
		}

		savedPos := s.Position()
		s.SetPosition(poolStart + int64(offset))
		payload := stream.ReadArray(s, int(size))
		if s.Err() != nil {
			return nil, utils.WrapError(utils.KindDecodeFailed, "resource payload", s.Err())
		}
		s.SetPosition(savedPos)
		if s.Err() != nil {
			return nil, utils.WrapError(utils.KindDecodeFailed, "restoring descriptor cursor", s.Err())
		}

		var r Resource
		switch kind {
		case KindBitmap:
			r = decodeBitmapTrailer(s, id, payload)
		case KindSound:
			r = decodeSoundTrailer(s, id, payload)
		default:
			r = decodeOpaqueTrailer(s, kind, id, payload)
		}
		if s.Err() != nil {
			return nil, utils.WrapError(utils.KindDecodeFailed, "resource descriptor trailer", s.Err())
		}

		rs.resources = append(rs.resources, r)
	}

	return rs, nil
}

// Encode emits the section as count, then a descriptor table, then the
// shared payload pool. The descriptor table and pool are assembled in
// independent byte buffers and written sequentially, rather than reserved
// and seeked-back-into on s directly: s may be a growable VectorStream,
// whose SetPosition treats a seek to exactly the current end of buffer as
// a failure (preserved from the source's off-by-one seek quirk), which
// would make a literal reserve-then-seek-back encode fragile. Building the
// table and pool independently produces byte-identical output without
// depending on that seek behavior.
func (rs *ResourceSection) Encode(s stream.Stream) {
	descStream := stream.NewVectorStream()
	pool := make([]byte, 0, 256)

	for _, r := range rs.resources {
		payload := r.Payload()
		offset := uint32(len(pool))
		size := uint32(len(payload))
		pool = append(pool, payload...)

		stream.WriteU16(descStream, uint16(r.WireKind()))
		stream.WriteU16(descStream, r.ID())
		stream.WriteU32(descStream, offset)
		stream.WriteU32(descStream, size)
		r.encodeTrailer(descStream)
	}

	stream.WriteU32(s, uint32(len(rs.resources)))
	stream.WriteArray(s, descStream.Bytes())
	stream.WriteArray(s, pool)
}

// ToBytes serializes the section to a standalone byte slice.
func (rs *ResourceSection) ToBytes() []byte {
	s := stream.NewVectorStream()
	rs.Encode(s)
	return s.Bytes()
}
