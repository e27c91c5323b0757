package resource

import "github.com/drxtools/drxfw/internal/stream"

// Opaque is a resource whose kind the codec does not otherwise interpret.
// Its 12-byte trailer is preserved verbatim as Parameters, and its
// original wire Kind value is retained so an unrecognized kind (anything
// other than BITMAP or SOUND) round-trips exactly rather than being
// normalized to the canonical KindOpaque constant.
type Opaque struct {
	IDValue    uint16
	KindValue  Kind
	Parameters [TrailerSize]byte
	Data       []byte
}

func (o *Opaque) ID() uint16      { return o.IDValue }
func (o *Opaque) WireKind() Kind  { return o.KindValue }
func (o *Opaque) Payload() []byte { return o.Data }

func (o *Opaque) encodeTrailer(s stream.Stream) {
	stream.WriteArray(s, o.Parameters[:])
}

func decodeOpaqueTrailer(s stream.Stream, wireKind Kind, id uint16, data []byte) *Opaque {
	o := &Opaque{IDValue: id, KindValue: wireKind, Data: data}
	copy(o.Parameters[:], stream.ReadArray(s, TrailerSize))
	return o
}
