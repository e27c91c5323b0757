package resource

import "github.com/drxtools/drxfw/internal/stream"

// Sound is an opaque-sample audio resource; decoding sample data beyond
// its raw bytes is out of scope.
type Sound struct {
	IDValue   uint16
	Format    uint16
	Bits      uint16
	Channels  uint32
	Frequency uint32
	Data      []byte
}

func (snd *Sound) ID() uint16      { return snd.IDValue }
func (snd *Sound) WireKind() Kind  { return KindSound }
func (snd *Sound) Payload() []byte { return snd.Data }

func (snd *Sound) encodeTrailer(s stream.Stream) {
	stream.WriteU16(s, snd.Format)
	stream.WriteU16(s, snd.Bits)
	stream.WriteU32(s, snd.Channels)
	stream.WriteU32(s, snd.Frequency)
}

func decodeSoundTrailer(s stream.Stream, id uint16, data []byte) *Sound {
	return &Sound{
		IDValue:   id,
		Format:    stream.ReadU16(s),
		Bits:      stream.ReadU16(s),
		Channels:  stream.ReadU32(s),
		Frequency: stream.ReadU32(s),
		Data:      data,
	}
}
