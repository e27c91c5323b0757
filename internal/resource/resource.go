// Package resource implements the Resource model (typed, id-keyed payloads)
// and the ResourceSection codec (descriptor table + shared payload pool).
// It replaces a dynamic class hierarchy with a tagged sum: Resource is one
// of Bitmap, Sound, or Opaque, dispatched by a Kind tag instead of RTTI,
// mirroring the teacher's tagged object-header message layout
// (internal/core's fixed message header + type-specific body).
package resource

import "github.com/drxtools/drxfw/internal/stream"

// Kind tags a Resource's wire type. Any value other than Bitmap or Sound
// decodes as Opaque, with the original wire value preserved so it
// round-trips even when it isn't the canonical Opaque constant.
type Kind uint16

// Known resource kinds.
const (
	KindBitmap Kind = 0
	KindSound  Kind = 1
	KindOpaque Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindBitmap:
		return "BITMAP"
	case KindSound:
		return "SOUND"
	default:
		return "OPAQUE"
	}
}

// DescriptorSize is the on-wire size of one resource descriptor: the 12-byte
// head (kind, id, offset, size) plus a 12-byte kind-specific trailer.
const DescriptorSize = 24

// TrailerSize is the fixed size of every kind-specific descriptor trailer.
const TrailerSize = 12

// Resource is the common interface satisfied by Bitmap, Sound, and Opaque.
// Typed downcasts are a type switch on the concrete type, not RTTI.
type Resource interface {
	// ID returns the resource's 16-bit identifier.
	ID() uint16
	// WireKind returns the Kind value written on the wire for this
	// resource, preserving an unrecognized original value for opaque
	// resources instead of normalizing it to KindOpaque.
	WireKind() Kind
	// Payload returns the resource's raw data bytes.
	Payload() []byte
	// encodeTrailer writes this resource's 12-byte kind-specific trailer.
	encodeTrailer(s stream.Stream)
}
