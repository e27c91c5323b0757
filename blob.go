// Package drxfw provides a pure Go implementation for reading and writing
// the DRC/DRH firmware-container binary format: an outer big-endian blob
// header wrapping a little-endian firmware image protected by a two-level
// CRC-32 tree, and an internal section/resource model for its payload.
package drxfw

import (
	"os"

	"github.com/drxtools/drxfw/internal/firmware"
	"github.com/drxtools/drxfw/internal/format"
	"github.com/drxtools/drxfw/internal/resource"
	"github.com/drxtools/drxfw/internal/section"
	"github.com/drxtools/drxfw/internal/utils"
)

// Re-exported so callers never need to import internal/section or
// internal/resource directly.
type (
	Section         = section.Section
	GenericSection  = section.GenericSection
	ResourceSection = resource.ResourceSection
	Resource        = resource.Resource
	Bitmap          = resource.Bitmap
	Sound           = resource.Sound
	Opaque          = resource.Opaque
	Firmware        = firmware.Firmware
)

// ResourceSectionName is the fixed name a Section must carry to decode as
// a ResourceSection instead of a GenericSection.
var ResourceSectionName = section.ResourceSectionName

// Blob is the outer big-endian container: a fixed 16-byte header around a
// serialized Firmware image.
type Blob struct {
	ImageVersion       uint32
	BlockSize          uint32
	SequencePerSession uint32
	Firmware           *Firmware
}

// Open reads and decodes a blob from the filesystem path.
func Open(path string) (*Blob, error) {
	//nolint:gosec // G304: caller-provided path is the whole point of this function
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.WrapError(utils.KindOpenFailed, path, err)
	}
	return Load(data)
}

// Load decodes a complete blob from an in-memory byte slice.
func Load(data []byte) (*Blob, error) {
	if len(data) < format.BlobHeaderSize {
		return nil, utils.NewError(utils.KindDecodeFailed, "blob shorter than blob header")
	}

	header := format.DecodeBlobHeader(data[:format.BlobHeaderSize])
	rest := data[format.BlobHeaderSize:]

	if uint32(len(rest)) != header.ImageSize {
		return nil, utils.NewError(utils.KindTrailingBytes, "blob imageSize does not match remaining bytes")
	}

	fw, err := firmware.Decode(rest)
	if err != nil {
		return nil, err
	}

	return &Blob{
		ImageVersion:       header.ImageVersion,
		BlockSize:          header.BlockSize,
		SequencePerSession: header.SequencePerSession,
		Firmware:           fw,
	}, nil
}

// ToBytes serializes the blob: the 16-byte header followed by the encoded
// firmware image. ImageSize is derived from the firmware encoding, never
// read back from the struct.
func (b *Blob) ToBytes() ([]byte, error) {
	fwBytes, err := b.Firmware.Encode()
	if err != nil {
		return nil, err
	}

	header := format.BlobHeader{
		ImageVersion:       b.ImageVersion,
		BlockSize:          b.BlockSize,
		SequencePerSession: b.SequencePerSession,
		ImageSize:          uint32(len(fwBytes)),
	}

	out := make([]byte, 0, format.BlobHeaderSize+len(fwBytes))
	out = append(out, header.Encode()...)
	out = append(out, fwBytes...)
	return out, nil
}

// Save serializes the blob and writes it to the filesystem path.
func (b *Blob) Save(path string) error {
	data, err := b.ToBytes()
	if err != nil {
		return err
	}
	//nolint:gosec // G306: firmware images are not sensitive; match common file perms
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return utils.WrapError(utils.KindWriteShort, path, err)
	}
	return nil
}

// Section returns the first section of the blob's firmware with the given
// name, or (nil, false) if absent.
func (b *Blob) Section(name [4]byte) (Section, bool) {
	return b.Firmware.Section(name)
}

// ResourceOf looks up a resource section by name and, within it, a resource
// by id. Returns (nil, false) if the named section is absent, is not a
// resource section, or has no resource with that id.
func (b *Blob) ResourceOf(sectionName [4]byte, id uint16) (Resource, bool) {
	sec, ok := b.Section(sectionName)
	if !ok {
		return nil, false
	}
	rs, ok := sec.(*ResourceSection)
	if !ok {
		return nil, false
	}
	return rs.Resource(id)
}
