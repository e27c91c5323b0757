// Package firmware implements the Firmware codec (F): INDX section
// discovery, section-header parse/emit, payload placement, and the
// two-level CRC tree compute & verify. Section placement is the teacher's
// internal/writer allocator's idea (sequential end-of-region placement,
// nothing ever reused or moved) folded directly into the encode path,
// since section headers are already the record of where each section
// landed; the CRC tree itself generalizes the teacher's superblock-style
// checksum-then-verify order from one checksum level to two.
package firmware

import (
	"github.com/drxtools/drxfw/internal/format"
	"github.com/drxtools/drxfw/internal/section"
	"github.com/drxtools/drxfw/internal/stream"
	"github.com/drxtools/drxfw/internal/utils"
)

// IndexName is the fixed name of the mandatory first section, whose
// payload is the section-header table itself.
var IndexName = [4]byte{'I', 'N', 'D', 'X'}

// Firmware is the fully little-endian inner container: a kind tag and an
// ordered list of sections, the first of which is always the index.
type Firmware struct {
	Kind     format.Kind
	Sections []section.Section
}

// Section returns the first section with the given name, or (nil, false)
// if absent. Linear search; first match wins.
func (f *Firmware) Section(name [4]byte) (section.Section, bool) {
	for _, s := range f.Sections {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// Decode parses a complete firmware image: header, sub-CRC page, and
// section region, verifying the full two-level CRC tree before parsing
// any section. Any CRC mismatch aborts the decode with the error kind
// naming the failing level.
func Decode(data []byte) (*Firmware, error) {
	if len(data) < format.SectionRegionOffset {
		return nil, utils.NewError(utils.KindDecodeFailed, "firmware image shorter than header+sub-CRC page")
	}

	header, err := format.DecodeFirmwareHeader(data[:format.FirmwareHeaderSize])
	if err != nil {
		return nil, err
	}

	subCrcPage := data[format.SubCrcPageOffset:format.SectionRegionOffset]
	if err := format.VerifySuperCRCs(subCrcPage, header.SuperCRC); err != nil {
		return nil, err
	}

	sectionRegion := data[format.SectionRegionOffset:]
	if err := format.VerifySubCRCs(sectionRegion, subCrcPage); err != nil {
		return nil, err
	}

	sections, err := decodeSections(sectionRegion)
	if err != nil {
		return nil, err
	}

	return &Firmware{Kind: header.Kind, Sections: sections}, nil
}

func decodeSections(sectionRegion []byte) ([]section.Section, error) {
	view := stream.NewViewStream(sectionRegion)

	first := format.DecodeSectionHeader(view)
	if view.Err() != nil {
		return nil, utils.WrapError(utils.KindDecodeFailed, "reading INDX header", view.Err())
	}
	if first.NameString() != string(IndexName[:]) || first.Offset != 0 {
		return nil, utils.NewError(utils.KindBadIndex, "first section is not INDX at offset 0")
	}
	if first.Size%format.SectionHeaderSize != 0 {
		return nil, utils.NewError(utils.KindBadIndex, "INDX size is not a multiple of the section header size")
	}
	n := first.Size / format.SectionHeaderSize
	if err := utils.ValidateBufferSize(uint64(n), utils.MaxResourceCount, "section count"); err != nil {
		return nil, utils.WrapError(utils.KindDecodeFailed, "section count", err)
	}

	headers := make([]format.SectionHeader, n)
	headers[0] = first
	for i := uint32(1); i < n; i++ {
		headers[i] = format.DecodeSectionHeader(view)
	}
	if view.Err() != nil {
		return nil, utils.WrapError(utils.KindDecodeFailed, "reading section header table", view.Err())
	}

	sections := make([]section.Section, n)
	for i, h := range headers {
		if err := utils.ValidateBufferSize(uint64(h.Size), utils.MaxSectionPayload, "section "+h.NameString()+" declared size"); err != nil {
			return nil, utils.WrapError(utils.KindDecodeFailed, "section header", err)
		}
		end := uint64(h.Offset) + uint64(h.Size)
		if end > uint64(len(sectionRegion)) {
			return nil, utils.NewError(utils.KindDecodeFailed, "section payload out of range")
		}
		payload := sectionRegion[h.Offset : h.Offset+h.Size]

		sec, err := section.Dispatch(h.Name, h.Version, payload)
		if err != nil {
			return nil, utils.WrapError(utils.KindDecodeFailed, "dispatching section "+h.NameString(), err)
		}
		sections[i] = sec
	}

	return sections, nil
}

// Encode packs the non-index sections back-to-back, regenerates the INDX
// header table from scratch (the stored INDX section's own payload is
// never trusted), and computes the full two-level CRC tree over the
// result.
func (f *Firmware) Encode() ([]byte, error) {
	n := len(f.Sections)
	if n == 0 {
		return nil, utils.NewError(utils.KindDecodeFailed, "firmware must have at least one section (INDX)")
	}
	if f.Sections[0].Name() != IndexName {
		return nil, utils.NewError(utils.KindBadIndex, "first section is not INDX")
	}

	headerTableSize := uint64(n) * format.SectionHeaderSize

	headers := make([]format.SectionHeader, n)
	headers[0] = format.SectionHeader{Offset: 0, Size: uint32(headerTableSize), Name: IndexName, Version: f.Sections[0].Version()}

	// Sections are laid out back to back starting right after the header
	// table, in the same order they appear in f.Sections; nextOffset is the
	// only placement state the layout needs, since nothing is ever reused
	// or moved once placed.
	nextOffset := headerTableSize
	var payload []byte
	for i := 1; i < n; i++ {
		s := f.Sections[i]
		data := s.ToBytes()
		headers[i] = format.SectionHeader{Offset: uint32(nextOffset), Size: uint32(len(data)), Name: s.Name(), Version: s.Version()}
		nextOffset += uint64(len(data))
		payload = append(payload, data...)
	}

	headerStream := stream.NewVectorStream()
	for _, h := range headers {
		h.Encode(headerStream)
	}

	sectionRegion := append(headerStream.Bytes(), payload...)

	subCrcPage := format.ComputeSubCRCPage(sectionRegion)
	superCRC := format.ComputeSuperCRCs(subCrcPage)
	firmwareHeader := format.EncodeFirmwareHeader(f.Kind, superCRC)

	out := make([]byte, 0, len(firmwareHeader)+len(subCrcPage)+len(sectionRegion))
	out = append(out, firmwareHeader...)
	out = append(out, subCrcPage...)
	out = append(out, sectionRegion...)
	return out, nil
}
