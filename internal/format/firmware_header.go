package format

import (
	"encoding/binary"
	"hash/crc32"
	"strconv"

	"github.com/drxtools/drxfw/internal/utils"
)

// Firmware container geometry, all fixed offsets per the binary layout:
//
//	[0x0000 .. 0x1000)   Firmware header (little-endian)
//	[0x1000 .. 0x5000)   Sub-CRC page (4096 x u32 = 16 KiB)
//	[0x5000 .. 0x5000+L) Section region (L bytes)
const (
	FirmwareHeaderSize  = 0x1000
	HeaderCrcCoverage   = 0xFFC // first 4092 bytes of the header are CRC'd
	SubCrcPageOffset    = FirmwareHeaderSize
	SubCrcPageSize      = 0x4000
	SectionRegionOffset = SubCrcPageOffset + SubCrcPageSize
	ChunkSize           = 0x1000
	NumSubCrcSlots      = SubCrcPageSize / 4
	NumSuperCrcs        = 4
	SuperCrcWindowBytes = SubCrcPageSize / NumSuperCrcs
)

// Kind identifies the firmware's target device. Other values decode but
// are not semantically interpreted.
type Kind uint32

// Known firmware kinds.
const (
	KindDRC Kind = 0x01010000
	KindDRH Kind = 0x00010000
)

func (k Kind) String() string {
	switch k {
	case KindDRC:
		return "DRC"
	case KindDRH:
		return "DRH"
	default:
		return "UNKNOWN"
	}
}

// FirmwareHeader is the parsed form of the 4 KiB firmware header block.
type FirmwareHeader struct {
	Kind      Kind
	SuperCRC  [NumSuperCrcs]uint32
	HeaderCRC uint32
}

// EncodeFirmwareHeader produces the full 4096-byte header block: kind,
// super-CRCs, zero padding, then the header CRC over the first 4092 bytes.
func EncodeFirmwareHeader(kind Kind, superCRC [NumSuperCrcs]uint32) []byte {
	buf := make([]byte, FirmwareHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(kind))
	for i, c := range superCRC {
		binary.LittleEndian.PutUint32(buf[4+i*4:8+i*4], c)
	}
	// buf[4+4*NumSuperCrcs : HeaderCrcCoverage] stays zero padding.
	headerCRC := crc32.ChecksumIEEE(buf[:HeaderCrcCoverage])
	binary.LittleEndian.PutUint32(buf[HeaderCrcCoverage:FirmwareHeaderSize], headerCRC)
	return buf
}

// DecodeFirmwareHeader parses and verifies the firmware header block. buf
// must be exactly FirmwareHeaderSize bytes. Verification failure returns a
// HeaderCrcMismatch error.
func DecodeFirmwareHeader(buf []byte) (FirmwareHeader, error) {
	if len(buf) != FirmwareHeaderSize {
		return FirmwareHeader{}, utils.NewError(utils.KindDecodeFailed, "firmware header must be 4096 bytes")
	}

	var h FirmwareHeader
	h.Kind = Kind(binary.LittleEndian.Uint32(buf[0:4]))
	for i := range h.SuperCRC {
		h.SuperCRC[i] = binary.LittleEndian.Uint32(buf[4+i*4 : 8+i*4])
	}
	h.HeaderCRC = binary.LittleEndian.Uint32(buf[HeaderCrcCoverage:FirmwareHeaderSize])

	computed := crc32.ChecksumIEEE(buf[:HeaderCrcCoverage])
	if computed != h.HeaderCRC {
		return h, utils.NewError(utils.KindHeaderCrcMismatch, "firmware header bytes[0..0xFFC]")
	}

	return h, nil
}

// ComputeSuperCRCs checksums each of the four 4 KiB windows of the sub-CRC
// page. subCrcPage must be exactly SubCrcPageSize bytes.
func ComputeSuperCRCs(subCrcPage []byte) [NumSuperCrcs]uint32 {
	var out [NumSuperCrcs]uint32
	for i := 0; i < NumSuperCrcs; i++ {
		start := i * SuperCrcWindowBytes
		end := start + SuperCrcWindowBytes
		out[i] = crc32.ChecksumIEEE(subCrcPage[start:end])
	}
	return out
}

// VerifySuperCRCs recomputes each super-CRC and compares it against the
// stored value, returning a SuperCrcMismatch error naming the failing
// window on the first mismatch.
func VerifySuperCRCs(subCrcPage []byte, stored [NumSuperCrcs]uint32) error {
	computed := ComputeSuperCRCs(subCrcPage)
	for i := 0; i < NumSuperCrcs; i++ {
		if computed[i] != stored[i] {
			return utils.NewError(utils.KindSuperCrcMismatch, "window "+strconv.Itoa(i))
		}
	}
	return nil
}

// ComputeSubCRCPage checksums each 4 KiB chunk of the section region into a
// NumSubCrcSlots-entry page. Chunks beyond the section region's length
// leave their slot at zero, and the final covered chunk may be short.
func ComputeSubCRCPage(sectionRegion []byte) []byte {
	page := make([]byte, SubCrcPageSize)
	l := len(sectionRegion)
	numChunks := (l + ChunkSize - 1) / ChunkSize
	for i := 0; i < numChunks && i < NumSubCrcSlots; i++ {
		start := i * ChunkSize
		end := start + ChunkSize
		if end > l {
			end = l
		}
		sum := crc32.ChecksumIEEE(sectionRegion[start:end])
		binary.LittleEndian.PutUint32(page[i*4:i*4+4], sum)
	}
	return page
}

// VerifySubCRCs recomputes the sub-CRC page from sectionRegion and compares
// it chunk-by-chunk against storedPage, returning a SubCrcMismatch error
// naming the first failing chunk.
func VerifySubCRCs(sectionRegion []byte, storedPage []byte) error {
	computed := ComputeSubCRCPage(sectionRegion)
	l := len(sectionRegion)
	numChunks := (l + ChunkSize - 1) / ChunkSize
	for i := 0; i < numChunks && i < NumSubCrcSlots; i++ {
		got := binary.LittleEndian.Uint32(computed[i*4 : i*4+4])
		want := binary.LittleEndian.Uint32(storedPage[i*4 : i*4+4])
		if got != want {
			return utils.NewError(utils.KindSubCrcMismatch, "chunk "+strconv.Itoa(i))
		}
	}
	return nil
}
