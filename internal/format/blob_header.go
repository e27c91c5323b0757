package format

import "encoding/binary"

// BlobHeaderSize is the on-wire size of the outer blob header.
const BlobHeaderSize = 16

// BlobHeader is the outer, big-endian 16-byte header wrapping the firmware
// payload.
type BlobHeader struct {
	ImageVersion       uint32
	BlockSize          uint32
	SequencePerSession uint32
	ImageSize          uint32
}

// Encode serializes the blob header as 16 big-endian bytes.
func (h BlobHeader) Encode() []byte {
	buf := make([]byte, BlobHeaderSize)
	binary.BigEndian.PutUint32(buf[0:4], h.ImageVersion)
	binary.BigEndian.PutUint32(buf[4:8], h.BlockSize)
	binary.BigEndian.PutUint32(buf[8:12], h.SequencePerSession)
	binary.BigEndian.PutUint32(buf[12:16], h.ImageSize)
	return buf
}

// DecodeBlobHeader parses the 16-byte big-endian blob header. buf must be
// exactly BlobHeaderSize bytes.
func DecodeBlobHeader(buf []byte) BlobHeader {
	return BlobHeader{
		ImageVersion:       binary.BigEndian.Uint32(buf[0:4]),
		BlockSize:          binary.BigEndian.Uint32(buf[4:8]),
		SequencePerSession: binary.BigEndian.Uint32(buf[8:12]),
		ImageSize:          binary.BigEndian.Uint32(buf[12:16]),
	}
}
