package resource

import "github.com/drxtools/drxfw/internal/stream"

// PaletteSize is the size in bytes of a Bitmap's 256-entry, 32-bit palette
// that precedes the palette-indexed pixel data in its payload.
const PaletteSize = 256 * 4

// TransparentIndex is the transparency sentinel: BlendBitmap skips any
// source pixel carrying this palette index. It is hard-coded because
// palettes commonly place transparent/black at the tail; this is a
// property of the blend operator, not of the format.
const TransparentIndex = 0xFF

// Bitmap is a palette-indexed image resource: a 256-entry 32-bit palette
// followed by width*height palette-index bytes.
type Bitmap struct {
	IDValue uint16
	Format  uint32
	Width   uint32
	Height  uint32
	Data    []byte
}

func (b *Bitmap) ID() uint16      { return b.IDValue }
func (b *Bitmap) WireKind() Kind  { return KindBitmap }
func (b *Bitmap) Payload() []byte { return b.Data }

func (b *Bitmap) encodeTrailer(s stream.Stream) {
	stream.WriteU32(s, b.Format)
	stream.WriteU32(s, b.Width)
	stream.WriteU32(s, b.Height)
}

func decodeBitmapTrailer(s stream.Stream, id uint16, data []byte) *Bitmap {
	return &Bitmap{
		IDValue: id,
		Format:  stream.ReadU32(s),
		Width:   stream.ReadU32(s),
		Height:  stream.ReadU32(s),
		Data:    data,
	}
}

// Palette returns a read-only view of the 256-entry 32-bit palette at the
// start of the bitmap payload.
func (b *Bitmap) Palette() []byte {
	if len(b.Data) < PaletteSize {
		return nil
	}
	return b.Data[:PaletteSize]
}

// pixels returns the mutable palette-indexed pixel region following the
// palette.
func (b *Bitmap) pixels() []byte {
	if len(b.Data) < PaletteSize {
		return nil
	}
	return b.Data[PaletteSize:]
}

// GetPixel returns the palette index at (x, y), or 0 when out of range.
//
// The range test preserves the original implementation's `x > width` /
// `y > height` comparison (not `>=`), which is likely a bug on the
// boundary row/column; this behavior is inherited deliberately rather than
// silently corrected.
func (b *Bitmap) GetPixel(x, y uint32) byte {
	if x > b.Width || y > b.Height {
		return 0
	}
	px := b.pixels()
	idx := y*b.Width + x
	if int(idx) >= len(px) {
		return 0
	}
	return px[idx]
}

// BlendBitmap overwrites destination palette indices with source pixels,
// skipping any source pixel equal to TransparentIndex. It silently no-ops
// when W > b.Width, H > b.Height, or W*H > len(pixels).
func (b *Bitmap) BlendBitmap(pixels []byte, w, h uint32) {
	if w > b.Width || h > b.Height {
		return
	}
	if uint64(w)*uint64(h) > uint64(len(pixels)) {
		return
	}
	dst := b.pixels()
	if dst == nil {
		return
	}
	for row := uint32(0); row < h; row++ {
		for col := uint32(0); col < w; col++ {
			srcIdx := row*w + col
			v := pixels[srcIdx]
			if v == TransparentIndex {
				continue
			}
			dstIdx := row*b.Width + col
			if int(dstIdx) >= len(dst) {
				continue
			}
			dst[dstIdx] = v
		}
	}
}

// BlendBitmapBits treats bits as a 1-bit-per-pixel, LSB-first, row-packed
// bitmap with row stride W/8 bytes; where the bit is set, it writes
// paletteIndex to the destination. Same size-guard policy as BlendBitmap.
func (b *Bitmap) BlendBitmapBits(bits []byte, paletteIndex byte, w, h uint32) {
	if w > b.Width || h > b.Height {
		return
	}
	if uint64(w)*uint64(h) > uint64(len(bits))*8 {
		return
	}
	stride := w / 8
	dst := b.pixels()
	if dst == nil {
		return
	}
	for row := uint32(0); row < h; row++ {
		for col := uint32(0); col < w; col++ {
			byteIdx := row*stride + col/8
			bit := bits[byteIdx] & (1 << (col % 8))
			if bit == 0 {
				continue
			}
			dstIdx := row*b.Width + col
			if int(dstIdx) >= len(dst) {
				continue
			}
			dst[dstIdx] = paletteIndex
		}
	}
}
