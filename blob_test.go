package drxfw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drxtools/drxfw/internal/format"
	"github.com/drxtools/drxfw/internal/resource"
	"github.com/stretchr/testify/require"
)

func sampleBlob() *Blob {
	rs := resource.NewResourceSection(ResourceSectionName, 1)
	rs.Append(&resource.Bitmap{IDValue: 0x2001, Format: 1, Width: 2, Height: 2, Data: []byte{0, 1, 2, 3}})

	return &Blob{
		ImageVersion:       1,
		BlockSize:          0x40000,
		SequencePerSession: 4,
		Firmware: &Firmware{
			Kind: format.KindDRC,
			Sections: []Section{
				&GenericSection{NameValue: [4]byte{'I', 'N', 'D', 'X'}, VersionValue: 1},
				rs,
			},
		},
	}
}

func TestBlob_RoundTrip(t *testing.T) {
	blob := sampleBlob()

	data, err := blob.ToBytes()
	require.NoError(t, err)

	decoded, err := Load(data)
	require.NoError(t, err)
	require.Equal(t, blob.ImageVersion, decoded.ImageVersion)
	require.Equal(t, blob.BlockSize, decoded.BlockSize)
	require.Equal(t, blob.SequencePerSession, decoded.SequencePerSession)

	reencoded, err := decoded.ToBytes()
	require.NoError(t, err)
	require.Equal(t, data, reencoded)
}

func TestBlob_SaveAndOpen(t *testing.T) {
	blob := sampleBlob()
	path := filepath.Join(t.TempDir(), "firmware.bin")

	require.NoError(t, blob.Save(path))

	opened, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, blob.ImageVersion, opened.ImageVersion)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, uint32(len(raw))-format.BlobHeaderSize, format.DecodeBlobHeader(raw[:format.BlobHeaderSize]).ImageSize)
}

func TestBlob_OpenNonExistentFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}

func TestBlob_LoadRejectsTrailingBytes(t *testing.T) {
	blob := sampleBlob()
	data, err := blob.ToBytes()
	require.NoError(t, err)

	_, err = Load(append(data, 0xFF))
	require.Error(t, err)
}

func TestBlob_LoadRejectsTruncatedImage(t *testing.T) {
	blob := sampleBlob()
	data, err := blob.ToBytes()
	require.NoError(t, err)

	_, err = Load(data[:len(data)-1])
	require.Error(t, err)
}

func TestBlob_SectionAndResourceLookup(t *testing.T) {
	blob := sampleBlob()

	sec, ok := blob.Section(ResourceSectionName)
	require.True(t, ok)
	_, ok = sec.(*ResourceSection)
	require.True(t, ok)

	r, ok := blob.ResourceOf(ResourceSectionName, 0x2001)
	require.True(t, ok)
	bmp, ok := r.(*Bitmap)
	require.True(t, ok)
	require.Equal(t, uint32(2), bmp.Width)

	_, ok = blob.ResourceOf(ResourceSectionName, 0x9999)
	require.False(t, ok)

	_, ok = blob.ResourceOf([4]byte{'I', 'N', 'D', 'X'}, 0x2001)
	require.False(t, ok)
}
