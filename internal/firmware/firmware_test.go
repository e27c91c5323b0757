package firmware

import (
	"errors"
	"testing"

	"github.com/drxtools/drxfw/internal/format"
	"github.com/drxtools/drxfw/internal/section"
	"github.com/drxtools/drxfw/internal/utils"
	"github.com/stretchr/testify/require"
)

func indexSection(version uint32) *section.GenericSection {
	return &section.GenericSection{NameValue: IndexName, VersionValue: version}
}

func TestFirmware_MinimalIndexOnly(t *testing.T) {
	f := &Firmware{Kind: format.KindDRC, Sections: []section.Section{indexSection(1)}}

	encoded, err := f.Encode()
	require.NoError(t, err)
	require.Len(t, encoded, format.FirmwareHeaderSize+format.SubCrcPageSize+16)

	region := encoded[format.SectionRegionOffset:]
	require.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x00, // offset
		0x10, 0x00, 0x00, 0x00, // size
		'I', 'N', 'D', 'X',
		0x01, 0x00, 0x00, 0x00, // version
	}, region[:16])

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, format.KindDRC, decoded.Kind)
	require.Len(t, decoded.Sections, 1)
	require.Equal(t, IndexName, decoded.Sections[0].Name())
}

func TestFirmware_TwoSectionRoundTrip(t *testing.T) {
	payload := make([]byte, 100)
	for i := range payload {
		payload[i] = 0xAB
	}

	f := &Firmware{
		Kind: format.KindDRC,
		Sections: []section.Section{
			indexSection(1),
			&section.GenericSection{NameValue: [4]byte{'G', 'E', 'N', '_'}, VersionValue: 2, Data: payload},
		},
	}

	encoded, err := f.Encode()
	require.NoError(t, err)

	region := encoded[format.SectionRegionOffset:]
	require.Len(t, region, 32+100)

	subCrcPage := encoded[format.SubCrcPageOffset:format.SectionRegionOffset]
	require.NotEqual(t, uint32(0), leU32(subCrcPage[0:4]))
	for i := 1; i < format.NumSubCrcSlots; i++ {
		require.Equal(t, uint32(0), leU32(subCrcPage[i*4:i*4+4]), "slot %d", i)
	}

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Len(t, decoded.Sections, 2)

	reencoded, err := decoded.Encode()
	require.NoError(t, err)
	require.Equal(t, encoded, reencoded)
}

func TestFirmware_SectionLookup(t *testing.T) {
	f := &Firmware{
		Kind: format.KindDRH,
		Sections: []section.Section{
			indexSection(1),
			&section.GenericSection{NameValue: [4]byte{'V', 'E', 'R', '_'}, VersionValue: 1, Data: []byte{1, 2, 3}},
		},
	}

	sec, ok := f.Section([4]byte{'V', 'E', 'R', '_'})
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, sec.ToBytes())

	_, ok = f.Section([4]byte{'?', '?', '?', '?'})
	require.False(t, ok)
}

func TestFirmware_TamperInSectionRegionFailsSubCRC(t *testing.T) {
	f := &Firmware{
		Kind: format.KindDRC,
		Sections: []section.Section{
			indexSection(1),
			&section.GenericSection{NameValue: [4]byte{'G', 'E', 'N', '_'}, VersionValue: 1, Data: make([]byte, 200)},
		},
	}
	encoded, err := f.Encode()
	require.NoError(t, err)

	encoded[format.SectionRegionOffset+0x42] ^= 0x01

	_, err = Decode(encoded)
	require.Error(t, err)

	var codecErr *utils.CodecError
	require.True(t, errors.As(err, &codecErr))
	require.Equal(t, utils.KindSubCrcMismatch, codecErr.Kind)
}

func TestFirmware_TamperInHeaderFailsHeaderCRC(t *testing.T) {
	f := &Firmware{Kind: format.KindDRC, Sections: []section.Section{indexSection(1)}}
	encoded, err := f.Encode()
	require.NoError(t, err)

	encoded[0x10] ^= 0x01

	_, err = Decode(encoded)
	require.Error(t, err)

	var codecErr *utils.CodecError
	require.True(t, errors.As(err, &codecErr))
	require.Equal(t, utils.KindHeaderCrcMismatch, codecErr.Kind)
}

func TestFirmware_MissingIndexFailsEncode(t *testing.T) {
	f := &Firmware{Kind: format.KindDRC, Sections: []section.Section{
		&section.GenericSection{NameValue: [4]byte{'G', 'E', 'N', '_'}},
	}}

	_, err := f.Encode()
	require.Error(t, err)

	var codecErr *utils.CodecError
	require.True(t, errors.As(err, &codecErr))
	require.Equal(t, utils.KindBadIndex, codecErr.Kind)
}

func TestFirmware_BadIndexFailsDecode(t *testing.T) {
	encoded, encErr := (&Firmware{
		Kind:     format.KindDRC,
		Sections: []section.Section{indexSection(1)},
	}).Encode()
	require.NoError(t, encErr)

	// Corrupt the INDX name in a validly-CRC'd image to exercise BadIndex
	// without touching the CRC tree: flip the name bytes and recompute the
	// sub-CRC page so only the index check fires.
	region := encoded[format.SectionRegionOffset:]
	copy(region[8:12], []byte{'X', 'X', 'X', 'X'})
	subCrcPage := format.ComputeSubCRCPage(region)
	copy(encoded[format.SubCrcPageOffset:format.SectionRegionOffset], subCrcPage)
	superCRC := format.ComputeSuperCRCs(subCrcPage)
	newHeader := format.EncodeFirmwareHeader(format.KindDRC, superCRC)
	copy(encoded[:format.FirmwareHeaderSize], newHeader)

	_, err := Decode(encoded)
	require.Error(t, err)

	var codecErr *utils.CodecError
	require.True(t, errors.As(err, &codecErr))
	require.Equal(t, utils.KindBadIndex, codecErr.Kind)
}

func leU32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
