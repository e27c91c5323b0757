package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpaque_Accessors(t *testing.T) {
	o := &Opaque{IDValue: 0x3000, KindValue: KindOpaque, Parameters: [12]byte{0xEE}, Data: nil}

	require.Equal(t, uint16(0x3000), o.ID())
	require.Equal(t, KindOpaque, o.WireKind())
	require.Empty(t, o.Payload())
}

func TestOpaque_ParametersPreservedVerbatim(t *testing.T) {
	var params [12]byte
	for i := range params {
		params[i] = byte(i + 1)
	}
	o := &Opaque{IDValue: 1, KindValue: KindOpaque, Parameters: params, Data: []byte{0x01}}

	require.Equal(t, params, o.Parameters)
}
