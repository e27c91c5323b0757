package section

import (
	"github.com/drxtools/drxfw/internal/resource"
	"github.com/drxtools/drxfw/internal/stream"
)

func decodeResourceSection(name [4]byte, version uint32, payload []byte) (Section, error) {
	view := stream.NewViewStream(payload)
	rs, err := resource.DecodeResourceSection(view, name, version)
	if err != nil {
		return nil, err
	}
	return rs, nil
}
