// Package section implements the common "named + versioned" Section model
// and its GenericSection variant, plus the name-based dispatch rule that
// routes a section's payload to either the resource package's
// ResourceSection codec or a plain GenericSection. It is analogous to the
// teacher's Group/Dataset split: one lightweight container type, one
// structured type, chosen by a tag read off the wire.
package section

// ResourceSectionName is the fixed 4-byte section name that selects the
// ResourceSection codec; any other name decodes as GenericSection.
var ResourceSectionName = [4]byte{'I', 'M', 'G', '_'}

// Section is the common interface satisfied by GenericSection and
// *resource.ResourceSection.
type Section interface {
	Name() [4]byte
	Version() uint32
	ToBytes() []byte
}

// Dispatch decodes payload as a ResourceSection when name equals "IMG_",
// otherwise as a GenericSection holding payload verbatim.
func Dispatch(name [4]byte, version uint32, payload []byte) (Section, error) {
	if name == ResourceSectionName {
		return decodeResourceSection(name, version, payload)
	}
	return &GenericSection{NameValue: name, VersionValue: version, Data: payload}, nil
}
