package section

const (
	// FormatTagSize is the size of the opaque format tag at the start of a .trk file.
	FormatTagSize = 10
	// ParamCountSize is the size of the parameter count that follows the format tag.
	ParamCountSize = 4
	// MinDescriptorSize is the smallest possible descriptor record: four uint32 fields
	// with empty name and unit spans.
	MinDescriptorSize = 16
	// DefaultFormatTag is the tag written by Trick 10 for little-endian logs.
	DefaultFormatTag = "Trick-10-L"
)
