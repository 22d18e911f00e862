package firmware

// SizeBreakdown holds one row of Berkeley-format size output, in bytes.
type SizeBreakdown struct {
	// Text is code plus read-only data
	Text uint64
	// Data is initialized data (stored in flash, copied to RAM)
	Data uint64
	// BSS is zero-initialized data
	BSS uint64
	// Total is the "dec" column as reported by the tool
	Total uint64
}

// FlashUsed returns the bytes the image occupies in flash.
func (b SizeBreakdown) FlashUsed() uint64 {
	return b.Text + b.Data
}

// RAMUsed returns the bytes statically allocated in RAM.
func (b SizeBreakdown) RAMUsed() uint64 {
	return b.Data + b.BSS
}

// BuildMode is the compilation mode an image was produced with.
type BuildMode int

const (
	Debug BuildMode = iota
	Release
)

func (m BuildMode) String() string {
	switch m {
	case Debug:
		return "Debug"
	case Release:
		return "Release"
	default:
		return "Unknown"
	}
}

// Classification is the outcome of build mode detection. Known is false
// when the section dump could not be obtained.
type Classification struct {
	Mode  BuildMode
	Known bool
}

// Unknown is the classification used when detection was not possible.
var Unknown = Classification{}

func (c Classification) String() string {
	if !c.Known {
		return "Unknown"
	}
	return c.Mode.String()
}
