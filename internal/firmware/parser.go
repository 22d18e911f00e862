package firmware

import (
	"strconv"
	"strings"
)

// DebugSections are the section names whose presence marks a debug build.
var DebugSections = []string{
	".debug_info",
	".debug_line",
	".debug_frame",
	".debug_str",
}

// ParseSizeSummary parses Berkeley-format size output:
//
//	   text	   data	    bss	    dec	    hex	filename
//	 102144	   2000	   5000	 109144	  1aa58	build/rtthread.elf
//
// The first line is a header. The first following line whose leading field
// is all decimal digits is the summary row, and later rows are ignored.
// Its first four fields are text, data, bss and total.
func ParseSizeSummary(output string) (SizeBreakdown, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 2 {
		return SizeBreakdown{}, &ParseError{
			Reason: "expected a header line and at least one data line",
			Output: output,
		}
	}

	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) == 0 || !isDecimal(fields[0]) {
			continue
		}

		if len(fields) < 4 {
			return SizeBreakdown{}, &ParseError{
				Reason: "summary row has fewer than four columns",
				Output: output,
			}
		}

		var values [4]uint64
		for i := range values {
			if !isDecimal(fields[i]) {
				return SizeBreakdown{}, &ParseError{
					Reason: "non-numeric value " + strconv.Quote(fields[i]) + " in summary row",
					Output: output,
				}
			}
			v, err := strconv.ParseUint(fields[i], 10, 64)
			if err != nil {
				return SizeBreakdown{}, &ParseError{
					Reason: "value out of range in summary row",
					Output: output,
					Err:    err,
				}
			}
			values[i] = v
		}

		return SizeBreakdown{
			Text:  values[0],
			Data:  values[1],
			BSS:   values[2],
			Total: values[3],
		}, nil
	}

	return SizeBreakdown{}, &ParseError{
		Reason: "no numeric summary row found",
		Output: output,
	}
}

// ClassifyBuildMode decides Debug or Release from objdump -h output. A
// non-zero exit code yields Unknown.
//
// Any one of DebugSections is enough for Debug. Images stripped of only
// those sections, or keeping only other debug sections, are misclassified.
func ClassifyBuildMode(dump string, exitCode int) Classification {
	if exitCode != 0 {
		return Unknown
	}

	for _, section := range DebugSections {
		if strings.Contains(dump, section) {
			return Classification{Mode: Debug, Known: true}
		}
	}
	return Classification{Mode: Release, Known: true}
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
