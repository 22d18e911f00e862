package report

import (
	"fmt"
	"math"
	"strings"
)

// DefaultBarWidth is the interior width of a progress indicator.
const DefaultBarWidth = 30

const (
	kib = 1024
	mib = 1024 * 1024
)

// Progress indicator characters.
const (
	barFill  = "="
	barCap   = ">"
	barBlank = " "
)

// FormatByteCount formats n as "%4dB", "%5.1fK" or "%5.2fM". The widths keep
// stacked report lines aligned.
func FormatByteCount(n uint64) string {
	switch {
	case n < kib:
		return fmt.Sprintf("%4dB", n)
	case n < mib:
		return fmt.Sprintf("%5.1fK", float64(n)/kib)
	default:
		return fmt.Sprintf("%5.2fM", float64(n)/mib)
	}
}

// RenderProgressIndicator renders a bracketed gauge of exactly width
// interior characters, e.g. "[===========>                  ]". The filled
// count is floor(width*percentage/100) clamped to [0, width]. A full bar has
// no cap.
func RenderProgressIndicator(percentage float64, width int) string {
	if width <= 0 {
		return "[]"
	}

	filled := 0
	if v := math.Floor(float64(width) * percentage / 100); v > 0 {
		filled = int(min(v, float64(width)))
	}

	var b strings.Builder
	b.Grow(width + 2)
	b.WriteString("[")
	b.WriteString(strings.Repeat(barFill, filled))
	if filled < width {
		b.WriteString(barCap)
		b.WriteString(strings.Repeat(barBlank, width-filled-1))
	}
	b.WriteString("]")
	return b.String()
}
