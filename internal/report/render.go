package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/muurk/fwreport/internal/firmware"
	"github.com/muurk/fwreport/internal/ui"
)

// ruleWidth is the width of the horizontal rules framing the report.
const ruleWidth = 70

// Status line texts.
const (
	StatusCriticalText = "WARNING: Memory usage is critically high!"
	StatusElevatedText = "NOTICE: Memory usage is high"
	StatusNormalText   = "Memory usage is normal"
)

const unknownModeNote = "(build mode could not be determined)"

// Input is everything the report shows.
type Input struct {
	Usage   firmware.UsageReport
	Mode    firmware.Classification
	ELFSize uint64
	BINSize uint64
}

// Renderer renders firmware reports.
type Renderer struct {
	theme    ui.Theme
	barWidth int
}

// NewRenderer creates a Renderer. A barWidth of zero or less selects
// DefaultBarWidth.
func NewRenderer(theme ui.Theme, barWidth int) *Renderer {
	if barWidth <= 0 {
		barWidth = DefaultBarWidth
	}
	return &Renderer{
		theme:    theme,
		barWidth: barWidth,
	}
}

// Render returns the report as a newline-terminated multi-line string.
func (r *Renderer) Render(in Input) string {
	t := r.theme
	usage := in.Usage
	sizes := usage.Sizes
	rule := strings.Repeat("=", ruleWidth)

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteString("\n")
	}

	line("%s", rule)
	line("%s -- %s",
		t.Paint(t.Title, usage.Profile.Name+" Firmware Information"),
		r.renderMode(in.Mode))
	line("%s", rule)

	line("%s", t.Paint(t.Heading, "Memory Usage:"))
	line("Flash: %s / %s (%5.1f%%) %s",
		FormatByteCount(usage.FlashUsed),
		FormatByteCount(usage.Profile.FlashBytes),
		usage.FlashPercent,
		RenderProgressIndicator(usage.FlashPercent, r.barWidth))
	line("RAM  : %s / %s (%5.1f%%) %s",
		FormatByteCount(usage.RAMUsed),
		FormatByteCount(usage.Profile.RAMBytes),
		usage.RAMPercent,
		RenderProgressIndicator(usage.RAMPercent, r.barWidth))

	line("")
	line("%s", t.Paint(t.Heading, "Section Details:"))
	line("ELF:%s  BIN:%s TEXT:%s  DATA:%s  BSS:%s",
		FormatByteCount(in.ELFSize),
		FormatByteCount(in.BINSize),
		FormatByteCount(sizes.Text),
		FormatByteCount(sizes.Data),
		FormatByteCount(sizes.BSS))

	line("")
	line("%s", r.renderStatus(usage.Status()))
	line("%s", rule)

	return b.String()
}

// Print writes the rendered report to w.
func (r *Renderer) Print(w io.Writer, in Input) error {
	_, err := io.WriteString(w, r.Render(in))
	return err
}

func (r *Renderer) renderMode(c firmware.Classification) string {
	t := r.theme
	if !c.Known {
		return t.Paint(t.Unknown, c.String()) + " " + t.Paint(t.Muted, unknownModeNote)
	}
	if c.Mode == firmware.Debug {
		return t.Paint(t.Debug, c.String())
	}
	return t.Paint(t.Release, c.String())
}

func (r *Renderer) renderStatus(s firmware.Status) string {
	t := r.theme
	switch s {
	case firmware.StatusCritical:
		return t.Paint(t.Critical, StatusCriticalText)
	case firmware.StatusElevated:
		return t.Paint(t.Notice, StatusElevatedText)
	default:
		return t.Paint(t.Normal, StatusNormalText)
	}
}
