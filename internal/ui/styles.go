package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette for the firmware report. These are the bright ANSI colors
// so that build logs render the same on any terminal theme.
var (
	TitleColor    = lipgloss.Color("14") // Cyan - report title
	DebugColor    = lipgloss.Color("12") // Blue - debug build
	ReleaseColor  = lipgloss.Color("10") // Green - release build
	CriticalColor = lipgloss.Color("9")  // Red - critical usage, errors
	NoticeColor   = lipgloss.Color("11") // Yellow - elevated usage
	NormalColor   = lipgloss.Color("10") // Green - normal usage, checkmarks
	MutedColor    = lipgloss.Color("8")  // Gray - secondary info
)

// Color modes accepted by --color and the config file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Status markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

// Theme is the read-only style table used by the report renderer and the
// CLI. A Theme with Color false renders every string unchanged.
type Theme struct {
	Color bool

	Title    lipgloss.Style
	Heading  lipgloss.Style
	Debug    lipgloss.Style
	Release  lipgloss.Style
	Unknown  lipgloss.Style
	Critical lipgloss.Style
	Notice   lipgloss.Style
	Normal   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
}

// NewTheme builds a Theme whose styles render for w. When color is false the
// styles are never applied.
func NewTheme(w io.Writer, color bool) Theme {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Theme{
		Color:    color,
		Title:    r.NewStyle().Foreground(TitleColor).Bold(true),
		Heading:  r.NewStyle().Bold(true),
		Debug:    r.NewStyle().Foreground(DebugColor),
		Release:  r.NewStyle().Foreground(ReleaseColor),
		Unknown:  r.NewStyle().Foreground(MutedColor),
		Critical: r.NewStyle().Foreground(CriticalColor).Bold(true),
		Notice:   r.NewStyle().Foreground(NoticeColor).Bold(true),
		Normal:   r.NewStyle().Foreground(NormalColor).Bold(true),
		Error:    r.NewStyle().Foreground(CriticalColor),
		Success:  r.NewStyle().Foreground(NormalColor),
		Muted:    r.NewStyle().Foreground(MutedColor).Italic(true),
	}
}

// PlainTheme returns a Theme that never emits escape sequences.
func PlainTheme() Theme {
	return NewTheme(io.Discard, false)
}

// Paint renders text with style, or returns it unchanged for a plain theme.
func (t Theme) Paint(style lipgloss.Style, text string) string {
	if !t.Color {
		return text
	}
	return style.Render(text)
}

// ColorEnabled resolves a color mode for the given output.
func ColorEnabled(mode string, out *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return out != nil && term.IsTerminal(int(out.Fd()))
	}
}

// ValidColorMode reports whether mode is one of the accepted color modes.
func ValidColorMode(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}
