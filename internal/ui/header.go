package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// MinTerminalWidth is the narrowest width a Header renders at.
const MinTerminalWidth = 40

const defaultTerminalWidth = 80

// GetTerminalWidth returns the width of stdout, or 80 when stdout is not a
// terminal.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// Param is one labeled value shown in a Header.
type Param struct {
	Key   string
	Value string
}

// Header is a boxed command title followed by its parameters.
type Header struct {
	Title   string  // e.g., "Setup Verification"
	Command string  // e.g., "fwreport verify-setup"
	Params  []Param // shown in order
	Width   int
}

// NewHeader creates a header sized to the terminal.
func NewHeader(title, command string, params ...Param) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the rendering width.
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the header as a rounded box.
func (h *Header) Render(t Theme) string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	lines := []string{
		t.Paint(t.Title, strings.ToUpper(h.Title)),
		t.Paint(t.Muted, h.Command),
	}

	if len(h.Params) > 0 {
		// border and padding take 4 columns
		lines = append(lines, t.Paint(t.Unknown, strings.Repeat("─", width-4)))

		keyWidth := 0
		for _, p := range h.Params {
			if len(p.Key) > keyWidth {
				keyWidth = len(p.Key)
			}
		}
		for _, p := range h.Params {
			key := p.Key + ":" + strings.Repeat(" ", keyWidth-len(p.Key))
			lines = append(lines, t.Paint(t.Heading, key)+" "+p.Value)
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2)
	if t.Color {
		box = box.BorderForeground(TitleColor)
	}

	return box.Render(strings.Join(lines, "\n"))
}
