package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/fwreport/internal/device"
)

// RenderError renders err as a marked error line. Continuation lines of a
// multi-line error are indented under the message.
func RenderError(t Theme, err error) string {
	lines := strings.Split(strings.TrimRight(err.Error(), "\n"), "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = "  " + lines[i]
	}
	return t.Paint(t.Error, FailureMarker+" "+strings.Join(lines, "\n"))
}

// PrintError writes a marked error line to w.
func PrintError(w io.Writer, t Theme, err error) {
	_, _ = fmt.Fprintln(w, RenderError(t, err))
}

// PrintSuccess writes a marked success line to w.
func PrintSuccess(w io.Writer, t Theme, msg string) {
	_, _ = fmt.Fprintln(w, t.Paint(t.Success, SuccessMarker+" "+msg))
}

// RenderTargets renders the device catalog as a table.
func RenderTargets(t Theme, profiles []*device.Profile, current string) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TARGET", "CORE", "FLASH", "RAM", "ALIASES")

	for _, p := range profiles {
		name := p.Name
		if strings.EqualFold(p.Name, current) {
			name += " *"
		}
		tbl.Row(
			name,
			p.Core,
			strconv.FormatUint(p.FlashKiB, 10)+" KiB",
			strconv.FormatUint(p.RAMKiB, 10)+" KiB",
			strings.Join(p.Aliases, ", "),
		)
	}

	if t.Color {
		tbl.BorderStyle(t.Unknown).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return t.Heading.Padding(0, 1)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			})
	} else {
		tbl.StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	}

	return tbl.Render()
}
