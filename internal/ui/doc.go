// Package ui provides terminal styling for the fwreport CLI.
//
// Styles are grouped in a Theme, a read-only table built once at startup and
// passed to whatever renders output. Nothing in this package holds mutable
// global state.
//
//	theme := ui.NewTheme(os.Stdout, ui.ColorEnabled(ui.ColorAuto, os.Stdout))
//	fmt.Println(theme.Paint(theme.Critical, "WARNING: Memory usage is critically high!"))
//
// With color disabled (output is not a terminal, NO_COLOR is set, or
// --color=never), Paint returns its input unchanged so the report reads the
// same in CI logs.
//
// Header draws the boxed title shown by setup commands, and RenderTargets
// draws the part catalog as a table.
package ui
