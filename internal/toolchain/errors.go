package toolchain

import (
	"fmt"
	"strings"
)

// ToolInvocationError represents a tool that ran but exited non-zero, or
// could not be started at all (ExitCode -1).
type ToolInvocationError struct {
	// Tool is the command that was run
	Tool string
	// Path is the image the tool was run against
	Path string
	// ExitCode is the process exit code
	ExitCode int
	// Stderr is the captured error output
	Stderr string
}

func (e *ToolInvocationError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		stderr = "(no error output)"
	}
	return fmt.Sprintf("%s failed on %s (exit code %d): %s", e.Tool, e.Path, e.ExitCode, stderr)
}

// NewToolInvocationError builds a ToolInvocationError from a failed Output.
func NewToolInvocationError(out Output, path string) *ToolInvocationError {
	return &ToolInvocationError{
		Tool:     out.Tool,
		Path:     path,
		ExitCode: out.ExitCode,
		Stderr:   out.Stderr,
	}
}

// PrerequisiteError represents a missing or broken toolchain binary.
type PrerequisiteError struct {
	// Prerequisite is the name of the missing prerequisite
	Prerequisite string
	// Details provides additional context
	Details string
	// Underlying error
	Err error
}

func (e *PrerequisiteError) Error() string {
	msg := fmt.Sprintf("missing prerequisite: %s", e.Prerequisite)
	if e.Details != "" {
		msg += "\n" + e.Details
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\nError: %v", e.Err)
	}
	return msg
}

func (e *PrerequisiteError) Unwrap() error {
	return e.Err
}
