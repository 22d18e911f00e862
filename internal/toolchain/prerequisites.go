package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// versionProbeTimeout bounds the "--version" probe used by setup checks.
const versionProbeTimeout = 2 * time.Second

// PrerequisiteCheck represents the result of checking a single prerequisite.
type PrerequisiteCheck struct {
	// Name is the tool name (e.g. "size")
	Name string
	// Command is the command that was probed
	Command string
	// Available indicates whether the tool answered --version
	Available bool
	// Path is the resolved path
	Path string
	// Version is the first line of --version output
	Version string
	// Message provides additional context (error message or success info)
	Message string
	// Error contains the underlying error if check failed
	Error error
}

// PrerequisiteResult contains the results of all prerequisite checks.
type PrerequisiteResult struct {
	Checks       []PrerequisiteCheck
	AllAvailable bool
}

// ValidatePrerequisites checks that the size and objdump tools resolve and run.
func ValidatePrerequisites(ctx context.Context, config Config) *PrerequisiteResult {
	result := &PrerequisiteResult{AllAvailable: true}

	for _, tool := range []string{ToolSize, ToolObjdump} {
		check := checkTool(ctx, tool, config.ToolPath(tool))
		result.Checks = append(result.Checks, check)
		if !check.Available {
			result.AllAvailable = false
		}
	}

	return result
}

func checkTool(ctx context.Context, name, command string) PrerequisiteCheck {
	check := PrerequisiteCheck{
		Name:    name,
		Command: command,
	}

	path, err := exec.LookPath(command)
	if err != nil {
		check.Error = err
		check.Message = fmt.Sprintf("%s not found\n"+
			"Install on macOS: brew install --cask gcc-arm-embedded\n"+
			"Install on Linux: sudo apt-get install gcc-arm-none-eabi\n"+
			"Or point %s at the toolchain bin directory", command, ExecPathEnvVar)
		return check
	}
	check.Path = path

	version, err := probeVersion(ctx, path)
	if err != nil {
		check.Error = err
		check.Message = fmt.Sprintf("%s found at %s but failed to execute: %v", command, path, err)
		return check
	}

	check.Version = version
	check.Available = true
	check.Message = fmt.Sprintf("Found at %s", path)
	return check
}

func probeVersion(ctx context.Context, path string) (string, error) {
	versionCtx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	output, err := exec.CommandContext(versionCtx, path, "--version").Output()
	if err != nil {
		return "", err
	}

	line, _, _ := strings.Cut(string(output), "\n")
	return strings.TrimSpace(line), nil
}

// ValidateToolPath checks that a specific tool command is executable.
func ValidateToolPath(ctx context.Context, name, command string) error {
	if command == "" {
		return &PrerequisiteError{
			Prerequisite: name,
			Details:      "tool path is empty",
		}
	}

	if _, err := probeVersion(ctx, command); err != nil {
		return &PrerequisiteError{
			Prerequisite: name,
			Details:      fmt.Sprintf("Failed to execute %s --version", command),
			Err:          err,
		}
	}

	return nil
}

// FormatPrerequisiteReport formats a PrerequisiteResult into a human-readable string.
func FormatPrerequisiteReport(result *PrerequisiteResult) string {
	var sb strings.Builder

	sb.WriteString("Toolchain Prerequisites Check:\n")
	sb.WriteString(strings.Repeat("━", 42) + "\n\n")

	for _, check := range result.Checks {
		if check.Available {
			sb.WriteString(fmt.Sprintf("✓ %s\n", check.Command))
			if check.Version != "" {
				sb.WriteString(fmt.Sprintf("  Version: %s\n", check.Version))
			}
			if check.Path != "" {
				sb.WriteString(fmt.Sprintf("  Path: %s\n", check.Path))
			}
		} else {
			sb.WriteString(fmt.Sprintf("✗ %s\n", check.Command))
			if check.Message != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", check.Message))
			}
		}
		sb.WriteString("\n")
	}

	if result.AllAvailable {
		sb.WriteString("All required tools are available.\n")
	} else {
		sb.WriteString("Some tools are missing. Please install them before proceeding.\n")
	}

	return sb.String()
}
