package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/fwreport/internal/logging"
)

// DefaultPrefix is the GNU Arm Embedded toolchain prefix.
const DefaultPrefix = "arm-none-eabi-"

// ExecPathEnvVar names the toolchain bin directory, as used by RT-Thread builds.
const ExecPathEnvVar = "RTT_EXEC_PATH"

// Tool names, without prefix.
const (
	ToolSize    = "size"
	ToolObjdump = "objdump"
)

// Config holds the configuration for toolchain invocations.
type Config struct {
	// Prefix is prepended to each tool name.
	// Default: "arm-none-eabi-"
	Prefix string

	// ExecPath is the directory holding the toolchain binaries.
	// Empty means search PATH.
	ExecPath string

	// SizePath overrides the resolved size tool path.
	SizePath string

	// ObjdumpPath overrides the resolved objdump tool path.
	ObjdumpPath string

	// Timeout bounds each tool run. Zero means no timeout.
	Timeout time.Duration
}

// DefaultConfig returns a Config with the stock prefix and ExecPath taken
// from RTT_EXEC_PATH.
func DefaultConfig() Config {
	return Config{
		Prefix:   DefaultPrefix,
		ExecPath: os.Getenv(ExecPathEnvVar),
	}
}

// ToolPath resolves the command used for tool (ToolSize or ToolObjdump).
func (c Config) ToolPath(tool string) string {
	switch {
	case tool == ToolSize && c.SizePath != "":
		return c.SizePath
	case tool == ToolObjdump && c.ObjdumpPath != "":
		return c.ObjdumpPath
	}
	name := c.Prefix + tool
	if c.ExecPath != "" {
		return filepath.Join(c.ExecPath, name)
	}
	return name
}

// Output is the captured result of one tool invocation.
type Output struct {
	Tool     string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Success reports whether the tool exited with status 0.
func (o Output) Success() bool {
	return o.ExitCode == 0
}

// Runner invokes toolchain binaries via os/exec.
type Runner struct {
	config Config
	logger *zap.Logger
}

// NewRunner creates a new Runner with the given configuration.
func NewRunner(config Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		config: config,
		logger: logger,
	}
}

// Config returns the runner configuration.
func (r *Runner) Config() Config {
	return r.config
}

// SizeSummary runs "<prefix>size --format=berkeley <elf>".
func (r *Runner) SizeSummary(ctx context.Context, elfPath string) Output {
	return r.Run(ctx, r.config.ToolPath(ToolSize), "--format=berkeley", elfPath)
}

// SectionHeaders runs "<prefix>objdump -h <elf>".
func (r *Runner) SectionHeaders(ctx context.Context, elfPath string) Output {
	return r.Run(ctx, r.config.ToolPath(ToolObjdump), "-h", elfPath)
}

// Run executes tool with args and captures its output. It never returns an
// error: a tool that cannot be started is reported with ExitCode -1 and the
// start error in Stderr.
func (r *Runner) Run(ctx context.Context, tool string, args ...string) Output {
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	r.logger.Debug("running tool",
		zap.String("tool", tool),
		zap.Strings("args", args),
	)

	start := time.Now()
	cmd := exec.CommandContext(ctx, tool, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	err := cmd.Run()

	out := Output{
		Tool:     tool,
		Args:     args,
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
		} else {
			// Command failed to start
			out.ExitCode = -1
			if out.Stderr != "" {
				out.Stderr += "\n"
			}
			out.Stderr += err.Error()
		}
		if ctx.Err() != nil && out.ExitCode == 0 {
			out.ExitCode = -1
		}
	}

	logging.LogToolRun(r.logger, tool, args, out.ExitCode, out.Duration)
	r.logger.Debug("tool output",
		zap.String("tool", tool),
		zap.String("stdout", out.Stdout),
		zap.String("stderr", out.Stderr),
	)

	return out
}
