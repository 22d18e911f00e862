package report

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/muurk/fwreport/internal/device"
	"github.com/muurk/fwreport/internal/firmware"
	"github.com/muurk/fwreport/internal/toolchain"
)

// Toolchain is the subset of toolchain.Runner the generator needs.
type Toolchain interface {
	SizeSummary(ctx context.Context, elfPath string) toolchain.Output
	SectionHeaders(ctx context.Context, elfPath string) toolchain.Output
}

// Config holds the generator settings.
type Config struct {
	// Profile is the target part the usage is measured against
	Profile device.Profile

	// BuildDir is the fallback directory for the flattened binary.
	// Default: "build"
	BuildDir string
}

// Generator runs the full report pipeline for one image.
type Generator struct {
	config   Config
	tools    Toolchain
	renderer *Renderer
	out      io.Writer
	logger   *zap.Logger
}

// NewGenerator creates a Generator that prints reports to out.
func NewGenerator(config Config, tools Toolchain, renderer *Renderer, out io.Writer, logger *zap.Logger) *Generator {
	if config.BuildDir == "" {
		config.BuildDir = firmware.DefaultBuildDir
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		config:   config,
		tools:    tools,
		renderer: renderer,
		out:      out,
		logger:   logger,
	}
}

// Generate resolves the images for elfPath, runs the toolchain, and prints
// the report.
//
// Steps:
//  1. Check the ELF exists and locate the BIN (before any tool runs)
//  2. Read both file sizes
//  3. Run size and parse its summary row
//  4. Run objdump and classify the build mode (failure degrades to Unknown)
//  5. Derive usage and print the report
func (g *Generator) Generate(ctx context.Context, elfPath string) (Input, error) {
	images, err := firmware.ResolveImages(elfPath, g.config.BuildDir)
	if err != nil {
		return Input{}, err
	}

	g.logger.Debug("resolved firmware images",
		zap.String("elf", images.ELFPath),
		zap.String("bin", images.BINPath),
	)

	elfSize, binSize, err := images.FileSizes()
	if err != nil {
		return Input{}, err
	}

	sizeOut := g.tools.SizeSummary(ctx, images.ELFPath)
	if !sizeOut.Success() {
		return Input{}, toolchain.NewToolInvocationError(sizeOut, images.ELFPath)
	}

	sizes, err := firmware.ParseSizeSummary(sizeOut.Stdout)
	if err != nil {
		return Input{}, err
	}

	g.logger.Debug("parsed size summary",
		zap.Uint64("text", sizes.Text),
		zap.Uint64("data", sizes.Data),
		zap.Uint64("bss", sizes.BSS),
		zap.Uint64("total", sizes.Total),
	)

	dumpOut := g.tools.SectionHeaders(ctx, images.ELFPath)
	mode := firmware.ClassifyBuildMode(dumpOut.Stdout, dumpOut.ExitCode)
	if !mode.Known {
		g.logger.Warn("could not determine build mode",
			zap.String("tool", dumpOut.Tool),
			zap.Int("exit_code", dumpOut.ExitCode),
			zap.String("stderr", dumpOut.Stderr),
		)
	}

	in := Input{
		Usage:   firmware.NewUsageReport(sizes, g.config.Profile),
		Mode:    mode,
		ELFSize: uint64(elfSize),
		BINSize: uint64(binSize),
	}

	g.logger.Info("firmware report generated",
		zap.String("target", g.config.Profile.Name),
		zap.String("mode", mode.String()),
		zap.Float64("flash_percent", in.Usage.FlashPercent),
		zap.Float64("ram_percent", in.Usage.RAMPercent),
		zap.String("status", in.Usage.Status().String()),
	)

	if err := g.renderer.Print(g.out, in); err != nil {
		return in, fmt.Errorf("failed to write report: %w", err)
	}

	return in, nil
}
