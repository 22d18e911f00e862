// Fwreport prints a post-build memory usage report for STM32 firmware.
//
// It runs the GNU Arm toolchain's size and objdump against a linked ELF
// image, locates the matching flattened .bin, and reports flash and RAM
// utilization against the target part's capacities:
//
//	fwreport build/rtthread.elf
//
// Tools resolve to $RTT_EXEC_PATH/arm-none-eabi-<tool> when RTT_EXEC_PATH
// is set, else arm-none-eabi-<tool> on PATH. Set FWREPORT_LOG_LEVEL=debug
// to see tool invocations on stderr.
//
// See 'fwreport --help' for available commands.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/muurk/fwreport/internal/config"
	"github.com/muurk/fwreport/internal/device"
	"github.com/muurk/fwreport/internal/logging"
	"github.com/muurk/fwreport/internal/report"
	"github.com/muurk/fwreport/internal/toolchain"
	"github.com/muurk/fwreport/internal/ui"
	"github.com/muurk/fwreport/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. Errors are
// printed once to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	// Silent unless FWREPORT_LOG_LEVEL is set
	logging.InitializeFromEnv()
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{colorMode: ui.ColorAuto}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		theme := ui.NewTheme(stderr, ui.ColorEnabled(a.colorMode, asFile(stderr)))
		ui.PrintError(stderr, theme, err)
		return 1
	}
	return 0
}

// app holds flag values and the color mode resolved for error output.
type app struct {
	configPath  string
	target      string
	buildDir    string
	sizePath    string
	objdumpPath string
	execPath    string
	color       string
	noColor     bool
	width       int

	colorMode string
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fwreport <elf_file>",
		Short: "Firmware memory usage report",
		Long: `Report flash and RAM usage of a linked firmware image.

This command will:
  1. Check the ELF exists and locate the matching .bin
  2. Run arm-none-eabi-size and read the text/data/bss summary
  3. Run arm-none-eabi-objdump -h to tell debug from release builds
  4. Print usage against the target's flash and RAM capacities

The .bin is looked up next to the ELF first, then in the build directory.

Use 'fwreport verify-setup' to check the toolchain.`,
		Version: version.Version,
		Example: `  # Report on an RT-Thread build
  fwreport build/rtthread.elf

  # Use a toolchain outside PATH
  RTT_EXEC_PATH=/opt/gcc-arm/bin fwreport build/rtthread.elf

  # Report against a different part
  fwreport --target STM32F411RE build/rtthread.elf`,
		Args:          exactlyOneImage,
		RunE:          a.runReport,
		SilenceErrors: true,
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Msg: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/fwreport/config.yaml)")
	pf.StringVar(&a.target, "target", "", "Target part number (default from config, else "+device.DefaultTarget+")")
	pf.StringVar(&a.execPath, "exec-path", "", "Toolchain bin directory (overrides "+toolchain.ExecPathEnvVar+")")
	pf.StringVar(&a.sizePath, "size-path", "", "Path to the size tool")
	pf.StringVar(&a.objdumpPath, "objdump-path", "", "Path to the objdump tool")
	pf.StringVar(&a.color, "color", "", "Color output: auto, always or never (default from config, else auto)")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable color output")

	root.Flags().StringVar(&a.buildDir, "build-dir", "", "Fallback directory for the .bin (default from config, else build)")
	root.Flags().IntVar(&a.width, "width", report.DefaultBarWidth, "Progress bar width")

	root.AddCommand(a.targetsCommand())
	root.AddCommand(a.verifySetupCommand())
	root.AddCommand(a.configCommand())
	root.AddCommand(versionCommand())

	return root
}

// exactlyOneImage is cobra.ExactArgs(1) returning a UsageError.
func exactlyOneImage(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return &UsageError{Msg: err.Error()}
	}
	return nil
}

func (a *app) runReport(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	settings, err := a.settings(cmd)
	if err != nil {
		return err
	}

	catalog, err := device.LoadCatalog()
	if err != nil {
		return err
	}
	profile, err := catalog.Lookup(settings.Target)
	if err != nil {
		return err
	}

	logger := logging.GetLogger()
	out := cmd.OutOrStdout()
	theme := ui.NewTheme(out, ui.ColorEnabled(settings.Color, asFile(out)))

	gen := report.NewGenerator(
		report.Config{Profile: *profile, BuildDir: settings.BuildDir},
		toolchain.NewRunner(settings.ToolchainConfig(), logger),
		report.NewRenderer(theme, a.width),
		out,
		logger,
	)

	_, err = gen.Generate(commandContext(cmd), args[0])
	return err
}

// settings layers config file, environment and flags.
func (a *app) settings(cmd *cobra.Command) (*config.Settings, error) {
	path, err := a.resolveConfigPath()
	if err != nil {
		return nil, err
	}

	s, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	s.ApplyEnv(os.Getenv)

	flags := cmd.Flags()
	if flags.Changed("target") {
		s.Target = a.target
	}
	if flags.Changed("build-dir") {
		s.BuildDir = a.buildDir
	}
	if flags.Changed("exec-path") {
		s.ExecPath = a.execPath
	}
	if flags.Changed("size-path") {
		s.SizePath = a.sizePath
	}
	if flags.Changed("objdump-path") {
		s.ObjdumpPath = a.objdumpPath
	}
	if flags.Changed("color") {
		if !ui.ValidColorMode(a.color) {
			return nil, &UsageError{Msg: "invalid --color value " + a.color + " (expected auto, always or never)"}
		}
		s.Color = a.color
	}
	if a.noColor {
		s.Color = ui.ColorNever
	}

	a.colorMode = s.Color
	return s, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// asFile returns w as an *os.File, or nil when it is not one.
func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
