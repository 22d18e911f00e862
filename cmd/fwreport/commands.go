package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/fwreport/internal/config"
	"github.com/muurk/fwreport/internal/device"
	"github.com/muurk/fwreport/internal/toolchain"
	"github.com/muurk/fwreport/internal/ui"
	"github.com/muurk/fwreport/internal/version"
)

// targetsCommand implements the 'targets' command
func (a *app) targetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List known target parts",
		Long: `List the parts fwreport knows the flash and RAM capacities of.

The current target (from --target or the config file) is marked with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			settings, err := a.settings(cmd)
			if err != nil {
				return err
			}
			catalog, err := device.LoadCatalog()
			if err != nil {
				return err
			}

			current := settings.Target
			if p, ok := catalog.Get(current); ok {
				current = p.Name
			}

			out := cmd.OutOrStdout()
			theme := ui.NewTheme(out, ui.ColorEnabled(settings.Color, asFile(out)))
			_, err = fmt.Fprintln(out, ui.RenderTargets(theme, catalog.Profiles, current))
			return err
		},
	}
}

// verifySetupCommand implements the 'verify-setup' command
func (a *app) verifySetupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-setup",
		Short: "Verify the Arm toolchain is installed",
		Long: `Verify that the size and objdump tools resolve and run.

This command checks:
  1. arm-none-eabi-size is installed and answers --version
  2. arm-none-eabi-objdump is installed and answers --version

Tools are resolved the same way a report resolves them, so --exec-path,
--size-path, --objdump-path and RTT_EXEC_PATH all apply.`,
		Example: `  # Verify default setup
  fwreport verify-setup

  # Verify a toolchain outside PATH
  fwreport verify-setup --exec-path /opt/gcc-arm/bin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			settings, err := a.settings(cmd)
			if err != nil {
				return err
			}

			tools := settings.ToolchainConfig()
			out := cmd.OutOrStdout()
			theme := ui.NewTheme(out, ui.ColorEnabled(settings.Color, asFile(out)))
			header := ui.NewHeader("Setup Verification", "fwreport verify-setup",
				ui.Param{Key: "Size", Value: tools.ToolPath(toolchain.ToolSize)},
				ui.Param{Key: "Objdump", Value: tools.ToolPath(toolchain.ToolObjdump)},
			)
			fmt.Fprintln(out, header.Render(theme))
			fmt.Fprintln(out)

			result := toolchain.ValidatePrerequisites(commandContext(cmd), tools)
			if _, err := fmt.Fprint(out, toolchain.FormatPrerequisiteReport(result)); err != nil {
				return err
			}

			if !result.AllAvailable {
				var missing []string
				for _, check := range result.Checks {
					if !check.Available {
						missing = append(missing, check.Command)
					}
				}
				return &toolchain.PrerequisiteError{
					Prerequisite: strings.Join(missing, ", "),
					Details:      "Run with --exec-path or set " + toolchain.ExecPathEnvVar + " to the toolchain bin directory",
				}
			}
			return nil
		},
	}
}

// configCommand implements the 'config' command group
func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the fwreport config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.resolveConfigPath()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			path, err := a.resolveConfigPath()
			if err != nil {
				return err
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}

			mode := a.colorMode
			if a.noColor {
				mode = ui.ColorNever
			}
			out := cmd.OutOrStdout()
			ui.PrintSuccess(out, ui.NewTheme(out, ui.ColorEnabled(mode, asFile(out))), "Wrote "+path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}

func (a *app) resolveConfigPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.GetConfigPath()
}

// versionCommand implements the 'version' command
func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fwreport %s\n", version.Full())
		},
	}
}
