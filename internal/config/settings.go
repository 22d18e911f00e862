package config

import (
	"fmt"
	"strings"

	"github.com/muurk/fwreport/internal/device"
	"github.com/muurk/fwreport/internal/firmware"
	"github.com/muurk/fwreport/internal/toolchain"
	"github.com/muurk/fwreport/internal/ui"
)

// CurrentVersion is the only settings file version understood.
const CurrentVersion = 1

// Settings is the contents of the configuration file.
type Settings struct {
	Version     int    `yaml:"version"`
	Target      string `yaml:"target,omitempty"`       // Device profile name or alias
	BuildDir    string `yaml:"build_dir,omitempty"`    // Fallback directory for the BIN
	ToolPrefix  string `yaml:"tool_prefix,omitempty"`  // e.g. "arm-none-eabi-"
	ExecPath    string `yaml:"exec_path,omitempty"`    // Toolchain bin directory
	SizePath    string `yaml:"size_path,omitempty"`    // Explicit size tool
	ObjdumpPath string `yaml:"objdump_path,omitempty"` // Explicit objdump tool
	Color       string `yaml:"color,omitempty"`        // auto, always or never
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Version:    CurrentVersion,
		Target:     device.DefaultTarget,
		BuildDir:   firmware.DefaultBuildDir,
		ToolPrefix: toolchain.DefaultPrefix,
		Color:      ui.ColorAuto,
	}
}

// Validate checks the version and the enumerated fields.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", s.Version, CurrentVersion)
	}
	if !ui.ValidColorMode(s.Color) {
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", s.Color)
	}
	return nil
}

// ApplyEnv overlays environment variables read through getenv.
// Only RTT_EXEC_PATH is recognized.
func (s *Settings) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(toolchain.ExecPathEnvVar)); v != "" {
		s.ExecPath = v
	}
}

// ToolchainConfig converts the settings into a runner configuration.
func (s *Settings) ToolchainConfig() toolchain.Config {
	return toolchain.Config{
		Prefix:      s.ToolPrefix,
		ExecPath:    s.ExecPath,
		SizePath:    s.SizePath,
		ObjdumpPath: s.ObjdumpPath,
	}
}

// fillDefaults sets empty fields to their built-in values.
func (s *Settings) fillDefaults() {
	d := Defaults()
	if s.Target == "" {
		s.Target = d.Target
	}
	if s.BuildDir == "" {
		s.BuildDir = d.BuildDir
	}
	if s.ToolPrefix == "" {
		s.ToolPrefix = d.ToolPrefix
	}
	if s.Color == "" {
		s.Color = d.Color
	}
}
