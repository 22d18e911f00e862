// Package config loads the fwreport settings file.
//
// Settings live in a small YAML file under the user's configuration
// directory:
//   - Linux: $XDG_CONFIG_HOME/fwreport/config.yaml or $HOME/.config/fwreport/config.yaml
//   - macOS: $HOME/.config/fwreport/config.yaml
//   - Windows: %LOCALAPPDATA%\fwreport\config.yaml
//
// A missing file is not an error; Defaults are used instead. Values are
// layered in this order, later winning: built-in defaults, the file, the
// RTT_EXEC_PATH environment variable, command-line flags (applied by the
// CLI).
//
//	settings, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//	runner := toolchain.NewRunner(settings.ToolchainConfig(), logger)
package config
