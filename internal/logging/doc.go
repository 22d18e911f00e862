// Package logging provides structured logging for fwreport.
//
// This package builds a zap console logger and holds the process-wide instance. Logging is
// silent by default so that the firmware report printed on stdout is the only
// output a build log sees. Diagnostic output is enabled with an environment
// variable and always goes to stderr.
//
// # Log Levels
//
//   - Debug: raw tool output, resolved paths, parsed size rows
//   - Info: tool invocations and their exit codes
//   - Warn: degraded results (build mode could not be classified)
//   - Error: fatal report failures
//
// # Configuration
//
// Initialize logging once at startup:
//
//	logging.InitializeFromEnv()
//	defer logging.Sync()
//
// Then hand the logger to components that need one:
//
//	runner := toolchain.NewRunner(cfg, logging.GetLogger())
//
// Set FWREPORT_LOG_LEVEL=debug to see everything.
package logging
