// Package toolchain runs the GNU Arm Embedded binutils that fwreport reads
// its data from.
//
// Two tools are used:
//
//   - <prefix>size --format=berkeley <elf>  (text/data/bss summary)
//   - <prefix>objdump -h <elf>              (section headers)
//
// A Runner never turns a tool failure into a Go error. Every call returns an
// Output with the captured stdout, stderr and exit code, and the caller
// decides how to react: a failed size run is fatal to the report, a failed
// objdump run only means the build mode is unknown.
//
//	runner := toolchain.NewRunner(toolchain.DefaultConfig(), logger)
//	out := runner.SizeSummary(ctx, "build/rtthread.elf")
//	if !out.Success() {
//	    return toolchain.NewToolInvocationError(out, "build/rtthread.elf")
//	}
//
// # Tool Resolution
//
// Tool commands are built from Config: an explicit SizePath/ObjdumpPath
// wins, otherwise ExecPath + Prefix + tool name. DefaultConfig reads ExecPath
// from RTT_EXEC_PATH, the variable RT-Thread build scripts use for the
// compiler directory.
//
// # Timeouts
//
// Tools are local and fast, so runs are unbounded by default. Set
// Config.Timeout to cap them.
package toolchain
