// Package firmware turns toolchain output for a linked image into a usage model.
//
// # Size Summary
//
// ParseSizeSummary reads Berkeley-format output of arm-none-eabi-size into a
// SizeBreakdown. The first row whose leading column is purely numeric is
// taken; size prints one row per input file and fwreport passes exactly one.
// Output that does not have this shape is a ParseError, never a zero-filled
// breakdown.
//
// # Build Mode
//
// ClassifyBuildMode looks for DWARF section names in objdump -h output. The
// result is a Classification; Known is false when objdump failed, which is
// not an error and still produces a report.
//
// # Usage
//
//	sizes, err := firmware.ParseSizeSummary(out.Stdout)
//	if err != nil {
//	    return err
//	}
//	usage := firmware.NewUsageReport(sizes, profile)
//	switch usage.Status() {
//	case firmware.StatusCritical:
//	    // flash or RAM above 90%
//	}
//
// # Image Paths
//
// ResolveImages checks the ELF and locates the flattened binary next to it,
// or under the build directory that the RT-Thread post action writes to.
package firmware
