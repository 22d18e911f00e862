// Package report renders the post-build firmware memory report.
//
// A report looks like this (colors omitted):
//
//	======================================================================
//	STM32F446RC Firmware Information -- Release
//	======================================================================
//	Memory Usage:
//	Flash:  99.6K / 256.0K ( 38.9%) [===========>                  ]
//	RAM  :   6.8K / 128.0K (  5.3%) [=>                            ]
//
//	Section Details:
//	ELF:412.3K  BIN: 99.6K TEXT: 97.7K  DATA:  2.0K  BSS:  4.9K
//
//	Memory usage is normal
//	======================================================================
//
// The Generator drives the pipeline: locate the ELF and BIN, run size and
// objdump through a Toolchain, build a firmware.UsageReport and print it with
// a Renderer. Any failure before printing aborts the report with a typed
// error; an objdump failure only marks the build mode Unknown.
//
//	gen := report.NewGenerator(report.Config{Profile: *profile}, runner,
//	    report.NewRenderer(theme, report.DefaultBarWidth), os.Stdout, logger)
//	if _, err := gen.Generate(ctx, "build/rtthread.elf"); err != nil {
//	    return err
//	}
package report
