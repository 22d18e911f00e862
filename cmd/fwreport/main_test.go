package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/fwreport/internal/toolchain"
)

const mockSize = `cat <<'EOF'
   text	   data	    bss	    dec	    hex	filename
 100000	   2000	   5000	 107000	  1a1f8	build/rtthread.elf
EOF
`

// fixture is a build tree with an ELF, its BIN and mock tools.
type fixture struct {
	dir     string
	elf     string
	size    string
	objdump string
	config  string
}

func writeScript(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("failed to create mock tool: %v", err)
	}
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	t.Setenv(toolchain.ExecPathEnvVar, "")
	t.Setenv("NO_COLOR", "")

	dir := t.TempDir()
	f := fixture{
		dir:     dir,
		elf:     filepath.Join(dir, "rtthread.elf"),
		size:    filepath.Join(dir, "mock-size"),
		objdump: filepath.Join(dir, "mock-objdump"),
		config:  filepath.Join(dir, "config.yaml"),
	}
	if err := os.WriteFile(f.elf, make([]byte, 4096), 0644); err != nil {
		t.Fatalf("failed to write elf: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "rtthread.bin"), make([]byte, 1024), 0644); err != nil {
		t.Fatalf("failed to write bin: %v", err)
	}
	writeScript(t, f.size, `if [ "$1" = "--version" ]; then echo "GNU size (mock) 2.40"; exit 0; fi
`+mockSize)
	writeScript(t, f.objdump, `if [ "$1" = "--version" ]; then echo "GNU objdump (mock) 2.40"; exit 0; fi
echo "  1 .text 00018000"
`)
	return f
}

func (f fixture) args(extra ...string) []string {
	return append([]string{
		"--config", f.config,
		"--size-path", f.size,
		"--objdump-path", f.objdump,
	}, extra...)
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Report(t *testing.T) {
	f := newFixture(t)

	code, stdout, stderr := runCLI(f.args(f.elf)...)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if stderr != "" {
		t.Errorf("expected empty stderr, got:\n%s", stderr)
	}
	for _, want := range []string{
		"STM32F446RC Firmware Information -- Release",
		"Flash:  99.6K / 256.0K ( 38.9%) [===========>                  ]",
		"ELF:  4.0K  BIN:  1.0K",
		"Memory usage is normal",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "\x1b[") {
		t.Error("expected no ANSI escapes when stdout is not a terminal")
	}
}

func TestRun_ReportFlags(t *testing.T) {
	f := newFixture(t)

	code, stdout, stderr := runCLI(f.args("--target", "stm32f411re", "--width", "10", "--color", "always", f.elf)...)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "STM32F411RE Firmware Information") {
		t.Errorf("expected STM32F411RE title:\n%s", stdout)
	}
	if !strings.Contains(stdout, "\x1b[") {
		t.Error("expected ANSI escapes with --color always")
	}
}

func TestRun_ConfigFile(t *testing.T) {
	f := newFixture(t)

	buildDir := filepath.Join(f.dir, "out")
	if err := os.Mkdir(buildDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(filepath.Join(f.dir, "rtthread.bin"), filepath.Join(buildDir, "rtthread.bin")); err != nil {
		t.Fatal(err)
	}
	cfg := "version: 1\ntarget: STM32F407VG\nbuild_dir: " + buildDir + "\n"
	if err := os.WriteFile(f.config, []byte(cfg), 0600); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runCLI(f.args(f.elf)...)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "STM32F407VG Firmware Information") {
		t.Errorf("expected target from config file:\n%s", stdout)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(f fixture) []string
		want string
	}{
		{
			name: "no arguments",
			args: func(f fixture) []string { return f.args() },
			want: "accepts 1 arg(s), received 0",
		},
		{
			name: "two arguments",
			args: func(f fixture) []string { return f.args(f.elf, f.elf) },
			want: "accepts 1 arg(s), received 2",
		},
		{
			name: "unknown flag",
			args: func(f fixture) []string { return f.args("--bogus", f.elf) },
			want: "unknown flag: --bogus",
		},
		{
			name: "invalid color",
			args: func(f fixture) []string { return f.args("--color", "rainbow", f.elf) },
			want: "invalid --color value rainbow",
		},
		{
			name: "missing elf",
			args: func(f fixture) []string { return f.args(filepath.Join(f.dir, "absent.elf")) },
			want: "ELF file not found",
		},
		{
			name: "unknown target",
			args: func(f fixture) []string { return f.args("--target", "ATmega328P", f.elf) },
			want: `unknown target "ATmega328P"`,
		},
		{
			name: "missing size tool",
			args: func(f fixture) []string {
				return append(f.args(f.elf), "--size-path", filepath.Join(f.dir, "no-such-size"))
			},
			want: "no-such-size failed on",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			code, _, stderr := runCLI(tt.args(f)...)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.HasPrefix(stderr, "✗ ") {
				t.Errorf("expected marked error line on stderr, got:\n%s", stderr)
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("expected %q in stderr:\n%s", tt.want, stderr)
			}
		})
	}
}

func TestRun_SizeToolFailure(t *testing.T) {
	f := newFixture(t)
	writeScript(t, f.size, "echo 'File format not recognized' >&2\nexit 1\n")

	code, stdout, stderr := runCLI(f.args(f.elf)...)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if stdout != "" {
		t.Errorf("expected no report, got:\n%s", stdout)
	}
	if !strings.Contains(stderr, "(exit code 1): File format not recognized") {
		t.Errorf("expected tool stderr in error:\n%s", stderr)
	}
}

func TestRun_ParseFailure(t *testing.T) {
	f := newFixture(t)
	writeScript(t, f.size, "echo 'garbage'\necho 'more garbage'\n")

	code, _, stderr := runCLI(f.args(f.elf)...)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "failed to parse firmware size output") {
		t.Errorf("expected parse error:\n%s", stderr)
	}
}

func TestRun_Targets(t *testing.T) {
	f := newFixture(t)

	code, stdout, stderr := runCLI("--config", f.config, "targets", "--target", "stm32f446rct6")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	for _, want := range []string{"TARGET", "STM32F446RC *", "STM32F103C8", "256 KiB"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in targets output:\n%s", want, stdout)
		}
	}
}

func TestRun_VerifySetup(t *testing.T) {
	f := newFixture(t)

	code, stdout, stderr := runCLI(append([]string{"verify-setup"}, f.args()...)...)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "GNU size (mock) 2.40") {
		t.Errorf("expected size version in output:\n%s", stdout)
	}
	if !strings.Contains(stdout, "All required tools are available.") {
		t.Errorf("expected success summary:\n%s", stdout)
	}
}

func TestRun_VerifySetup_Missing(t *testing.T) {
	f := newFixture(t)

	code, stdout, stderr := runCLI("verify-setup",
		"--config", f.config,
		"--exec-path", filepath.Join(f.dir, "nowhere"),
	)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stdout, "Some tools are missing") {
		t.Errorf("expected missing summary:\n%s", stdout)
	}
	if !strings.Contains(stderr, "missing prerequisite") || !strings.Contains(stderr, "arm-none-eabi-size") {
		t.Errorf("expected prerequisite error:\n%s", stderr)
	}
}

func TestRun_Config(t *testing.T) {
	f := newFixture(t)

	code, stdout, _ := runCLI("config", "path", "--config", f.config)
	if code != 0 || strings.TrimSpace(stdout) != f.config {
		t.Errorf("config path = %q (exit %d), want %s", stdout, code, f.config)
	}

	code, stdout, stderr := runCLI("config", "init", "--config", f.config)
	if code != 0 {
		t.Fatalf("config init exit code %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "✓ Wrote "+f.config) {
		t.Errorf("expected success line, got:\n%s", stdout)
	}

	code, _, stderr = runCLI("config", "init", "--config", f.config)
	if code != 1 || !strings.Contains(stderr, "already exists") {
		t.Errorf("expected already exists error, exit %d, stderr:\n%s", code, stderr)
	}

	code, _, stderr = runCLI("config", "init", "--force", "--config", f.config)
	if code != 0 {
		t.Errorf("config init --force exit code %d, stderr:\n%s", code, stderr)
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI("version")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.HasPrefix(stdout, "fwreport ") {
		t.Errorf("unexpected version output: %q", stdout)
	}
}
