package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"DEBUG", zapcore.DebugLevel},
		{" warn ", zapcore.WarnLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", &buf)

	l.Debug("hidden")
	LogToolRun(l, "arm-none-eabi-size", []string{"--format=berkeley", "app.elf"}, 0, 20*time.Millisecond)
	_ = l.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("expected debug entry to be filtered at info level")
	}
	for _, want := range []string{"INFO", "tool invocation complete", "arm-none-eabi-size", `"exit_code": 0`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output:\n%s", want, out)
		}
	}
}

func TestNew_EmptyLevelIsSilent(t *testing.T) {
	var buf bytes.Buffer
	l := New("", &buf)

	l.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	InitializeFromEnv()

	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected silent logger when level is unset")
	}
}

func TestInitialize_FromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	InitializeFromEnv()
	defer Sync()

	core := GetLogger().Core()
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("expected warn level to be enabled")
	}
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("expected info level to be disabled")
	}
}
