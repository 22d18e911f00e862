package firmware

import (
	"errors"
	"testing"
)

const berkeleyOutput = `   text	   data	    bss	    dec	    hex	filename
 100000	   2000	   5000	 107000	  1a1f8	build/rtthread.elf
`

func TestParseSizeSummary(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   SizeBreakdown
	}{
		{
			name:   "minimal",
			output: "Header\n1000 200 50 1250\n",
			want:   SizeBreakdown{Text: 1000, Data: 200, BSS: 50, Total: 1250},
		},
		{
			name:   "berkeley with tabs and hex column",
			output: berkeleyOutput,
			want:   SizeBreakdown{Text: 100000, Data: 2000, BSS: 5000, Total: 107000},
		},
		{
			name:   "first numeric row wins",
			output: "text data bss dec hex filename\n10 20 30 60 3c a.elf\n1 2 3 6 6 b.elf\n",
			want:   SizeBreakdown{Text: 10, Data: 20, BSS: 30, Total: 60},
		},
		{
			name:   "non-numeric rows are skipped",
			output: "text data bss dec hex filename\n(TOTALS)\n  42 0 8 50 32 a.elf\n",
			want:   SizeBreakdown{Text: 42, Data: 0, BSS: 8, Total: 50},
		},
		{
			name:   "surrounding blank lines",
			output: "\n\n  text data bss dec\n  7 8 9 24\n\n",
			want:   SizeBreakdown{Text: 7, Data: 8, BSS: 9, Total: 24},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSizeSummary(tt.output)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseSizeSummary_Errors(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"only header", "OnlyHeader\n"},
		{"empty", ""},
		{"whitespace", "   \n\t\n"},
		{"no numeric row", "text data bss dec\nfoo bar baz qux\n"},
		{"short row", "text data bss dec\n1000 200 50\n"},
		{"non-numeric column", "text data bss dec\n1000 2x0 50 1250\n"},
		{"negative column", "text data bss dec\n1000 -200 50 1250\n"},
		{"overflow", "text data bss dec\n99999999999999999999 0 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSizeSummary(tt.output)
			if err == nil {
				t.Fatalf("expected error, got %+v", got)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("expected ParseError, got %T: %v", err, err)
			}
			if got != (SizeBreakdown{}) {
				t.Errorf("expected zero breakdown on error, got %+v", got)
			}
		})
	}
}

func TestClassifyBuildMode(t *testing.T) {
	tests := []struct {
		name     string
		dump     string
		exitCode int
		want     Classification
		str      string
	}{
		{
			name:     "debug info",
			dump:     "  5 .debug_info   0001a2b3  00000000  00000000  0002a000  2**0",
			exitCode: 0,
			want:     Classification{Mode: Debug, Known: true},
			str:      "Debug",
		},
		{
			name:     "debug line only",
			dump:     "  7 .debug_line   00003000  00000000",
			exitCode: 0,
			want:     Classification{Mode: Debug, Known: true},
			str:      "Debug",
		},
		{
			name:     "debug frame only",
			dump:     ".debug_frame",
			exitCode: 0,
			want:     Classification{Mode: Debug, Known: true},
			str:      "Debug",
		},
		{
			name:     "debug str only",
			dump:     ".debug_str",
			exitCode: 0,
			want:     Classification{Mode: Debug, Known: true},
			str:      "Debug",
		},
		{
			name:     "release",
			dump:     "  0 .isr_vector 000001c4\n  1 .text 00018000\n  2 .data 000007d0\n  3 .bss 00001388\n  4 .ARM.attributes 00000030",
			exitCode: 0,
			want:     Classification{Mode: Release, Known: true},
			str:      "Release",
		},
		{
			name:     "unlisted debug section",
			dump:     "  5 .debug_aranges 00000100",
			exitCode: 0,
			want:     Classification{Mode: Release, Known: true},
			str:      "Release",
		},
		{
			name:     "tool failed",
			dump:     ".debug_info",
			exitCode: 1,
			want:     Unknown,
			str:      "Unknown",
		},
		{
			name:     "tool not found",
			dump:     "",
			exitCode: -1,
			want:     Unknown,
			str:      "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyBuildMode(tt.dump, tt.exitCode)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
			if got.String() != tt.str {
				t.Errorf("expected String() %q, got %q", tt.str, got.String())
			}
		})
	}
}
