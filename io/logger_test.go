package argpio

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLogger() (*Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	m := New().WithOut(&out).WithErr(&errOut).NoColor()
	return NewLogger(m), &out, &errOut
}

func TestLoggerRouting(t *testing.T) {
	l, out, errOut := newTestLogger()

	l.Info("hello %s", "world")
	l.Success("done")
	l.Warning("careful")
	l.Error("boom")

	if got, want := out.String(), "[INFO] hello world\n[SUCCESS] done\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := errOut.String(), "[WARN] careful\n[ERROR] boom\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	l, out, _ := newTestLogger()

	l.Debug("hidden")
	if out.Len() != 0 {
		t.Fatalf("debug written below min level: %q", out.String())
	}

	l.WithLevel(LevelDebug).Debug("token %q", "-v")
	if got, want := out.String(), "[DEBUG] token \"-v\"\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLoggerFormats(t *testing.T) {
	tests := []struct {
		name   string
		format LogFormat
		want   string
	}{
		{"tagged", LogFormatTagged, "[INFO] msg\n"},
		{"symbols", LogFormatSymbols, "◆ msg\n"},
		{"plain", LogFormatPlain, "msg\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, out, _ := newTestLogger()
			l.WithFormat(tt.format).Info("msg")
			if out.String() != tt.want {
				t.Errorf("got %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestLoggerBlankMessagePassthrough(t *testing.T) {
	l, out, _ := newTestLogger()
	l.Info("  ")
	if out.String() != "  \n" {
		t.Errorf("got %q", out.String())
	}
}

func TestLoggerColorAndTimestamp(t *testing.T) {
	var out bytes.Buffer
	m := New().WithOut(&out).ForceColor()
	l := NewLogger(m).WithTimestamp(true).WithTimeFormat("2006")
	l.ErrorsToStderr(false).Error("x")

	s := out.String()
	if !strings.Contains(s, "\x1b[") {
		t.Errorf("expected ANSI color, got %q", s)
	}
	if !strings.Contains(s, "[ERROR] [") {
		t.Errorf("expected timestamp after prefix, got %q", s)
	}
}
