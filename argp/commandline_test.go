package argp

import (
	"bytes"
	"strings"
	"testing"

	argpio "github.com/dzonerzy/go-argp/io"
)

func resetCommandLine(t *testing.T) {
	t.Helper()
	saved := CommandLine
	CommandLine = nil
	t.Cleanup(func() { CommandLine = saved })
}

func TestCommandLineRequiresInit(t *testing.T) {
	resetCommandLine(t)
	wantPanic(t, "Init must be called", func() { FlagBool("v", "verbose") })
}

func TestCommandLine(t *testing.T) {
	resetCommandLine(t)

	var stdout, stderr bytes.Buffer
	m := argpio.New().WithOut(&stdout).WithErr(&stderr).NoColor()
	p := Init([]string{"cc", "-O", "2", "-I", "inc", "run", "fast", "a.c", "b.c"}, WithIO(m))
	if p != CommandLine {
		t.Fatal("Init should install CommandLine")
	}

	debug := FlagBool("g", "debug")
	level := FlagUint("O", "", 0)
	std := FlagString("", "std", "c11")
	color := FlagEnum("", "color", []string{"never", "always"}, 0)
	includes := FlagList("I", "include")
	out := PosString("out", "a.out")
	run := NewCommand("run")
	speed := PosEnum("speed", []string{"slow", "fast"}, 0, In(run))
	files := PosList("files", In(run))

	if err := Parse(); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if *debug || *level != 2 || *std != "c11" || *color != 0 || *out != "a.out" {
		t.Errorf("unexpected root values %v %d %q %d %q", *debug, *level, *std, *color, *out)
	}
	if strings.Join(includes.Items, ",") != "inc" {
		t.Errorf("includes = %v", includes.Items)
	}
	if !run.Selected() || *speed != 1 || strings.Join(files.Items, ",") != "a.c,b.c" {
		t.Errorf("run selected=%v speed=%d files=%v", run.Selected(), *speed, files.Items)
	}
	if name, ok := NameOf(files); !ok || name != "files" {
		t.Errorf("NameOf = %q, %v", name, ok)
	}

	var usage, diag bytes.Buffer
	_ = PrintUsage(&usage)
	if !strings.HasPrefix(usage.String(), "usage: cc run [options] [speed] [files...]\n") {
		t.Errorf("usage = %q", usage.String())
	}
	_ = PrintError(&diag)
	if diag.String() != "No errors parsing arguments\n" {
		t.Errorf("diag = %q", diag.String())
	}
}
