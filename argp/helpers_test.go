package argp

import (
	"bytes"
	"testing"

	argpio "github.com/dzonerzy/go-argp/io"
)

// harness wires a parser to in-memory sinks and records exit requests.
type harness struct {
	*Parser
	out      bytes.Buffer
	errOut   bytes.Buffer
	exited   bool
	exitCode int
}

func newHarness(t *testing.T, args []string, opts ...Option) *harness {
	t.Helper()
	h := &harness{exitCode: -1}
	m := argpio.New().WithOut(&h.out).WithErr(&h.errOut).NoColor()
	base := []Option{
		WithIO(m),
		WithExitFunc(func(code int) { h.exited = true; h.exitCode = code }),
	}
	h.Parser = New(args, append(base, opts...)...)
	return h
}

var modeOptions = []string{"fast", "slow", "auto"}

const (
	modeFast = iota
	modeSlow
	modeAuto
)

// exampleSchema is the schema of examples/basic.
type exampleSchema struct {
	verbose *bool
	retries *uint64
	output  *string
	id      *uint64
	name    *string
	mode    *int
}

func declareExample(p *Parser) exampleSchema {
	return exampleSchema{
		verbose: p.FlagBool("v", "verbose", Desc("enable verbose output")),
		retries: p.FlagUint("r", "retries", 3, MetaVar("N"), Desc("number of retries")),
		output:  p.FlagString("o", "output", "default.txt", MetaVar("FILE"), Desc("output file name")),
		id:      p.PosUint("id", 0, Req(Required), Desc("the ID to process")),
		name:    p.PosString("name", "Yorgos Lanthimos", Desc("the name to use")),
		mode:    p.PosEnum("mode", modeOptions, modeAuto, Desc("mode to use")),
	}
}

// buildSchema is the compiler-driver schema of examples/subcommands.
type buildSchema struct {
	linkerArgs *List
	files      *List
	build      *Command
	verbose    *bool
	file       *string
}

func declareBuild(p *Parser) buildSchema {
	var s buildSchema
	s.linkerArgs = p.FlagList("L", "", MetaVar("LIB"), Desc("link against LIB"))
	s.files = p.PosList("files", Desc("input files"))
	s.build = p.Command("build", Desc("compile a single file"))
	s.verbose = p.FlagBool("v", "", In(s.build), Desc("print each step"))
	s.file = p.PosString("file", "", In(s.build), Req(Required), Desc("file to compile"))
	return s
}
