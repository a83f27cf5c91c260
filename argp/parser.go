package argp

import (
	argpio "github.com/dzonerzy/go-argp/io"
)

// Command is a node in the command tree. The root command is named after
// args[0]; every other command is created with Parser.Command.
type Command struct {
	name     string
	desc     string
	selected bool
	helpFlag *flag
	parent   *Command
	owner    *Parser

	flagCount    int
	posCount     int
	commandCount int
	listPos      *positional // set once a list positional is declared
}

// Name returns the command name
func (c *Command) Name() string { return c.name }

// Description returns the command description
func (c *Command) Description() string { return c.desc }

// Parent returns the parent command, nil for the root
func (c *Command) Parent() *Command { return c.parent }

// Selected reports whether the command was named on the command line.
// The root is selected once Parse runs.
func (c *Command) Selected() bool { return c.selected }

// Path returns the command names from the root down to c
func (c *Command) Path() []string {
	var path []string
	for cur := c; cur != nil; cur = cur.parent {
		path = append(path, cur.name)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type flag struct {
	val value
	def value

	short   string
	long    string
	metaVar string
	desc    string
	options []string

	command *Command
}

// spelling is the name used in diagnostics: --long when present, -short otherwise.
func (f *flag) spelling() string {
	if f.long != "" {
		return "--" + f.long
	}
	return "-" + f.short
}

type positional struct {
	val value
	def value

	name    string
	desc    string
	req     Requiredness
	options []string

	command *Command
	seen    bool
}

// Parser owns the schema and the parse state. Declarations must all happen
// before Parse; a Parser parses once.
type Parser struct {
	cfg Config
	io  *argpio.IOManager

	flags       []*flag
	positionals []*positional
	commands    []*Command

	root *Command
	ctx  *Command
	rest []string

	parsed bool
	err    *ParseError

	exitCodes *ExitCodeManager
}

// New creates a parser for args. args[0] names the root command and the
// remaining elements are what Parse consumes.
func New(args []string, opts ...Option) *Parser {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.validate()

	p := &Parser{
		cfg:         cfg,
		io:          cfg.IO,
		flags:       make([]*flag, 0, min(cfg.FlagCapacity, 16)),
		positionals: make([]*positional, 0, min(cfg.PositionalCapacity, 16)),
		commands:    make([]*Command, 0, min(cfg.CommandCapacity, 8)),
		exitCodes:   newExitCodeManager(),
	}
	if p.io == nil {
		p.io = argpio.New()
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
		p.rest = args[1:]
	}
	p.root = p.newCommand(name, cfg.Description, nil, cfg.Help)
	p.ctx = p.root
	return p
}

// Root returns the program command
func (p *Parser) Root() *Command { return p.root }

// Context returns the command the parser is currently resolving tokens
// against: the root before Parse, the deepest selected command after.
func (p *Parser) Context() *Command { return p.ctx }

// Err returns the error recorded by the last Parse, or nil
func (p *Parser) Err() *ParseError { return p.err }

// IO returns the manager holding the help and error sinks
func (p *Parser) IO() *argpio.IOManager { return p.io }

// ExitCodes returns the exit code mapping used by ParseAndExit
func (p *Parser) ExitCodes() *ExitCodeManager { return p.exitCodes }

// NameOf reports the declared name behind a handle returned by one of the
// Flag* or Pos* methods: the long name of a flag when it has one, its short
// name otherwise, or the positional's name.
func (p *Parser) NameOf(handle any) (string, bool) {
	if handle == nil {
		return "", false
	}
	for _, f := range p.flags {
		if f.val.handle() == handle {
			if f.long != "" {
				return f.long, true
			}
			return f.short, true
		}
	}
	for _, pos := range p.positionals {
		if pos.val.handle() == handle {
			return pos.name, true
		}
	}
	return "", false
}

func (p *Parser) debugf(format string, args ...any) {
	if p.cfg.Logger != nil {
		p.cfg.Logger.Debug(format, args...)
	}
}
