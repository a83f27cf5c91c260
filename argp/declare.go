package argp

import "fmt"

const helpDescription = "show this help message and exit"

// Command declares a sub-command of the root, or of the command given with
// In. A -h/--help flag is attached unless NoHelp is passed. The returned
// command reports whether it was selected and can be passed to In.
func (p *Parser) Command(name string, opts ...DeclOption) *Command {
	if name == "" {
		panic("argp: command name must not be empty")
	}
	o := collect(opts)
	parent := p.owning(o.command)
	for _, c := range p.commands {
		if c.parent == parent && c.name == name {
			panic(fmt.Sprintf("argp: duplicate command %q under %q", name, parent.name))
		}
	}
	return p.newCommand(name, o.desc, parent, !o.noHelp)
}

func (p *Parser) newCommand(name, desc string, parent *Command, help bool) *Command {
	if len(p.commands) >= p.cfg.CommandCapacity {
		panic(fmt.Sprintf("argp: command capacity %d exceeded", p.cfg.CommandCapacity))
	}
	c := &Command{name: name, desc: desc, parent: parent, owner: p}
	p.commands = append(p.commands, c)
	if parent != nil {
		parent.commandCount++
	}
	if help {
		c.helpFlag = p.newFlag(KindBool, "h", "help", "", helpDescription, c)
	}
	return c
}

// owning resolves the command a declaration belongs to.
func (p *Parser) owning(c *Command) *Command {
	if c == nil {
		return p.root
	}
	if c.owner != p {
		panic(fmt.Sprintf("argp: command %q belongs to another parser", c.name))
	}
	return c
}

func (p *Parser) newFlag(kind Kind, short, long, metaVar, desc string, cmd *Command) *flag {
	if short == "" && long == "" {
		panic("argp: flag needs a short or a long name")
	}
	if len(p.flags) >= p.cfg.FlagCapacity {
		panic(fmt.Sprintf("argp: flag capacity %d exceeded", p.cfg.FlagCapacity))
	}
	for _, f := range p.flags {
		if f.command != cmd {
			continue
		}
		if short != "" && f.short == short {
			panic(fmt.Sprintf("argp: duplicate flag -%s in command %q", short, cmd.name))
		}
		if long != "" && f.long == long {
			panic(fmt.Sprintf("argp: duplicate flag --%s in command %q", long, cmd.name))
		}
	}

	f := &flag{
		val:     value{kind: kind},
		def:     value{kind: kind},
		short:   short,
		long:    long,
		metaVar: metaVar,
		desc:    desc,
		command: cmd,
	}
	p.flags = append(p.flags, f)
	cmd.flagCount++
	return f
}

func (p *Parser) newPositional(kind Kind, name string, o declOptions) *positional {
	if name == "" {
		panic("argp: positional name must not be empty")
	}
	if len(p.positionals) >= p.cfg.PositionalCapacity {
		panic(fmt.Sprintf("argp: positional capacity %d exceeded", p.cfg.PositionalCapacity))
	}
	cmd := p.owning(o.command)
	if cmd.listPos != nil {
		panic(fmt.Sprintf("argp: positional %q declared after list positional %q", name, cmd.listPos.name))
	}
	for _, pos := range p.positionals {
		if pos.command == cmd && pos.name == name {
			panic(fmt.Sprintf("argp: duplicate positional %q in command %q", name, cmd.name))
		}
	}

	pos := &positional{
		val:     value{kind: kind},
		def:     value{kind: kind},
		name:    name,
		desc:    o.desc,
		req:     o.req,
		command: cmd,
	}
	p.positionals = append(p.positionals, pos)
	cmd.posCount++
	if kind == KindList {
		cmd.listPos = pos
	}
	return pos
}

// FlagBool declares a flag that is false until it appears
func (p *Parser) FlagBool(short, long string, opts ...DeclOption) *bool {
	o := collect(opts)
	f := p.newFlag(KindBool, short, long, "", o.desc, p.owning(o.command))
	return &f.val.b
}

// FlagUint declares a flag taking a base-10 unsigned integer
func (p *Parser) FlagUint(short, long string, def uint64, opts ...DeclOption) *uint64 {
	o := collect(opts)
	f := p.newFlag(KindUint, short, long, o.metaVar, o.desc, p.owning(o.command))
	f.val.u, f.def.u = def, def
	return &f.val.u
}

// FlagString declares a flag taking any token as its value
func (p *Parser) FlagString(short, long, def string, opts ...DeclOption) *string {
	o := collect(opts)
	f := p.newFlag(KindString, short, long, o.metaVar, o.desc, p.owning(o.command))
	f.val.s, f.def.s = def, def
	return &f.val.s
}

// FlagEnum declares a flag whose value must be one of options. The handle
// holds the index of the matched option, def until the flag appears. Empty
// options are placeholders that never match.
func (p *Parser) FlagEnum(short, long string, options []string, def int, opts ...DeclOption) *int {
	o := collect(opts)
	f := p.newFlag(KindEnum, short, long, o.metaVar, o.desc, p.owning(o.command))
	f.options = options
	f.val.e, f.def.e = def, def
	return &f.val.e
}

// FlagList declares a flag collecting the value of every occurrence
func (p *Parser) FlagList(short, long string, opts ...DeclOption) *List {
	o := collect(opts)
	f := p.newFlag(KindList, short, long, o.metaVar, o.desc, p.owning(o.command))
	return &f.val.l
}

// PosUint declares a positional holding a base-10 unsigned integer
func (p *Parser) PosUint(name string, def uint64, opts ...DeclOption) *uint64 {
	pos := p.newPositional(KindUint, name, collect(opts))
	pos.val.u, pos.def.u = def, def
	return &pos.val.u
}

// PosString declares a positional holding the token verbatim
func (p *Parser) PosString(name, def string, opts ...DeclOption) *string {
	pos := p.newPositional(KindString, name, collect(opts))
	pos.val.s, pos.def.s = def, def
	return &pos.val.s
}

// PosEnum declares a positional whose value must be one of options
func (p *Parser) PosEnum(name string, options []string, def int, opts ...DeclOption) *int {
	pos := p.newPositional(KindEnum, name, collect(opts))
	pos.options = options
	pos.val.e, pos.def.e = def, def
	return &pos.val.e
}

// PosList declares a positional absorbing every remaining value. It must be
// the last positional of its command; declaring another one after it panics.
func (p *Parser) PosList(name string, opts ...DeclOption) *List {
	pos := p.newPositional(KindList, name, collect(opts))
	return &pos.val.l
}
