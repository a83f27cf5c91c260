package argp

import "strings"

// Scanners resolve one token against the current command context only.
// Flags of ancestor commands are not visible.

// shortFlag matches "-name" against the short names of the context's flags.
func (p *Parser) shortFlag(tok string) *flag {
	if len(tok) < 2 || tok[0] != '-' || tok[1] == '-' {
		return nil
	}
	name := tok[1:]
	for _, f := range p.flags {
		if f.command == p.ctx && f.short == name {
			return f
		}
	}
	return nil
}

// longFlag matches "--name" against the long names of the context's flags.
func (p *Parser) longFlag(tok string) *flag {
	name, ok := strings.CutPrefix(tok, "--")
	if !ok || name == "" {
		return nil
	}
	for _, f := range p.flags {
		if f.command == p.ctx && f.long == name {
			return f
		}
	}
	return nil
}

// subcommand matches tok against the children of the context.
func (p *Parser) subcommand(tok string) *Command {
	for _, c := range p.commands {
		if c.parent == p.ctx && c.name == tok {
			return c
		}
	}
	return nil
}

// nextPositional returns the first positional of the context that can still
// take a value: one not seen yet, or a list, which is never exhausted.
func (p *Parser) nextPositional() *positional {
	for _, pos := range p.positionals {
		if pos.command == p.ctx && (pos.val.kind == KindList || !pos.seen) {
			return pos
		}
	}
	return nil
}

// candidates lists the spellings an unknown token could have meant: flag
// spellings of the context for dash-prefixed tokens, child commands otherwise.
func (p *Parser) candidates(tok string) []string {
	var out []string
	if strings.HasPrefix(tok, "-") {
		for _, f := range p.flags {
			if f.command != p.ctx {
				continue
			}
			if f.short != "" {
				out = append(out, "-"+f.short)
			}
			if f.long != "" {
				out = append(out, "--"+f.long)
			}
		}
		return out
	}
	for _, c := range p.commands {
		if c.parent == p.ctx {
			out = append(out, c.name)
		}
	}
	return out
}
