package argp

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Usage renders the help screen for the current command context
func (p *Parser) Usage() string {
	var b strings.Builder
	p.writeUsage(&b)
	return b.String()
}

// PrintUsage writes the help screen for the current command context to w
func (p *Parser) PrintUsage(w io.Writer) error {
	_, err := io.WriteString(w, p.Usage())
	return err
}

//nolint:gocognit // one branch per section keeps the layout readable
func (p *Parser) writeUsage(b *strings.Builder) {
	ctx := p.ctx

	b.WriteString("usage:")
	for _, name := range ctx.Path() {
		b.WriteByte(' ')
		b.WriteString(name)
	}
	if ctx.commandCount > 0 {
		b.WriteString(" [command]")
	}
	if ctx.flagCount > 0 {
		b.WriteString(" [options]")
	}
	for _, pos := range p.positionals {
		if pos.command == ctx {
			b.WriteByte(' ')
			b.WriteString(synopsis(pos))
		}
	}
	b.WriteString("\n\n")

	if ctx.desc != "" {
		b.WriteString(ctx.desc)
		b.WriteString("\n\n")
	}

	if ctx.commandCount > 0 {
		b.WriteString("commands:\n")
		for _, c := range p.commands {
			if c.parent == ctx {
				p.writeRow(b, c.name, c.desc)
			}
		}
		b.WriteByte('\n')
	}

	if ctx.posCount > 0 {
		b.WriteString("positional arguments:\n")
		for _, pos := range p.positionals {
			if pos.command != ctx {
				continue
			}
			label := pos.name
			if pos.val.kind == KindEnum {
				label += " " + braces(pos.options)
			}
			p.writeRow(b, label, pos.desc)
		}
		b.WriteByte('\n')
	}

	if ctx.flagCount > 0 {
		b.WriteString("options:\n")
		for _, f := range p.flags {
			if f.command == ctx {
				p.writeRow(b, flagLabel(f), f.desc)
			}
		}
	}
}

// synopsis renders a positional for the usage line.
func synopsis(pos *positional) string {
	list := pos.val.kind == KindList
	switch {
	case pos.req == Optional && list:
		return "[" + pos.name + "...]"
	case pos.req == Optional:
		return "[" + pos.name + "]"
	case list:
		return pos.name + " [" + pos.name + "...]"
	default:
		return pos.name
	}
}

func flagLabel(f *flag) string {
	var label string
	switch {
	case f.short != "" && f.long != "":
		label = "-" + f.short + ", --" + f.long
	case f.short != "":
		label = "-" + f.short
	default:
		label = "--" + f.long
	}

	if f.metaVar != "" {
		label += " " + f.metaVar
	} else if f.val.kind == KindEnum {
		label += " " + braces(f.options)
	}
	return label
}

func braces(options []string) string {
	return "{" + strings.Join(enumLabels(options), ",") + "}"
}

// writeRow emits "  label" and the description starting at the print width.
// A label reaching the print width pushes the description to its own line.
func (p *Parser) writeRow(b *strings.Builder, label, desc string) {
	b.WriteString("  ")
	b.WriteString(label)
	if desc != "" {
		width := 2 + runewidth.StringWidth(label)
		if width >= p.cfg.PrintWidth {
			b.WriteByte('\n')
			width = 0
		}
		b.WriteString(strings.Repeat(" ", p.cfg.PrintWidth-width))
		b.WriteString(desc)
	}
	b.WriteByte('\n')
}
