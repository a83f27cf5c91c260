package argp

import (
	"errors"
	"strconv"

	"github.com/dzonerzy/go-argp/internal/fuzzy"
)

// Parse consumes the argument vector given to New, filling every handle.
//
// It returns nil on success and the recorded *ParseError on the first
// failure; the error stays available from Err and PrintError. When the help
// flag of the current command appears, usage is written to the output sink
// and the exit function is called with 0. If that function returns, Parse
// returns ErrHelpShown.
func (p *Parser) Parse() error {
	if p.parsed {
		panic("argp: Parse called twice")
	}
	p.parsed = true
	p.root.selected = true

	for {
		tok, ok := p.shift()
		if !ok {
			break
		}

		f := p.shortFlag(tok)
		if f == nil {
			f = p.longFlag(tok)
		}
		if f != nil {
			if f == p.ctx.helpFlag {
				p.debugf("help requested for %q", p.ctx.name)
				_ = p.PrintUsage(p.io.Out())
				p.cfg.Exit(0)
				return ErrHelpShown
			}
			p.debugf("flag %s", f.spelling())
			if err := p.parseFlag(f); err != nil {
				return p.fail(err)
			}
			continue
		}

		if c := p.subcommand(tok); c != nil {
			p.debugf("command %q", c.name)
			c.selected = true
			p.ctx = c
			continue
		}

		pos := p.nextPositional()
		if pos == nil {
			return p.fail(&ParseError{Type: ErrorTypeUnknown, Token: tok, hasToken: true})
		}
		p.debugf("positional %s = %q", pos.name, tok)
		if err := p.store(&pos.val, pos.options, tok); err != nil {
			err.Positional = pos.name
			return p.fail(err)
		}
		pos.seen = true
	}

	for _, pos := range p.positionals {
		if pos.command == p.ctx && pos.req == Required && !pos.seen {
			return p.fail(&ParseError{Type: ErrorTypeNoValue, Positional: pos.name, Expected: expected(pos.val.kind, pos.options)})
		}
	}
	return nil
}

func (p *Parser) shift() (string, bool) {
	if len(p.rest) == 0 {
		return "", false
	}
	tok := p.rest[0]
	p.rest = p.rest[1:]
	return tok, true
}

// fail records err as the parse error, completing its context.
func (p *Parser) fail(err *ParseError) error {
	err.Command = p.ctx
	if err.Type == ErrorTypeUnknown {
		if s, ok := p.suggest(err.Token); ok {
			err.Suggestion = s
		}
	}
	p.err = err
	p.debugf("parse failed: %v", err)
	return err
}

func (p *Parser) parseFlag(f *flag) *ParseError {
	if f.val.kind == KindBool {
		f.val.b = true
		return nil
	}

	var err *ParseError
	if tok, ok := p.shift(); ok {
		err = p.store(&f.val, f.options, tok)
	} else {
		err = &ParseError{Type: ErrorTypeNoValue, Expected: expected(f.val.kind, f.options)}
	}
	if err != nil {
		err.Flag = f.spelling()
	}
	return err
}

// store converts tok according to the slot kind and assigns it.
func (p *Parser) store(v *value, options []string, tok string) *ParseError {
	var err *ParseError
	switch v.kind {
	case KindUint:
		var n uint64
		if n, err = parseUint(tok); err == nil {
			v.u = n
		}
	case KindString:
		v.s = tok
	case KindEnum:
		if i := matchEnum(options, tok); i >= 0 {
			v.e = i
		} else {
			err = &ParseError{Type: ErrorTypeUnknownEnum, Token: tok, hasToken: true}
		}
	case KindList:
		if cause := p.appendList(&v.l, tok); cause != nil {
			err = &ParseError{Type: ErrorTypeAlloc, Cause: cause}
		}
	case KindBool:
		v.b = true
	default:
		panic("argp: unreachable value kind")
	}
	if err != nil && err.Expected == nil {
		err.Expected = expected(v.kind, options)
	}
	return err
}

// parseUint accepts base-10 digits only. Anything else, including an empty
// token or a sign, is InvalidNumber; it is checked before the range so
// "99999999999999999999x" reports the garbage rather than the overflow.
func parseUint(tok string) (uint64, *ParseError) {
	invalid := tok == ""
	for i := 0; i < len(tok) && !invalid; i++ {
		invalid = tok[i] < '0' || tok[i] > '9'
	}
	if invalid {
		return 0, &ParseError{Type: ErrorTypeInvalidNumber, Token: tok, hasToken: true}
	}

	n, err := strconv.ParseUint(tok, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, &ParseError{Type: ErrorTypeIntegerOverflow, Token: tok, hasToken: true}
	}
	if err != nil {
		return 0, &ParseError{Type: ErrorTypeInvalidNumber, Token: tok, hasToken: true}
	}
	return n, nil
}

// matchEnum returns the index of the option equal to tok, or -1.
func matchEnum(options []string, tok string) int {
	for i, o := range options {
		if o != "" && o == tok {
			return i
		}
	}
	return -1
}

// appendList grows l geometrically: the first buffer holds ListInitCapacity
// items, each later one twice the previous. On allocator failure l keeps the
// items it already had.
func (p *Parser) appendList(l *List, tok string) error {
	if len(l.Items) == cap(l.Items) {
		n := p.cfg.ListInitCapacity
		if c := cap(l.Items); c > 0 {
			n = c * 2
		}
		alloc := p.cfg.Allocator
		if p.cfg.PoolLists {
			alloc = pooledList
		}
		buf, err := alloc(n)
		if err != nil {
			return err
		}
		old := l.Items
		l.Items = append(buf[:0], old...)
		if p.cfg.PoolLists {
			if old != nil {
				listPool.Put(old)
			}
			l.release = listPool.Put
		}
	}
	l.Items = append(l.Items, tok)
	return nil
}

func expected(kind Kind, options []string) []string {
	if kind != KindEnum {
		return nil
	}
	return enumLabels(options)
}

// suggestDistance is the largest edit distance offered as "Did you mean".
const suggestDistance = 2

func (p *Parser) suggest(tok string) (string, bool) {
	return fuzzy.NewMatcher(suggestDistance).Closest(tok, p.candidates(tok))
}
