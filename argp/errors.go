package argp

import (
	"errors"
	"io"
	"strings"
)

// ErrHelpShown is returned by Parse when the help flag was hit and the exit
// function returned instead of terminating the process.
var ErrHelpShown = errors.New("help shown")

// ErrorType categorizes a parse failure. Exactly one is recorded per parse.
type ErrorType string

const (
	// ErrorTypeUnknown: the token is no flag, sub-command or bindable positional.
	ErrorTypeUnknown ErrorType = "unknown"
	// ErrorTypeUnknownEnum: the value matches none of the enum options.
	ErrorTypeUnknownEnum ErrorType = "unknown_enum"
	// ErrorTypeNoValue: a flag or required positional got no value.
	ErrorTypeNoValue ErrorType = "no_value"
	// ErrorTypeInvalidNumber: a uint value is empty or has non-digits.
	ErrorTypeInvalidNumber ErrorType = "invalid_number"
	// ErrorTypeIntegerOverflow: a uint value exceeds 2^64-1.
	ErrorTypeIntegerOverflow ErrorType = "integer_overflow"
	// ErrorTypeAlloc: a list buffer could not be allocated.
	ErrorTypeAlloc ErrorType = "alloc"
)

// Message returns the human-readable kind used in diagnostics
func (t ErrorType) Message() string {
	switch t {
	case ErrorTypeUnknown:
		return "Unknown option"
	case ErrorTypeUnknownEnum:
		return "Unknown enum option"
	case ErrorTypeNoValue:
		return "No value provided"
	case ErrorTypeInvalidNumber:
		return "Invalid number"
	case ErrorTypeIntegerOverflow:
		return "Integer overflow"
	case ErrorTypeAlloc:
		return "Allocating"
	default:
		return string(t)
	}
}

// ParseError records the first failure of a parse: what went wrong, which
// flag or positional was being filled, and the offending token.
type ParseError struct {
	Type ErrorType
	// Flag is the flag spelling (--long, or -short when there is no long
	// name). Empty when a positional or nothing was involved.
	Flag string
	// Positional is the positional name. Empty for flags and Unknown.
	Positional string
	// Token is the offending argument; see HasToken.
	Token string
	// Expected lists the enum options when the target is an enum.
	Expected []string
	// Command is the command context the failure happened in.
	Command *Command
	// Suggestion is a close flag or command spelling for Unknown tokens.
	Suggestion string
	// Cause is the allocator error behind ErrorTypeAlloc.
	Cause error

	hasToken bool
}

// HasToken reports whether a token was involved. A NoValue failure has
// none; an empty-string argument is still a token.
func (e *ParseError) HasToken() bool { return e.hasToken }

// Error returns the diagnostic without the "Error: " prefix
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Type.Message())

	if e.Type == ErrorTypeUnknown {
		b.WriteByte(' ')
		b.WriteString(e.Token)
		return b.String()
	}

	switch {
	case e.Flag != "":
		b.WriteString(" for flag ")
		b.WriteString(e.Flag)
	case e.Positional != "":
		b.WriteString(" for positional argument ")
		b.WriteString(e.Positional)
	}
	if e.hasToken {
		b.WriteString(" got '")
		b.WriteString(e.Token)
		b.WriteByte('\'')
	}
	if e.Expected != nil {
		b.WriteString(" expected {")
		b.WriteString(strings.Join(e.Expected, ","))
		b.WriteByte('}')
	}
	return b.String()
}

// Unwrap exposes the allocator error, if any
func (e *ParseError) Unwrap() error { return e.Cause }

// PrintError writes the one-line diagnostic for the recorded error to w,
// followed by a suggestion line when suggestions are enabled.
func (p *Parser) PrintError(w io.Writer) error {
	if p.err == nil {
		_, err := io.WriteString(w, "No errors parsing arguments\n")
		return err
	}

	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(p.err.Error())
	b.WriteByte('\n')
	if p.cfg.Suggest && p.err.Suggestion != "" {
		b.WriteString("  Did you mean '")
		b.WriteString(p.err.Suggestion)
		b.WriteString("'?\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
