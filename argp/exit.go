package argp

import (
	"errors"
)

// ExitCodeDefaults holds the codes used when no specific mapping matches.
type ExitCodeDefaults struct {
	Success    int // default: 0, also used after help
	ParseError int // default: 1
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, ParseError: 1}
}

// ExitCodeManager maps parse failures to process exit codes.
type ExitCodeManager struct {
	codesByType map[ErrorType]int
	defaults    ExitCodeDefaults
}

func newExitCodeManager() *ExitCodeManager {
	return &ExitCodeManager{
		codesByType: make(map[ErrorType]int),
		defaults:    defaultExitDefaults(),
	}
}

// Define overrides the exit code for one error category
func (e *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	e.codesByType[typ] = code
	return e
}

// Default replaces the fallback codes
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// Resolve converts the result of Parse to an exit code.
// Precedence:
//  1. nil and ErrHelpShown map to Success
//  2. a *ParseError whose category was defined
//  3. ParseError default
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil || errors.Is(err, ErrHelpShown) {
		return e.defaults.Success
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		if code, ok := e.codesByType[pe.Type]; ok {
			return code
		}
	}
	return e.defaults.ParseError
}

// ParseAndExit parses and, on failure, prints the diagnostic to the error
// sink and exits with the mapped code. The help screen has already exited
// through Parse.
func (p *Parser) ParseAndExit() {
	err := p.Parse()
	if err == nil || errors.Is(err, ErrHelpShown) {
		return
	}
	_ = p.PrintError(p.io.Err())
	p.cfg.Exit(p.exitCodes.Resolve(err))
}
