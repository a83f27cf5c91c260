package argp

import "io"

// CommandLine is the process-wide parser set up by Init. The package-level
// functions below operate on it, mirroring the Parser methods.
var CommandLine *Parser

// Init resets CommandLine to a fresh parser over args, usually os.Args.
func Init(args []string, opts ...Option) *Parser {
	CommandLine = New(args, opts...)
	return CommandLine
}

func commandLine() *Parser {
	if CommandLine == nil {
		panic("argp: Init must be called before declaring or parsing")
	}
	return CommandLine
}

// NewCommand declares a sub-command on CommandLine
func NewCommand(name string, opts ...DeclOption) *Command {
	return commandLine().Command(name, opts...)
}

// FlagBool declares a bool flag on CommandLine
func FlagBool(short, long string, opts ...DeclOption) *bool {
	return commandLine().FlagBool(short, long, opts...)
}

// FlagUint declares a uint flag on CommandLine
func FlagUint(short, long string, def uint64, opts ...DeclOption) *uint64 {
	return commandLine().FlagUint(short, long, def, opts...)
}

// FlagString declares a string flag on CommandLine
func FlagString(short, long, def string, opts ...DeclOption) *string {
	return commandLine().FlagString(short, long, def, opts...)
}

// FlagEnum declares an enum flag on CommandLine
func FlagEnum(short, long string, options []string, def int, opts ...DeclOption) *int {
	return commandLine().FlagEnum(short, long, options, def, opts...)
}

// FlagList declares a list flag on CommandLine
func FlagList(short, long string, opts ...DeclOption) *List {
	return commandLine().FlagList(short, long, opts...)
}

// PosUint declares a uint positional on CommandLine
func PosUint(name string, def uint64, opts ...DeclOption) *uint64 {
	return commandLine().PosUint(name, def, opts...)
}

// PosString declares a string positional on CommandLine
func PosString(name, def string, opts ...DeclOption) *string {
	return commandLine().PosString(name, def, opts...)
}

// PosEnum declares an enum positional on CommandLine
func PosEnum(name string, options []string, def int, opts ...DeclOption) *int {
	return commandLine().PosEnum(name, options, def, opts...)
}

// PosList declares a list positional on CommandLine
func PosList(name string, opts ...DeclOption) *List {
	return commandLine().PosList(name, opts...)
}

// NameOf reports the declared name behind a CommandLine handle
func NameOf(handle any) (string, bool) { return commandLine().NameOf(handle) }

// Parse parses CommandLine
func Parse() error { return commandLine().Parse() }

// PrintUsage writes the CommandLine help screen to w
func PrintUsage(w io.Writer) error { return commandLine().PrintUsage(w) }

// PrintError writes the CommandLine diagnostic to w
func PrintError(w io.Writer) error { return commandLine().PrintError(w) }
