package argp

import (
	"os"

	"github.com/dzonerzy/go-argp/internal/pool"
	argpio "github.com/dzonerzy/go-argp/io"
)

// Default knob values
const (
	DefaultFlagCapacity       = 128
	DefaultPositionalCapacity = 128
	DefaultCommandCapacity    = 64
	DefaultPrintWidth         = 24
	DefaultListInitCapacity   = 6
)

// Allocator returns an empty slice with room for n items, used when a list
// outgrows its backing buffer. A non-nil error makes Parse fail with Alloc.
type Allocator func(n int) ([]string, error)

// Config holds the parser-wide settings fixed at New.
type Config struct {
	FlagCapacity       int
	PositionalCapacity int
	CommandCapacity    int
	PrintWidth         int
	ListInitCapacity   int

	// Description of the root command, shown under the synopsis.
	Description string
	// Help attaches -h/--help to the root command.
	Help bool
	// Suggest makes PrintError add a "Did you mean" line for unknown tokens.
	Suggest bool

	Allocator Allocator
	// PoolLists recycles list buffers through a process-wide pool; outgrown
	// buffers and freed lists go back to it. It takes over from Allocator.
	PoolLists bool

	Exit      func(code int)
	IO        *argpio.IOManager
	Logger    *argpio.Logger
}

// DefaultConfig returns the settings New starts from
func DefaultConfig() Config {
	return Config{
		FlagCapacity:       DefaultFlagCapacity,
		PositionalCapacity: DefaultPositionalCapacity,
		CommandCapacity:    DefaultCommandCapacity,
		PrintWidth:         DefaultPrintWidth,
		ListInitCapacity:   DefaultListInitCapacity,
		Help:               true,
		Allocator:          makeList,
		Exit:               os.Exit,
	}
}

func makeList(n int) ([]string, error) { return make([]string, 0, n), nil }

// maxPooledList is the largest list buffer kept for reuse.
const maxPooledList = 1 << 12

var listPool = pool.NewSlices[string](DefaultListInitCapacity, maxPooledList)

func pooledList(n int) ([]string, error) { return listPool.Get(n), nil }

func (c *Config) validate() {
	switch {
	case c.FlagCapacity <= 0:
		panic("argp: flag capacity must be positive")
	case c.PositionalCapacity <= 0:
		panic("argp: positional capacity must be positive")
	case c.CommandCapacity <= 0:
		panic("argp: command capacity must be positive")
	case c.PrintWidth <= 0:
		panic("argp: print width must be positive")
	case c.ListInitCapacity <= 0:
		panic("argp: list initial capacity must be positive")
	case c.Allocator == nil:
		panic("argp: nil allocator")
	case c.Exit == nil:
		panic("argp: nil exit function")
	}
}

// Option configures a Parser at construction
type Option func(*Config)

// WithDescription sets the root command description
func WithDescription(desc string) Option { return func(c *Config) { c.Description = desc } }

// WithoutHelp skips the automatic -h/--help flag on the root command
func WithoutHelp() Option { return func(c *Config) { c.Help = false } }

// WithFlagCapacity limits the number of flags across all commands
func WithFlagCapacity(n int) Option { return func(c *Config) { c.FlagCapacity = n } }

// WithPositionalCapacity limits the number of positionals across all commands
func WithPositionalCapacity(n int) Option { return func(c *Config) { c.PositionalCapacity = n } }

// WithCommandCapacity limits the number of commands, root included
func WithCommandCapacity(n int) Option { return func(c *Config) { c.CommandCapacity = n } }

// WithPrintWidth sets the column at which help descriptions start
func WithPrintWidth(n int) Option { return func(c *Config) { c.PrintWidth = n } }

// WithListInitCapacity sets the size of a list's first backing buffer
func WithListInitCapacity(n int) Option { return func(c *Config) { c.ListInitCapacity = n } }

// WithAllocator replaces the list buffer allocator
func WithAllocator(a Allocator) Option { return func(c *Config) { c.Allocator = a } }

// WithListPool recycles list buffers across parses. Items of a freed list
// must not be retained.
func WithListPool() Option { return func(c *Config) { c.PoolLists = true } }

// WithExitFunc replaces os.Exit, called after the help screen is printed
func WithExitFunc(fn func(code int)) Option { return func(c *Config) { c.Exit = fn } }

// WithIO sets the sinks used for help output and ParseAndExit diagnostics
func WithIO(m *argpio.IOManager) Option { return func(c *Config) { c.IO = m } }

// WithLogger enables debug traces of token resolution
func WithLogger(l *argpio.Logger) Option { return func(c *Config) { c.Logger = l } }

// WithSuggestions toggles "Did you mean" hints in PrintError
func WithSuggestions(enabled bool) Option { return func(c *Config) { c.Suggest = enabled } }

// DeclOption configures a single command, flag or positional declaration
type DeclOption func(*declOptions)

type declOptions struct {
	desc    string
	metaVar string
	command *Command
	req     Requiredness
	noHelp  bool
}

func collect(opts []DeclOption) declOptions {
	var o declOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Desc sets the help description
func Desc(desc string) DeclOption { return func(o *declOptions) { o.desc = desc } }

// MetaVar sets the value placeholder shown after a flag in help
func MetaVar(name string) DeclOption { return func(o *declOptions) { o.metaVar = name } }

// In attaches the declaration to cmd instead of the root command. For
// Command it names the parent.
func In(cmd *Command) DeclOption { return func(o *declOptions) { o.command = cmd } }

// Req sets the requiredness of a positional
func Req(r Requiredness) DeclOption { return func(o *declOptions) { o.req = r } }

// NoHelp skips the automatic -h/--help flag on a command
func NoHelp() DeclOption { return func(o *declOptions) { o.noHelp = true } }
