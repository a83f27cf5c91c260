package argp

// Kind is the type of value a flag or positional holds
type Kind int

const (
	// KindBool is a presence flag; it never consumes a value token.
	KindBool Kind = iota
	// KindUint is a base-10 unsigned 64-bit integer.
	KindUint
	// KindString holds the token verbatim.
	KindString
	// KindEnum holds the index of the matched option.
	KindEnum
	// KindList appends every occurrence.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUint:
		return "uint"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Requiredness controls how a positional is enforced and rendered.
type Requiredness int

const (
	// Optional positionals keep their default when absent and render as [name].
	Optional Requiredness = iota
	// Required positionals must appear; Parse fails with NoValue otherwise.
	Required
	// AppearRequired is enforced like Optional but rendered without brackets.
	AppearRequired
)

// List accumulates the tokens given to a list flag or positional, in the
// order they were seen. Items alias the argument vector.
type List struct {
	Items []string

	release func([]string)
}

// Len returns the number of collected items
func (l *List) Len() int { return len(l.Items) }

// Free drops the backing buffer. The strings themselves belong to the
// argument vector and are left alone; the list is empty and reusable after.
// With WithListPool the buffer goes back to the pool.
func (l *List) Free() {
	if l.release != nil && l.Items != nil {
		l.release(l.Items)
	}
	l.Items = nil
}

// value is the slot behind every handle. Only the field matching kind is
// meaningful.
type value struct {
	kind Kind
	b    bool
	u    uint64
	s    string
	e    int
	l    List
}

// handle returns the stable pointer handed to callers for this slot.
func (v *value) handle() any {
	switch v.kind {
	case KindBool:
		return &v.b
	case KindUint:
		return &v.u
	case KindString:
		return &v.s
	case KindEnum:
		return &v.e
	case KindList:
		return &v.l
	default:
		panic("argp: unreachable value kind")
	}
}

// enumLabels returns the options that can actually be matched, skipping the
// empty "unset" entries.
func enumLabels(options []string) []string {
	labels := make([]string, 0, len(options))
	for _, o := range options {
		if o != "" {
			labels = append(labels, o)
		}
	}
	return labels
}
