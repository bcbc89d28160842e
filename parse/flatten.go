package parse

import (
	"github.com/ef-ds/deque"
	"github.com/napalu/goclip/types"
	"github.com/napalu/goclip/types/queue"
)

// Schema is the view of an option schema the flatteners need. Names may carry one or two
// leading hyphens.
type Schema interface {
	HasOption(name string) bool
	OptionHasArg(name string) bool
}

// Flatten rewrites args according to dialect so that every option token and every value
// is a separate element
func Flatten(dialect types.Dialect, schema Schema, args []string, stopAtNonOption bool) []string {
	switch dialect {
	case types.Gnu:
		return FlattenGnu(schema, args, stopAtNonOption)
	case types.Posix:
		return FlattenPosix(schema, args, stopAtNonOption)
	default:
		return FlattenBasic(args)
	}
}

// FlattenBasic returns a copy of args
func FlattenBasic(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)

	return out
}

type flattener struct {
	schema     Schema
	stop       bool
	in         *deque.Deque
	out        *queue.Q[string]
	eatTheRest bool
	current    string
}

func newFlattener(schema Schema, args []string, stop bool) *flattener {
	in := deque.New()
	for _, arg := range args {
		in.PushBack(arg)
	}

	return &flattener{
		schema: schema,
		stop:   stop,
		in:     in,
		out:    queue.New[string](),
	}
}

func (f *flattener) next() (string, bool) {
	v, ok := f.in.PopFront()
	if !ok {
		return "", false
	}

	return v.(string), true
}

func (f *flattener) emit(tokens ...string) {
	f.out.Enqueue(tokens...)
}

// gobble moves every unread token to the output unchanged
func (f *flattener) gobble() {
	for tok, ok := f.next(); ok; tok, ok = f.next() {
		f.out.Enqueue(tok)
	}
}

func (f *flattener) tokens() []string {
	return f.out.Slice()
}
