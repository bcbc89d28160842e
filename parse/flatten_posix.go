package parse

import (
	"strings"
	"unicode/utf8"
)

// FlattenPosix splits "--long=value" at the first "=" and bursts short option clusters:
// "-abc" becomes "-a", "-b", "-c" when a, b and c are options. Bursting stops at the
// first option taking an argument, the rest of the cluster becoming its value.
//
// A cluster containing an unknown character is emitted whole, unless stopAtNonOption is
// set: then the remainder is handed to the last option seen, or ends option processing.
func FlattenPosix(schema Schema, args []string, stopAtNonOption bool) []string {
	f := newFlattener(schema, args, stopAtNonOption)

	for tok, ok := f.next(); ok; tok, ok = f.next() {
		switch {
		case tok == "--":
			f.eatTheRest = true
			f.emit(tok)
		case strings.HasPrefix(tok, "--"):
			if name, value, found := strings.Cut(tok, "="); found {
				f.emit(name, value)
			} else {
				f.emit(tok)
			}
		case tok == "-":
			f.emit(tok)
		case strings.HasPrefix(tok, "-"):
			switch {
			case utf8.RuneCountInString(tok) == 2:
				f.posixShort(tok)
			case f.schema.HasOption(tok):
				f.emit(tok)
			default:
				f.burst(tok)
			}
		default:
			if f.stop {
				f.posixValue(tok)
			} else {
				f.emit(tok)
			}
		}

		if f.eatTheRest {
			f.gobble()
		}
	}

	return f.tokens()
}

func (f *flattener) posixShort(tok string) {
	if f.schema.HasOption(tok) {
		f.current = tok
	} else if f.stop {
		f.eatTheRest = true
	}
	f.emit(tok)
}

// posixValue routes a value to the current option when it takes one, otherwise it ends
// option processing
func (f *flattener) posixValue(value string) {
	if f.current != "" && f.schema.OptionHasArg(f.current) {
		f.emit(value)
		f.current = ""
		return
	}

	f.eatTheRest = true
	f.emit("--", value)
}

func (f *flattener) burst(tok string) {
	cluster := tok[1:]
	for i := 0; i < len(cluster); {
		_, size := utf8.DecodeRuneInString(cluster[i:])
		name := cluster[i : i+size]
		if !f.schema.HasOption(name) {
			if f.stop {
				f.posixValue(cluster[i:])
			} else {
				f.emit(tok)
			}
			return
		}

		f.emit("-" + name)
		f.current = name
		i += size
		if rest := cluster[i:]; rest != "" && f.schema.OptionHasArg(name) {
			f.emit(rest)
			return
		}
	}
}
