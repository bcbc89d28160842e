package parse

import (
	"strings"
	"unicode/utf8"
)

// FlattenGnu splits glued short options: when a token is not an option itself but its
// first option character is, "-Dkey=value" becomes "-D", "key=value". Everything after
// "--", or after the first unknown option when stopAtNonOption is set, is passed through.
func FlattenGnu(schema Schema, args []string, stopAtNonOption bool) []string {
	f := newFlattener(schema, args, stopAtNonOption)

	for tok, ok := f.next(); ok; tok, ok = f.next() {
		switch {
		case tok == "--":
			f.eatTheRest = true
			f.emit(tok)
		case tok == "-":
			f.emit(tok)
		case strings.HasPrefix(tok, "-"):
			f.gnuOption(tok)
		default:
			f.emit(tok)
		}

		if f.eatTheRest {
			f.gobble()
		}
	}

	return f.tokens()
}

func (f *flattener) gnuOption(tok string) {
	if f.schema.HasOption(tok) {
		f.emit(tok)
		return
	}

	_, size := utf8.DecodeRuneInString(tok[1:])
	if head := tok[:1+size]; len(tok) > len(head) && f.schema.HasOption(head) {
		f.emit(head, tok[len(head):])
		return
	}

	if f.stop {
		f.eatTheRest = true
	}
	f.emit(tok)
}
