package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/goclip/errs"
)

// Split breaks a command string into arguments following the quoting rules of the
// Windows C runtime: whitespace separates arguments outside double quotes, 2n
// backslashes before a quote yield n backslashes and toggle quoting, 2n+1 yield n
// backslashes and a literal quote.
func Split(s string) ([]string, error) {
	if !utf8.ValidString(s) {
		return nil, errs.ErrParseCommandString
	}

	tokens := []string{}
	var arg strings.Builder
	inQuotes := false
	inArg := false

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\\':
			n := 0
			for i < len(s) && s[i] == '\\' {
				n++
				i++
			}
			inArg = true
			if i < len(s) && s[i] == '"' {
				arg.WriteString(strings.Repeat(`\`, n/2))
				if n%2 == 1 {
					arg.WriteByte('"')
					i++
				}
				continue
			}
			arg.WriteString(strings.Repeat(`\`, n))
		case c == '"':
			inQuotes = !inQuotes
			inArg = true
			i++
		case !inQuotes && (c == ' ' || c == '\t' || c == '\n' || c == '\r'):
			if inArg {
				tokens = append(tokens, arg.String())
				arg.Reset()
				inArg = false
			}
			i++
		default:
			arg.WriteByte(c)
			inArg = true
			i++
		}
	}

	if inQuotes {
		return nil, errs.ErrParseCommandString
	}
	if inArg {
		tokens = append(tokens, arg.String())
	}

	return tokens, nil
}
