package goclip

import (
	"unicode"

	"github.com/napalu/goclip/errs"
	"github.com/napalu/goclip/types"
)

var patternTypes = map[rune]types.ValueType{
	'@': types.ValueObject,
	':': types.ValueString,
	'%': types.ValueNumber,
	'+': types.ValueClass,
	'#': types.ValueDate,
	'<': types.ValueExistingFile,
	'>': types.ValueFile,
	'*': types.ValueFiles,
	'/': types.ValueURL,
}

const patternRequired = '!'

// IsPatternCode reports whether r is a code in a pattern rather than an option name
func IsPatternCode(r rune) bool {
	_, ok := patternTypes[r]
	return ok || r == patternRequired
}

// ParsePattern builds Options from a compact pattern. Every character which is not a code
// names a short option; the codes following it describe that option:
//
//	@ object   : string   % number         + class
//	# date     < existing file   > file    * files
//	/ url      ! required
//
// A type code makes the option take one argument. "vp:!f<" declares a switch -v, a required
// -p taking a string and -f taking a path which must exist. White space is ignored.
func ParsePattern(pattern string) (*Options, error) {
	opts := NewOptions()

	var (
		pending  []ConfigureOptionFunc
		name     string
		hasName  bool
		position int
	)

	flush := func() error {
		if !hasName {
			return nil
		}
		opt, err := NewOptionWith(name, pending...)
		if err != nil {
			return err
		}
		pending, hasName = nil, false

		return opts.AddOption(opt)
	}

	for _, r := range pattern {
		position++
		switch {
		case unicode.IsSpace(r):
			if err := flush(); err != nil {
				return nil, err
			}
		case IsPatternCode(r):
			if !hasName {
				return nil, errs.ErrDanglingPatternCode.WithArgs(r, position)
			}
			if r == patternRequired {
				pending = append(pending, SetRequired(true))
			} else {
				pending = append(pending, WithArg(), WithType(patternTypes[r]))
			}
		default:
			if err := flush(); err != nil {
				return nil, err
			}
			name, hasName = string(r), true
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return opts, nil
}
