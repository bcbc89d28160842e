package goclip

import (
	"github.com/napalu/goclip/types"
)

// ConfigureOptionFunc configures an Option created by NewOptionWith
type ConfigureOptionFunc func(o *Option, err *error)

// WithLongName sets the long name, used as --name on the command line
func WithLongName(long string) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.long = long
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.description = description
	}
}

// WithArg makes the option take exactly one argument
func WithArg() ConfigureOptionFunc {
	return WithArgs(1)
}

// WithArgs makes the option take up to n arguments. n <= 0 means no argument.
func WithArgs(n int) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		if n <= 0 {
			o.argCount = types.ArgsUninitialized
			return
		}
		o.argCount = n
	}
}

// WithUnlimitedArgs makes the option take any number of arguments
func WithUnlimitedArgs() ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.argCount = types.ArgsUnlimited
	}
}

// WithOptionalArg makes the option take one argument which may be omitted
func WithOptionalArg() ConfigureOptionFunc {
	return WithOptionalArgs(1)
}

// WithOptionalArgs makes the option take up to n arguments, all of which may be omitted.
// n < 0 means any number.
func WithOptionalArgs(n int) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.optionalArg = true
		switch {
		case n < 0:
			o.argCount = types.ArgsUnlimited
		case n == 0:
			o.argCount = types.ArgsUninitialized
		default:
			o.argCount = n
		}
	}
}

// WithArgName sets the label of the option's argument in help output
func WithArgName(name string) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.argName = name
	}
}

// WithValueSeparator makes each argument split into several values on sep, so that with
// -Dkey=value and '=' the option D receives "key" and "value". Without sep, '=' is used.
func WithValueSeparator(sep ...rune) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.valueSeparator = DefaultValueSeparator
		if len(sep) > 0 {
			o.valueSeparator = sep[0]
		}
	}
}

// WithType sets the semantic type used by CommandLine.GetTypedValue
func WithType(valueType types.ValueType) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.valueType = valueType
	}
}

// SetRequired when true, the option must be supplied on the command-line
func SetRequired(required bool) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.required = required
	}
}
