package goclip

import (
	"strings"
	"unicode"

	"github.com/napalu/goclip/errs"
	"github.com/napalu/goclip/types"
)

// DefaultArgName is the label used for an option's argument in help output
const DefaultArgName = "arg"

// DefaultValueSeparator is the separator set by WithValueSeparator when none is given
const DefaultValueSeparator = '='

// OptionID is the identity of an Option: two options are the same option when both names match
type OptionID struct {
	Short string
	Long  string
}

// String returns the short name, or the long name when there is no short name
func (id OptionID) String() string {
	if id.Short != "" {
		return id.Short
	}
	return id.Long
}

// Option describes a single command-line option.
//
// An option's names and attributes are fixed once it has been created; the values it holds
// are only ever filled on the copies attached to a CommandLine.
type Option struct {
	short          string
	long           string
	description    string
	argName        string
	argCount       int
	optionalArg    bool
	valueSeparator rune
	required       bool
	valueType      types.ValueType
	values         []string
}

// NewOption creates an option with a short name, an optional long name and, when hasArg is true,
// a single argument
func NewOption(short, long string, hasArg bool, description string) (*Option, error) {
	configs := []ConfigureOptionFunc{WithLongName(long), WithDescription(description)}
	if hasArg {
		configs = append(configs, WithArg())
	}

	return NewOptionWith(short, configs...)
}

// NewOptionWith creates an option named short configured by configs. short may be empty
// when a long name is configured.
func NewOptionWith(short string, configs ...ConfigureOptionFunc) (*Option, error) {
	o := &Option{
		short:    short,
		argName:  DefaultArgName,
		argCount: types.ArgsUninitialized,
	}

	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return nil, err
		}
	}

	if err = validateOptionName(o.short); err != nil {
		return nil, err
	}
	if o.short == "" && o.long == "" {
		return nil, errs.ErrEmptyOptionName
	}

	return o, nil
}

// ID returns the option's identity
func (o *Option) ID() OptionID {
	return OptionID{Short: o.short, Long: o.long}
}

// Key returns the name used to refer to the option: its short name if set, else its long name
func (o *Option) Key() string {
	return o.ID().String()
}

// Short returns the short name or ""
func (o *Option) Short() string {
	return o.short
}

// Long returns the long name or ""
func (o *Option) Long() string {
	return o.long
}

// HasLongName reports whether the option has a long name
func (o *Option) HasLongName() bool {
	return o.long != ""
}

func (o *Option) Description() string {
	return o.description
}

func (o *Option) ArgName() string {
	return o.argName
}

// ArgCount returns the number of arguments the option takes, or one of types.ArgsUninitialized
// and types.ArgsUnlimited
func (o *Option) ArgCount() int {
	return o.argCount
}

// HasArg reports whether the option takes at least one argument
func (o *Option) HasArg() bool {
	return o.argCount > 0 || o.argCount == types.ArgsUnlimited
}

// HasArgs reports whether the option takes more than one argument
func (o *Option) HasArgs() bool {
	return o.argCount > 1 || o.argCount == types.ArgsUnlimited
}

// HasOptionalArg reports whether the option's arguments may be omitted
func (o *Option) HasOptionalArg() bool {
	return o.optionalArg
}

// ValueSeparator returns the character splitting a single argument into several values
func (o *Option) ValueSeparator() (rune, bool) {
	return o.valueSeparator, o.valueSeparator != 0
}

func (o *Option) IsRequired() bool {
	return o.required
}

// Type returns the semantic type of the option's values
func (o *Option) Type() types.ValueType {
	return o.valueType
}

// Values returns the values collected for the option
func (o *Option) Values() []string {
	return o.values
}

// Value returns the first collected value
func (o *Option) Value() (string, bool) {
	if len(o.values) == 0 {
		return "", false
	}

	return o.values[0], true
}

// String returns a debug representation of the option
func (o *Option) String() string {
	var sb strings.Builder
	sb.WriteString("[ option: ")
	sb.WriteString(o.short)
	if o.long != "" {
		sb.WriteString(" ")
		sb.WriteString(o.long)
	}
	sb.WriteString(" ")
	if o.HasArgs() {
		sb.WriteString("[ARG...]")
	} else if o.HasArg() {
		sb.WriteString(" [ARG]")
	}
	sb.WriteString(" :: ")
	sb.WriteString(o.description)
	if o.valueType != types.ValueString {
		sb.WriteString(" :: ")
		sb.WriteString(o.valueType.String())
	}
	sb.WriteString(" ]")

	return sb.String()
}

// clone copies the option's names and attributes; the copy holds no values
func (o *Option) clone() *Option {
	c := *o
	c.values = nil

	return &c
}

func (o *Option) addValueForProcessing(value string) error {
	if !o.HasArg() {
		return errs.ErrNoArgsAllowed.WithArgs(o.Key())
	}

	return o.processValue(value)
}

// processValue splits value on the value separator. Once only one slot is left the remainder
// is stored whole.
func (o *Option) processValue(value string) error {
	if o.valueSeparator != 0 {
		sep := string(o.valueSeparator)
		for o.argCount <= 0 || len(o.values) != o.argCount-1 {
			head, tail, found := strings.Cut(value, sep)
			if !found {
				break
			}
			if err := o.add(head); err != nil {
				return err
			}
			value = tail
		}
	}

	return o.add(value)
}

func (o *Option) add(value string) error {
	if o.argCount > 0 && len(o.values) >= o.argCount {
		return errs.ErrValueListFull.WithArgs(o.Key(), o.argCount)
	}
	o.values = append(o.values, value)

	return nil
}

func validateOptionName(name string) error {
	if name == "" {
		return nil
	}

	runes := []rune(name)
	if len(runes) == 1 {
		if !isValidOptionRune(runes[0]) && !strings.ContainsRune(" ?@", runes[0]) {
			return errs.ErrInvalidOptionName.WithArgs(name)
		}
		return nil
	}

	for _, r := range runes {
		if !isValidOptionRune(r) {
			return errs.ErrInvalidOptionName.WithArgs(name)
		}
	}

	return nil
}

func isValidOptionRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '$' || r == '_'
}
