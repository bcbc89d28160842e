package goclip

import (
	"github.com/napalu/goclip/types"
)

// OptionBuilder fluently collects the attributes of one option. Create or CreateLong
// produce the option; a builder is meant to be used once.
//
//	opt, err := goclip.Build().
//		LongName("file").
//		HasArg().
//		ArgName("path").
//		Description("input file").
//		Create("f")
type OptionBuilder struct {
	configs []ConfigureOptionFunc
}

// Build starts a new OptionBuilder
func Build() *OptionBuilder {
	return &OptionBuilder{}
}

func (b *OptionBuilder) with(config ConfigureOptionFunc) *OptionBuilder {
	b.configs = append(b.configs, config)
	return b
}

func (b *OptionBuilder) LongName(long string) *OptionBuilder {
	return b.with(WithLongName(long))
}

func (b *OptionBuilder) Description(description string) *OptionBuilder {
	return b.with(WithDescription(description))
}

func (b *OptionBuilder) ArgName(name string) *OptionBuilder {
	return b.with(WithArgName(name))
}

// HasArg makes the option take one argument
func (b *OptionBuilder) HasArg() *OptionBuilder {
	return b.with(WithArg())
}

// HasArgs makes the option take up to n arguments
func (b *OptionBuilder) HasArgs(n int) *OptionBuilder {
	return b.with(WithArgs(n))
}

// HasUnlimitedArgs makes the option take any number of arguments
func (b *OptionBuilder) HasUnlimitedArgs() *OptionBuilder {
	return b.with(WithUnlimitedArgs())
}

// HasOptionalArg makes the option take one argument which may be omitted
func (b *OptionBuilder) HasOptionalArg() *OptionBuilder {
	return b.with(WithOptionalArg())
}

// HasOptionalArgs makes the option take up to n optional arguments, n < 0 meaning any number
func (b *OptionBuilder) HasOptionalArgs(n int) *OptionBuilder {
	return b.with(WithOptionalArgs(n))
}

func (b *OptionBuilder) Required() *OptionBuilder {
	return b.with(SetRequired(true))
}

func (b *OptionBuilder) ValueSeparator(sep ...rune) *OptionBuilder {
	return b.with(WithValueSeparator(sep...))
}

func (b *OptionBuilder) Type(valueType types.ValueType) *OptionBuilder {
	return b.with(WithType(valueType))
}

// Create builds the option with the given short name
func (b *OptionBuilder) Create(short string) (*Option, error) {
	return NewOptionWith(short, b.configs...)
}

// CreateLong builds an option known only by its long name; LongName must have been set
func (b *OptionBuilder) CreateLong() (*Option, error) {
	return NewOptionWith("", b.configs...)
}

// MustCreate is like Create but panics on error. It simplifies static schema declarations.
func (b *OptionBuilder) MustCreate(short string) *Option {
	o, err := b.Create(short)
	if err != nil {
		panic(err)
	}

	return o
}
