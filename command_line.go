package goclip

import (
	"slices"

	"github.com/napalu/goclip/errs"
	"github.com/napalu/goclip/types/orderedmap"
	"github.com/napalu/goclip/util"
)

// CommandLine is the result of a parse: the options that were matched, in the order they
// were first seen, and the arguments that were not consumed by an option
type CommandLine struct {
	options *orderedmap.OrderedMap[OptionID, *Option]
	args    []string
}

func newCommandLine() *CommandLine {
	return &CommandLine{
		options: orderedmap.NewOrderedMap[OptionID, *Option](),
	}
}

// resolve finds a matched option by short name, then by long name
func (c *CommandLine) resolve(name string) (*Option, bool) {
	name = util.StripLeadingHyphens(name)
	if name == "" {
		return nil, false
	}
	for e := c.options.Front(); e != nil; e = e.Next() {
		if e.Key.Short == name {
			return e.Value, true
		}
	}
	for e := c.options.Front(); e != nil; e = e.Next() {
		if e.Key.Long == name {
			return e.Value, true
		}
	}

	return nil, false
}

// HasOption reports whether the option called name was given
func (c *CommandLine) HasOption(name string) bool {
	_, ok := c.resolve(name)
	return ok
}

// GetValue returns the first value of the option called name
func (c *CommandLine) GetValue(name string) (string, bool) {
	opt, ok := c.resolve(name)
	if !ok {
		return "", false
	}

	return opt.Value()
}

// GetValueOrDefault returns the first value of the option called name or defaultValue
func (c *CommandLine) GetValueOrDefault(name, defaultValue string) string {
	if v, ok := c.GetValue(name); ok {
		return v
	}

	return defaultValue
}

// GetValues returns every value of the option called name. The result is false when the
// option was not given or carries no value.
func (c *CommandLine) GetValues(name string) ([]string, bool) {
	opt, ok := c.resolve(name)
	if !ok || len(opt.Values()) == 0 {
		return nil, false
	}

	return slices.Clone(opt.Values()), true
}

// GetTypedValue converts the first value of the option called name according to the
// option's type. An option without a value yields nil.
func (c *CommandLine) GetTypedValue(name string) (any, error) {
	opt, ok := c.resolve(name)
	if !ok {
		return nil, errs.ErrOptionNotFound.WithArgs(name)
	}
	v, ok := opt.Value()
	if !ok {
		return nil, nil
	}

	return util.CreateValue(v, opt.Type())
}

// RemainingArgs returns the arguments no option consumed, in order
func (c *CommandLine) RemainingArgs() []string {
	return slices.Clone(c.args)
}

// Options returns the matched options with their values
func (c *CommandLine) Options() []*Option {
	return c.options.Values()
}

// matched returns the result's copy of opt, attaching a fresh one the first time
func (c *CommandLine) matched(opt *Option) *Option {
	if m, ok := c.options.Get(opt.ID()); ok {
		return m
	}
	m := opt.clone()
	c.options.Set(m.ID(), m)

	return m
}

func (c *CommandLine) attach(opt *Option) {
	c.options.Set(opt.ID(), opt)
}

func (c *CommandLine) addArg(arg string) {
	c.args = append(c.args, arg)
}
