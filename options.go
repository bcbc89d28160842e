package goclip

import (
	"slices"

	"github.com/napalu/goclip/errs"
	"github.com/napalu/goclip/types/orderedmap"
	"github.com/napalu/goclip/util"
)

// Options is the schema a Parser matches arguments against. Every option is reachable by its
// short name, its long name, or both; the same *Option backs each namespace.
//
// Options is built once and then only read: parsing never mutates it, so a single Options
// may be shared by concurrent parses.
type Options struct {
	shortOpts *orderedmap.OrderedMap[string, *Option]
	longOpts  *orderedmap.OrderedMap[string, *Option]
	all       *orderedmap.OrderedMap[OptionID, *Option]
	groups    map[OptionID]*OptionGroup
	groupList []*OptionGroup
	required  []requirement
}

// requirement is either a required option or a required group
type requirement struct {
	option *Option
	group  *OptionGroup
}

func (r requirement) String() string {
	if r.group != nil {
		return r.group.String()
	}

	return r.option.Key()
}

// NewOptions creates an empty schema
func NewOptions() *Options {
	return &Options{
		shortOpts: orderedmap.NewOrderedMap[string, *Option](),
		longOpts:  orderedmap.NewOrderedMap[string, *Option](),
		all:       orderedmap.NewOrderedMap[OptionID, *Option](),
		groups:    map[OptionID]*OptionGroup{},
	}
}

// NewOptionsWith creates a schema and applies configs in order
func NewOptionsWith(configs ...ConfigureOptionsFunc) (*Options, error) {
	o := NewOptions()
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Add creates an option from its parts and adds it
func (o *Options) Add(short, long string, hasArg bool, description string) error {
	opt, err := NewOption(short, long, hasArg, description)
	if err != nil {
		return err
	}

	return o.AddOption(opt)
}

// AddOption adds opt to the schema. It fails with errs.ErrOptionExists when the short or the
// long name is already taken.
func (o *Options) AddOption(opt *Option) error {
	if opt == nil {
		return errs.ErrNilOption
	}
	if o.taken(opt) {
		return errs.ErrOptionExists.WithArgs(opt.Key())
	}

	o.register(opt)
	if opt.IsRequired() {
		o.required = append(o.required, requirement{option: opt})
	}

	return nil
}

// AddGroup adds g and every member of g. A member may already have been added on its own, in
// which case it now belongs to g and is no longer required by itself. Nothing is added when
// any member clashes with a different option or already belongs to another group.
func (o *Options) AddGroup(g *OptionGroup) error {
	if g == nil {
		return errs.ErrNilOption
	}

	for _, m := range g.Options() {
		if _, grouped := o.groups[m.ID()]; grouped {
			return errs.ErrOptionExists.WithArgs(m.Key())
		}
		if known, ok := o.all.Get(m.ID()); ok && known == m {
			continue
		}
		if o.taken(m) {
			return errs.ErrOptionExists.WithArgs(m.Key())
		}
	}

	for _, m := range g.Options() {
		if !o.all.Has(m.ID()) {
			o.register(m)
		}
		o.groups[m.ID()] = g
		o.required = slices.DeleteFunc(o.required, func(r requirement) bool {
			return r.option == m
		})
	}
	o.groupList = append(o.groupList, g)
	if g.IsRequired() {
		o.required = append(o.required, requirement{group: g})
	}

	return nil
}

func (o *Options) taken(opt *Option) bool {
	if opt.Short() != "" && o.shortOpts.Has(opt.Short()) {
		return true
	}
	if opt.Long() != "" && o.longOpts.Has(opt.Long()) {
		return true
	}

	return false
}

func (o *Options) register(opt *Option) {
	if opt.Short() != "" {
		o.shortOpts.Set(opt.Short(), opt)
	}
	if opt.Long() != "" {
		o.longOpts.Set(opt.Long(), opt)
	}
	o.all.Set(opt.ID(), opt)
}

// Option resolves name, with or without leading hyphens, first as a short then as a long name
func (o *Options) Option(name string) (*Option, bool) {
	name = util.StripLeadingHyphens(name)
	if name == "" {
		return nil, false
	}
	if opt, ok := o.shortOpts.Get(name); ok {
		return opt, true
	}

	return o.longOpts.Get(name)
}

// HasOption reports whether name resolves to an option
func (o *Options) HasOption(name string) bool {
	_, ok := o.Option(name)
	return ok
}

// OptionHasArg reports whether name resolves to an option taking an argument
func (o *Options) OptionHasArg(name string) bool {
	opt, ok := o.Option(name)
	return ok && opt.HasArg()
}

// Group returns the group opt belongs to
func (o *Options) Group(opt *Option) (*OptionGroup, bool) {
	if opt == nil {
		return nil, false
	}
	g, ok := o.groups[opt.ID()]

	return g, ok
}

// Groups returns the groups in the order they were added
func (o *Options) Groups() []*OptionGroup {
	return slices.Clone(o.groupList)
}

// HelpOptions returns every option once, in the order it was added
func (o *Options) HelpOptions() []*Option {
	return o.all.Values()
}

// Len returns the number of distinct options
func (o *Options) Len() int {
	return o.all.Len()
}

// Required returns the keys of the required options and the renderings of the required
// groups, in declaration order
func (o *Options) Required() []string {
	names := make([]string, 0, len(o.required))
	for _, r := range o.required {
		names = append(names, r.String())
	}

	return names
}

func (o *Options) requirements() []requirement {
	return o.required
}
