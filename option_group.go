package goclip

import (
	"strings"

	"github.com/napalu/goclip/errs"
	"github.com/napalu/goclip/types/orderedmap"
)

// OptionGroup is a set of mutually exclusive options: at most one member may be given per parse
type OptionGroup struct {
	options  *orderedmap.OrderedMap[OptionID, *Option]
	required bool
	selected *OptionID
}

// NewOptionGroup creates an empty, optional group
func NewOptionGroup() *OptionGroup {
	return &OptionGroup{
		options: orderedmap.NewOrderedMap[OptionID, *Option](),
	}
}

// NewOptionGroupWith creates a group holding options. A required group must see one of its
// members on every parse.
func NewOptionGroupWith(required bool, options ...*Option) (*OptionGroup, error) {
	g := NewOptionGroup()
	g.required = required
	for _, o := range options {
		if err := g.AddOption(o); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddOption adds o to the group. Group membership supersedes the option's own required flag,
// so o is made optional.
func (g *OptionGroup) AddOption(o *Option) error {
	if o == nil {
		return errs.ErrNilOption
	}
	if g.options.Has(o.ID()) {
		return errs.ErrOptionExists.WithArgs(o.Key())
	}
	o.required = false
	g.options.Set(o.ID(), o)

	return nil
}

// Options returns the members in the order they were added
func (g *OptionGroup) Options() []*Option {
	return g.options.Values()
}

// Names returns the keys of the members
func (g *OptionGroup) Names() []string {
	names := make([]string, 0, g.options.Len())
	for e := g.options.Front(); e != nil; e = e.Next() {
		names = append(names, e.Value.Key())
	}

	return names
}

// Contains reports whether o is a member
func (g *OptionGroup) Contains(o *Option) bool {
	return o != nil && g.options.Has(o.ID())
}

func (g *OptionGroup) SetRequired(required bool) {
	g.required = required
}

func (g *OptionGroup) IsRequired() bool {
	return g.required
}

// Select marks o as the group's chosen member. Selecting the already selected member again
// is a no-op; selecting a different one fails with errs.ErrAlreadySelected.
func (g *OptionGroup) Select(o *Option) error {
	id := o.ID()
	if g.selected == nil || *g.selected == id {
		g.selected = &id
		return nil
	}

	selected := g.selected.String()
	if m, ok := g.options.Get(*g.selected); ok {
		selected = m.Key()
	}

	return errs.ErrAlreadySelected.WithArgs(o.Key(), selected)
}

// Selected returns the key of the selected member or "" when none was selected
func (g *OptionGroup) Selected() string {
	if g.selected == nil {
		return ""
	}

	return g.selected.String()
}

// Reset clears the selection
func (g *OptionGroup) Reset() {
	g.selected = nil
}

// String renders the group as [-a description, --long description]
func (g *OptionGroup) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for e := g.options.Front(); e != nil; e = e.Next() {
		o := e.Value
		if o.Short() != "" {
			sb.WriteString("-")
			sb.WriteString(o.Short())
		} else {
			sb.WriteString("--")
			sb.WriteString(o.Long())
		}
		if o.Description() != "" {
			sb.WriteString(" ")
			sb.WriteString(o.Description())
		}
		if e.Next() != nil {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("]")

	return sb.String()
}

// clone shares the members and starts with no selection
func (g *OptionGroup) clone() *OptionGroup {
	return &OptionGroup{
		options:  g.options,
		required: g.required,
	}
}
