package goclip

// ConfigureOptionsFunc configures an Options schema created by NewOptionsWith
type ConfigureOptionsFunc func(o *Options, err *error)

// WithOption adds opt to the schema
func WithOption(opt *Option) ConfigureOptionsFunc {
	return func(o *Options, err *error) {
		*err = o.AddOption(opt)
	}
}

// WithNewOption creates an option named short from configs and adds it to the schema
func WithNewOption(short string, configs ...ConfigureOptionFunc) ConfigureOptionsFunc {
	return func(o *Options, err *error) {
		var opt *Option
		opt, *err = NewOptionWith(short, configs...)
		if *err != nil {
			return
		}
		*err = o.AddOption(opt)
	}
}

// WithGroup adds a mutually exclusive group and its members
func WithGroup(g *OptionGroup) ConfigureOptionsFunc {
	return func(o *Options, err *error) {
		*err = o.AddGroup(g)
	}
}

// WithRequiredGroup builds a required group from members and adds it
func WithRequiredGroup(members ...*Option) ConfigureOptionsFunc {
	return func(o *Options, err *error) {
		var g *OptionGroup
		g, *err = NewOptionGroupWith(true, members...)
		if *err != nil {
			return
		}
		*err = o.AddGroup(g)
	}
}
