package goclip

import (
	"reflect"
	"strconv"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/napalu/goclip/errs"
	"github.com/napalu/goclip/parse"
	"github.com/napalu/goclip/types"
	"github.com/napalu/goclip/types/orderedmap"
	"github.com/napalu/goclip/util"
)

// NewOptionsFromStruct builds Options from the goclip tags of the struct v points to.
// Untagged and unexported fields are ignored. A field without short or long name is known by
// its name in kebab case. Fields sharing a group tag form a mutually exclusive OptionGroup,
// which is required when any of its members is tagged required.
//
//	type config struct {
//		Verbose bool     `goclip:"short:v;desc:show progress"`
//		Output  string   `goclip:"short:o;long:output;argname:file"`
//		Defines []string `goclip:"short:D;args:2;sep:="`
//	}
func NewOptionsFromStruct(v any) (*Options, error) {
	rv, err := structValue(v)
	if err != nil {
		return nil, err
	}

	opts := NewOptions()
	groups := orderedmap.NewOrderedMap[string, *OptionGroup]()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		cfg, ok, err := fieldTag(field)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		opt, err := NewOptionWith(cfg.Short, tagConfigs(cfg)...)
		if err != nil {
			return nil, err
		}

		if cfg.Group == "" {
			if err = opts.AddOption(opt); err != nil {
				return nil, err
			}
			continue
		}

		g, found := groups.Get(cfg.Group)
		if !found {
			g = NewOptionGroup()
			groups.Set(cfg.Group, g)
		}
		if err = g.AddOption(opt); err != nil {
			return nil, err
		}
		if cfg.Required {
			g.SetRequired(true)
		}
	}

	for e := groups.Front(); e != nil; e = e.Next() {
		if err = opts.AddGroup(e.Value); err != nil {
			return nil, err
		}
	}

	return opts, nil
}

// Bind stores the values held by c in the goclip tagged fields of the struct v points to.
// Fields whose option was not given are left untouched.
func (c *CommandLine) Bind(v any) error {
	rv, err := structValue(v)
	if err != nil {
		return err
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		cfg, ok, err := fieldTag(field)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		opt, found := c.options.Get(OptionID{Short: cfg.Short, Long: cfg.Long})
		if !found {
			continue
		}
		if err = setField(rv.Field(i), field.Name, opt.Values()); err != nil {
			return err
		}
	}

	return nil
}

func structValue(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, errs.ErrNotStructPointer.WithArgs(v)
	}

	return rv.Elem(), nil
}

func fieldTag(field reflect.StructField) (*parse.TagConfig, bool, error) {
	tag, ok := field.Tag.Lookup(parse.TagName)
	if !ok || !field.IsExported() {
		return nil, false, nil
	}

	cfg, err := parse.UnmarshalTagFormat(tag, field)
	if err != nil {
		return nil, false, err
	}
	if cfg.Short == "" && cfg.Long == "" {
		cfg.Long = strcase.ToKebab(field.Name)
	}

	return cfg, true, nil
}

func tagConfigs(cfg *parse.TagConfig) []ConfigureOptionFunc {
	configs := []ConfigureOptionFunc{
		WithLongName(cfg.Long),
		WithDescription(cfg.Description),
		WithType(cfg.Type),
	}
	if cfg.ArgName != "" {
		configs = append(configs, WithArgName(cfg.ArgName))
	}

	switch {
	case cfg.OptionalArg && cfg.Args == types.ArgsUnlimited:
		configs = append(configs, WithOptionalArgs(-1))
	case cfg.OptionalArg:
		configs = append(configs, WithOptionalArgs(util.Max(cfg.Args, 1)))
	case cfg.Args == types.ArgsUnlimited:
		configs = append(configs, WithUnlimitedArgs())
	default:
		configs = append(configs, WithArgs(cfg.Args))
	}

	if cfg.Separator != 0 {
		configs = append(configs, WithValueSeparator(cfg.Separator))
	}
	if cfg.Required && cfg.Group == "" {
		configs = append(configs, SetRequired(true))
	}

	return configs
}

var (
	durationType = reflect.TypeOf(time.Duration(0))
	timeType     = reflect.TypeOf(time.Time{})
)

func setField(fv reflect.Value, name string, values []string) error {
	if fv.Kind() == reflect.Bool {
		fv.SetBool(true)
		return nil
	}
	if fv.Kind() == reflect.Slice {
		if fv.Type().Elem().Kind() != reflect.String {
			return errs.ErrUnsupportedField.WithArgs(name, fv.Type().String())
		}
		s := reflect.MakeSlice(fv.Type(), len(values), len(values))
		for i, v := range values {
			s.Index(i).SetString(v)
		}
		fv.Set(s)
		return nil
	}
	if len(values) == 0 {
		return nil
	}

	value := values[0]
	fail := func(err error) error {
		return errs.ErrBindField.WithArgs(value, name).Wrap(err)
	}

	switch {
	case fv.Type() == durationType:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fail(err)
		}
		fv.SetInt(int64(d))
	case fv.Type() == timeType:
		t, err := util.CreateValue(value, types.ValueDate)
		if err != nil {
			return fail(err)
		}
		fv.Set(reflect.ValueOf(t))
	case fv.Kind() == reflect.String:
		fv.SetString(value)
	case fv.CanInt():
		n, err := strconv.ParseInt(value, 0, fv.Type().Bits())
		if err != nil {
			return fail(err)
		}
		fv.SetInt(n)
	case fv.CanUint():
		n, err := strconv.ParseUint(value, 0, fv.Type().Bits())
		if err != nil {
			return fail(err)
		}
		fv.SetUint(n)
	case fv.CanFloat():
		f, err := strconv.ParseFloat(value, fv.Type().Bits())
		if err != nil {
			return fail(err)
		}
		fv.SetFloat(f)
	}

	return nil
}
