package parse

import (
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/napalu/goclip/errs"
	"github.com/napalu/goclip/types"
)

// TagName is the struct tag key read by UnmarshalTagFormat's callers
const TagName = "goclip"

// TagConfig holds the option attributes declared by a struct tag such as
//
//	`goclip:"short:o;long:output;args:1;argname:file;desc:where to write"`
type TagConfig struct {
	Short       string
	Long        string
	Description string
	ArgName     string
	Args        int
	OptionalArg bool
	Separator   rune
	Required    bool
	Type        types.ValueType
	Group       string
}

var valueTypes = map[string]types.ValueType{
	"string":        types.ValueString,
	"object":        types.ValueObject,
	"number":        types.ValueNumber,
	"date":          types.ValueDate,
	"class":         types.ValueClass,
	"file":          types.ValueFile,
	"existing-file": types.ValueExistingFile,
	"files":         types.ValueFiles,
	"url":           types.ValueURL,
}

// ValueTypeFromString returns the ValueType named s
func ValueTypeFromString(s string) (types.ValueType, bool) {
	v, ok := valueTypes[strings.ToLower(s)]
	return v, ok
}

// UnmarshalTagFormat parses a semicolon separated list of key:value pairs. Keys are short,
// long (or name), desc, argname, args (a count or "*"), optional, sep, required, type and
// group. When args is not given it is inferred from the field's type; the field's type must
// be one InferArgs accepts either way.
func UnmarshalTagFormat(tag string, field reflect.StructField) (*TagConfig, error) {
	config := &TagConfig{Args: types.ArgsUninitialized}
	argsSet := false

	for _, part := range strings.Split(tag, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		key, value, found := strings.Cut(part, ":")
		if !found {
			return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part)
		}

		switch strings.TrimSpace(key) {
		case "short":
			config.Short = value
		case "long", "name":
			config.Long = value
		case "desc":
			config.Description = value
		case "argname":
			config.ArgName = value
		case "args":
			if value == "*" {
				config.Args = types.ArgsUnlimited
			} else {
				n, err := strconv.Atoi(value)
				if err != nil || n < 0 {
					return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part)
				}
				config.Args = n
			}
			argsSet = true
		case "optional":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part).Wrap(err)
			}
			config.OptionalArg = b
		case "sep":
			r, size := utf8.DecodeRuneInString(value)
			if size == 0 || size != len(value) {
				return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part)
			}
			config.Separator = r
		case "required":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part).Wrap(err)
			}
			config.Required = b
		case "type":
			v, ok := ValueTypeFromString(value)
			if !ok {
				return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part)
			}
			config.Type = v
		case "group":
			config.Group = value
		default:
			return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part)
		}
	}

	n, ok := InferArgs(field.Type)
	if !ok {
		return nil, errs.ErrUnsupportedField.WithArgs(field.Name, field.Type.String())
	}
	if !argsSet {
		config.Args = n
	}

	return config, nil
}

// InferArgs returns the argument count implied by a field type: none for bool, unlimited
// for slices and one for scalars
func InferArgs(t reflect.Type) (int, bool) {
	if t == reflect.TypeOf(time.Duration(0)) || t == reflect.TypeOf(time.Time{}) {
		return 1, true
	}

	switch t.Kind() {
	case reflect.Bool:
		return types.ArgsUninitialized, true
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			return types.ArgsUnlimited, true
		}
		return 0, false
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return 1, true
	}

	return 0, false
}
