package goclip

import (
	"log/slog"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/goclip/types"
)

// NameConversionFunc converts an option or prefix name to an environment variable name
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToScreamingSnake converts a string to screaming snake case "MY_OPTION_NAME"
	ToScreamingSnake = func(s string) string {
		return strcase.ToScreamingSnake(s)
	}

	// ToSnakeCase converts a string to snake case "my_option_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToUpperCase converts a string to upper case without touching separators "MY-OPTION"
	ToUpperCase = func(s string) string {
		return strings.ToUpper(s)
	}

	DefaultEnvNameConverter = ToScreamingSnake
)

// Properties are option values supplied from outside the argument list, keyed by option
// name. An option taking an argument receives the property as its value; an option without
// arguments is switched on by "yes", "true" or "1".
type Properties map[string]string

// Parser turns argument lists into a CommandLine according to an Options schema. A Parser
// holds no per-parse state and may be used from several goroutines.
type Parser struct {
	dialect          types.Dialect
	logger           *slog.Logger
	envNameConverter NameConversionFunc
}
