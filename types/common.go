package types

// Dialect selects how raw arguments are rewritten before the parser engine consumes them
type Dialect int

const (
	Basic Dialect = iota // Basic passes arguments through unchanged
	Gnu                  // Gnu splits glued short options such as -Dkey=value
	Posix                // Posix bursts short options (-abc) and splits --long=value
)

// String returns the string representation of a Dialect
func (d Dialect) String() string {
	switch d {
	case Basic:
		return "basic"
	case Gnu:
		return "gnu"
	case Posix:
		return "posix"
	}
	return "unknown"
}

// ParseDialect returns the Dialect named by s
func ParseDialect(s string) (Dialect, bool) {
	switch s {
	case "basic":
		return Basic, true
	case "gnu":
		return Gnu, true
	case "posix":
		return Posix, true
	}
	return Basic, false
}

// Arity sentinels for an option's argument count. Any value >= 0 is an exact count.
const (
	ArgsUninitialized = -1 // ArgsUninitialized denotes an option which takes no argument
	ArgsUnlimited     = -2 // ArgsUnlimited denotes an option which takes any number of arguments
)

// ValueType tags the semantic type of an option value. It is consumed by value coercion only
// and has no effect on parsing.
type ValueType int

const (
	ValueString       ValueType = iota // ValueString is the raw string value
	ValueObject                        // ValueObject denotes an opaque object identified by the value
	ValueNumber                        // ValueNumber denotes an integer or floating point number
	ValueDate                          // ValueDate denotes a date/time in any common layout
	ValueClass                         // ValueClass denotes a type name; not supported by coercion
	ValueFile                          // ValueFile denotes a file path
	ValueExistingFile                  // ValueExistingFile denotes a path which must exist
	ValueFiles                         // ValueFiles denotes a glob expanded to matching paths
	ValueURL                           // ValueURL denotes an absolute URL
)

// String returns the string representation of a ValueType
func (v ValueType) String() string {
	switch v {
	case ValueString:
		return "string"
	case ValueObject:
		return "object"
	case ValueNumber:
		return "number"
	case ValueDate:
		return "date"
	case ValueClass:
		return "class"
	case ValueFile:
		return "file"
	case ValueExistingFile:
		return "existing-file"
	case ValueFiles:
		return "files"
	case ValueURL:
		return "url"
	}
	return "unknown"
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
