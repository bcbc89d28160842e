// Package errs holds the sentinel errors returned by goclip and the translation keys behind them.
package errs

// Prefix for all goclip translation keys
const (
	prefixKey = "goclip"
)

// Key prefixes
const (
	ErrorPrefixKey   = prefixKey + ".error"
	MessagePrefixKey = prefixKey + ".msg"
)

// Parse errors
const (
	ErrUnrecognizedOptionKey     = ErrorPrefixKey + ".unrecognized_option"
	ErrMissingArgumentKey        = ErrorPrefixKey + ".missing_argument"
	ErrMissingRequiredOptionKey  = ErrorPrefixKey + ".missing_required_option"
	ErrMissingRequiredOptionsKey = ErrorPrefixKey + ".missing_required_options"
	ErrAlreadySelectedKey        = ErrorPrefixKey + ".already_selected"
	ErrParseCommandStringKey     = ErrorPrefixKey + ".parse_command_string"
)

// Schema errors
const (
	ErrInvalidOptionNameKey = ErrorPrefixKey + ".invalid_option_name"
	ErrEmptyOptionNameKey   = ErrorPrefixKey + ".empty_option_name"
	ErrOptionExistsKey      = ErrorPrefixKey + ".option_exists"
	ErrNoArgsAllowedKey     = ErrorPrefixKey + ".no_args_allowed"
	ErrValueListFullKey     = ErrorPrefixKey + ".value_list_full"
	ErrNilOptionKey         = ErrorPrefixKey + ".nil_option"
	ErrDanglingPatternKey   = ErrorPrefixKey + ".dangling_pattern_code"
	ErrEmptySyntaxKey       = ErrorPrefixKey + ".empty_syntax"
	ErrConfiguringParserKey = ErrorPrefixKey + ".configuring_parser"
	ErrInvalidDialectKey    = ErrorPrefixKey + ".invalid_dialect"
)

// Value coercion errors
const (
	ErrOptionNotFoundKey  = ErrorPrefixKey + ".option_not_found"
	ErrParseNumberKey     = ErrorPrefixKey + ".parse_number"
	ErrParseDateKey       = ErrorPrefixKey + ".parse_date"
	ErrParseURLKey        = ErrorPrefixKey + ".parse_url"
	ErrFileNotFoundKey    = ErrorPrefixKey + ".file_not_found"
	ErrUnsupportedTypeKey = ErrorPrefixKey + ".unsupported_type"
)

// Struct tag errors
const (
	ErrInvalidTagFormatKey = ErrorPrefixKey + ".invalid_tag_format"
	ErrUnsupportedFieldKey = ErrorPrefixKey + ".unsupported_field"
	ErrNotStructPointerKey = ErrorPrefixKey + ".not_struct_pointer"
	ErrBindFieldKey        = ErrorPrefixKey + ".bind_field"
)

// Messages
const (
	MsgUsagePrefixKey   = MessagePrefixKey + ".usage_prefix"
	MsgRemainingArgsKey = MessagePrefixKey + ".remaining_args"
	MsgNoOptionsKey     = MessagePrefixKey + ".no_options"
)
