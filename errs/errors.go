package errs

import (
	"github.com/napalu/goclip/i18n"
)

// Parse errors
var (
	ErrUnrecognizedOption    = i18n.NewError(ErrUnrecognizedOptionKey)
	ErrMissingArgument       = i18n.NewError(ErrMissingArgumentKey)
	ErrMissingRequiredOption = i18n.NewError(ErrMissingRequiredOptionKey)
	ErrAlreadySelected       = i18n.NewError(ErrAlreadySelectedKey)
	ErrParseCommandString    = i18n.NewError(ErrParseCommandStringKey)
)

// ErrMissingRequiredOptions is the plural form of ErrMissingRequiredOption; errors.Is matches either.
var ErrMissingRequiredOptions = i18n.NewErrorVariant(ErrMissingRequiredOption, ErrMissingRequiredOptionsKey)

// Schema errors
var (
	ErrInvalidOptionName   = i18n.NewError(ErrInvalidOptionNameKey)
	ErrEmptyOptionName     = i18n.NewError(ErrEmptyOptionNameKey)
	ErrOptionExists        = i18n.NewError(ErrOptionExistsKey)
	ErrNoArgsAllowed       = i18n.NewError(ErrNoArgsAllowedKey)
	ErrValueListFull       = i18n.NewError(ErrValueListFullKey)
	ErrNilOption           = i18n.NewError(ErrNilOptionKey)
	ErrDanglingPatternCode = i18n.NewError(ErrDanglingPatternKey)
	ErrEmptySyntax         = i18n.NewError(ErrEmptySyntaxKey)
	ErrConfiguringParser   = i18n.NewError(ErrConfiguringParserKey)
	ErrInvalidDialect      = i18n.NewError(ErrInvalidDialectKey)
)

// Value coercion errors
var (
	ErrOptionNotFound  = i18n.NewError(ErrOptionNotFoundKey)
	ErrParseNumber     = i18n.NewError(ErrParseNumberKey)
	ErrParseDate       = i18n.NewError(ErrParseDateKey)
	ErrParseURL        = i18n.NewError(ErrParseURLKey)
	ErrFileNotFound    = i18n.NewError(ErrFileNotFoundKey)
	ErrUnsupportedType = i18n.NewError(ErrUnsupportedTypeKey)
)

// Struct tag errors
var (
	ErrInvalidTagFormat = i18n.NewError(ErrInvalidTagFormatKey)
	ErrUnsupportedField = i18n.NewError(ErrUnsupportedFieldKey)
	ErrNotStructPointer = i18n.NewError(ErrNotStructPointerKey)
	ErrBindField        = i18n.NewError(ErrBindFieldKey)
)
