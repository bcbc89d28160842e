package goclip

import (
	"log/slog"

	"github.com/napalu/goclip/errs"
	"github.com/napalu/goclip/types"
)

// ConfigureParserFunc configures a Parser created by NewParserWith
type ConfigureParserFunc func(p *Parser, err *error)

// WithDialect sets the dialect the parser reads
func WithDialect(dialect types.Dialect) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		switch dialect {
		case types.Basic, types.Gnu, types.Posix:
			p.dialect = dialect
		default:
			*err = errs.ErrInvalidDialect.WithArgs(dialect.String())
		}
	}
}

// WithDialectName sets the dialect by name: basic, gnu or posix
func WithDialectName(name string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		dialect, ok := types.ParseDialect(name)
		if !ok {
			*err = errs.ErrInvalidDialect.WithArgs(name)
			return
		}
		p.dialect = dialect
	}
}

// WithLogger sets the logger receiving the parser's debug records
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if logger == nil {
			*err = errs.ErrConfiguringParser
			return
		}
		p.logger = logger
	}
}

// WithEnvNameConverter allows setting a custom name converter for environment variable names
func WithEnvNameConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if converter == nil {
			*err = errs.ErrConfiguringParser
			return
		}
		p.envNameConverter = converter
	}
}
