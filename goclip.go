// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package goclip provides schema driven command-line parsing.
//
// A schema (Options) lists the options a program accepts. Each Option has a short name, a
// long name or both, and takes no argument, a fixed number of arguments or any number of
// them. Options may be grouped in mutually exclusive OptionGroups.
//
// A Parser reads an argument list in one of three dialects:
//
//	Basic - every argument is matched as it is
//	Gnu   - a known option may be glued to its value: -Dkey=value
//	Posix - short options may be bundled (-abc) and long options carry --name=value
//
// The result is a CommandLine holding the matched options with their values and the
// arguments no option consumed. Parsing never modifies the schema.
package goclip

import (
	"io"
	"log/slog"

	"github.com/napalu/goclip/parse"
	"github.com/napalu/goclip/types"
)

// NewParser creates a parser for dialect
func NewParser(dialect types.Dialect) *Parser {
	return &Parser{
		dialect:          dialect,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		envNameConverter: DefaultEnvNameConverter,
	}
}

// NewBasicParser creates a parser which matches every argument as it is
func NewBasicParser() *Parser {
	return NewParser(types.Basic)
}

// NewGnuParser creates a parser which splits known options from glued values
func NewGnuParser() *Parser {
	return NewParser(types.Gnu)
}

// NewPosixParser creates a parser which bursts bundled short options
func NewPosixParser() *Parser {
	return NewParser(types.Posix)
}

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
//	parser, err := NewParserWith(
//		WithDialect(types.Posix),
//		WithLogger(slog.Default()))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	p := NewParser(types.Basic)

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Dialect returns the dialect the parser reads
func (p *Parser) Dialect() types.Dialect {
	return p.dialect
}

// Parse matches args against opts. When stopAtNonOption is true, the first argument which is
// not a known option ends option processing and it and every argument after it are kept as
// remaining arguments; a lone "-" also ends option processing but is dropped.
//
// The values of an option end at the next known option or at "--": "-f a -- b" gives f the
// value a and leaves b as a remaining argument. "--" is never taken as a value.
func (p *Parser) Parse(opts *Options, args []string, stopAtNonOption bool) (*CommandLine, error) {
	return p.parse(opts, args, nil, stopAtNonOption)
}

// ParseWithProperties is like Parse, then fills options not given in args from props.
// An option or group filled from props counts as given: it satisfies its required check.
// A switch is only turned on when its whole property value is "yes", "true" (any case) or
// "1"; values such as "10" or "trueish" leave it off.
func (p *Parser) ParseWithProperties(opts *Options, args []string, props Properties, stopAtNonOption bool) (*CommandLine, error) {
	return p.parse(opts, args, props, stopAtNonOption)
}

// ParseString splits commandLine the way a shell would and parses the result
func (p *Parser) ParseString(opts *Options, commandLine string, stopAtNonOption bool) (*CommandLine, error) {
	args, err := parse.Split(commandLine)
	if err != nil {
		return nil, err
	}

	return p.parse(opts, args, nil, stopAtNonOption)
}

// ParseWithEnv is like Parse, then fills options not given in args from environment
// variables named after prefix and the option (see EnvProperties)
func (p *Parser) ParseWithEnv(opts *Options, args []string, prefix string, stopAtNonOption bool) (*CommandLine, error) {
	return p.parse(opts, args, p.envProperties(opts, prefix), stopAtNonOption)
}

// ParseStruct builds a schema from the goclip tags of the struct v points to, parses args
// against it and binds the result into v
func (p *Parser) ParseStruct(v any, args []string, stopAtNonOption bool) (*CommandLine, error) {
	opts, err := NewOptionsFromStruct(v)
	if err != nil {
		return nil, err
	}

	cl, err := p.parse(opts, args, nil, stopAtNonOption)
	if err != nil {
		return nil, err
	}

	return cl, cl.Bind(v)
}

// Flatten returns args as the parser's dialect rewrites them before matching
func (p *Parser) Flatten(opts *Options, args []string, stopAtNonOption bool) []string {
	if opts == nil {
		opts = NewOptions()
	}

	return parse.Flatten(p.dialect, opts, args, stopAtNonOption)
}
