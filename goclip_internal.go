package goclip

import (
	"slices"
	"strings"

	"github.com/napalu/goclip/errs"
	"github.com/napalu/goclip/parse"
	"github.com/napalu/goclip/util"
	wkmap "github.com/wk8/go-ordered-map"
)

// parseRun holds the state of one parse. The schema is only read; selections and the set of
// unsatisfied requirements live here.
type parseRun struct {
	p          *Parser
	opts       *Options
	stop       bool
	cmd        *CommandLine
	required   *wkmap.OrderedMap
	groups     map[*OptionGroup]*OptionGroup
	eatTheRest bool
}

func (p *Parser) newRun(opts *Options, stop bool) *parseRun {
	r := &parseRun{
		p:        p,
		opts:     opts,
		stop:     stop,
		cmd:      newCommandLine(),
		required: wkmap.New(),
		groups:   map[*OptionGroup]*OptionGroup{},
	}
	for _, req := range opts.requirements() {
		if req.group != nil {
			r.required.Set(req.group, req.String())
		} else {
			r.required.Set(req.option.ID(), req.String())
		}
	}

	return r
}

func (p *Parser) parse(opts *Options, args []string, props Properties, stop bool) (*CommandLine, error) {
	if opts == nil {
		opts = NewOptions()
	}

	r := p.newRun(opts, stop)
	tokens := parse.Flatten(p.dialect, opts, args, stop)
	p.logger.Debug("flattened arguments", "dialect", p.dialect.String(), "tokens", tokens)

	state := parse.NewState(tokens)
	for state.Advance() {
		if err := r.processToken(state); err != nil {
			return nil, err
		}
		if r.eatTheRest {
			p.logger.Debug("stopped option processing", "pos", state.Pos())
			r.gobble(state)
			break
		}
	}

	r.processProperties(props)
	if err := r.checkRequired(); err != nil {
		return nil, err
	}

	return r.cmd, nil
}

func (r *parseRun) processToken(state parse.State) error {
	tok := state.CurrentArg()
	switch {
	case tok == "--":
		r.eatTheRest = true
	case tok == "-":
		if r.stop {
			r.eatTheRest = true
		} else {
			r.cmd.addArg(tok)
		}
	case strings.HasPrefix(tok, "-"):
		if r.stop && !r.opts.HasOption(tok) {
			r.cmd.addArg(tok)
			r.eatTheRest = true
			return nil
		}
		return r.processOption(tok, state)
	default:
		r.cmd.addArg(tok)
		r.eatTheRest = r.stop
	}

	return nil
}

// gobble keeps every token after the cursor as a remaining argument, dropping "--"
func (r *parseRun) gobble(state parse.State) {
	for state.Advance() {
		if tok := state.CurrentArg(); tok != "--" {
			r.cmd.addArg(tok)
		}
	}
}

func (r *parseRun) processOption(tok string, state parse.State) error {
	opt, ok := r.opts.Option(tok)
	if !ok {
		return errs.ErrUnrecognizedOption.WithArgs(tok)
	}
	if err := r.satisfy(opt); err != nil {
		return err
	}

	m := r.cmd.matched(opt)
	r.p.logger.Debug("matched option", "token", tok, "option", m.Key())
	if m.HasArg() {
		return r.processArgs(m, state)
	}

	return nil
}

// processArgs consumes the values following an option. A token naming a known option, or
// "--", ends the values and is left for the main loop.
func (r *parseRun) processArgs(m *Option, state parse.State) error {
	for state.Advance() {
		tok := state.CurrentArg()
		if tok == "--" || (strings.HasPrefix(tok, "-") && r.opts.HasOption(tok)) {
			state.Retreat()
			break
		}
		if err := m.addValueForProcessing(util.StripLeadingAndTrailingQuotes(tok)); err != nil {
			state.Retreat()
			break
		}
	}

	if len(m.Values()) == 0 && !m.HasOptionalArg() {
		return errs.ErrMissingArgument.WithArgs(m.Key())
	}

	return nil
}

// satisfy removes opt and its group from the unsatisfied requirements and selects opt
// within its group
func (r *parseRun) satisfy(opt *Option) error {
	r.required.Delete(opt.ID())

	g, ok := r.opts.Group(opt)
	if !ok {
		return nil
	}
	if err := r.group(g).Select(opt); err != nil {
		return err
	}
	r.required.Delete(g)

	return nil
}

// group returns this run's copy of g, holding the run's selection
func (r *parseRun) group(g *OptionGroup) *OptionGroup {
	sel, ok := r.groups[g]
	if !ok {
		sel = g.clone()
		r.groups[g] = sel
	}

	return sel
}

// processProperties fills options which were not given on the command line. Keys are
// applied in sorted order.
func (r *parseRun) processProperties(props Properties) {
	if len(props) == 0 {
		return
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		opt, ok := r.opts.Option(k)
		if !ok {
			r.p.logger.Debug("skipped property", "key", k, "reason", "unknown option")
			continue
		}
		if r.cmd.options.Has(opt.ID()) {
			continue
		}
		if g, ok := r.opts.Group(opt); ok && r.group(g).Selected() != "" {
			r.p.logger.Debug("skipped property", "key", k, "reason", "group already selected")
			continue
		}

		value := props[k]
		m := opt.clone()
		if m.HasArg() {
			if err := m.addValueForProcessing(value); err != nil {
				r.p.logger.Debug("ignored property value", "key", k, "error", err)
			}
		} else if !isTruthy(value) {
			r.p.logger.Debug("skipped property", "key", k, "reason", "not true")
			continue
		}

		if err := r.satisfy(m); err != nil {
			continue
		}
		r.cmd.attach(m)
	}
}

func (r *parseRun) checkRequired() error {
	if r.required.Len() == 0 {
		return nil
	}

	missing := make([]string, 0, r.required.Len())
	for pair := r.required.Oldest(); pair != nil; pair = pair.Next() {
		missing = append(missing, pair.Value.(string))
	}
	if len(missing) == 1 {
		return errs.ErrMissingRequiredOption.WithArgs(missing[0])
	}

	return errs.ErrMissingRequiredOptions.WithArgs(strings.Join(missing, ", "))
}

func isTruthy(value string) bool {
	return strings.EqualFold(value, "yes") ||
		strings.EqualFold(value, "true") ||
		value == "1"
}
