package goclip

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/napalu/goclip/errs"
	"github.com/napalu/goclip/i18n"
	"github.com/napalu/goclip/util"
	"golang.org/x/text/cases"
)

// Help layout defaults
const (
	DefaultWidth         = 74
	DefaultLeftPadding   = 1
	DefaultDescPadding   = 3
	DefaultOptPrefix     = "-"
	DefaultLongOptPrefix = "--"
)

// HelpFormatter renders usage lines and option tables for an Options schema
type HelpFormatter struct {
	Width         int
	LeftPadding   int
	DescPadding   int
	SyntaxPrefix  string
	NewLine       string
	OptPrefix     string
	LongOptPrefix string
	ArgName       string
}

// NewHelpFormatter creates a HelpFormatter with the default layout. The syntax prefix
// ("usage: ") is taken from the default message bundle.
func NewHelpFormatter() *HelpFormatter {
	return &HelpFormatter{
		Width:         DefaultWidth,
		LeftPadding:   DefaultLeftPadding,
		DescPadding:   DefaultDescPadding,
		SyntaxPrefix:  i18n.Default().T(errs.MsgUsagePrefixKey),
		NewLine:       "\n",
		OptPrefix:     DefaultOptPrefix,
		LongOptPrefix: DefaultLongOptPrefix,
		ArgName:       DefaultArgName,
	}
}

// UseTerminalWidth sets Width to the width of the terminal on stdout, if there is one
func (f *HelpFormatter) UseTerminalWidth() *HelpFormatter {
	f.Width = util.TerminalWidth(f.Width)
	return f
}

// PrintHelp writes the usage line, the header, the option table and the footer to w. With
// autoUsage the usage line lists the options of opts after cmdLineSyntax.
func (f *HelpFormatter) PrintHelp(w io.Writer, cmdLineSyntax, header string, opts *Options, footer string, autoUsage bool) error {
	if cmdLineSyntax == "" {
		return errs.ErrEmptySyntax
	}

	var err error
	if autoUsage {
		err = f.PrintUsage(w, cmdLineSyntax, opts)
	} else {
		err = f.PrintSyntax(w, cmdLineSyntax)
	}
	if err != nil {
		return err
	}

	if strings.TrimSpace(header) != "" {
		if err = f.PrintWrapped(w, 0, header); err != nil {
			return err
		}
	}
	if err = f.PrintOptions(w, opts); err != nil {
		return err
	}
	if strings.TrimSpace(footer) != "" {
		return f.PrintWrapped(w, 0, footer)
	}

	return nil
}

// PrintUsage writes "usage: app" followed by every option of opts. Options outside a group
// are bracketed unless required; a group lists its members separated by " | " and is
// bracketed unless required.
func (f *HelpFormatter) PrintUsage(w io.Writer, app string, opts *Options) error {
	var sb strings.Builder
	sb.WriteString(f.SyntaxPrefix)
	sb.WriteString(app)

	var (
		items []string
		seen  = map[*OptionGroup]bool{}
	)
	for _, o := range sortedOptions(opts.HelpOptions()) {
		if g, ok := opts.Group(o); ok {
			if !seen[g] {
				seen[g] = true
				items = append(items, usageGroup(g))
			}
			continue
		}
		items = append(items, usageOption(o, o.IsRequired()))
	}
	if len(items) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(items, " "))
	}

	text := sb.String()

	return f.PrintWrapped(w, strings.IndexByte(text, ' ')+1, text)
}

func usageGroup(g *OptionGroup) string {
	members := sortedOptions(g.Options())
	parts := make([]string, 0, len(members))
	for _, o := range members {
		parts = append(parts, usageOption(o, true))
	}

	s := strings.Join(parts, " | ")
	if !g.IsRequired() {
		s = "[" + s + "]"
	}

	return s
}

func usageOption(o *Option, required bool) string {
	var s string
	if o.Short() != "" {
		s = "-" + o.Short()
	} else {
		s = "--" + o.Long()
	}
	if o.HasArg() && o.ArgName() != "" {
		s += " <" + o.ArgName() + ">"
	}
	if !required {
		s = "[" + s + "]"
	}

	return s
}

// PrintSyntax writes cmdLineSyntax after the syntax prefix. Continuation lines are indented
// to the first argument of the syntax.
func (f *HelpFormatter) PrintSyntax(w io.Writer, cmdLineSyntax string) error {
	argPos := strings.IndexByte(cmdLineSyntax, ' ') + 1
	return f.PrintWrapped(w, len(f.SyntaxPrefix)+argPos, f.SyntaxPrefix+cmdLineSyntax)
}

// PrintOptions writes the option table followed by a new line
func (f *HelpFormatter) PrintOptions(w io.Writer, opts *Options) error {
	_, err := fmt.Fprint(w, f.RenderOptions(f.Width, opts), f.NewLine)
	return err
}

// PrintWrapped writes text wrapped at Width followed by a new line
func (f *HelpFormatter) PrintWrapped(w io.Writer, nextLineTabStop int, text string) error {
	_, err := fmt.Fprint(w, f.RenderWrappedText(f.Width, nextLineTabStop, text), f.NewLine)
	return err
}

// RenderOptions renders one entry per option, sorted by key, as
//
//	-a,--aaa <arg>   description
//
// with descriptions aligned and wrapped at width
func (f *HelpFormatter) RenderOptions(width int, opts *Options) string {
	lpad := f.CreatePadding(f.LeftPadding)
	dpad := f.CreatePadding(f.DescPadding)

	optList := sortedOptions(opts.HelpOptions())
	prefixes := make([]string, 0, len(optList))
	maxLen := 0
	for _, o := range optList {
		var sb strings.Builder
		sb.WriteString(lpad)
		if o.Short() == "" {
			sb.WriteString("   ")
			sb.WriteString(f.LongOptPrefix)
			sb.WriteString(o.Long())
		} else {
			sb.WriteString(f.OptPrefix)
			sb.WriteString(o.Short())
			if o.HasLongName() {
				sb.WriteString(",")
				sb.WriteString(f.LongOptPrefix)
				sb.WriteString(o.Long())
			}
		}
		if o.HasArg() {
			if o.ArgName() != "" {
				sb.WriteString(" <")
				sb.WriteString(o.ArgName())
				sb.WriteString(">")
			} else {
				sb.WriteString(" ")
			}
		}
		prefixes = append(prefixes, sb.String())
		maxLen = util.Max(maxLen, sb.Len())
	}

	nextLineTabStop := maxLen + f.DescPadding
	var sb strings.Builder
	for i, o := range optList {
		line := prefixes[i] + f.CreatePadding(maxLen-len(prefixes[i])) + dpad + o.Description()
		sb.WriteString(f.RenderWrappedText(width, nextLineTabStop, line))
		if i < len(optList)-1 {
			sb.WriteString(f.NewLine)
		}
	}

	return sb.String()
}

// RenderWrappedText wraps text at width. Every line after the first is indented by
// nextLineTabStop spaces.
func (f *HelpFormatter) RenderWrappedText(width, nextLineTabStop int, text string) string {
	var sb strings.Builder
	pos := f.FindWrapPos(text, width, 0)
	if pos == -1 {
		sb.WriteString(f.RTrim(text))
		return sb.String()
	}
	sb.WriteString(f.RTrim(text[:pos]))
	sb.WriteString(f.NewLine)

	if nextLineTabStop >= width {
		nextLineTabStop = 1
	}
	padding := f.CreatePadding(nextLineTabStop)
	for {
		text = padding + strings.TrimSpace(text[pos:])
		pos = f.FindWrapPos(text, width, nextLineTabStop)
		if pos == -1 {
			sb.WriteString(text)
			return sb.String()
		}
		sb.WriteString(f.RTrim(text[:pos]))
		sb.WriteString(f.NewLine)
	}
}

// FindWrapPos returns the position at which text should be wrapped for a line of width
// starting at startPos, or -1 when the rest of text fits
func (f *HelpFormatter) FindWrapPos(text string, width, startPos int) int {
	if pos := indexByteFrom(text, '\n', startPos); pos != -1 && pos <= width {
		return pos + 1
	}
	if pos := indexByteFrom(text, '\t', startPos); pos != -1 && pos <= width {
		return pos + 1
	}
	if startPos+width >= len(text) {
		return -1
	}

	pos := startPos + width
	for pos >= startPos && !isWrapChar(text[pos]) {
		pos--
	}
	if pos > startPos {
		return pos
	}

	pos = startPos + width
	for pos < len(text) && !isWrapChar(text[pos]) {
		pos++
	}
	if pos == len(text) {
		return -1
	}

	return pos
}

// CreatePadding returns n spaces
func (f *HelpFormatter) CreatePadding(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(" ", n)
}

// RTrim removes trailing white space
func (f *HelpFormatter) RTrim(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func indexByteFrom(s string, c byte, from int) int {
	if from < 0 || from >= len(s) {
		return -1
	}
	if i := strings.IndexByte(s[from:], c); i != -1 {
		return from + i
	}

	return -1
}

func isWrapChar(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r'
}

// sortedOptions orders options by key, ignoring case
func sortedOptions(options []*Option) []*Option {
	fold := cases.Fold()
	sorted := slices.Clone(options)
	slices.SortStableFunc(sorted, func(a, b *Option) int {
		return strings.Compare(fold.String(a.Key()), fold.String(b.Key()))
	})

	return sorted
}
