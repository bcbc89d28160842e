// Command goclip parses an argument list against a pattern and prints what was recognised.
//
//	goclip [-d basic|gnu|posix] [-s] [-e prefix] [-v] pattern [args...]
//
// Each matched option is printed on its own line followed by its values; remaining arguments
// are printed last, prefixed with "args:".
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/napalu/goclip"
	"github.com/napalu/goclip/types"
)

func toolOptions() *goclip.Options {
	opts, err := goclip.NewOptionsWith(
		goclip.WithNewOption("d",
			goclip.WithLongName("dialect"),
			goclip.WithArg(),
			goclip.WithArgName("name"),
			goclip.WithDescription("Dialect used to read the arguments: basic, gnu or posix")),
		goclip.WithNewOption("s",
			goclip.WithLongName("stop"),
			goclip.WithDescription("Stop option processing at the first non-option argument")),
		goclip.WithNewOption("e",
			goclip.WithLongName("env"),
			goclip.WithArg(),
			goclip.WithArgName("prefix"),
			goclip.WithDescription("Read option values from environment variables starting with prefix")),
		goclip.WithNewOption("v",
			goclip.WithLongName("verbose"),
			goclip.WithDescription("Show detailed progress")),
		goclip.WithNewOption("h",
			goclip.WithLongName("help"),
			goclip.WithDescription("Show help")),
	)
	if err != nil {
		panic(err)
	}

	return opts
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts := toolOptions()

	// the tool's own flags end at the pattern
	cl, err := goclip.NewPosixParser().Parse(opts, args, true)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cl.HasOption("h") {
		if err := goclip.NewHelpFormatter().UseTerminalWidth().
			PrintHelp(stdout, "goclip", "Parse arguments against a pattern.", opts, "", true); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	rest := cl.RemainingArgs()
	if len(rest) == 0 {
		fmt.Fprintln(stderr, "Error: a pattern must be specified")
		return 1
	}

	level := slog.LevelInfo
	if cl.HasOption("v") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	parser, err := goclip.NewParserWith(
		goclip.WithDialectName(cl.GetValueOrDefault("d", types.Basic.String())),
		goclip.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	schema, err := goclip.ParsePattern(rest[0])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	stop := cl.HasOption("s")
	var result *goclip.CommandLine
	if prefix, ok := cl.GetValue("e"); ok {
		result, err = parser.ParseWithEnv(schema, rest[1:], prefix, stop)
	} else {
		result, err = parser.Parse(schema, rest[1:], stop)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	printResult(stdout, result)

	return 0
}

func printResult(w io.Writer, cl *goclip.CommandLine) {
	for _, o := range cl.Options() {
		if values := o.Values(); len(values) > 0 {
			fmt.Fprintf(w, "-%s %s\n", o.Key(), strings.Join(values, " "))
		} else {
			fmt.Fprintf(w, "-%s\n", o.Key())
		}
	}
	if args := cl.RemainingArgs(); len(args) > 0 {
		fmt.Fprintf(w, "args: %s\n", strings.Join(args, " "))
	}
}
