package goclip

import (
	"bytes"
	"testing"

	"github.com/napalu/goclip/parse"
	"github.com/napalu/goclip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func FuzzParse(f *testing.F) {
	f.Add(uint8(0), false, "-a2こんにちは")
	f.Add(uint8(1), false, "--long")
	f.Add(uint8(2), false, "-vxffile")
	f.Add(uint8(2), true, "-- value")
	f.Add(uint8(1), true, "   --spaces ok   ")
	f.Add(uint8(2), false, "-漢=こんにちは こんにち")
	f.Add(uint8(0), true, "0")
	f.Add(uint8(1), false, "-")
	f.Add(uint8(2), false, "-Dk=v -Dx")
	f.Add(uint8(2), false, "--file=a=b -a -xtra -123.45")

	opts, err := NewOptionsWith(
		WithNewOption("a", WithArg()),
		WithNewOption("x", WithLongName("xtra")),
		WithNewOption("v", WithLongName("verbose")),
		WithNewOption("f", WithLongName("file"), WithArg()),
		WithNewOption("", WithLongName("long"), WithOptionalArg()),
		WithNewOption("", WithLongName("spaces")),
		WithNewOption("D", WithArgs(2), WithValueSeparator()),
		WithNewOption("漢", WithUnlimitedArgs()),
	)
	require.NoError(f, err)

	var help bytes.Buffer
	require.NoError(f, NewHelpFormatter().PrintHelp(&help, "fuzz", "", opts, "", true))
	wantHelp := help.String()

	f.Fuzz(func(t *testing.T, dialect uint8, stop bool, rawArgs string) {
		args, err := parse.Split(rawArgs)
		if err != nil || len(args) == 0 {
			return
		}

		p := NewParser(types.Dialect(dialect % 3))
		cl, err := p.Parse(opts, args, stop)
		if err == nil {
			for _, o := range cl.Options() {
				schemaOpt, ok := opts.Option(o.Key())
				assert.True(t, ok, "matched option %s not in schema", o.Key())
				if ok {
					assert.Equal(t, schemaOpt.ID(), o.ID())
				}
				if o.ArgCount() > 0 {
					assert.LessOrEqual(t, len(o.Values()), o.ArgCount())
				}
			}
		}

		for _, o := range opts.HelpOptions() {
			assert.Empty(t, o.Values(), "schema option %s holds values", o.Key())
		}

		var b bytes.Buffer
		require.NoError(t, NewHelpFormatter().PrintHelp(&b, "fuzz", "", opts, "", true))
		assert.Equal(t, wantHelp, b.String())
	})
}
