package goclip

import (
	"bytes"
	"strings"
	"testing"

	"github.com/napalu/goclip/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpFormatter_FindWrapPos(t *testing.T) {
	hf := NewHelpFormatter()

	assert.Equal(t, 7, hf.FindWrapPos("This is a test.", 8, 0))
	assert.Equal(t, -1, hf.FindWrapPos("This is a test.", 8, 8))
	assert.Equal(t, 4, hf.FindWrapPos("aaaa aa", 3, 0))
	assert.Equal(t, 3, hf.FindWrapPos("ab\ncd", 10, 0))
	assert.Equal(t, -1, hf.FindWrapPos("aaaaaaaaaa", 3, 0))
}

func TestHelpFormatter_RenderWrappedText(t *testing.T) {
	hf := NewHelpFormatter()
	text := "This is a test."

	assert.Equal(t, "This is a\ntest.", hf.RenderWrappedText(12, 0, text))
	assert.Equal(t, "This is a\n    test.", hf.RenderWrappedText(12, 4, text))

	text = "aaaa aaaa aaaa\naaaaaa\naaaaa"
	assert.Equal(t, text, hf.RenderWrappedText(16, 0, text))
	assert.Equal(t, "aaaa aaaa aaaa\n    aaaaaa\n    aaaaa", hf.RenderWrappedText(16, 4, text))
}

func TestHelpFormatter_RenderOptions(t *testing.T) {
	hf := NewHelpFormatter()
	lpad := hf.CreatePadding(hf.LeftPadding)
	dpad := hf.CreatePadding(hf.DescPadding)

	opts := NewOptions()
	require.NoError(t, opts.Add("a", "", false, "aaaa aaaa aaaa aaaa aaaa"))
	assert.Equal(t, lpad+"-a"+dpad+"aaaa aaaa aaaa aaaa aaaa", hf.RenderOptions(60, opts), "simple non-wrapped option")

	nextLineTabStop := hf.LeftPadding + hf.DescPadding + len("-a")
	assert.Equal(t,
		lpad+"-a"+dpad+"aaaa aaaa aaaa\n"+hf.CreatePadding(nextLineTabStop)+"aaaa aaaa",
		hf.RenderOptions(nextLineTabStop+17, opts), "simple wrapped option")

	opts = NewOptions()
	require.NoError(t, opts.Add("a", "aaa", false, "dddd dddd dddd dddd"))
	assert.Equal(t, lpad+"-a,--aaa"+dpad+"dddd dddd dddd dddd", hf.RenderOptions(60, opts), "long non-wrapped option")

	nextLineTabStop = hf.LeftPadding + hf.DescPadding + len("-a,--aaa")
	assert.Equal(t,
		lpad+"-a,--aaa"+dpad+"dddd dddd\n"+hf.CreatePadding(nextLineTabStop)+"dddd dddd",
		hf.RenderOptions(25, opts), "long wrapped option")

	require.NoError(t, opts.Add("b", "", false, "feeee eeee eeee eeee"))
	assert.Equal(t,
		lpad+"-a,--aaa"+dpad+"dddd dddd\n"+
			hf.CreatePadding(nextLineTabStop)+"dddd dddd\n"+
			lpad+"-b      "+dpad+"feeee eeee\n"+
			hf.CreatePadding(nextLineTabStop)+"eeee eeee",
		hf.RenderOptions(25, opts), "multiple wrapped options")
}

func TestHelpFormatter_RenderOptionsArgsAndLongOnly(t *testing.T) {
	hf := NewHelpFormatter()
	opts, err := NewOptionsWith(
		WithNewOption("f", WithLongName("file"), WithArg(), WithArgName("path"), WithDescription("input")),
		WithNewOption("", WithLongName("dry-run"), WithDescription("do nothing")),
	)
	require.NoError(t, err)

	assert.Equal(t,
		"    --dry-run       do nothing\n"+
			" -f,--file <path>   input",
		hf.RenderOptions(80, opts))
}

func TestHelpFormatter_PrintUsage(t *testing.T) {
	hf := NewHelpFormatter()
	opts := NewOptions()
	require.NoError(t, opts.Add("a", "", false, "first"))
	require.NoError(t, opts.Add("b", "", false, "second"))
	require.NoError(t, opts.Add("c", "", false, "third"))

	var buf bytes.Buffer
	hf.Width = 80
	require.NoError(t, hf.PrintUsage(&buf, "app", opts))
	assert.Equal(t, "usage: app [-a] [-b] [-c]\n", buf.String())
}

func TestHelpFormatter_PrintUsageGroupsAndRequired(t *testing.T) {
	hf := NewHelpFormatter()
	g, _, _ := newTestGroup(t, false)
	x, err := NewOption("x", "", false, "")
	require.NoError(t, err)
	y, err := NewOption("y", "", false, "")
	require.NoError(t, err)
	opts, err := NewOptionsWith(
		WithGroup(g),
		WithRequiredGroup(x, y),
		WithNewOption("o", WithArg(), WithArgName("out"), SetRequired(true)),
		WithNewOption("", WithLongName("Verbose")),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, hf.PrintUsage(&buf, "app", opts))
	assert.Equal(t, "usage: app [-d | -f] -o <out> [--Verbose] -x | -y\n", buf.String())
}

func TestHelpFormatter_PrintHelp(t *testing.T) {
	hf := NewHelpFormatter()
	opts := gnuOptions(t)

	var buf bytes.Buffer
	require.NoError(t, hf.PrintHelp(&buf, "app [options] file", "header text", opts, "footer text", false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "usage: app [options] file", lines[0])
	assert.Equal(t, "header text", lines[1])
	assert.Equal(t, " -a,--enable-a      turn [a] on or off", lines[2])
	assert.Equal(t, " -b,--bfile <arg>   set the value of [b]", lines[3])
	assert.Equal(t, " -c,--copt          turn [c] on or off", lines[4])
	assert.Equal(t, "footer text", lines[5])

	buf.Reset()
	require.NoError(t, hf.PrintHelp(&buf, "app", "", opts, "", true))
	assert.True(t, strings.HasPrefix(buf.String(), "usage: app [-a] [-b <arg>] [-c]\n"), buf.String())

	assert.ErrorIs(t, hf.PrintHelp(&buf, "", "", opts, "", false), errs.ErrEmptySyntax)
}

func TestHelpFormatter_CreatePaddingAndRTrim(t *testing.T) {
	hf := NewHelpFormatter()

	assert.Equal(t, "   ", hf.CreatePadding(3))
	assert.Equal(t, "", hf.CreatePadding(-1))
	assert.Equal(t, "  abc", hf.RTrim("  abc \t\n"))
	assert.Equal(t, "", hf.RTrim(""))
}
