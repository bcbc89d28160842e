package goclip

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvProperties(t *testing.T) {
	opts, err := NewOptionsWith(
		WithNewOption("b", WithLongName("bfile"), WithArg()),
		WithNewOption("v", WithLongName("verbose")),
		WithNewOption("", WithLongName("maxRetries"), WithArg()),
		WithNewOption("q"),
	)
	require.NoError(t, err)

	t.Setenv("MY_APP_BFILE", "from-env")
	t.Setenv("MY_APP_VERBOSE", "true")
	t.Setenv("MY_APP_MAX_RETRIES", "3")
	t.Setenv("MY_APP_Q", "yes")

	props := EnvProperties(opts, "myApp")
	assert.Equal(t, Properties{
		"b":          "from-env",
		"v":          "true",
		"maxRetries": "3",
		"q":          "yes",
	}, props)
}

func TestEnvProperties_ShortNameFallback(t *testing.T) {
	opts, err := NewOptionsWith(WithNewOption("x", WithLongName("extra"), WithArg()))
	require.NoError(t, err)

	t.Setenv("X", "short")
	assert.Equal(t, Properties{"x": "short"}, EnvProperties(opts, ""))

	t.Setenv("EXTRA", "long")
	assert.Equal(t, Properties{"x": "long"}, EnvProperties(opts, ""))
}

func TestParser_ParseWithEnv(t *testing.T) {
	opts := requiredOptions(t)
	t.Setenv("TOOL_BFILE", "env.txt")
	t.Setenv("TOOL_ENABLE_A", "no")

	cl, err := NewPosixParser().ParseWithEnv(opts, []string{"rest"}, "tool", false)
	require.NoError(t, err)
	v, _ := cl.GetValue("bfile")
	assert.Equal(t, "env.txt", v)
	assert.False(t, cl.HasOption("a"))
	assert.Equal(t, []string{"rest"}, cl.RemainingArgs())

	cl, err = NewPosixParser().ParseWithEnv(opts, []string{"-b", "cli.txt"}, "tool", false)
	require.NoError(t, err)
	v, _ = cl.GetValue("b")
	assert.Equal(t, "cli.txt", v)
}

func TestParser_WithEnvNameConverter(t *testing.T) {
	p, err := NewParserWith(WithEnvNameConverter(strings.ToLower))
	require.NoError(t, err)

	t.Setenv("tool_enable-a", "1")
	cl, err := p.ParseWithEnv(requiredOptions(t), []string{"-b", "x"}, "TOOL", false)
	require.NoError(t, err)
	assert.True(t, cl.HasOption("enable-a"))
}
