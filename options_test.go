package goclip

import (
	"testing"

	"github.com/napalu/goclip/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_AddOption(t *testing.T) {
	opts := NewOptions()
	require.NoError(t, opts.Add("a", "all", false, "toggle -a"))
	require.NoError(t, opts.Add("c", "c", false, "short and long share a name"))

	a, ok := opts.Option("a")
	require.True(t, ok)
	byLong, ok := opts.Option("--all")
	require.True(t, ok)
	assert.Same(t, a, byLong)

	assert.ErrorIs(t, opts.Add("a", "", false, ""), errs.ErrOptionExists)
	assert.ErrorIs(t, opts.Add("x", "all", false, ""), errs.ErrOptionExists)
	assert.ErrorIs(t, opts.AddOption(nil), errs.ErrNilOption)
	assert.ErrorIs(t, opts.Add("-", "", false, ""), errs.ErrInvalidOptionName)
	assert.Equal(t, 2, opts.Len())
}

func TestOptions_Option(t *testing.T) {
	opts := NewOptions()
	require.NoError(t, opts.Add("b", "bfile", true, "set the value of [b]"))
	require.NoError(t, opts.Add("", "export", false, ""))

	tests := []struct {
		name   string
		lookup string
		want   string
		found  bool
	}{
		{name: "short", lookup: "b", want: "b", found: true},
		{name: "short with hyphen", lookup: "-b", want: "b", found: true},
		{name: "long", lookup: "bfile", want: "b", found: true},
		{name: "long with hyphens", lookup: "--bfile", want: "b", found: true},
		{name: "long only", lookup: "--export", want: "export", found: true},
		{name: "case sensitive", lookup: "B", found: false},
		{name: "no prefix matching", lookup: "--bfi", found: false},
		{name: "lone hyphen", lookup: "-", found: false},
		{name: "double hyphen", lookup: "--", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, ok := opts.Option(tt.lookup)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.found, opts.HasOption(tt.lookup))
			if ok {
				assert.Equal(t, tt.want, o.Key())
			}
		})
	}

	assert.True(t, opts.OptionHasArg("-b"))
	assert.False(t, opts.OptionHasArg("--export"))
	assert.False(t, opts.OptionHasArg("-z"))
}

func TestOptions_AddGroup(t *testing.T) {
	opts := NewOptions()
	g, file, dir := newTestGroup(t, true)
	require.NoError(t, opts.AddGroup(g))

	got, ok := opts.Group(file)
	assert.True(t, ok)
	assert.Same(t, g, got)
	got, ok = opts.Group(dir)
	assert.True(t, ok)
	assert.Same(t, g, got)
	assert.True(t, opts.HasOption("--directory"))
	assert.Equal(t, []*OptionGroup{g}, opts.Groups())
	assert.Equal(t, []string{"[-f file to process, -d directory to process]"}, opts.Required())

	other, _, _ := newTestGroup(t, false)
	assert.ErrorIs(t, opts.AddGroup(other), errs.ErrOptionExists)
	assert.Len(t, opts.Groups(), 1)
}

func TestOptions_AddGroupWithRegisteredMember(t *testing.T) {
	opts := NewOptions()
	s, err := NewOptionWith("s", WithLongName("section"), SetRequired(true))
	require.NoError(t, err)
	require.NoError(t, opts.AddOption(s))
	assert.Equal(t, []string{"s"}, opts.Required())

	c, err := NewOption("c", "chapter", false, "")
	require.NoError(t, err)
	g, err := NewOptionGroupWith(false, s, c)
	require.NoError(t, err)
	require.NoError(t, opts.AddGroup(g))

	assert.Empty(t, opts.Required())
	assert.Equal(t, 2, opts.Len())
}

func TestOptions_AddGroupIsAllOrNothing(t *testing.T) {
	opts := NewOptions()
	require.NoError(t, opts.Add("d", "", false, "taken"))

	g, _, _ := newTestGroup(t, false)
	assert.ErrorIs(t, opts.AddGroup(g), errs.ErrOptionExists)
	assert.False(t, opts.HasOption("f"))
	assert.Empty(t, opts.Groups())
}

func TestOptions_Required(t *testing.T) {
	opts, err := NewOptionsWith(
		WithNewOption("a", WithLongName("enable-a")),
		WithNewOption("b", WithLongName("bfile"), WithArg(), SetRequired(true)),
		WithNewOption("", WithLongName("config"), SetRequired(true)),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "config"}, opts.Required())
}

func TestOptions_HelpOptions(t *testing.T) {
	g, file, dir := newTestGroup(t, false)
	r, err := NewOption("r", "revision", false, "revision number")
	require.NoError(t, err)

	opts, err := NewOptionsWith(WithOption(r), WithGroup(g))
	require.NoError(t, err)

	assert.Equal(t, []*Option{r, file, dir}, opts.HelpOptions())
}

func TestOptions_NewOptionsWithError(t *testing.T) {
	a, err := NewOption("a", "", false, "")
	require.NoError(t, err)

	opts, err := NewOptionsWith(WithOption(a), WithOption(a))
	assert.ErrorIs(t, err, errs.ErrOptionExists)
	assert.Nil(t, opts)

	_, err = NewOptionsWith(WithNewOption("bad name"))
	assert.ErrorIs(t, err, errs.ErrInvalidOptionName)
}

func TestOptions_WithRequiredGroup(t *testing.T) {
	x, err := NewOption("x", "", false, "")
	require.NoError(t, err)
	y, err := NewOption("y", "", false, "")
	require.NoError(t, err)

	opts, err := NewOptionsWith(WithRequiredGroup(x, y))
	require.NoError(t, err)
	require.Len(t, opts.Groups(), 1)
	assert.True(t, opts.Groups()[0].IsRequired())
	assert.Equal(t, []string{"[-x, -y]"}, opts.Required())
}
