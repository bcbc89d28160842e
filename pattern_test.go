package goclip

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/napalu/goclip/errs"
	"github.com/napalu/goclip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	opts, err := ParsePattern("a:b@cde>f+n%t/y#")
	require.NoError(t, err)

	tests := []struct {
		name     string
		wantType types.ValueType
		wantArg  bool
	}{
		{name: "a", wantType: types.ValueString, wantArg: true},
		{name: "b", wantType: types.ValueObject, wantArg: true},
		{name: "c", wantType: types.ValueString},
		{name: "d", wantType: types.ValueString},
		{name: "e", wantType: types.ValueFile, wantArg: true},
		{name: "f", wantType: types.ValueClass, wantArg: true},
		{name: "n", wantType: types.ValueNumber, wantArg: true},
		{name: "t", wantType: types.ValueURL, wantArg: true},
		{name: "y", wantType: types.ValueDate, wantArg: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, ok := opts.Option(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.wantType, o.Type())
			assert.Equal(t, tt.wantArg, o.HasArg())
		})
	}
	assert.Equal(t, len(tests), opts.Len())
}

func TestParsePattern_Parse(t *testing.T) {
	opts, err := ParsePattern("a:b@cde>f+n%t/y#")
	require.NoError(t, err)

	args := []string{
		"-c", "-a", "foo", "-b", "thing", "-e", "build.xml", "-f", "time.Time",
		"-n", "4.5", "-t", "http://example.org/", "-y", "2000/01/01",
	}
	cl, err := NewPosixParser().Parse(opts, args, false)
	require.NoError(t, err)

	v, _ := cl.GetValue("a")
	assert.Equal(t, "foo", v)
	assert.True(t, cl.HasOption("c"))
	assert.False(t, cl.HasOption("d"))

	b, err := cl.GetTypedValue("b")
	require.NoError(t, err)
	assert.Equal(t, "thing", b)

	e, err := cl.GetTypedValue("e")
	require.NoError(t, err)
	assert.Equal(t, "build.xml", e)

	_, err = cl.GetTypedValue("f")
	assert.ErrorIs(t, err, errs.ErrUnsupportedType)

	n, err := cl.GetTypedValue("n")
	require.NoError(t, err)
	assert.Equal(t, 4.5, n)

	u, err := cl.GetTypedValue("t")
	require.NoError(t, err)
	require.IsType(t, &url.URL{}, u)
	assert.Equal(t, "http://example.org/", u.(*url.URL).String())

	y, err := cl.GetTypedValue("y")
	require.NoError(t, err)
	require.IsType(t, time.Time{}, y)
	assert.Equal(t, 2000, y.(time.Time).Year())
}

func TestParsePattern_ExistingFileAndFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	opts, err := ParsePattern("i<g*")
	require.NoError(t, err)

	cl, err := NewGnuParser().Parse(opts, []string{"-i", file, "-g", filepath.Join(dir, "*.txt")}, false)
	require.NoError(t, err)

	i, err := cl.GetTypedValue("i")
	require.NoError(t, err)
	assert.Equal(t, file, i)

	g, err := cl.GetTypedValue("g")
	require.NoError(t, err)
	assert.Equal(t, []string{file}, g)

	cl, err = NewGnuParser().Parse(opts, []string{"-i", filepath.Join(dir, "missing.txt")}, false)
	require.NoError(t, err)
	_, err = cl.GetTypedValue("i")
	assert.ErrorIs(t, err, errs.ErrFileNotFound)
}

func TestParsePattern_Required(t *testing.T) {
	opts, err := ParsePattern("vp:!q")
	require.NoError(t, err)

	p, ok := opts.Option("p")
	require.True(t, ok)
	assert.True(t, p.IsRequired())
	assert.True(t, p.HasArg())
	assert.Equal(t, []string{"p"}, opts.Required())

	_, err = NewBasicParser().Parse(opts, []string{"-v"}, false)
	assert.ErrorIs(t, err, errs.ErrMissingRequiredOption)
}

func TestParsePattern_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr error
	}{
		{name: "leading code", pattern: ":a", wantErr: errs.ErrDanglingPatternCode},
		{name: "code after space", pattern: "a !", wantErr: errs.ErrDanglingPatternCode},
		{name: "invalid name", pattern: "a-", wantErr: errs.ErrInvalidOptionName},
		{name: "duplicate", pattern: "aa", wantErr: errs.ErrOptionExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParsePattern(tt.pattern)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, opts)
		})
	}
}

func TestParsePattern_Whitespace(t *testing.T) {
	opts, err := ParsePattern("a: b c%")
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Len())
	assert.True(t, opts.OptionHasArg("c"))
	assert.False(t, opts.OptionHasArg("b"))
}

func TestDanglingPatternCodeMessage(t *testing.T) {
	_, err := ParsePattern("%a")
	require.Error(t, err)
	assert.Equal(t, "pattern code '%' at position 1 does not follow an option", err.Error())
}
