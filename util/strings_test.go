package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripLeadingHyphens(t *testing.T) {
	assert.Equal(t, "f", StripLeadingHyphens("-f"))
	assert.Equal(t, "file", StripLeadingHyphens("--file"))
	assert.Equal(t, "-x", StripLeadingHyphens("---x"))
	assert.Equal(t, "plain", StripLeadingHyphens("plain"))
	assert.Equal(t, "", StripLeadingHyphens("-"))
	assert.Equal(t, "", StripLeadingHyphens("--"))
}

func TestStripLeadingAndTrailingQuotes(t *testing.T) {
	assert.Equal(t, "foo", StripLeadingAndTrailingQuotes(`"foo"`))
	assert.Equal(t, `"foo"`, StripLeadingAndTrailingQuotes(`""foo""`))
	assert.Equal(t, "foo", StripLeadingAndTrailingQuotes(`"foo`))
	assert.Equal(t, "a b", StripLeadingAndTrailingQuotes("a b"))
	assert.Equal(t, "", StripLeadingAndTrailingQuotes(`"`))
}
