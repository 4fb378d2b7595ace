package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"FALSE", false},
		{"No", false},
		{"off", false},
		{"  off  ", false},
		{"1", true},
		{"true", true},
		{"yes", true},
		{"anything-else", true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, parseBool(tc.raw), "parseBool(%q)", tc.raw)
	}
}

func TestParseList(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{",", nil},
		{"a", []string{"a"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ,, c, ", []string{"a", "b", "c"}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, parseList(tc.raw), "parseList(%q)", tc.raw)
	}
}

// A list given as one comma-separated string and the same list already
// split must normalize identically. The file and environment layers both
// feed plain strings through parseList, so equivalence holds by
// construction; this pins it.
func TestParseList_EquivalentForms(t *testing.T) {
	joined := parseList("8080:80, 8443:443")
	assert.Equal(t, []string{"8080:80", "8443:443"}, joined)
}
