package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"name", []string{"name"}},
		{"FirstName", []string{"first", "name"}},
		{"first_name", []string{"first", "name"}},
		{"first-name", []string{"first", "name"}},
		{"@firstName", []string{"@first", "name"}},
		{"parseHTTPHeader", []string{"parse", "http", "header"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"ID", []string{"id"}},
		{"Geo::Point", []string{"geo", "point"}},
		{"__x__", []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenizeIdent(tt.in))
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	for _, in := range []string{"first_name", "firstName", "FirstName", "FIRST_NAME", "first name"} {
		assert.Equal(t, "firstname", NormalizeIdent(in), in)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Point", "Pont", 1},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("first_name", "FirstName"), 1e-9)
	assert.InDelta(t, 0.8, Similarity("Point", "Pont"), 1e-9)
	assert.Less(t, Similarity("Point", "Exception"), 0.5)
}
