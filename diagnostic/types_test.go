package diagnostic_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tag-reviver/diagnostic"
)

func TestWrap(t *testing.T) {
	base := fmt.Errorf("%w: zork", diagnostic.ErrUnknownAlias)

	err := diagnostic.Wrap(base, diagnostic.Diagnostic{
		Tag:      "!native/object:Point",
		Path:     "$.points[1]",
		Position: "3:5",
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, diagnostic.ErrUnknownAlias)
	assert.Equal(t, "$.points[1] (3:5) [!native/object:Point]: [unknown-alias] unknown alias: zork", err.Error())

	var located *diagnostic.Error
	require.True(t, errors.As(err, &located))
	assert.Equal(t, diagnostic.CodeUnknownAlias, located.Code)
	assert.Equal(t, diagnostic.DiagnosticError, located.Severity)

	again := diagnostic.Wrap(err, diagnostic.Diagnostic{Path: "$"})
	assert.Same(t, located, again, "innermost location wins")

	assert.NoError(t, diagnostic.Wrap(nil, diagnostic.Diagnostic{}))
}

func TestSuggestions(t *testing.T) {
	base := diagnostic.Suggest(fmt.Errorf("%w: Pont", diagnostic.ErrTypeResolution), "Point")

	err := diagnostic.Wrap(base, diagnostic.Diagnostic{Path: "$"})
	assert.ErrorIs(t, err, diagnostic.ErrTypeResolution)
	assert.Equal(t, "$: [type-resolution] cannot resolve type: Pont (did you mean Point?)", err.Error())
	assert.Equal(t, []string{"Point"}, diagnostic.SuggestionsOf(err))

	assert.Nil(t, diagnostic.SuggestionsOf(errors.New("plain")))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, diagnostic.CodeDepthExceeded, diagnostic.CodeOf(fmt.Errorf("x: %w", diagnostic.ErrDepthExceeded)))
	assert.Empty(t, diagnostic.CodeOf(errors.New("other")))
}

func TestDiagnostics(t *testing.T) {
	var d diagnostic.Diagnostics
	d.AddWarning(diagnostic.Diagnostic{Code: diagnostic.CodeLegacyHook, Message: "deprecated"})
	d.AddInfo(diagnostic.Diagnostic{Code: diagnostic.CodeFallback, Message: "fallback"})
	d.AddInfo(diagnostic.Diagnostic{Code: diagnostic.CodeFallback, Message: "fallback"})

	assert.Equal(t, 1, d.Count(diagnostic.CodeLegacyHook))
	assert.Equal(t, 2, d.Count(diagnostic.CodeFallback))
	assert.Equal(t, diagnostic.DiagnosticWarning, d.Warnings[0].Severity)
	assert.Equal(t, "warning", d.Warnings[0].Severity.String())

	collected := func() diagnostic.Diagnostics { return d }
	assert.Equal(t, 2, collected().Count(diagnostic.CodeFallback), "countable on a returned value")

	var other diagnostic.Diagnostics
	other.Merge(d)
	assert.Len(t, other.Infos, 2)

	d.Reset()
	assert.Zero(t, d.Count(diagnostic.CodeFallback))
	assert.Equal(t, "unknown", diagnostic.DiagnosticSeverity(9).String())
}
