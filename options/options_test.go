package options_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"tag-reviver/options"
	"tag-reviver/primitive"
)

func TestOptions_WithDefaults(t *testing.T) {
	o := options.Options{}.WithDefaults()

	assert.Equal(t, options.DefaultNamespace, o.Namespace)
	assert.Equal(t, options.DefaultMaxDepth, o.MaxDepth)
	assert.Equal(t, options.FamilyAll, o.Families)
	assert.NotNil(t, o.Logger)
	assert.Equal(t, primitive.Scanner{}, o.Scanner)
}

func TestOptions_WithDefaults_keepsExplicit(t *testing.T) {
	o := options.Options{
		Namespace: "!go",
		MaxDepth:  -1,
		Families:  options.FamilySymbol | options.FamilyRange,
		Scanner:   primitive.Scanner{StrictIntegers: true},
	}.WithDefaults()

	assert.Equal(t, "!go/", o.Namespace)
	assert.Equal(t, -1, o.MaxDepth)
	assert.True(t, o.Families.Has(options.FamilyRange))
	assert.False(t, o.Families.Has(options.FamilyObject))
	assert.Equal(t, primitive.Scanner{StrictIntegers: true}, o.Scanner)
}

func TestOptions_DisableAll(t *testing.T) {
	o := options.Options{DisableAll: true, Families: options.FamilyAll}.WithDefaults()

	assert.Equal(t, options.FamilyNone, o.Families)
	assert.False(t, o.Families.Has(options.FamilyAliases))
}

func TestFamilyEnum_String(t *testing.T) {
	tests := []struct {
		f    options.FamilyEnum
		want string
	}{
		{options.FamilyNone, "none"},
		{options.FamilySafe, "aliases"},
		{options.FamilySymbol | options.FamilyRegexp, "symbol|regexp"},
		{options.FamilyAll, "symbol|regexp|range|numeric|object|aliases"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.f.String())
	}
}

func ExampleSafe() {
	o := options.Safe().WithDefaults()
	fmt.Println(o.Families, o.Families.Has(options.FamilyObject))
	// Output: aliases false
}
