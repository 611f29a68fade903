package options

import "strings"

// FamilyEnum selects which groups of native tags a decode pass may revive.
type FamilyEnum int

const (
	FamilySymbol  FamilyEnum = 1 << iota // symbol tags and ":name" scalars
	FamilyRegexp                         // regexp tag
	FamilyRange                          // range tag, scalar and mapping form
	FamilyNumeric                        // object:BigDecimal, object:DateTime, object:Complex, object:Rational
	FamilyObject                         // load tags, class/module refs, objects, structs, exceptions, typed arrays and hashes, string subclasses
	FamilyAliases                        // aliases to anchored nodes

	FamilyAll  FamilyEnum = (1 << iota) - 1 // all families combined
	FamilyNone FamilyEnum = 0               // plain data only
	FamilySafe            = FamilyAliases   // plain data with aliases
)

var familyNames = []struct {
	family FamilyEnum
	name   string
}{
	{FamilySymbol, "symbol"},
	{FamilyRegexp, "regexp"},
	{FamilyRange, "range"},
	{FamilyNumeric, "numeric"},
	{FamilyObject, "object"},
	{FamilyAliases, "aliases"},
}

// Has reports whether every family in f is enabled.
func (e FamilyEnum) Has(f FamilyEnum) bool {
	return e&f == f
}

func (e FamilyEnum) String() string {
	if e == FamilyNone {
		return "none"
	}

	var names []string
	for _, fn := range familyNames {
		if e&fn.family != 0 {
			names = append(names, fn.name)
		}
	}

	return strings.Join(names, "|")
}
