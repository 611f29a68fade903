package node

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindScalar
	KindSequence
	KindMapping
	KindAlias
	KindDocument
	KindStream

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsCollection reports whether nodes of this kind carry children that are values.
func (k KindEnum) IsCollection() bool {
	switch k {
	default:
		return false
	case KindSequence, KindMapping:
		return true
	}
}
