package primitive

import (
	"math/big"
	"time"

	"tag-reviver/value"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNull
	KindBool
	KindInt
	KindBigInt
	KindFloat
	KindTime
	KindSymbol
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindBigInt, KindFloat:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindBigInt:
		return true
	}
}

// KindOf reports the kind of a classified scalar, or zero for anything the
// scanner never produces.
func KindOf(v any) KindEnum {
	switch v.(type) {
	default:
		return 0
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int64, uint64:
		return KindInt
	case *big.Int:
		return KindBigInt
	case float64:
		return KindFloat
	case time.Time:
		return KindTime
	case value.Symbol:
		return KindSymbol
	case string:
		return KindString
	}
}
