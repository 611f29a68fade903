package value

import (
	"math/big"
)

// ToFloat converts any numeric value to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	default:
		return 0, false
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case *big.Int:
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, true
	case *big.Float:
		f, _ := n.Float64()
		return f, true
	case *big.Rat:
		f, _ := n.Float64()
		return f, true
	}
}

// ToBigInt converts an integer value to *big.Int.
func ToBigInt(v any) (*big.Int, bool) {
	switch n := v.(type) {
	default:
		return nil, false
	case int:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	case *big.Int:
		return new(big.Int).Set(n), true
	}
}

// ToRat converts a rational-compatible value (integers, floats, rationals) to *big.Rat.
func ToRat(v any) (*big.Rat, bool) {
	if i, ok := ToBigInt(v); ok {
		return new(big.Rat).SetInt(i), true
	}

	switch n := v.(type) {
	default:
		return nil, false
	case float64:
		r := new(big.Rat)
		if r.SetFloat64(n) == nil {
			return nil, false
		}

		return r, true
	case *big.Rat:
		return new(big.Rat).Set(n), true
	}
}
