package value

import "fmt"

// Range is an interval between two endpoints. Exclusive ranges do not include End.
type Range struct {
	Begin     any
	End       any
	Exclusive bool
}

// Contains reports whether v lies in the range. Only numeric endpoints are supported.
func (r Range) Contains(v any) bool {
	x, ok := ToFloat(v)
	if !ok {
		return false
	}

	lo, okLo := ToFloat(r.Begin)
	hi, okHi := ToFloat(r.End)

	if okLo && x < lo {
		return false
	}

	if !okHi {
		return r.End == nil
	}

	if r.Exclusive {
		return x < hi
	}

	return x <= hi
}

func (r Range) String() string {
	sep := ".."
	if r.Exclusive {
		sep = "..."
	}

	return fmt.Sprintf("%v%s%v", r.Begin, sep, r.End)
}
