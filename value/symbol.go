package value

// Symbol is an interned name, distinct from a plain string.
type Symbol string

func (s Symbol) String() string {
	return ":" + string(s)
}
