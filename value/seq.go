package value

// Seq is an ordered sequence with identity.
type Seq struct {
	Items []any
}

func NewSeq(items ...any) *Seq {
	return &Seq{Items: items}
}

func (s *Seq) Push(v any) error {
	s.Items = append(s.Items, v)
	return nil
}

func (s *Seq) Len() int {
	return len(s.Items)
}

// At returns the element at index i, or nil when out of range.
func (s *Seq) At(i int) any {
	if i < 0 || i >= len(s.Items) {
		return nil
	}

	return s.Items[i]
}
