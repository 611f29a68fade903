package value

// Set is an insertion-ordered set of members.
type Set struct {
	members Map
}

func NewSet(members ...any) *Set {
	s := &Set{members: *NewMap()}
	for _, m := range members {
		s.Add(m)
	}

	return s
}

func (s *Set) Add(member any) {
	s.members.Set(member, struct{}{})
}

func (s *Set) Has(member any) bool {
	_, ok := s.members.Get(member)
	return ok
}

func (s *Set) Len() int {
	return s.members.Len()
}

// Members returns the members in insertion order.
func (s *Set) Members() []any {
	return s.members.Keys()
}
