package value

// Hash is implemented by mapping containers that can be populated by the
// generic mapping rule, including merge keys.
type Hash interface {
	Set(key, val any)
	Get(key any) (any, bool)
	Len() int
	Range(fn func(key, val any) bool)
}

// Pusher is implemented by sequence containers that accept elements one by one.
type Pusher interface {
	Push(v any) error
}

// AttributeSetter receives attributes that have no matching struct field.
type AttributeSetter interface {
	SetAttribute(name string, v any) error
}

// TextSetter is implemented by string-like types revived from a string tag.
type TextSetter interface {
	SetText(text string)
}

// MessageSetter is implemented by exception-like types.
type MessageSetter interface {
	SetMessage(message string)
}

// Merge copies the entries of src into dst, overwriting existing keys.
// Keys held by keep are left untouched; a nil keep copies everything.
func Merge(dst, src Hash, keep *Set) {
	src.Range(func(key, val any) bool {
		if keep == nil || !keep.Has(key) {
			dst.Set(key, val)
		}

		return true
	})
}
