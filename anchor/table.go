// Package anchor holds the per-pass table of anchored values.
//
// A Table is private to one decode pass. Containers are registered as soon as
// they are allocated, before their children are filled, so an alias met later
// in the same pass (including inside the container itself) resolves to the
// very same value.
package anchor

// Table maps anchor names to materialized values. It is not safe for concurrent use.
type Table struct {
	values map[string]any
}

func NewTable() *Table {
	return &Table{values: make(map[string]any)}
}

// Register records v under name; a later registration of the same name wins.
// Empty names are ignored. Register returns v for convenient chaining.
func (t *Table) Register(name string, v any) any {
	if name == "" {
		return v
	}

	if t.values == nil {
		t.values = make(map[string]any)
	}

	t.values[name] = v

	return v
}

// Lookup returns the value registered under name.
func (t *Table) Lookup(name string) (any, bool) {
	v, ok := t.values[name]
	return v, ok
}

func (t *Table) Len() int {
	return len(t.values)
}

// Reset forgets every anchor, starting a new pass.
func (t *Table) Reset() {
	clear(t.values)
}
