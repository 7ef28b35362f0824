package props

import "fmt"

// Table is an ordered set of properties for one class. A table may extend a parent
// table; lookups fall back to the parent and List returns parent properties first.
type Table struct {
	parent *Table
	order  []Property
	byName map[string]Property
}

// NewTable returns an empty table extending parent (which may be nil).
func NewTable(parent *Table, ps ...Property) *Table {
	t := &Table{parent: parent, byName: make(map[string]Property)}
	for _, p := range ps {
		t.Add(p)
	}
	return t
}

// Add registers p. Registering a name twice in the same table panics.
func (t *Table) Add(p Property) *Table {
	if _, dup := t.byName[p.Name()]; dup {
		panic("props: duplicate property " + p.Name())
	}
	t.byName[p.Name()] = p
	t.order = append(t.order, p)
	return t
}

// Lookup finds a property by name in t or its ancestors.
func (t *Table) Lookup(name string) (Property, bool) {
	for cur := t; cur != nil; cur = cur.parent {
		if p, ok := cur.byName[name]; ok {
			return p, true
		}
	}
	return nil, false
}

// List returns every visible property, parent tables first.
func (t *Table) List() []Property {
	if t == nil {
		return nil
	}
	var out []Property
	for _, p := range t.parent.List() {
		if _, overridden := t.byName[p.Name()]; !overridden {
			out = append(out, p)
		}
	}
	return append(out, t.order...)
}

// Get reads a property by name.
func (t *Table) Get(owner any, name string) (any, error) {
	p, ok := t.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return p.Get(owner)
}

// Set writes a property by name.
func (t *Table) Set(owner any, name string, v any) error {
	p, ok := t.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return p.Set(owner, v)
}
