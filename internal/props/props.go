// Package props is the property table used for persistence, scripting and editor
// binding. Each class publishes a Table of named, typed descriptors; callers reach
// node state only through the getter and setter registered here.
package props

import (
	"errors"
	"fmt"
)

var (
	// ErrReadOnly is returned when setting a property that has no setter.
	ErrReadOnly = errors.New("property is read-only")
	// ErrType is returned when a value or owner has the wrong type.
	ErrType = errors.New("property type mismatch")
	// ErrUnknown is returned by Table lookups for names that are not registered.
	ErrUnknown = errors.New("unknown property")
)

// Property is the type-erased view of a descriptor.
type Property interface {
	Name() string
	Category() string
	ReadOnly() bool
	Get(owner any) (any, error)
	Set(owner any, v any) error
	// Format renders the current value for display.
	Format(owner any) (string, error)
	// Parse converts s with the descriptor's parser and sets the result.
	Parse(owner any, s string) error
}

// Descriptor binds a property name to typed accessors on owners of type O.
// O is usually an interface so that descriptors apply to embedding types too.
type Descriptor[O any, V any] struct {
	name     string
	category string
	get      func(O) V
	set      func(O, V)
	parse    func(O, string) (V, error)
	format   func(V) string
}

// New returns a descriptor. A nil set makes the property read-only.
func New[O any, V any](name, category string, get func(O) V, set func(O, V)) *Descriptor[O, V] {
	return &Descriptor[O, V]{name: name, category: category, get: get, set: set}
}

// WithParser sets the string parser used by Parse. The owner is passed so that
// reference properties can resolve names relative to it.
func (d *Descriptor[O, V]) WithParser(p func(O, string) (V, error)) *Descriptor[O, V] {
	d.parse = p
	return d
}

// WithFormatter sets the formatter used by Format; the default is fmt's %v.
func (d *Descriptor[O, V]) WithFormatter(f func(V) string) *Descriptor[O, V] {
	d.format = f
	return d
}

func (d *Descriptor[O, V]) Name() string     { return d.name }
func (d *Descriptor[O, V]) Category() string { return d.category }
func (d *Descriptor[O, V]) ReadOnly() bool   { return d.set == nil }

func (d *Descriptor[O, V]) owner(owner any) (O, error) {
	o, ok := owner.(O)
	if !ok {
		return o, fmt.Errorf("%w: %s does not apply to %T", ErrType, d.name, owner)
	}
	return o, nil
}

// GetTyped reads the property from a typed owner.
func (d *Descriptor[O, V]) GetTyped(o O) V {
	return d.get(o)
}

// SetTyped writes the property on a typed owner. It panics on read-only descriptors.
func (d *Descriptor[O, V]) SetTyped(o O, v V) {
	if d.set == nil {
		panic("props: " + d.name + " is read-only")
	}
	d.set(o, v)
}

func (d *Descriptor[O, V]) Get(owner any) (any, error) {
	o, err := d.owner(owner)
	if err != nil {
		return nil, err
	}
	return d.get(o), nil
}

func (d *Descriptor[O, V]) Set(owner any, v any) error {
	if d.set == nil {
		return fmt.Errorf("%w: %s", ErrReadOnly, d.name)
	}
	o, err := d.owner(owner)
	if err != nil {
		return err
	}
	val, ok := v.(V)
	if !ok {
		return fmt.Errorf("%w: %s wants %T, got %T", ErrType, d.name, *new(V), v)
	}
	d.set(o, val)
	return nil
}

func (d *Descriptor[O, V]) Format(owner any) (string, error) {
	o, err := d.owner(owner)
	if err != nil {
		return "", err
	}
	v := d.get(o)
	if d.format != nil {
		return d.format(v), nil
	}
	return fmt.Sprintf("%v", v), nil
}

func (d *Descriptor[O, V]) Parse(owner any, s string) error {
	if d.set == nil {
		return fmt.Errorf("%w: %s", ErrReadOnly, d.name)
	}
	if d.parse == nil {
		return fmt.Errorf("%w: %s has no parser", ErrType, d.name)
	}
	o, err := d.owner(owner)
	if err != nil {
		return err
	}
	v, err := d.parse(o, s)
	if err != nil {
		return fmt.Errorf("%s: %w", d.name, err)
	}
	d.set(o, v)
	return nil
}
