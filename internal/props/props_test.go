package props

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named interface{ base() *thing }

type thing struct {
	name    string
	speed   float32
	changes int
}

func (t *thing) base() *thing { return t }

type special struct{ thing }

func speedProp() *Descriptor[named, float32] {
	return New("Speed", "Data",
		func(o named) float32 { return o.base().speed },
		func(o named, v float32) {
			if o.base().speed != v {
				o.base().speed = v
				o.base().changes++
			}
		}).WithParser(Owned[named](ParseFloat32))
}

func TestDescriptorAppliesToEmbeddingTypes(t *testing.T) {
	p := speedProp()
	s := &special{}
	require.NoError(t, p.Set(s, float32(2)))
	v, err := p.Get(s)
	require.NoError(t, err)
	assert.Equal(t, float32(2), v)

	require.NoError(t, p.Parse(s, "3.5"))
	assert.Equal(t, float32(3.5), s.speed)
	assert.Equal(t, 2, s.changes)

	require.NoError(t, p.Parse(s, "3.5"))
	assert.Equal(t, 2, s.changes, "same value must not count as a change")
}

func TestDescriptorErrors(t *testing.T) {
	p := speedProp()
	assert.ErrorIs(t, p.Set(&thing{}, "fast"), ErrType)
	assert.ErrorIs(t, p.Set(42, float32(1)), ErrType)
	assert.Error(t, p.Parse(&thing{}, "abc"))

	ro := New("Name", "Data", func(o named) string { return o.base().name }, nil)
	assert.True(t, ro.ReadOnly())
	assert.ErrorIs(t, ro.Set(&thing{}, "x"), ErrReadOnly)
	assert.ErrorIs(t, ro.Parse(&thing{}, "x"), ErrReadOnly)
}

func TestTableLookupAndList(t *testing.T) {
	parent := NewTable(nil, New("Name", "Data", func(o named) string { return o.base().name }, nil))
	child := NewTable(parent, speedProp())

	_, ok := child.Lookup("Name")
	assert.True(t, ok)
	_, err := child.Get(&thing{}, "Missing")
	assert.ErrorIs(t, err, ErrUnknown)

	var names []string
	for _, p := range child.List() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"Name", "Speed"}, names)

	require.NoError(t, child.Set(&thing{}, "Speed", float32(1)))
	assert.Panics(t, func() { child.Add(speedProp()) })
}

func TestParsers(t *testing.T) {
	v, err := ParseVec3("1, 2.5,-3")
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 2.5, -3}, v)
	assert.Equal(t, "1,2.5,-3", FormatVec3(v))
	_, err = ParseVec3("1,2")
	assert.Error(t, err)

	b, err := ParseBool("on")
	require.NoError(t, err)
	assert.True(t, b)
	b, err = ParseBool("false")
	require.NoError(t, err)
	assert.False(t, b)
}
