package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalMatrixIsRightHanded(t *testing.T) {
	for _, n := range Faces {
		m := n.Matrix()
		u, v, w := m.Col(0), m.Col(1), m.Col(2)
		assert.True(t, u.Cross(v).ApproxEqual(w), "%s: u x v != w", n)
		assert.True(t, w.ApproxEqual(n.Vector()), "%s: w is not the normal", n)
		assert.Equal(t, n, NormalFromMatrix(m))
	}
}

func TestOppositeAndAxis(t *testing.T) {
	assert.Equal(t, NormalXNeg, NormalX.Opposite())
	assert.Equal(t, NormalY, NormalYNeg.Opposite())
	assert.Equal(t, 2, NormalZNeg.Axis())
	assert.True(t, NormalZ.Positive())
	assert.False(t, NormalZNeg.Positive())
}

func TestUvwRoundTrip(t *testing.T) {
	p := mgl32.Vec3{1.5, -2, 3.25}
	for _, n := range Faces {
		uvw := ObjectToUvw(p, n)
		assert.True(t, UvwToObject(uvw, n).ApproxEqual(p), "%s", n)
		assert.InDelta(t, p.Dot(n.Vector()), uvw[2], 1e-6, "w must be the normal component for %s", n)
	}
}

func TestParseNormalID(t *testing.T) {
	cases := map[string]NormalID{
		"Right": NormalX, "top": NormalY, "-z": NormalZNeg, "X": NormalX, "Front": NormalZNeg,
	}
	for in, want := range cases {
		got, err := ParseNormalID(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseNormalID("sideways")
	assert.Error(t, err)
}

func TestFrameInverseAndMul(t *testing.T) {
	f := NewFrame(NormalY.Matrix(), mgl32.Vec3{1, 2, 3})
	p := mgl32.Vec3{4, -1, 0.5}
	assert.True(t, f.PointToObject(f.PointToWorld(p)).ApproxEqual(p))
	assert.True(t, f.Mul(f.Inverse()).ApproxEqual(Identity(), 1e-5))

	g := Translation(mgl32.Vec3{0, 0, 5})
	assert.True(t, f.Mul(g).PointToWorld(p).ApproxEqual(f.PointToWorld(g.PointToWorld(p))))
}

func TestExtents(t *testing.T) {
	e := FromSize(mgl32.Vec3{4, 2, 6})
	assert.Equal(t, mgl32.Vec3{2, 1, 3}, e.Max)
	assert.Equal(t, mgl32.Vec3{2, 0, 0}, e.FaceCenter(NormalX))
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, e.FaceCenter(NormalYNeg))
	assert.Equal(t, mgl32.Vec3{0, 0, 3}, e.FaceCenter(NormalZ))

	moved := e.Transform(Translation(mgl32.Vec3{10, 0, 0}))
	assert.Equal(t, mgl32.Vec3{8, -1, -3}, moved.Min)
	assert.True(t, e.Overlaps(FromSize(mgl32.Vec3{1, 1, 1})))
	assert.False(t, e.Overlaps(moved))
	assert.True(t, e.Contains(mgl32.Vec3{2, 1, 3}, 0))
}
