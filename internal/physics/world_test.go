package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joint-engine/internal/geom"
	"joint-engine/internal/logger"
)

func TestStepAppliesGravityToFreePrimitives(t *testing.T) {
	w := NewWorld()
	free, anchored := box(), box()
	anchored.Anchored = true
	anchored.SetCoordinateFrame(geom.Translation(mgl32.Vec3{10, 0, 0}))
	w.AddPrimitive(free)
	w.AddPrimitive(anchored)

	w.Step(1)
	assert.InDelta(t, -9.8, free.Position().Y(), 1e-4)
	assert.Equal(t, mgl32.Vec3{10, 0, 0}, anchored.Position())
	assert.Equal(t, 1, w.StepID())
}

func TestStepPushesFreeBoxOutOfAnchoredFloor(t *testing.T) {
	w := NewWorld()
	w.SetGravity(mgl32.Vec3{})
	floor := NewPrimitive(mgl32.Vec3{10, 2, 10}, 1)
	floor.Anchored = true
	b := box()
	b.SetCoordinateFrame(geom.Translation(mgl32.Vec3{0, 1.5, 0}))
	w.AddPrimitive(floor)
	w.AddPrimitive(b)

	w.Step(0.01)
	assert.InDelta(t, 2.0, b.Position().Y(), 1e-5)
	assert.Equal(t, mgl32.Vec3{}, floor.Position())
	assert.Equal(t, float32(0), b.Velocity.Y())
}

func TestPenetrationAxis(t *testing.T) {
	a := geom.Extents{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{2, 2, 2}}
	b := geom.Extents{Min: mgl32.Vec3{1.5, 1, 1}, Max: mgl32.Vec3{3, 3, 3}}
	depth, axis := penetrationAxis(a, b)
	assert.Equal(t, 0, axis)
	assert.InDelta(t, 0.5, depth, 1e-6)

	c := geom.Extents{Min: mgl32.Vec3{5, 5, 5}, Max: mgl32.Vec3{6, 6, 6}}
	_, axis = penetrationAxis(a, c)
	assert.Equal(t, -1, axis)
}

func TestWorldLogsMembership(t *testing.T) {
	w := NewWorld()
	l := logger.New("")
	w.SetLogger(l)
	j := NewJoint(GlueJoint)
	w.InsertJoint(j)
	w.RemoveJoint(j)
	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "inserted Glue joint")
	assert.Contains(t, lines[1], "removed Glue joint")
}
