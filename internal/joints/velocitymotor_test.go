package joints

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joint-engine/internal/geom"
	"joint-engine/internal/physics"
	"joint-engine/internal/scene"
)

type motorRig struct {
	ws    *scene.Workspace
	a, b  *scene.Part
	motor *MotorFeature
	hole  *Hole
}

// newMotorRig places a MotorFeature on the +X face of A and a Hole on the -X face
// of B, which sits flush against A.
func newMotorRig(t *testing.T) *motorRig {
	t.Helper()
	_, ws := scene.NewDataModel(nil)
	r := &motorRig{
		ws:    ws,
		a:     scene.NewPart("A", mgl32.Vec3{2, 2, 2}),
		b:     scene.NewPart("B", mgl32.Vec3{2, 2, 2}),
		motor: NewMotorFeature(),
		hole:  NewHole(),
	}
	r.b.SetPosition(mgl32.Vec3{2, 0, 0})
	r.b.SetAnchored(true)
	r.a.SetAnchored(true)
	require.NoError(t, r.a.SetParent(ws))
	require.NoError(t, r.b.SetParent(ws))
	require.NoError(t, r.motor.SetParent(r.a))
	require.NoError(t, r.hole.SetParent(r.b))
	r.hole.SetFaceID(geom.NormalXNeg)
	return r
}

func TestCanJoin(t *testing.T) {
	r := newMotorRig(t)
	assert.True(t, CanJoin(r.motor, r.hole))
	assert.True(t, CanJoin(r.hole, r.motor), "argument order does not matter")

	assert.False(t, CanJoin(r.motor, r.motor))
	assert.False(t, CanJoin(r.hole, NewHole()))
	assert.False(t, CanJoin(r.motor, r.a))

	sameSide := NewHole()
	require.NoError(t, sameSide.SetParent(r.a))
	assert.False(t, CanJoin(r.motor, sameSide), "both features on one part")

	r.b.SetPosition(mgl32.Vec3{2, 0.5, 0})
	assert.False(t, CanJoin(r.motor, r.hole), "positions apart")

	r.b.SetPosition(mgl32.Vec3{2, 0, 0})
	r.hole.SetFaceID(geom.NormalY)
	assert.False(t, CanJoin(r.motor, r.hole), "different face")
}

func TestJoinBindsBothSlots(t *testing.T) {
	r := newMotorRig(t)
	vm, ok := Join(r.hole, r.motor)
	require.True(t, ok)

	j := vm.Joint()
	assert.Same(t, r.motor, vm.Parent())
	assert.Same(t, r.hole, vm.Hole())
	assert.Same(t, r.a.Primitive(), j.Primitive(0))
	assert.Same(t, r.b.Primitive(), j.Primitive(1))
	assert.Same(t, r.ws.World(), j.World())
	assert.True(t, j.Active())
	assert.Equal(t, physics.MotorJoint, j.Type())

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, j.Coord(0).Translation)
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, j.Coord(1).Translation)
	w0, _ := j.WorldCoord(0)
	w1, _ := j.WorldCoord(1)
	assert.True(t, w0.Translation.ApproxEqual(w1.Translation))

	_, ok = Join(r.motor, NewHole())
	assert.False(t, ok)
}

func TestSlotFollowsPartSize(t *testing.T) {
	r := newMotorRig(t)
	vm, ok := Join(r.motor, r.hole)
	require.True(t, ok)

	r.a.SetSize(mgl32.Vec3{4, 2, 2})
	assert.Equal(t, mgl32.Vec3{2, 0, 0}, vm.Joint().Coord(0).Translation)
}

func TestSlotFollowsFeatureSelectors(t *testing.T) {
	r := newMotorRig(t)
	vm, ok := Join(r.motor, r.hole)
	require.True(t, ok)

	r.hole.SetFaceID(geom.NormalX)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, vm.Joint().Coord(1).Translation)

	r.motor.SetInOut(Edge)
	r.motor.SetTopBottom(Top)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, vm.Joint().Coord(0).Translation)
	assert.Equal(t, r.motor.ComputeLocalCoordinateFrame(), vm.Joint().Coord(0))
}

func TestHoleLeavingPartEmptiesSlot(t *testing.T) {
	r := newMotorRig(t)
	vm, ok := Join(r.motor, r.hole)
	require.True(t, ok)

	folder := scene.NewFolder("Spare")
	require.NoError(t, folder.SetParent(r.ws))
	require.NoError(t, r.hole.SetParent(folder))
	assert.Nil(t, vm.Joint().Primitive(1))
	assert.False(t, vm.Joint().Active())
	assert.Same(t, r.ws.World(), vm.Joint().World(), "membership follows the VelocityMotor, not the hole")

	require.NoError(t, r.hole.SetParent(r.b))
	assert.Same(t, r.b.Primitive(), vm.Joint().Primitive(1))
	assert.True(t, vm.Joint().Active())
}

func TestMotorFeatureMoveRebindsSlotZero(t *testing.T) {
	r := newMotorRig(t)
	vm, ok := Join(r.motor, r.hole)
	require.True(t, ok)

	c := scene.NewPart("C", mgl32.Vec3{2, 2, 2})
	require.NoError(t, c.SetParent(r.ws))
	require.NoError(t, r.motor.SetParent(c))
	assert.Same(t, c.Primitive(), vm.Joint().Primitive(0))

	r.a.SetSize(mgl32.Vec3{8, 2, 2})
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, vm.Joint().Coord(0).Translation, "the old part is no longer watched")
	assert.Equal(t, 0, r.a.PropertyChanged.Len())

	require.NoError(t, r.motor.SetParent(nil))
	assert.Nil(t, vm.Joint().Primitive(0))
	assert.Nil(t, vm.Joint().World(), "a detached tree has no workspace")
}

func TestVelocityMotorParentPolicy(t *testing.T) {
	r := newMotorRig(t)
	vm := NewVelocityMotor()
	assert.ErrorIs(t, vm.SetParent(r.a), scene.ErrParentRejected)
	assert.ErrorIs(t, vm.SetParent(r.ws), scene.ErrParentRejected)
	require.NoError(t, vm.SetParent(r.hole))
	require.NoError(t, vm.SetParent(NewFeature()))
	require.NoError(t, vm.SetParent(scene.NewFolder("F")))
	assert.Nil(t, vm.Joint().Primitive(0))
}

func TestVelocityMotorDestroyDropsSubscriptions(t *testing.T) {
	r := newMotorRig(t)
	vm, ok := Join(r.motor, r.hole)
	require.True(t, ok)
	require.Equal(t, 1, r.hole.AncestryChanged.Len())
	require.Equal(t, 1, r.a.PropertyChanged.Len())
	require.Equal(t, 1, r.b.PropertyChanged.Len())

	before := r.ws.World().Stats()
	vm.Destroy()
	assert.Equal(t, physics.Stats{Removes: 1}, statsDelta(r.ws.World(), before))
	assert.Equal(t, 0, r.hole.AncestryChanged.Len())
	assert.Equal(t, 0, r.hole.PropertyChanged.Len())
	assert.Equal(t, 0, r.motor.PropertyChanged.Len())
	assert.Equal(t, 0, r.a.PropertyChanged.Len())
	assert.Equal(t, 0, r.b.PropertyChanged.Len())
	assert.Nil(t, vm.Joint().Primitive(0))
	assert.Nil(t, vm.Joint().Primitive(1))

	// The hole keeps working on its own.
	require.NoError(t, r.hole.SetParent(nil))
}

func TestSetHoleReplacesSubscription(t *testing.T) {
	r := newMotorRig(t)
	vm, ok := Join(r.motor, r.hole)
	require.True(t, ok)
	var changed []string
	vm.PropertyChanged.Connect(func(name string) { changed = append(changed, name) })

	other := NewHole()
	vm.SetHole(other)
	vm.SetHole(other)
	assert.Equal(t, []string{"Hole"}, changed)
	assert.Equal(t, 0, r.hole.AncestryChanged.Len())
	assert.Equal(t, 1, other.AncestryChanged.Len())
	assert.Nil(t, vm.Joint().Primitive(1))

	vm.SetHole(nil)
	assert.Equal(t, 0, other.AncestryChanged.Len())
}

func TestVelocityMotorProperties(t *testing.T) {
	r := newMotorRig(t)
	vm := NewVelocityMotor()
	require.NoError(t, vm.SetParent(r.motor))
	var changed []string
	vm.PropertyChanged.Connect(func(name string) { changed = append(changed, name) })

	tbl := scene.PropertiesOf(vm)
	hp, ok := tbl.Lookup("Hole")
	require.True(t, ok)
	require.NoError(t, hp.Parse(vm, "Workspace/B/Hole"))
	assert.Same(t, r.hole, vm.Hole())
	assert.True(t, vm.Joint().Active())

	s, err := hp.Format(vm)
	require.NoError(t, err)
	assert.Equal(t, "DataModel/Workspace/B/Hole", s)
	assert.Error(t, hp.Parse(vm, "Workspace/A"), "a Part is not a Hole")

	require.NoError(t, tbl.Set(vm, "MaxVelocity", float32(2)))
	require.NoError(t, tbl.Set(vm, "MaxVelocity", float32(2)))
	dp, _ := tbl.Lookup("DesiredAngle")
	require.NoError(t, dp.Parse(vm, "1.5"))
	assert.Equal(t, float32(2), vm.MaxVelocity())
	assert.Equal(t, float32(1.5), vm.DesiredAngle())
	assert.Equal(t, []string{"Hole", "MaxVelocity", "DesiredAngle"}, changed)

	r.ws.Step(0.5)
	assert.InDelta(t, 1, vm.CurrentAngle(), 1e-5)
	r.ws.Step(0.5)
	assert.InDelta(t, 1.5, vm.CurrentAngle(), 1e-5)
}
