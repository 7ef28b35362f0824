package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joint-engine/internal/commands"
	"joint-engine/internal/joints"
	"joint-engine/internal/logger"
	"joint-engine/internal/physics"
	"joint-engine/internal/scene"
)

func newRunner(t *testing.T) (*Runner, *bytes.Buffer, *logger.Logger) {
	t.Helper()
	l := logger.New("")
	r := New(l, nil)
	var out bytes.Buffer
	r.SetOutput(&out)
	return r, &out, l
}

func logged(l *logger.Logger) string {
	return strings.Join(l.Lines(), "\n")
}

const weldScript = `
# two stacked boxes welded together
part -size 2,2,2 -anchored Base
cmd part -size 2,2,2 -pos 0,2,0 Arm
set Workspace/Base TopSurface Weld
join Workspace/Base Workspace/Arm
stats
`

func TestWeldScript(t *testing.T) {
	r, out, l := newRunner(t)
	require.NoError(t, r.Run(strings.NewReader(weldScript)))

	n, err := r.Lookup("Workspace/Base/Weld")
	require.NoError(t, err)
	aj, ok := n.(*joints.AutoJoint)
	require.True(t, ok)
	assert.True(t, aj.Joint().Active())

	assert.Contains(t, out.String(), "joined DataModel/Workspace/Base/Weld")
	assert.Contains(t, out.String(), "primitives=2 joints=1 active=1 inserts=1 removes=0 steps=0")
	assert.Contains(t, logged(l), "physics: inserted Weld joint (active=true)")

	out.Reset()
	require.NoError(t, r.Exec("dump"))
	assert.Equal(t, strings.Join([]string{
		"DataModel (Folder)",
		"  Workspace (Workspace)",
		"    Base (Part) pos=0,0,0 size=2,2,2",
		"      Weld (Weld) inWorld=true active=true",
		"    Arm (Part) pos=0,2,0 size=2,2,2",
		"",
	}, "\n"), out.String())

	out.Reset()
	require.NoError(t, r.Exec("adorn -features=false"))
	assert.Equal(t, "line [0 0 0] -> [0 2 0] width=30 color={0 255 0 255}\n", out.String())
}

const motorScript = `
part -size 2,2,2 -anchored A
part -size 2,2,2 -pos 2,0,0 -anchored B
feature -parent Workspace/A motor Shaft
feature -parent Workspace/B -face Left hole Socket
join Workspace/A/Shaft Workspace/B/Socket
set Workspace/A/Shaft/VelocityMotor MaxVelocity 1
set Workspace/A/Shaft/VelocityMotor DesiredAngle 1
step -dt 0.5 4
get Workspace/A/Shaft/VelocityMotor CurrentAngle
`

func TestMotorScript(t *testing.T) {
	r, out, _ := newRunner(t)
	require.NoError(t, r.Run(strings.NewReader(motorScript)))
	assert.Equal(t, 4, r.Steps())
	assert.Contains(t, out.String(), "DataModel/Workspace/A/Shaft/VelocityMotor.CurrentAngle = 1")

	n, err := r.Lookup("Workspace/A/Shaft/VelocityMotor")
	require.NoError(t, err)
	vm := n.(*joints.VelocityMotor)
	assert.True(t, vm.Joint().Active())

	require.NoError(t, r.Exec("parent Workspace/B/Socket nil"))
	assert.False(t, vm.Joint().Active(), "a detached hole empties slot 1")

	require.NoError(t, r.Exec("destroy Workspace/A/Shaft"))
	assert.True(t, vm.IsDestroyed())
	assert.Nil(t, vm.Joint().World())
}

func TestExplicitJointAndMembership(t *testing.T) {
	r, out, _ := newRunner(t)
	for _, line := range []string{
		"part A",
		"part -pos 0,5,0 B",
		"folder Spare",
		"joint -part0 Workspace/A -part1 Workspace/B Glue Link",
		"stats",
		"parent Workspace/A/Link Workspace/Spare",
		"stats",
		"get Workspace/Spare/Link Part1",
	} {
		require.NoError(t, r.Exec(line), line)
	}
	s := out.String()
	assert.Contains(t, s, "created Glue DataModel/Workspace/A/Link")
	assert.Contains(t, s, "joints=1 active=1 inserts=1 removes=0")
	assert.Contains(t, s, "joints=0 active=0 inserts=1 removes=1")
	assert.Contains(t, s, "DataModel/Workspace/Spare/Link.Part1 = DataModel/Workspace/B")
}

func TestErrors(t *testing.T) {
	r, _, _ := newRunner(t)
	require.NoError(t, r.Exec("part A"))

	assert.ErrorIs(t, r.Exec("wave"), commands.ErrUnknown)
	assert.ErrorIs(t, r.Exec("part"), ErrUsage)
	assert.ErrorIs(t, r.Exec("joint Weld"), ErrUsage)
	assert.ErrorIs(t, r.Exec("joint -parent Workspace Weld"), scene.ErrParentRejected)
	assert.ErrorIs(t, r.Exec("parent Workspace/A Workspace/A"), scene.ErrCycle)
	assert.Error(t, r.Exec("joint -part0 Workspace/A Hinge"))
	assert.Error(t, r.Exec("set Workspace/A Size big"))
	assert.Error(t, r.Exec("set Workspace/A ClassName Box"), "read-only")
	assert.Error(t, r.Exec("get Workspace/Missing Name"))
	assert.Error(t, r.Exec("join Workspace/A Workspace"))
	assert.Error(t, r.Exec("destroy Workspace"))
	assert.Error(t, r.Exec("step -dt x"))

	err := r.Run(strings.NewReader("part B\n\nbogus\npart C\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	_, err = r.Lookup("Workspace/C")
	assert.Error(t, err, "the script stops at the failing line")
}

func TestPropsAndHelp(t *testing.T) {
	r, out, _ := newRunner(t)
	require.NoError(t, r.Exec("part -size 1,2,3 A"))
	require.NoError(t, r.Exec(`set Workspace/A Name "Big Box"`))
	_, err := r.Lookup("Workspace/Big Box")
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, r.Exec(`props "Workspace/Big Box"`))
	s := out.String()
	assert.Contains(t, s, "Name [Data] = Big Box\n")
	assert.Contains(t, s, "ClassName [Data] = Part (read-only)\n")
	assert.Contains(t, s, "Size [Part] = 1,2,3\n")
	assert.Contains(t, s, "TopSurface [Surface] = Smooth\n")
	big, err := r.Lookup("Workspace/Big Box")
	require.NoError(t, err)
	assert.Contains(t, s, "Id [Data] = "+big.AsInstance().ID().String()+" (read-only)\n")

	out.Reset()
	require.NoError(t, r.Exec("help"))
	assert.Equal(t, len(r.Registry().Names()), strings.Count(out.String(), "\n"))
	assert.Contains(t, out.String(), "velocitymotor [-parent path] [-hole path] [name]")
}

func TestNodesByID(t *testing.T) {
	r, out, _ := newRunner(t)
	require.NoError(t, r.Exec("part -size 2,2,2 -anchored Box"))
	require.NoError(t, r.Exec("part -size 1,1,1 -pos 0,2,0 Box"))
	boxes := r.Workspace().Children()
	require.Len(t, boxes, 2)
	second := boxes[1].AsInstance().ID().String()

	out.Reset()
	require.NoError(t, r.Exec("dump -ids Workspace"))
	assert.Contains(t, out.String(), "Workspace (Workspace) id="+r.Workspace().ID().String()+"\n")
	assert.Contains(t, out.String(), "pos=0,2,0 size=1,1,1 id="+second+"\n")

	out.Reset()
	require.NoError(t, r.Exec("get "+second+" Size"))
	assert.Equal(t, "DataModel/Workspace/Box.Size = 1,1,1\n", out.String())

	require.NoError(t, r.Exec("set "+second+" Name Lid"))
	lid, err := r.Lookup("Workspace/Lid")
	require.NoError(t, err)
	assert.Equal(t, second, lid.AsInstance().ID().String())

	assert.Error(t, r.Exec("set "+second+" Id "+r.Workspace().ID().String()))
}

func TestRunnerSimulatesGivenWorld(t *testing.T) {
	w := physics.NewWorld()
	r := New(logger.New(""), w)
	assert.Same(t, w, r.Workspace().World())
	assert.Same(t, r.Root(), r.Workspace().Parent())
}
