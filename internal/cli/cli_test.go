package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weldScript = `# stacked boxes
part -size 2,2,2 -anchored Base
part -size 2,2,2 -pos 0,2,0 Arm
set Workspace/Base TopSurface Weld
join Workspace/Base Workspace/Arm
stats
`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	base := []string{
		"--config", filepath.Join(dir, "engine.yaml"),
		"--env", filepath.Join(dir, ".env"),
	}
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weld.jsim")
	require.NoError(t, os.WriteFile(path, []byte(weldScript), 0644))

	out, _, err := execute(t, "", "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "created Part DataModel/Workspace/Base")
	assert.Contains(t, out, "primitives=2 joints=1 active=1 inserts=1 removes=0 steps=0")
}

func TestRunStdinVerbose(t *testing.T) {
	out, errOut, err := execute(t, weldScript, "run", "-v", "--steps", "2", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "joined DataModel/Workspace/Base/Weld")
	assert.Contains(t, errOut, "physics: inserted Weld joint (active=true)")
}

func TestRunReportsFailingLine(t *testing.T) {
	_, _, err := execute(t, "part A\nbogus\n", "run", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRunMissingScript(t *testing.T) {
	_, _, err := execute(t, "", "run", filepath.Join(t.TempDir(), "none.jsim"))
	assert.Error(t, err)
}

func TestRunRejectsBrokenPrefs(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "engine.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("tick_rate: [nope\n"), 0644))

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"--config", cfg, "--env", filepath.Join(dir, ".env"), "run", "-"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load prefs")
}

func TestFeatureFrame(t *testing.T) {
	out, _, err := execute(t, "", "feature")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pos=1,0,0 "), out)

	out, _, err = execute(t, "", "feature", "--face", "Top")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pos=0,1,0 "), out)

	out, _, err = execute(t, "", "feature", "--size", "4,2,2", "--io", "Inset")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pos=1,0,0 "), out)
}

func TestFeatureRejectsBadSelectors(t *testing.T) {
	_, _, err := execute(t, "", "feature", "--face", "Sideways")
	assert.Error(t, err)
	_, _, err = execute(t, "", "feature", "--size", "1,2")
	assert.Error(t, err)
}

func TestGenPrintsScript(t *testing.T) {
	out, _, err := execute(t, "", "gen", "--width", "2", "--depth", "1", "--seed", "5", "--folder", "G")
	require.NoError(t, err)
	assert.Contains(t, out, "# terrace 2x1 seed=5\nfolder G\n")
	assert.Contains(t, out, "part -parent Workspace/G -size 2,1,2 -pos -1,0.5,0 -anchored C0_0_0")
}

func TestGenRun(t *testing.T) {
	out, _, err := execute(t, "", "gen", "--run", "--width", "2", "--depth", "2", "--levels", "1", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "primitives=4 joints=0 active=0")
}

func TestExampleScripts(t *testing.T) {
	out, _, err := execute(t, "", "run", filepath.Join("..", "..", "examples", "weld.jsim"))
	require.NoError(t, err)
	assert.Contains(t, out, "line [0 0 0] -> [0 2 0] width=30 color={0 255 0 255}")

	out, _, err = execute(t, "", "run", filepath.Join("..", "..", "examples", "motor.jsim"))
	require.NoError(t, err)
	assert.Contains(t, out, "VelocityMotor.CurrentAngle = 1")
	assert.Contains(t, out, "steps=4")
}
