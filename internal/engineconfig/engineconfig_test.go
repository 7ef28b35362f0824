package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.yaml")
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Load never creates the file")
}

func TestRoundTripByExtension(t *testing.T) {
	dir := t.TempDir()
	want := Default()
	want.ShowFPS = true
	want.ShowFeatures = false
	want.TickRate = 120
	want.Gravity = [3]float32{0, -1.6, 0}

	for _, name := range []string{"engine.yaml", "nested/engine.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, want))
		got, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "nested/engine.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tick_rate": 120`)
	data, err = os.ReadFile(filepath.Join(dir, "engine.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick_rate: 120")
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yml")
	require.NoError(t, os.WriteFile(path, []byte("show_fps: true\n"), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.True(t, p.ShowFPS)
	assert.True(t, p.GridVisible)
	assert.Equal(t, 60, p.TickRate)
}

func TestInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	p, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestDerivedValues(t *testing.T) {
	p := Default()
	assert.InDelta(t, 1.0/60, p.Dt(), 1e-7)
	p.TickRate = 0
	assert.InDelta(t, 1.0/60, p.Dt(), 1e-7)
	p.TickRate = 100
	assert.InDelta(t, 0.01, p.Dt(), 1e-7)
	assert.Equal(t, mgl32.Vec3{0, -9.8, 0}, p.GravityVec())
}

func TestPathFromEnvironment(t *testing.T) {
	t.Setenv(PathEnv, "")
	assert.Equal(t, DefaultPath, Path())
	t.Setenv(PathEnv, "/tmp/x.json")
	assert.Equal(t, "/tmp/x.json", Path())
}
