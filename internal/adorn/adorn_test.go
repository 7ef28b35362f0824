package adorn

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joint-engine/internal/geom"
	"joint-engine/internal/scene"
)

type marker struct {
	scene.Instance
	feature bool
}

func newMarker(name string, feature bool) *marker {
	m := &marker{feature: feature}
	scene.Init(m, name)
	return m
}

func (m *marker) ClassName() string { return "Marker" }

func (m *marker) ShouldRender3dAdorn(opts Options) bool {
	if m.feature {
		return opts.Features
	}
	return opts.SpanningTree
}

func (m *marker) Render3dAdorn(a Adorn) {
	a.Cylinder(geom.Identity(), 2, 1, 0.3, Yellow)
}

func TestRenderTreeHonoursOptions(t *testing.T) {
	root := scene.NewFolder("root")
	f := newMarker("feature", true)
	j := newMarker("joint", false)
	require.NoError(t, f.SetParent(root))
	require.NoError(t, j.SetParent(f))

	var rec Recorder
	assert.Equal(t, 0, RenderTree(root, &rec, Options{}))
	assert.Equal(t, 1, RenderTree(root, &rec, Options{Features: true}))
	assert.Equal(t, 2, RenderTree(root, &rec, Options{Features: true, SpanningTree: true}))
	assert.Len(t, rec.Calls, 3)

	rec.Reset()
	assert.Empty(t, rec.Calls)
}

func TestRecorderDump(t *testing.T) {
	var rec Recorder
	rec.Cylinder(geom.Translation(mgl32.Vec3{1, 2, 3}), 2, 0.2, 0.3, Black)
	rec.LineSegment(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, Green, 20)

	var buf bytes.Buffer
	require.NoError(t, rec.Dump(&buf))
	out := buf.String()
	assert.Contains(t, out, "cylinder at [1 2 3] axis=2 length=0.2 radius=0.3")
	assert.Contains(t, out, "width=20")
}
