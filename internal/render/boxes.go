package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"joint-engine/internal/geom"
)

// boxes draws parts as a lit unit cube mesh scaled to size. The mesh and material are
// created on first draw so that GPU resources are allocated after the window/OpenGL
// context exists.
type boxes struct {
	ready    bool
	mesh     rl.Mesh
	mtl      rl.Material
	viewPos  [3]float32
	lightDir [3]float32
}

func newBoxes() *boxes {
	return &boxes{lightDir: [3]float32{0.5, 1, 0.5}}
}

// setView sets camera position and direction-to-light for this frame.
func (b *boxes) setView(viewPos, lightDir [3]float32) {
	b.viewPos = viewPos
	b.lightDir = lightDir
}

func (b *boxes) ensure() {
	if b.ready {
		return
	}
	b.mesh = rl.GenMeshCube(1, 1, 1)
	b.mtl = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		b.mtl.Shader = shader
	}
	b.ready = true
}

// draw draws one box of the given size at frame, tinted c.
// Must be called between BeginMode3D and EndMode3D.
func (b *boxes) draw(frame geom.Frame, size mgl32.Vec3, c rl.Color) {
	b.ensure()
	if albedo := b.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = c
	}
	b.setUniforms()
	transform := rl.MatrixMultiply(rl.MatrixScale(size.X(), size.Y(), size.Z()), frameMatrix(frame))
	rl.DrawMesh(b.mesh, b.mtl, transform)
}

// setUniforms sets viewPos, lightDir and the fixed light terms (cgo-safe: local arrays).
func (b *boxes) setUniforms() {
	shader := b.mtl.Shader
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := b.viewPos
	lightDir := b.lightDir
	amb := ambient
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
}

// ambient keeps shadowed faces from going pure black.
var ambient = [4]float32{0.25, 0.27, 0.3, 1.0}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float diffuse = max(dot(N, L), 0.0) * 0.75;
  float spec = pow(max(dot(N, normalize(L + V)), 0.0), 48.0) * 0.3;
  vec3 rgb = colDiffuse.rgb * (ambient.rgb + diffuse) + vec3(spec);
  finalColor = vec4(rgb, colDiffuse.a);
}
`
)
