package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Extents is an axis aligned box given by its minimum and maximum corners.
type Extents struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// FromSize returns extents of the given size centred on the origin.
// Negative components are treated as their magnitude.
func FromSize(size mgl32.Vec3) Extents {
	half := Abs(size).Mul(0.5)
	return Extents{Min: half.Mul(-1), Max: half}
}

// Size returns Max - Min.
func (e Extents) Size() mgl32.Vec3 {
	return e.Max.Sub(e.Min)
}

// Center returns the midpoint of the box.
func (e Extents) Center() mgl32.Vec3 {
	return e.Min.Add(e.Max).Mul(0.5)
}

// FaceCenter returns the centre of the face whose outward normal is n.
func (e Extents) FaceCenter(n NormalID) mgl32.Vec3 {
	c := e.Center()
	a := n.Axis()
	if n.Positive() {
		c[a] = e.Max[a]
	} else {
		c[a] = e.Min[a]
	}
	return c
}

// Corner returns corner i (bit 0 selects max X, bit 1 max Y, bit 2 max Z).
func (e Extents) Corner(i int) mgl32.Vec3 {
	c := e.Min
	for a := 0; a < 3; a++ {
		if i&(1<<a) != 0 {
			c[a] = e.Max[a]
		}
	}
	return c
}

// Transform returns the world space bounding box of e placed by f.
func (e Extents) Transform(f Frame) Extents {
	first := f.PointToWorld(e.Corner(0))
	out := Extents{Min: first, Max: first}
	for i := 1; i < 8; i++ {
		p := f.PointToWorld(e.Corner(i))
		for a := 0; a < 3; a++ {
			out.Min[a] = math32.Min(out.Min[a], p[a])
			out.Max[a] = math32.Max(out.Max[a], p[a])
		}
	}
	return out
}

// Overlaps reports whether the two boxes intersect with positive volume.
func (e Extents) Overlaps(o Extents) bool {
	for a := 0; a < 3; a++ {
		if math32.Min(e.Max[a], o.Max[a])-math32.Max(e.Min[a], o.Min[a]) <= 0 {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside the box, borders included, with tolerance eps.
func (e Extents) Contains(p mgl32.Vec3, eps float32) bool {
	for a := 0; a < 3; a++ {
		if p[a] < e.Min[a]-eps || p[a] > e.Max[a]+eps {
			return false
		}
	}
	return true
}
