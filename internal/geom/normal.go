package geom

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// NormalID selects one of the six axis directions of a box. Positive axes come first so
// that Opposite is (id+3)%6.
type NormalID int

const (
	NormalX NormalID = iota
	NormalY
	NormalZ
	NormalXNeg
	NormalYNeg
	NormalZNeg
	NormalUndefined
)

// Faces lists the six valid normals in index order.
var Faces = [6]NormalID{NormalX, NormalY, NormalZ, NormalXNeg, NormalYNeg, NormalZNeg}

var normalNames = [...]string{"Right", "Top", "Back", "Left", "Bottom", "Front", "Undefined"}

// Axis returns 0, 1 or 2 for the X, Y or Z axis.
func (n NormalID) Axis() int {
	return int(n) % 3
}

// Positive reports whether the normal points along +X, +Y or +Z.
func (n NormalID) Positive() bool {
	return n >= NormalX && n <= NormalZ
}

// Valid reports whether n names one of the six faces.
func (n NormalID) Valid() bool {
	return n >= NormalX && n < NormalUndefined
}

// Opposite returns the normal pointing the other way along the same axis.
func (n NormalID) Opposite() NormalID {
	return (n + 3) % NormalUndefined
}

// Vector returns the unit vector of the normal.
func (n NormalID) Vector() mgl32.Vec3 {
	var v mgl32.Vec3
	if n.Positive() {
		v[n.Axis()] = 1
	} else {
		v[n.Axis()] = -1
	}
	return v
}

// Matrix returns the rotation whose Z column is the normal. The Y column is the face's
// "up" (world +Y, or -Z/+Z for the top/bottom faces) and X is "right", so that the
// columns form a right handed basis.
func (n NormalID) Matrix() mgl32.Mat3 {
	w := n.Vector()
	up := mgl32.Vec3{0, 1, 0}
	switch n {
	case NormalY:
		up = mgl32.Vec3{0, 0, -1}
	case NormalYNeg:
		up = mgl32.Vec3{0, 0, 1}
	}
	u := up.Cross(w)
	return mgl32.Mat3FromCols(u, up, w)
}

func (n NormalID) String() string {
	if n < 0 || int(n) >= len(normalNames) {
		return fmt.Sprintf("NormalID(%d)", int(n))
	}
	return normalNames[n]
}

// ParseNormalID accepts surface names (Right, Top, ...) or axis names (X, -X, ...),
// case-insensitively.
func ParseNormalID(s string) (NormalID, error) {
	s = strings.TrimSpace(s)
	for i, name := range normalNames[:NormalUndefined] {
		if strings.EqualFold(s, name) {
			return NormalID(i), nil
		}
	}
	switch strings.ToUpper(s) {
	case "X", "+X":
		return NormalX, nil
	case "Y", "+Y":
		return NormalY, nil
	case "Z", "+Z":
		return NormalZ, nil
	case "-X":
		return NormalXNeg, nil
	case "-Y":
		return NormalYNeg, nil
	case "-Z":
		return NormalZNeg, nil
	}
	return NormalUndefined, fmt.Errorf("unknown normal %q", s)
}

// NormalFromVector returns the normal closest to v. Ties go to the lower axis.
func NormalFromVector(v mgl32.Vec3) NormalID {
	axis := 0
	for i := 1; i < 3; i++ {
		if math32.Abs(v[i]) > math32.Abs(v[axis]) {
			axis = i
		}
	}
	if v[axis] < 0 {
		return NormalID(axis + 3)
	}
	return NormalID(axis)
}

// NormalFromMatrix returns the normal closest to the Z column of m, the inverse of
// NormalID.Matrix for axis aligned rotations.
func NormalFromMatrix(m mgl32.Mat3) NormalID {
	return NormalFromVector(m.Col(2))
}

// ObjectToUvw expresses an object space vector in the (u, v, w) basis of face n:
// u right, v up, w along the normal.
func ObjectToUvw(v mgl32.Vec3, n NormalID) mgl32.Vec3 {
	return n.Matrix().Transpose().Mul3x1(v)
}

// UvwToObject is the inverse of ObjectToUvw.
func UvwToObject(uvw mgl32.Vec3, n NormalID) mgl32.Vec3 {
	return n.Matrix().Mul3x1(uvw)
}

// Abs returns the component-wise absolute value of v.
func Abs(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(v[0]), math32.Abs(v[1]), math32.Abs(v[2])}
}
