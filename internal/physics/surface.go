package physics

import (
	"fmt"
	"strings"
)

// SurfaceType is the joining behaviour of one face of a primitive.
type SurfaceType int

const (
	Smooth SurfaceType = iota
	Glue
	Weld
	Studs
	Inlet
	Universal
	Hinge
	Motor
	SteppingMotor
)

var surfaceTypeNames = [...]string{"Smooth", "Glue", "Weld", "Studs", "Inlet", "Universal", "Hinge", "Motor", "SteppingMotor"}

func (s SurfaceType) String() string {
	if s < 0 || int(s) >= len(surfaceTypeNames) {
		return fmt.Sprintf("SurfaceType(%d)", int(s))
	}
	return surfaceTypeNames[s]
}

// ParseSurfaceType reads a surface type name, case-insensitively.
func ParseSurfaceType(s string) (SurfaceType, error) {
	for i, name := range surfaceTypeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return SurfaceType(i), nil
		}
	}
	return Smooth, fmt.Errorf("unknown surface type %q", s)
}

// IsRotate reports whether the surface builds a rotate-family joint.
func (s SurfaceType) IsRotate() bool {
	return s == Hinge || s == Motor || s == SteppingMotor
}

// SurfaceInput selects how a motorized surface derives its channel value each ui step.
type SurfaceInput int

const (
	NoInput SurfaceInput = iota
	Constant
	Sin
)

var surfaceInputNames = [...]string{"NoInput", "Constant", "Sin"}

func (s SurfaceInput) String() string {
	if s < 0 || int(s) >= len(surfaceInputNames) {
		return fmt.Sprintf("SurfaceInput(%d)", int(s))
	}
	return surfaceInputNames[s]
}

// ParseSurfaceInput reads a surface input name, case-insensitively.
func ParseSurfaceInput(s string) (SurfaceInput, error) {
	for i, name := range surfaceInputNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return SurfaceInput(i), nil
		}
	}
	return NoInput, fmt.Errorf("unknown surface input %q", s)
}

// Surface is the per-face joining data of a primitive.
// ParamA and ParamB feed the input channel: Constant yields ParamB, Sin yields
// ParamA*sin(ParamB*t).
type Surface struct {
	Type   SurfaceType
	Input  SurfaceInput
	ParamA float32
	ParamB float32
}
