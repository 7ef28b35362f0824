package props

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ParseFloat32 parses a decimal number.
func ParseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// ParseVec3 parses "x,y,z" (spaces allowed).
func ParseVec3(s string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("expected x,y,z, got %q", s)
	}
	for i, p := range parts {
		f, err := ParseFloat32(p)
		if err != nil {
			return v, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}
	return v, nil
}

// FormatVec3 renders v the way ParseVec3 reads it.
func FormatVec3(v mgl32.Vec3) string {
	return fmt.Sprintf("%g,%g,%g", v[0], v[1], v[2])
}

// ParseBool accepts the strconv forms plus on/off and yes/no.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}

// Owned adapts an owner-independent parser to the descriptor parser signature.
func Owned[O any, V any](p func(string) (V, error)) func(O, string) (V, error) {
	return func(_ O, s string) (V, error) { return p(s) }
}
