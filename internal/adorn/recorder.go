package adorn

import (
	"fmt"
	"image/color"
	"io"

	"github.com/go-gl/mathgl/mgl32"

	"joint-engine/internal/geom"
)

// Call is one recorded draw.
type Call struct {
	Kind   string // "cylinder" or "line"
	Frame  geom.Frame
	Axis   int
	Length float32
	Radius float32
	From   mgl32.Vec3
	To     mgl32.Vec3
	Width  float32
	Color  color.RGBA
}

// Recorder is an Adorn that keeps every call. The headless CLI prints it.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Cylinder(frame geom.Frame, axis int, length, radius float32, c color.RGBA) {
	r.Calls = append(r.Calls, Call{Kind: "cylinder", Frame: frame, Axis: axis, Length: length, Radius: radius, Color: c})
}

func (r *Recorder) LineSegment(from, to mgl32.Vec3, c color.RGBA, width float32) {
	r.Calls = append(r.Calls, Call{Kind: "line", From: from, To: to, Width: width, Color: c})
}

// Reset drops the recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Dump writes one line per call.
func (r *Recorder) Dump(w io.Writer) error {
	for _, c := range r.Calls {
		var err error
		switch c.Kind {
		case "cylinder":
			_, err = fmt.Fprintf(w, "cylinder at %v axis=%d length=%g radius=%g color=%v\n",
				c.Frame.Translation, c.Axis, c.Length, c.Radius, c.Color)
		default:
			_, err = fmt.Fprintf(w, "line %v -> %v width=%g color=%v\n", c.From, c.To, c.Width, c.Color)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
