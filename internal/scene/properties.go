package scene

import (
	"fmt"

	"github.com/google/uuid"

	"joint-engine/internal/geom"
	"joint-engine/internal/physics"
	"joint-engine/internal/props"
)

// PropertyProvider is implemented by nodes that publish a property table.
// Every Instance does; classes override Properties to extend the base table.
type PropertyProvider interface {
	Properties() *props.Table
}

// PropertiesOf returns n's property table.
func PropertiesOf(n Node) *props.Table {
	if pp, ok := n.(PropertyProvider); ok {
		return pp.Properties()
	}
	return InstanceProperties
}

// InstanceProperties is the table shared by every node.
var InstanceProperties = props.NewTable(nil,
	props.New("Name", "Data",
		func(n Node) string { return n.AsInstance().Name() },
		func(n Node, v string) { n.AsInstance().SetName(v) },
	).WithParser(props.Owned[Node](func(s string) (string, error) { return s, nil })),
	props.New[Node, uuid.UUID]("Id", "Data",
		func(n Node) uuid.UUID { return n.AsInstance().ID() }, nil).
		WithFormatter(uuid.UUID.String),
	props.New[Node, string]("ClassName", "Data",
		func(n Node) string { return n.ClassName() }, nil),
	props.New[Node, string]("Parent", "Data",
		func(n Node) string {
			if p := n.AsInstance().Parent(); p != nil {
				return p.AsInstance().FullName()
			}
			return ""
		}, nil),
)

func (in *Instance) Properties() *props.Table { return InstanceProperties }

// PartProperties extends InstanceProperties with geometry and per-face surfaces.
var PartProperties = newPartProperties()

func (p *Part) Properties() *props.Table { return PartProperties }

func newPartProperties() *props.Table {
	t := props.NewTable(InstanceProperties,
		props.New("Size", "Part", (*Part).Size, (*Part).SetSize).
			WithParser(props.Owned[*Part](props.ParseVec3)).
			WithFormatter(props.FormatVec3),
		props.New("Position", "Data", (*Part).Position, (*Part).SetPosition).
			WithParser(props.Owned[*Part](props.ParseVec3)).
			WithFormatter(props.FormatVec3),
		props.New("CFrame", "Data", (*Part).CFrame, (*Part).SetCFrame).WithFormatter(FormatFrame),
		props.New("Anchored", "Behavior", (*Part).Anchored, (*Part).SetAnchored).
			WithParser(props.Owned[*Part](props.ParseBool)),
	)
	for _, n := range geom.Faces {
		addSurfaceProperties(t, n)
	}
	return t
}

func addSurfaceProperties(t *props.Table, n geom.NormalID) {
	face := n.String()
	surface := func(p *Part) physics.Surface { return p.Surface(n) }
	update := func(p *Part, fn func(s *physics.Surface)) {
		s := p.Surface(n)
		fn(&s)
		p.SetSurface(n, s)
	}
	t.Add(props.New(face+"Surface", "Surface",
		func(p *Part) physics.SurfaceType { return surface(p).Type },
		func(p *Part, v physics.SurfaceType) { update(p, func(s *physics.Surface) { s.Type = v }) },
	).WithParser(props.Owned[*Part](physics.ParseSurfaceType)))
	t.Add(props.New(face+"SurfaceInput", "Surface Inputs",
		func(p *Part) physics.SurfaceInput { return surface(p).Input },
		func(p *Part, v physics.SurfaceInput) { update(p, func(s *physics.Surface) { s.Input = v }) },
	).WithParser(props.Owned[*Part](physics.ParseSurfaceInput)))
	t.Add(props.New(face+"ParamA", "Surface Inputs",
		func(p *Part) float32 { return surface(p).ParamA },
		func(p *Part, v float32) { update(p, func(s *physics.Surface) { s.ParamA = v }) },
	).WithParser(props.Owned[*Part](props.ParseFloat32)))
	t.Add(props.New(face+"ParamB", "Surface Inputs",
		func(p *Part) float32 { return surface(p).ParamB },
		func(p *Part, v float32) { update(p, func(s *physics.Surface) { s.ParamB = v }) },
	).WithParser(props.Owned[*Part](props.ParseFloat32)))
}

// FormatFrame renders a frame as its translation and the three rotation columns.
func FormatFrame(f geom.Frame) string {
	return fmt.Sprintf("pos=%s right=%s up=%s back=%s",
		props.FormatVec3(f.Translation),
		props.FormatVec3(f.Axis(0)), props.FormatVec3(f.Axis(1)), props.FormatVec3(f.Axis(2)))
}

// ParseNodeRef resolves a reference property value, a path or a node Id, relative to
// owner's root. An empty string or "nil" yields nil.
func ParseNodeRef(owner Node, s string) (Node, error) {
	if s == "" || s == "nil" {
		return nil, nil
	}
	return Find(Root(owner), s)
}

// Root returns the top of n's tree.
func Root(n Node) Node {
	for n.AsInstance().Parent() != nil {
		n = n.AsInstance().Parent()
	}
	return n
}
