package script

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"joint-engine/internal/adorn"
	"joint-engine/internal/commands"
	"joint-engine/internal/joints"
	"joint-engine/internal/physics"
	"joint-engine/internal/props"
	"joint-engine/internal/scene"
)

// ErrUsage is returned when a command gets the wrong positional arguments.
var ErrUsage = errors.New("usage")

// jointOwner is implemented by every node that owns a physics joint.
type jointOwner interface {
	Joint() *physics.Joint
}

func (r *Runner) registerCommands() {
	for _, c := range []struct {
		name, usage string
		build       commands.Builder
	}{
		{"folder", "folder [-parent path] name", r.folderCmd},
		{"part", "part [-parent path] [-size x,y,z] [-pos x,y,z] [-anchored] name", r.partCmd},
		{"joint", "joint [-parent path] [-part0 path] [-part1 path] type [name]", r.jointCmd},
		{"feature", "feature [-parent path] [-face f] [-tb Top|Center|Bottom] [-lr Left|Center|Right] [-io Edge|Inset|Center] feature|hole|motor [name]", r.featureCmd},
		{"velocitymotor", "velocitymotor [-parent path] [-hole path] [name]", r.velocityMotorCmd},
		{"parent", "parent node [newparent]", r.parentCmd},
		{"set", "set node property value", r.setCmd},
		{"get", "get node property", r.getCmd},
		{"props", "props node", r.propsCmd},
		{"join", "join a b", r.joinCmd},
		{"step", "step [-dt seconds] [n]", r.stepCmd},
		{"destroy", "destroy node", r.destroyCmd},
		{"dump", "dump [-ids] [node]", r.dumpCmd},
		{"adorn", "adorn [-spanning] [-features]", r.adornCmd},
		{"stats", "stats", r.statsCmd},
		{"help", "help", r.helpCmd},
	} {
		r.reg.Register(c.name, c.usage, c.build)
	}
}

// say writes a result line to the output and the log.
func (r *Runner) say(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	fmt.Fprintln(r.out, line)
	r.log.Log(line)
}

func (r *Runner) usage(name string) error {
	return fmt.Errorf("%w: %s", ErrUsage, r.reg.Usage(name))
}

// attach parents n under the node at path.
func (r *Runner) attach(n scene.Node, path string) error {
	parent, err := r.Lookup(path)
	if err != nil {
		return err
	}
	if err := n.AsInstance().SetParent(parent); err != nil {
		return err
	}
	r.say("created %s %s", n.ClassName(), n.AsInstance().FullName())
	return nil
}

// parseProps applies name/value pairs through n's property table, skipping empty values.
func parseProps(n scene.Node, kv ...string) error {
	tbl := scene.PropertiesOf(n)
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		p, ok := tbl.Lookup(kv[i])
		if !ok {
			return fmt.Errorf("%w: %s", props.ErrUnknown, kv[i])
		}
		if err := p.Parse(n, kv[i+1]); err != nil {
			return fmt.Errorf("%s: %w", kv[i], err)
		}
	}
	return nil
}

func (r *Runner) folderCmd(fs *flag.FlagSet) func([]string) error {
	parent := fs.String("parent", "Workspace", "parent path")
	return func(args []string) error {
		if len(args) != 1 {
			return r.usage("folder")
		}
		return r.attach(scene.NewFolder(args[0]), *parent)
	}
}

func (r *Runner) partCmd(fs *flag.FlagSet) func([]string) error {
	parent := fs.String("parent", "Workspace", "parent path")
	size := fs.String("size", "", "size x,y,z")
	pos := fs.String("pos", "", "position x,y,z")
	anchored := fs.Bool("anchored", false, "never moves")
	return func(args []string) error {
		if len(args) != 1 {
			return r.usage("part")
		}
		p := scene.NewPart(args[0], scene.DefaultPartSize)
		if err := parseProps(p, "Size", *size, "Position", *pos); err != nil {
			return err
		}
		p.SetAnchored(*anchored)
		return r.attach(p, *parent)
	}
}

func (r *Runner) jointCmd(fs *flag.FlagSet) func([]string) error {
	parent := fs.String("parent", "", "parent path (default Part0)")
	part0 := fs.String("part0", "", "path of Part0")
	part1 := fs.String("part1", "", "path of Part1")
	return func(args []string) error {
		if *parent == "" {
			*parent = *part0
		}
		if len(args) < 1 || len(args) > 2 || *parent == "" {
			return r.usage("joint")
		}
		t, err := physics.ParseJointType(args[0])
		if err != nil {
			return err
		}
		n := joints.New(t)
		if len(args) == 2 {
			n.AsInstance().SetName(args[1])
		}
		if err := r.attach(n, *parent); err != nil {
			return err
		}
		return parseProps(n, "Part0", *part0, "Part1", *part1)
	}
}

func (r *Runner) featureCmd(fs *flag.FlagSet) func([]string) error {
	parent := fs.String("parent", "", "parent part path")
	face := fs.String("face", "", "face: Right, Top, Back, Left, Bottom, Front")
	tb := fs.String("tb", "", "row: Top, Center, Bottom")
	lr := fs.String("lr", "", "column: Left, Center, Right")
	depth := fs.String("io", "", "depth: Edge, Inset, Center")
	return func(args []string) error {
		if len(args) < 1 || len(args) > 2 || *parent == "" {
			return r.usage("feature")
		}
		var n scene.Node
		switch strings.ToLower(args[0]) {
		case "feature":
			n = joints.NewFeature()
		case "hole":
			n = joints.NewHole()
		case "motor":
			n = joints.NewMotorFeature()
		default:
			return fmt.Errorf("unknown feature kind %q", args[0])
		}
		if len(args) == 2 {
			n.AsInstance().SetName(args[1])
		}
		if err := parseProps(n, "FaceId", *face, "TopBottom", *tb, "LeftRight", *lr, "InOut", *depth); err != nil {
			return err
		}
		return r.attach(n, *parent)
	}
}

func (r *Runner) velocityMotorCmd(fs *flag.FlagSet) func([]string) error {
	parent := fs.String("parent", "", "parent feature path")
	hole := fs.String("hole", "", "path of the Hole")
	return func(args []string) error {
		if len(args) > 1 || *parent == "" {
			return r.usage("velocitymotor")
		}
		vm := joints.NewVelocityMotor()
		if len(args) == 1 {
			vm.SetName(args[0])
		}
		if err := r.attach(vm, *parent); err != nil {
			return err
		}
		return parseProps(vm, "Hole", *hole)
	}
}

func (r *Runner) parentCmd(fs *flag.FlagSet) func([]string) error {
	return func(args []string) error {
		if len(args) < 1 || len(args) > 2 {
			return r.usage("parent")
		}
		n, err := r.Lookup(args[0])
		if err != nil {
			return err
		}
		var parent scene.Node
		if len(args) == 2 && args[1] != "nil" && args[1] != "" {
			if parent, err = r.Lookup(args[1]); err != nil {
				return err
			}
		}
		if err := n.AsInstance().SetParent(parent); err != nil {
			return err
		}
		if parent == nil {
			r.say("detached %s", n.AsInstance().Name())
		} else {
			r.say("moved %s", n.AsInstance().FullName())
		}
		return nil
	}
}

func (r *Runner) setCmd(fs *flag.FlagSet) func([]string) error {
	return func(args []string) error {
		if len(args) < 3 {
			return r.usage("set")
		}
		n, err := r.Lookup(args[0])
		if err != nil {
			return err
		}
		p, ok := scene.PropertiesOf(n).Lookup(args[1])
		if !ok {
			return fmt.Errorf("%w: %s.%s", props.ErrUnknown, n.ClassName(), args[1])
		}
		return p.Parse(n, strings.Join(args[2:], " "))
	}
}

func (r *Runner) getCmd(fs *flag.FlagSet) func([]string) error {
	return func(args []string) error {
		if len(args) != 2 {
			return r.usage("get")
		}
		n, err := r.Lookup(args[0])
		if err != nil {
			return err
		}
		p, ok := scene.PropertiesOf(n).Lookup(args[1])
		if !ok {
			return fmt.Errorf("%w: %s.%s", props.ErrUnknown, n.ClassName(), args[1])
		}
		s, err := p.Format(n)
		if err != nil {
			return err
		}
		r.say("%s.%s = %s", n.AsInstance().FullName(), args[1], s)
		return nil
	}
}

func (r *Runner) propsCmd(fs *flag.FlagSet) func([]string) error {
	return func(args []string) error {
		if len(args) != 1 {
			return r.usage("props")
		}
		n, err := r.Lookup(args[0])
		if err != nil {
			return err
		}
		for _, p := range scene.PropertiesOf(n).List() {
			s, err := p.Format(n)
			if err != nil {
				return err
			}
			ro := ""
			if p.ReadOnly() {
				ro = " (read-only)"
			}
			fmt.Fprintf(r.out, "%s [%s] = %s%s\n", p.Name(), p.Category(), s, ro)
		}
		return nil
	}
}

func (r *Runner) joinCmd(fs *flag.FlagSet) func([]string) error {
	return func(args []string) error {
		if len(args) != 2 {
			return r.usage("join")
		}
		a, err := r.Lookup(args[0])
		if err != nil {
			return err
		}
		b, err := r.Lookup(args[1])
		if err != nil {
			return err
		}
		pa, aIsPart := a.(*scene.Part)
		pb, bIsPart := b.(*scene.Part)
		if aIsPart && bIsPart {
			n, ok := joints.JoinParts(pa, pb)
			if !ok {
				return fmt.Errorf("%s and %s have no joinable faces", args[0], args[1])
			}
			r.say("joined %s", n.AsInstance().FullName())
			return nil
		}
		vm, ok := joints.Join(a, b)
		if !ok {
			return fmt.Errorf("%s and %s cannot join", args[0], args[1])
		}
		r.say("joined %s", vm.FullName())
		return nil
	}
}

func (r *Runner) stepCmd(fs *flag.FlagSet) func([]string) error {
	dt := fs.Float64("dt", 0, "step length in seconds (default 1/60)")
	return func(args []string) error {
		n := 1
		if len(args) > 1 {
			return r.usage("step")
		}
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 0 {
				return r.usage("step")
			}
			n = v
		}
		d := float32(*dt)
		if d <= 0 {
			d = r.dt
		}
		r.Step(d, n)
		return nil
	}
}

func (r *Runner) destroyCmd(fs *flag.FlagSet) func([]string) error {
	return func(args []string) error {
		if len(args) != 1 {
			return r.usage("destroy")
		}
		n, err := r.Lookup(args[0])
		if err != nil {
			return err
		}
		if n == scene.Node(r.root) || n == scene.Node(r.ws) {
			return fmt.Errorf("cannot destroy %s", n.AsInstance().Name())
		}
		name := n.AsInstance().FullName()
		n.AsInstance().Destroy()
		r.say("destroyed %s", name)
		return nil
	}
}

func (r *Runner) dumpCmd(fs *flag.FlagSet) func([]string) error {
	ids := fs.Bool("ids", false, "append node ids")
	return func(args []string) error {
		if len(args) > 1 {
			return r.usage("dump")
		}
		var start scene.Node = r.root
		if len(args) == 1 {
			n, err := r.Lookup(args[0])
			if err != nil {
				return err
			}
			start = n
		}
		r.dump(start, 0, *ids)
		return nil
	}
}

func (r *Runner) dump(n scene.Node, depth int, ids bool) {
	id := ""
	if ids {
		id = " id=" + n.AsInstance().ID().String()
	}
	fmt.Fprintf(r.out, "%s%s (%s)%s%s\n", strings.Repeat("  ", depth), n.AsInstance().Name(), n.ClassName(), describe(n), id)
	for _, c := range n.AsInstance().Children() {
		r.dump(c, depth+1, ids)
	}
}

// describe summarizes the simulation state of a part or joint owner.
func describe(n scene.Node) string {
	switch v := n.(type) {
	case *scene.Part:
		return fmt.Sprintf(" pos=%s size=%s", props.FormatVec3(v.Position()), props.FormatVec3(v.Size()))
	case jointOwner:
		j := v.Joint()
		s := fmt.Sprintf(" inWorld=%t active=%t", j.World() != nil, j.Active())
		if j.Type() == physics.MotorJoint {
			s += fmt.Sprintf(" angle=%g", j.CurrentAngle())
		} else if !j.IsAssembly() {
			s += fmt.Sprintf(" angle=%g", j.Angle())
		}
		return s
	}
	return ""
}

func (r *Runner) adornCmd(fs *flag.FlagSet) func([]string) error {
	spanning := fs.Bool("spanning", r.opts.SpanningTree, "draw joint span lines")
	features := fs.Bool("features", r.opts.Features, "draw holes and motor shafts")
	return func(args []string) error {
		if len(args) != 0 {
			return r.usage("adorn")
		}
		var rec adorn.Recorder
		n := adorn.RenderTree(r.root, &rec, adorn.Options{SpanningTree: *spanning, Features: *features})
		r.log.Logf("adorned %d nodes", n)
		return rec.Dump(r.out)
	}
}

func (r *Runner) statsCmd(fs *flag.FlagSet) func([]string) error {
	return func(args []string) error {
		w := r.ws.World()
		s := w.Stats()
		r.say("primitives=%d joints=%d active=%d inserts=%d removes=%d steps=%d",
			len(w.Primitives()), len(w.Joints()), w.ActiveJoints(), s.Inserts, s.Removes, w.StepID())
		return nil
	}
}

func (r *Runner) helpCmd(fs *flag.FlagSet) func([]string) error {
	return func(args []string) error {
		for _, name := range r.reg.Names() {
			fmt.Fprintln(r.out, r.reg.Usage(name))
		}
		return nil
	}
}
