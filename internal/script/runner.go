// Package script drives a scene from text. Each line is one command, e.g.
//
//	part -size 2,2,2 -anchored Base
//	joint -part0 Workspace/Base -part1 Workspace/Arm -parent Workspace/Base Weld Hold
//	step -dt 0.0166 60
//
// Lines may carry the terminal's "cmd " prefix; blank lines and lines starting with #
// are skipped.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"joint-engine/internal/adorn"
	"joint-engine/internal/commands"
	"joint-engine/internal/logger"
	"joint-engine/internal/physics"
	"joint-engine/internal/scene"
)

// DefaultDt is the step used when a step command gives no -dt.
const DefaultDt = float32(1.0 / 60)

// Runner owns a data model and executes script commands against it.
// A Runner is not safe for concurrent use.
type Runner struct {
	root  *scene.Folder
	ws    *scene.Workspace
	reg   *commands.Registry
	log   *logger.Logger
	out   io.Writer
	opts  adorn.Options
	dt    float32
	steps int
}

// New returns a Runner over a fresh data model. Command results are logged to log,
// which may be nil. world, when not nil, backs the Workspace.
func New(log *logger.Logger, world *physics.World) *Runner {
	root, ws := scene.NewDataModel(world)
	ws.World().SetLogger(log)

	r := &Runner{
		root: root,
		ws:   ws,
		reg:  commands.NewRegistry(),
		log:  log,
		out:  io.Discard,
		opts: adorn.Options{SpanningTree: true, Features: true},
		dt:   DefaultDt,
	}
	r.registerCommands()
	return r
}

// Root returns the data model root.
func (r *Runner) Root() *scene.Folder { return r.root }

// Workspace returns the simulated workspace.
func (r *Runner) Workspace() *scene.Workspace { return r.ws }

// Registry exposes the command registry, e.g. for a help listing.
func (r *Runner) Registry() *commands.Registry { return r.reg }

// SetOutput sets where dump, props and adorn write. The default discards.
func (r *Runner) SetOutput(w io.Writer) { r.out = w }

// SetAdornOptions sets the adornment families drawn by the adorn command.
func (r *Runner) SetAdornOptions(opts adorn.Options) { r.opts = opts }

// AdornOptions returns the adornment families in effect.
func (r *Runner) AdornOptions() adorn.Options { return r.opts }

// SetDefaultDt sets the step length used when a step command has no -dt.
func (r *Runner) SetDefaultDt(dt float32) {
	if dt > 0 {
		r.dt = dt
	}
}

// Steps returns how many world steps the runner has taken.
func (r *Runner) Steps() int { return r.steps }

// Exec runs one line.
func (r *Runner) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args, ok := commands.Parse(line)
	if !ok {
		args = commands.Split(line)
	}
	if len(args) == 0 {
		return nil
	}
	return r.reg.Execute(args)
}

// Run executes every line of rd and stops at the first failing one.
func (r *Runner) Run(rd io.Reader) error {
	sc := bufio.NewScanner(rd)
	n := 0
	for sc.Scan() {
		n++
		if err := r.Exec(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

// Lookup resolves a slash separated path from the root. The leading "DataModel" may
// be omitted.
func (r *Runner) Lookup(path string) (scene.Node, error) {
	return scene.Find(r.root, path)
}

// Step advances the workspace n times by dt.
func (r *Runner) Step(dt float32, n int) {
	for i := 0; i < n; i++ {
		r.ws.Step(dt)
		r.steps++
	}
}
