package scene

import (
	"joint-engine/internal/physics"
)

// Folder is a plain container. Nodes under a Folder are not attached to any world
// even when the Folder itself sits in a Workspace.
type Folder struct {
	Instance
}

// NewFolder returns a detached Folder.
func NewFolder(name string) *Folder {
	f := &Folder{}
	Init(f, name)
	return f
}

func (f *Folder) ClassName() string { return "Folder" }

// IsPlain reports whether n is a plain container.
func IsPlain(n Node) bool {
	_, ok := n.(*Folder)
	return ok
}

// Workspace is the simulated subtree. It owns the physics world its contents are
// mirrored into.
type Workspace struct {
	Instance
	world *physics.World
}

// NewWorkspace returns a Workspace backed by world, or by a fresh world if nil.
func NewWorkspace(world *physics.World) *Workspace {
	if world == nil {
		world = physics.NewWorld()
	}
	ws := &Workspace{world: world}
	Init(ws, "Workspace")
	return ws
}

func (ws *Workspace) ClassName() string { return "Workspace" }

// World returns the workspace's physics world.
func (ws *Workspace) World() *physics.World {
	return ws.world
}

// Step advances the workspace world by dt seconds.
func (ws *Workspace) Step(dt float32) {
	ws.world.Step(dt)
}

// FindWorkspace returns the nearest Workspace strictly above n.
func FindWorkspace(n Node) *Workspace {
	ws, _ := FindAncestorOf[*Workspace](n)
	return ws
}

// WorldIfInWorkspace returns the world of the nearest Workspace above n, or nil.
func WorldIfInWorkspace(n Node) *physics.World {
	if ws := FindWorkspace(n); ws != nil {
		return ws.world
	}
	return nil
}

// NewDataModel returns a root Folder named "DataModel" holding a Workspace that
// simulates world. A nil world gets a fresh one.
func NewDataModel(world *physics.World) (*Folder, *Workspace) {
	root := NewFolder("DataModel")
	ws := NewWorkspace(world)
	// A fresh workspace under a fresh folder cannot be rejected.
	_ = ws.SetParent(root)
	return root, ws
}
