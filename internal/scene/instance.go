// Package scene is the scene tree: named nodes with ordered children, ancestry
// notifications and property change signals. Workspace subtrees are mirrored into a
// physics world by the nodes that live in them.
package scene

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"joint-engine/internal/signal"
)

var (
	// ErrParentRejected is returned when a node's AskSetParent refuses the new parent.
	ErrParentRejected = errors.New("parent rejected")
	// ErrCycle is returned when the new parent is the node itself or one of its descendants.
	ErrCycle = errors.New("parent would create a cycle")
	// ErrDestroyed is returned when either side of a reparent has been destroyed.
	ErrDestroyed = errors.New("node destroyed")
)

// Node is implemented by every scene class. Classes embed Instance and call Init
// from their constructor.
type Node interface {
	AsInstance() *Instance
	ClassName() string
}

// ParentAsker is implemented by nodes that restrict where they may be parented.
// It is not consulted when the new parent is nil.
type ParentAsker interface {
	AskSetParent(parent Node) bool
}

// AncestorListener receives ancestry changes before external AncestryChanged observers.
type AncestorListener interface {
	OnAncestorChanged(ev AncestorChanged)
}

// Destroyer is called once when the node is destroyed, after it has been detached
// and its children destroyed.
type Destroyer interface {
	OnDestroy()
}

// AncestorChanged describes one structural edit. Moved is the node whose parent
// changed; listeners in its subtree receive the same event.
type AncestorChanged struct {
	Moved     Node
	OldParent Node
	NewParent Node
}

// Instance is the base of every node. This points at the embedding node so that
// base methods can hand out the full value.
type Instance struct {
	This Node

	id       uuid.UUID
	name     string
	parent   Node
	children []Node

	destroyed bool

	// AncestryChanged fires on this node whenever its chain of parents changes.
	AncestryChanged signal.Signal[AncestorChanged]
	// PropertyChanged fires with the property name after a setter changes a value.
	PropertyChanged signal.Signal[string]
}

// Init wires n's embedded Instance. Constructors call it before returning n.
func Init(n Node, name string) {
	in := n.AsInstance()
	in.This = n
	in.id = uuid.New()
	in.name = name
}

func (in *Instance) AsInstance() *Instance { return in }
func (in *Instance) ClassName() string     { return "Instance" }

// ID returns the node's unique id.
func (in *Instance) ID() uuid.UUID {
	return in.id
}

// Name returns the node name.
func (in *Instance) Name() string {
	return in.name
}

// SetName renames the node.
func (in *Instance) SetName(name string) {
	if in.name == name {
		return
	}
	in.name = name
	in.RaisePropertyChanged("Name")
}

// Parent returns the parent node or nil.
func (in *Instance) Parent() Node {
	return in.parent
}

// Children returns a copy of the child list.
func (in *Instance) Children() []Node {
	return slices.Clone(in.children)
}

// IsDestroyed reports whether Destroy has run. Holders of shared references use it as
// their liveness check.
func (in *Instance) IsDestroyed() bool {
	return in.destroyed
}

// RaisePropertyChanged notifies observers that the named property changed.
func (in *Instance) RaisePropertyChanged(name string) {
	in.PropertyChanged.Emit(name)
}

// IsAncestorOf reports whether in is a strict ancestor of n.
func (in *Instance) IsAncestorOf(n Node) bool {
	for p := n.AsInstance().parent; p != nil; p = p.AsInstance().parent {
		if p.AsInstance() == in {
			return true
		}
	}
	return false
}

// FullName returns the slash separated path from the root, e.g. "DataModel/Workspace/Base".
func (in *Instance) FullName() string {
	var names []string
	for n := in.This; n != nil; n = n.AsInstance().parent {
		names = append(names, n.AsInstance().name)
	}
	slices.Reverse(names)
	return strings.Join(names, "/")
}

// SetParent moves the node under parent (nil detaches it). The edit is refused, with
// the tree left unchanged, when either node is destroyed, when it would create a cycle
// or when the node's AskSetParent rejects parent. Afterwards the node and every
// descendant receive exactly one AncestorChanged, in depth-first order, each node's
// OnAncestorChanged hook running before its AncestryChanged observers.
func (in *Instance) SetParent(parent Node) error {
	if in.destroyed {
		return fmt.Errorf("%w: %s", ErrDestroyed, in.name)
	}
	if parent == in.parent {
		return nil
	}
	if parent != nil {
		pin := parent.AsInstance()
		if pin.destroyed {
			return fmt.Errorf("%w: parent %s", ErrDestroyed, pin.name)
		}
		if pin == in || in.IsAncestorOf(parent) {
			return fmt.Errorf("%w: %s under %s", ErrCycle, in.name, pin.name)
		}
		if asker, ok := in.This.(ParentAsker); ok && !asker.AskSetParent(parent) {
			return fmt.Errorf("%w: %s cannot be parented to %s", ErrParentRejected, in.This.ClassName(), parent.ClassName())
		}
	}

	old := in.parent
	if old != nil {
		oin := old.AsInstance()
		if i := slices.Index(oin.children, in.This); i >= 0 {
			oin.children = slices.Delete(oin.children, i, i+1)
		}
	}
	in.parent = parent
	if parent != nil {
		pin := parent.AsInstance()
		pin.children = append(pin.children, in.This)
	}

	ev := AncestorChanged{Moved: in.This, OldParent: old, NewParent: parent}
	for _, n := range subtree(in.This) {
		n.AsInstance().notifyAncestorChanged(ev)
	}
	in.RaisePropertyChanged("Parent")
	return nil
}

func (in *Instance) notifyAncestorChanged(ev AncestorChanged) {
	if l, ok := in.This.(AncestorListener); ok {
		l.OnAncestorChanged(ev)
	}
	in.AncestryChanged.Emit(ev)
}

// subtree lists root and its descendants depth-first. The list is taken before any
// hook runs, so edits made by hooks do not change who is notified.
func subtree(root Node) []Node {
	out := []Node{root}
	for _, c := range root.AsInstance().children {
		out = append(out, subtree(c)...)
	}
	return out
}

// Destroy detaches the node, destroys its children, runs OnDestroy and drops every
// observer. Destroying twice is a no-op.
func (in *Instance) Destroy() {
	if in.destroyed {
		return
	}
	if in.parent != nil {
		// Detaching is never refused: nil parents skip AskSetParent.
		_ = in.SetParent(nil)
	}
	for _, c := range slices.Clone(in.children) {
		c.AsInstance().Destroy()
	}
	in.destroyed = true
	if d, ok := in.This.(Destroyer); ok {
		d.OnDestroy()
	}
	in.AncestryChanged.DisconnectAll()
	in.PropertyChanged.DisconnectAll()
}
