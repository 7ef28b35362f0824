package scene

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FindFirstChild returns the first direct child named name.
func (in *Instance) FindFirstChild(name string) Node {
	for _, c := range in.children {
		if c.AsInstance().name == name {
			return c
		}
	}
	return nil
}

// FindFirstDescendant returns the first node named name in depth-first order,
// not counting in itself.
func (in *Instance) FindFirstDescendant(name string) Node {
	for _, c := range in.children {
		if c.AsInstance().name == name {
			return c
		}
		if d := c.AsInstance().FindFirstDescendant(name); d != nil {
			return d
		}
	}
	return nil
}

// Walk visits in and its descendants depth-first. Returning false from fn skips the
// children of the visited node.
func (in *Instance) Walk(fn func(n Node) bool) {
	if !fn(in.This) {
		return
	}
	for _, c := range in.Children() {
		c.AsInstance().Walk(fn)
	}
}

// FindByID returns the node under root (root included) whose Id is id, or nil.
func FindByID(root Node, id uuid.UUID) Node {
	var found Node
	root.AsInstance().Walk(func(n Node) bool {
		if found != nil {
			return false
		}
		if n.AsInstance().id == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Find resolves a slash separated child path from root, e.g. "Workspace/Base/Hinge".
// A leading root name is accepted and skipped. A path that is a node Id resolves to
// that node anywhere under root.
func Find(root Node, path string) (Node, error) {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return root, nil
	}
	if id, err := uuid.Parse(path); err == nil {
		if n := FindByID(root, id); n != nil {
			return n, nil
		}
		return nil, fmt.Errorf("scene: no node with id %s under %s", id, root.AsInstance().FullName())
	}
	elems := strings.Split(path, "/")
	if elems[0] == root.AsInstance().name && root.AsInstance().FindFirstChild(elems[0]) == nil {
		elems = elems[1:]
	}
	cur := root
	for _, e := range elems {
		next := cur.AsInstance().FindFirstChild(e)
		if next == nil {
			return nil, fmt.Errorf("scene: no child %q under %s", e, cur.AsInstance().FullName())
		}
		cur = next
	}
	return cur, nil
}

// FindAncestorOf returns the nearest strict ancestor of n that is a T.
func FindAncestorOf[T Node](n Node) (T, bool) {
	for p := n.AsInstance().parent; p != nil; p = p.AsInstance().parent {
		if t, ok := p.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
