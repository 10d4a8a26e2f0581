package tracker

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/mpyw/capturelint/internal/decl"
)

// ID identifies a tracker within its arena.
type ID int

// None is the parent of outermost trackers.
const None ID = -1

// AncestorPolicy decides what a class reference does when the class is
// watched by an enclosing tracker rather than by the active one.
type AncestorPolicy int

const (
	// MarkAncestor sets the usage flag of the nearest enclosing tracker
	// watching the class.
	MarkAncestor AncestorPolicy = iota
	// DetectAncestor stops at the nearest enclosing tracker watching the
	// class and changes nothing.
	DetectAncestor
)

func (p AncestorPolicy) String() string {
	switch p {
	case MarkAncestor:
		return "mark"
	case DetectAncestor:
		return "detect"
	default:
		return fmt.Sprintf("ancestor-policy-invalid(%d)", int(p))
	}
}

type node struct {
	owner    *decl.Decl
	watched  *decl.Decl
	parent   ID
	children []ID

	used     bool
	captured *linkedhashset.Set
	outer    *decl.Decl
}

// Arena owns a forest of trackers.
type Arena struct {
	nodes  []node
	policy AncestorPolicy
}

// NewArena returns an empty arena.
func NewArena(policy AncestorPolicy) *Arena {
	return &Arena{policy: policy}
}

// New creates a tracker for owner and registers it as the last child of
// parent. Pass None for an outermost tracker and nil for no watched class.
func (a *Arena) New(owner *decl.Decl, parent ID, watched *decl.Decl) ID {
	if owner == nil {
		panic("tracker: nil owner")
	}
	id := ID(len(a.nodes))
	if parent != None {
		a.check(parent)
	}
	a.nodes = append(a.nodes, node{
		owner:   owner,
		watched: watched,
		parent:  parent,
	})
	if parent != None {
		p := &a.nodes[parent]
		p.children = append(p.children, id)
	}
	return id
}

// Len returns the number of trackers.
func (a *Arena) Len() int {
	return len(a.nodes)
}

func (a *Arena) check(id ID) {
	if id < 0 || int(id) >= len(a.nodes) {
		panic(fmt.Sprintf("tracker: unknown tracker %d", id))
	}
}

func (a *Arena) node(id ID) *node {
	a.check(id)
	return &a.nodes[id]
}

// Owner returns the declaration the tracker represents.
func (a *Arena) Owner(id ID) *decl.Decl {
	return a.node(id).owner
}

// Watched returns the class the tracker watches, or nil.
func (a *Arena) Watched(id ID) *decl.Decl {
	return a.node(id).watched
}

// Parent returns the enclosing tracker, or None.
func (a *Arena) Parent(id ID) ID {
	return a.node(id).parent
}

// Children returns the nested trackers in creation order.
func (a *Arena) Children(id ID) []ID {
	return a.node(id).children
}

// IsUsed reports whether the watched class was referenced.
func (a *Arena) IsUsed(id ID) bool {
	return a.node(id).used
}

// Captured returns the tracker's own captures in insertion order. Children
// are not included.
func (a *Arena) Captured(id ID) []*decl.Decl {
	n := a.node(id)
	if n.captured == nil {
		return nil
	}
	out := make([]*decl.Decl, 0, n.captured.Size())
	for _, v := range n.captured.Values() {
		out = append(out, v.(*decl.Decl))
	}
	return out
}

// OuterClass returns the class whose instance the tracker's subtree depends
// on. The tracker's own resolution wins; otherwise the first child (in
// creation order) that resolves one.
func (a *Arena) OuterClass(id ID) *decl.Decl {
	n := a.node(id)
	if n.outer != nil {
		return n.outer
	}
	for _, child := range n.children {
		if outer := a.OuterClass(child); outer != nil {
			return outer
		}
	}
	return nil
}

// TriggerUsed classifies a reference to d made from the body of the tracker's
// owner.
func (a *Arena) TriggerUsed(id ID, d *decl.Decl) {
	n := a.node(id)
	if d == nil {
		panic("tracker: nil reference")
	}

	switch d.Kind {
	case decl.Property, decl.PropertyAccessor:
		n.setOuter(d.Parent)

	case decl.Variable:
		if !decl.IsAncestor(n.owner, d, true) {
			n.capture(d)
		}

	case decl.Function:
		if d.HasReceiverParam {
			return
		}
		parent := d.Parent
		if parent != nil && parent.Kind == decl.Class {
			if !d.HasDispatchReceiver || decl.IsAncestor(parent, n.owner, true) {
				n.setOuter(parent)
			}
			return
		}
		// Local function.
		if parent != nil && !parent.IsContainer() && !decl.IsAncestor(n.owner, d, true) {
			n.capture(d)
		}

	case decl.Class:
		if n.watched == d {
			n.used = true
			return
		}
		for p := n.parent; p != None; p = a.nodes[p].parent {
			anc := &a.nodes[p]
			if anc.watched != d {
				continue
			}
			if a.policy == MarkAncestor {
				anc.used = true
			}
			break
		}

	case decl.Package:
		// Packages are never instances or values.

	default:
		panic(fmt.Sprintf("tracker: unexpected %s", d))
	}
}

func (n *node) setOuter(class *decl.Decl) {
	if n.outer != nil || class == nil || class.Kind != decl.Class {
		return
	}
	n.outer = class
}

func (n *node) capture(d *decl.Decl) {
	if n.captured == nil {
		n.captured = linkedhashset.New()
	}
	n.captured.Add(d)
}

// HasCaptured reports whether the tracker or any descendant captured
// anything, regardless of who asks.
func (a *Arena) HasCaptured(id ID) bool {
	n := a.node(id)
	if n.captured != nil {
		if n.captured.Empty() {
			panic("tracker: empty captured set")
		}
		return true
	}
	for _, child := range n.children {
		if a.HasCaptured(child) {
			return true
		}
	}
	return false
}

// ForEachCaptured calls visit for every symbol captured in the tracker's
// subtree that is not declared inside requestor. Each symbol is visited at
// most once.
func (a *Arena) ForEachCaptured(id ID, requestor *decl.Decl, visit func(*decl.Decl)) {
	a.forEachCaptured(id, requestor, hashset.New(), visit)
}

func (a *Arena) forEachCaptured(id ID, requestor *decl.Decl, visited *hashset.Set, visit func(*decl.Decl)) {
	n := a.node(id)
	if n.captured != nil {
		for _, v := range n.captured.Values() {
			d := v.(*decl.Decl)
			if decl.IsAncestor(requestor, d, true) || visited.Contains(d) {
				continue
			}
			visited.Add(d)
			visit(d)
		}
	}
	for _, child := range n.children {
		a.forEachCaptured(child, requestor, visited, visit)
	}
}

// CollectCaptured returns what ForEachCaptured would visit, in order.
func (a *Arena) CollectCaptured(id ID, requestor *decl.Decl) []*decl.Decl {
	var out []*decl.Decl
	a.ForEachCaptured(id, requestor, func(d *decl.Decl) {
		out = append(out, d)
	})
	return out
}
