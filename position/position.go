/*
Package position declares the external collaborators an ItemList is built
on top of: a tree-structured total order of opaque positions, supplied by
a position provider such as a list-CRDT allocator.

This package intentionally holds interfaces only. itemlist never creates
nodes and never decides how positions are allocated; it consumes whatever
a Provider hands it. internal/postree ships a concrete, single-threaded
Provider implementation used by this module's own test suite.
*/
package position

import "fmt"

// Node is one node of the externally owned position tree. A node has a
// parent (nil for the root), an ordered list of children, and — for every
// non-root node — a slot index in the parent it is anchored before.
type Node interface {
	// ID uniquely identifies this node among all nodes known to the
	// Provider that produced it. ItemList keys its internal per-node
	// records by ID, never by Go pointer identity.
	ID() string

	// Parent returns the parent node, or nil for the root.
	Parent() Node

	// ChildCount returns the number of children of this node, in list order.
	ChildCount() int

	// Child returns the i-th child in list order. It panics if i is out of
	// range; callers always guard with ChildCount first.
	Child(i int) Node

	// NextValueIndex returns the parent slot index at or before which this
	// child is anchored (§3.1). It is meaningless for the root and is never
	// called on it.
	NextValueIndex() int
}

// Position is an opaque (node, slot) pair identifying a location in the
// external total order.
type Position struct {
	Node Node
	Slot int
}

func (p Position) String() string {
	if p.Node == nil {
		return "<nil-position>"
	}
	return fmt.Sprintf("%s@%d", p.Node.ID(), p.Slot)
}

// SearchDir biases indexOfPosition's answer for an absent position towards
// the nearest present neighbour.
type SearchDir int

const (
	// SearchNone requires the position itself to be present.
	SearchNone SearchDir = iota
	// SearchLeft returns the index of the nearest present position at or
	// before the queried one.
	SearchLeft
	// SearchRight returns the index of the nearest present position at or
	// after the queried one.
	SearchRight
)

func (d SearchDir) String() string {
	switch d {
	case SearchLeft:
		return "left"
	case SearchRight:
		return "right"
	default:
		return "none"
	}
}

// Provider is the external collaborator that owns the position tree. It is
// read-only from ItemList's perspective except for CreatePositions, which
// ItemList calls exactly once per Insert/InsertAt, atomically, before
// applying the resulting Set.
type Provider interface {
	// GetNodeFor resolves a position to the node it references.
	GetNodeFor(pos Position) (Node, error)

	// GetNode looks up a node by ID, as previously handed out by this
	// Provider. It is used by Load to resolve stored node IDs.
	GetNode(id string) (Node, bool)

	// RootNode returns the distinguished root of the tree. The root only
	// ever admits slot indices 0 and 1.
	RootNode() Node

	// MinPosition and MaxPosition are sentinel endpoints used by InsertAt's
	// boundary cases. They are never resolved by GetNodeFor and never
	// returned by PositionAt.
	MinPosition() Position
	MaxPosition() Position

	// EqualsPosition reports whether a and b denote the same position.
	EqualsPosition(a, b Position) bool

	// CreatePositions allocates n consecutive new positions strictly
	// between prev and next, possibly creating exactly one new node to
	// hold them. It is deterministic given the current tree state. If
	// prev does not precede next in list order, or no room can be made,
	// it returns an error.
	CreatePositions(prev, next Position, n int) (start Position, created Node, err error)
}
