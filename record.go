package itemlist

import (
	"github.com/dendritic/itemlist/position"
	"github.com/dendritic/itemlist/sparse"
)

// record is the per-node data record from §3.2: {total, parentValuesBefore,
// values}. A node is present in the state map iff total > 0; the moment a
// mutation drives total to zero, its record is deleted (§3.2 "Lifecycle").
type record[V any] struct {
	total              int
	parentValuesBefore int
	values             sparse.Sequence[V]
}

// getRecord returns the record for nodeID, or nil if the node currently has
// no present value in its subtree.
func (il *ItemList[T, V]) getRecord(nodeID string) *record[V] {
	return il.state[nodeID]
}

// valuesOf returns the record's values, or an empty sequence if the node
// has no record — reading an absent node's values is always legal and
// always answers "nothing here".
func (il *ItemList[T, V]) valuesOf(nodeID string) sparse.Sequence[V] {
	if r, ok := il.state[nodeID]; ok {
		return r.values
	}
	return nil
}

// getOrCreateRecord returns node's record, creating one on demand (§3.2
// "Lifecycle": a record is created on demand when a mutator first touches a
// node or an ancestor of a touched node). A freshly created record has its
// parentValuesBefore reseeded from the parent's current values, per the same
// section — it is not simply zeroed, since the parent may already hold
// present values that precede node in list order.
func (il *ItemList[T, V]) getOrCreateRecord(node position.Node) *record[V] {
	id := node.ID()
	if r, ok := il.state[id]; ok {
		return r
	}
	r := &record[V]{}
	if parent := node.Parent(); parent != nil {
		r.parentValuesBefore = il.valuesOf(parent.ID()).GetInfo(node.NextValueIndex()).PresentBefore
	}
	il.state[id] = r
	return r
}

// dropIfEmpty deletes nodeID's record the moment its total falls to zero.
func (il *ItemList[T, V]) dropIfEmpty(nodeID string) {
	if r, ok := il.state[nodeID]; ok && r.total == 0 {
		delete(il.state, nodeID)
	}
}
