package itemlist

import (
	"sort"

	"github.com/dendritic/itemlist/sparse"
)

// SlotValue is one present (slot, value) pair — the shape a save/load
// codec works with instead of a raw sparse.Sequence.
type SlotValue[V any] struct {
	Slot  int
	Value V
}

// NodeState is one entry of SaveOrdered's output.
type NodeState struct {
	NodeID  string
	Encoded any
}

func flattenSequence[V any](values sparse.Sequence[V]) []SlotValue[V] {
	var out []SlotValue[V]
	sl := sparse.NewSlicer(values)
	for slot, v := range sl.NextSlice(nil) {
		out = append(out, SlotValue[V]{Slot: slot, Value: v})
	}
	return out
}

func sequenceFromSlots[V any](slots []SlotValue[V]) (sparse.Sequence[V], int) {
	var seq sparse.Sequence[V]
	for _, sv := range slots {
		v := sv.Value
		seq, _ = seq.Set(sv.Slot, 1, func(int) V { return v })
	}
	return seq, seq.Size()
}

// Save produces a mapping nodeID → encode(values) containing exactly the
// nodes whose sparse sequence is non-empty (§4.6).
func (il *ItemList[T, V]) Save(encode func(values []SlotValue[V]) any) map[string]any {
	out := make(map[string]any, len(il.state))
	for nodeID, r := range il.state {
		if r.values.IsEmpty() {
			continue
		}
		out[nodeID] = encode(flattenSequence(r.values))
	}
	return out
}

// SaveOrdered is Save's deterministic twin: node IDs in lexicographic
// order alongside their encoded values, for callers that need reproducible
// serialization (§4.6 "a deterministic emission order ... is required
// only for byte-stable serialisation").
func (il *ItemList[T, V]) SaveOrdered(encode func(values []SlotValue[V]) any) []NodeState {
	ids := make([]string, 0, len(il.state))
	for nodeID, r := range il.state {
		if !r.values.IsEmpty() {
			ids = append(ids, nodeID)
		}
	}
	sort.Strings(ids)
	out := make([]NodeState, 0, len(ids))
	for _, id := range ids {
		out = append(out, NodeState{NodeID: id, Encoded: encode(flattenSequence(il.state[id].values))})
	}
	return out
}

// Load clears the list, then for each (nodeID, stored) pair resolves the
// node through the provider (ErrMissingNode if unknown), installs
// decode(stored) as that node's values, and runs the §4.4 maintenance
// pass. Entry order in state does not affect the resulting list.
func (il *ItemList[T, V]) Load(state map[string]any, decode func(any) []SlotValue[V]) error {
	il.Clear()
	for nodeID, stored := range state {
		node, ok := il.provider.GetNode(nodeID)
		if !ok {
			return ErrMissingNode
		}
		seq, total := sequenceFromSlots(decode(stored))
		rec := il.getOrCreateRecord(node)
		rec.values = seq
		il.maintain(node, total)
	}
	return nil
}
