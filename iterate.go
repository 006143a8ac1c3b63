package itemlist

import (
	"iter"

	"github.com/dendritic/itemlist/position"
	"github.com/dendritic/itemlist/sparse"
)

// frame is one level of the explicit iteration stack (§4.5): the node being
// walked, its record (nil only for a root without one; a child without a
// record is skipped, never pushed), the index of the next child to
// consider, and a slicer over the node's own values.
type frame[V any] struct {
	node         position.Node
	rec          *record[V]
	nextChildIdx int
	slicer       *sparse.Slicer[V]
}

// Entries yields (position, value) pairs in list order for list indices in
// [start, end). Negative start/end count from Length(); an empty or
// inverted range yields nothing. The iterator is single-pass: it is not
// safe to share or replay.
func (il *ItemList[T, V]) Entries(start, end int) iter.Seq2[position.Position, V] {
	start, end = il.normalizeRange(start, end)
	return func(yield func(position.Position, V) bool) {
		if start >= end {
			return
		}
		root := il.provider.RootNode()
		stack := []*frame[V]{{
			node:   root,
			rec:    il.getRecord(root.ID()),
			slicer: sparse.NewSlicer(il.valuesOf(root.ID())),
		}}
		index := 0

		for len(stack) > 0 {
			top := stack[len(stack)-1]

			var endSlot *int
			if top.nextChildIdx < top.node.ChildCount() {
				v := top.node.Child(top.nextChildIdx).NextValueIndex()
				endSlot = &v
			}

			done := false
			for slot, val := range top.slicer.NextSlice(endSlot) {
				if index >= start {
					if !yield(position.Position{Node: top.node, Slot: slot}, val) {
						done = true
						break
					}
				}
				index++
				if index >= end {
					done = true
					break
				}
			}
			if done {
				return
			}

			if top.nextChildIdx >= top.node.ChildCount() {
				stack = stack[:len(stack)-1]
				continue
			}

			child := top.node.Child(top.nextChildIdx)
			top.nextChildIdx++
			childRec, hasRec := il.state[child.ID()]
			if !hasRec {
				continue
			}
			if index+childRec.total <= start {
				index += childRec.total
				continue
			}
			stack = append(stack, &frame[V]{
				node:   child,
				rec:    childRec,
				slicer: sparse.NewSlicer(childRec.values),
			})
		}
	}
}

// normalizeRange applies the boundary rules from §8: negative indices count
// from Length(); the result is clamped to [0, Length()].
func (il *ItemList[T, V]) normalizeRange(start, end int) (int, int) {
	n := il.length
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	return start, end
}
