package itemlist

import "github.com/dendritic/itemlist/position"

// totalOf returns the subtree total for nodeID, or 0 if it has no record.
func (il *ItemList[T, V]) totalOf(nodeID string) int {
	if r, ok := il.state[nodeID]; ok {
		return r.total
	}
	return 0
}

// IndexOfPosition answers "what list index does pos have" (§4.2). For an
// absent position, dir selects what is returned: SearchNone asks for the
// position itself to be present (answers -1 if not); SearchLeft/SearchRight
// bias towards the nearest present neighbour.
func (il *ItemList[T, V]) IndexOfPosition(pos position.Position, dir position.SearchDir) (int, error) {
	node, err := il.provider.GetNodeFor(pos)
	if err != nil {
		return 0, err
	}
	v := pos.Slot
	info := il.valuesOf(node.ID()).GetInfo(v)
	valuesBefore := info.PresentBefore

	for i := 0; i < node.ChildCount(); i++ {
		c := node.Child(i)
		if c.NextValueIndex() > v {
			break
		}
		valuesBefore += il.totalOf(c.ID())
	}

	beforeNode := il.beforeNodeOf(node)

	if info.Present {
		return valuesBefore + beforeNode, nil
	}
	switch dir {
	case position.SearchLeft:
		return valuesBefore + beforeNode - 1, nil
	case position.SearchRight:
		return valuesBefore + beforeNode, nil
	default:
		return -1, nil
	}
}

// beforeNodeOf returns the number of list-order positions strictly
// preceding the entire subtree rooted at node, using the single-entry
// memo when it is populated and valid for this exact node.
func (il *ItemList[T, V]) beforeNodeOf(node position.Node) int {
	if il.cfg.cacheEnabled && il.cacheValid && il.cacheNodeID == node.ID() {
		il.tracer().Debugf("beforeNode cache hit: node %s -> %d", node.ID(), il.cacheBeforeNode)
		return il.cacheBeforeNode
	}
	il.tracer().Debugf("beforeNode cache miss: node %s, recomputing", node.ID())
	n := il.computeBeforeNode(node)
	if il.cfg.cacheEnabled {
		il.cacheNodeID = node.ID()
		il.cacheBeforeNode = n
		il.cacheValid = true
	}
	return n
}

// computeBeforeNode walks from node up to the root, summing at each step
// the list-order positions that precede current's entire subtree within
// its parent: the parent's own present slots before current's anchor, plus
// the subtree totals of current's preceding siblings.
func (il *ItemList[T, V]) computeBeforeNode(node position.Node) int {
	total := 0
	cur := node
	for {
		parent := cur.Parent()
		if parent == nil {
			return total
		}
		if r, ok := il.state[cur.ID()]; ok {
			total += r.parentValuesBefore
		} else {
			total += il.valuesOf(parent.ID()).GetInfo(cur.NextValueIndex()).PresentBefore
		}
		for i := 0; i < parent.ChildCount(); i++ {
			sib := parent.Child(i)
			if sib.ID() == cur.ID() {
				break
			}
			total += il.totalOf(sib.ID())
		}
		il.tracer().Debugf("beforeNode walk: %s -> %s, running total %d", cur.ID(), parent.ID(), total)
		cur = parent
	}
}

// PositionAt answers "what position holds list index index" (§4.2).
func (il *ItemList[T, V]) PositionAt(index int) (position.Position, error) {
	if index < 0 || index >= il.length {
		return position.Position{}, ErrIndexOutOfBounds
	}
	remaining := index
	current := il.provider.RootNode()

descend:
	for {
		prevParentValuesBefore := 0
		lastNextValueIndex := 0

		for i := 0; i < current.ChildCount(); i++ {
			child := current.Child(i)
			childRec, ok := il.state[child.ID()]
			if !ok {
				continue
			}
			valuesBetween := childRec.parentValuesBefore - prevParentValuesBefore
			if remaining < valuesBetween {
				slot := il.valuesOf(current.ID()).FindPresentIndex(lastNextValueIndex, remaining)
				return position.Position{Node: current, Slot: slot}, nil
			}
			remaining -= valuesBetween
			if remaining < childRec.total {
				current = child
				continue descend
			}
			remaining -= childRec.total
			prevParentValuesBefore = childRec.parentValuesBefore
			lastNextValueIndex = child.NextValueIndex()
		}

		tail := il.valuesOf(current.ID()).SizeAfter(lastNextValueIndex)
		if remaining < tail {
			slot := il.valuesOf(current.ID()).FindPresentIndex(lastNextValueIndex, remaining)
			return position.Position{Node: current, Slot: slot}, nil
		}
		invariant(false, "positionAt: descent exhausted node %s children without locating index", current.ID())
		return position.Position{}, ErrInternalInvariantViolation
	}
}
