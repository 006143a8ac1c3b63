package itemlist

import (
	"github.com/dendritic/itemlist/fp"
	"github.com/dendritic/itemlist/position"
)

func (il *ItemList[T, V]) isRoot(node position.Node) bool {
	return node.ID() == il.provider.RootNode().ID()
}

// checkRootBounds enforces the "root admits only slots 0 and 1" rule (§7)
// for a write touching slots [slot, slot+length).
func (il *ItemList[T, V]) checkRootBounds(node position.Node, slot, length int) error {
	if length == 0 {
		return nil
	}
	if il.isRoot(node) && slot+length-1 > 1 {
		il.tracer().Errorf("rejecting write to root slot %d..%d: root only admits slots 0 and 1", slot, slot+length-1)
		return ErrInvalidPosition
	}
	return nil
}

// Set writes item starting at startPos, overwriting whatever previously
// occupied those slots (§4.3).
func (il *ItemList[T, V]) Set(startPos position.Position, item T) error {
	node, err := il.provider.GetNodeFor(startPos)
	if err != nil {
		return err
	}
	length := il.kind.Length(item)
	if length == 0 {
		return nil
	}
	if err := il.checkRootBounds(node, startPos.Slot, length); err != nil {
		return err
	}

	rec := il.getOrCreateRecord(node)
	newValues, displaced := rec.values.Set(startPos.Slot, length, func(k int) V {
		return il.kind.ValueAt(item, k)
	})
	rec.values = newValues
	delta := length - displaced.Size()
	il.maintain(node, delta)
	return nil
}

// Delete writes n absent slots starting at startPos (§4.3).
func (il *ItemList[T, V]) Delete(startPos position.Position, n int) error {
	if n < 0 {
		il.tracer().Errorf("rejecting delete: count %d is negative", n)
		return ErrInvalidCount
	}
	node, err := il.provider.GetNodeFor(startPos)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if err := il.checkRootBounds(node, startPos.Slot, n); err != nil {
		return err
	}
	rec, ok := il.state[node.ID()]
	if !ok {
		return nil // nothing present here to delete
	}
	newValues, displaced := rec.values.Delete(startPos.Slot, n)
	rec.values = newValues
	delta := -displaced.Size()
	il.maintain(node, delta)
	return nil
}

// maintain performs the §4.4 post-mutation bookkeeping for a write that
// changed node's own present-slot count by delta.
func (il *ItemList[T, V]) maintain(node position.Node, delta int) {
	il.invalidateCache()

	if delta != 0 {
		il.tracer().Debugf("maintain: node %s delta=%d, walking ancestors to root", node.ID(), delta)
		il.length += delta
		cur := node
		for {
			rec := il.getOrCreateRecord(cur)
			rec.total += delta
			il.dropIfEmpty(cur.ID())
			il.tracer().Debugf("maintain: ancestor %s total now %d", cur.ID(), rec.total)
			parent := cur.Parent()
			if parent == nil {
				break
			}
			cur = parent
		}
	}

	values := il.valuesOf(node.ID())
	for i := 0; i < node.ChildCount(); i++ {
		child := node.Child(i)
		if rec, ok := il.state[child.ID()]; ok {
			rec.parentValuesBefore = values.GetInfo(child.NextValueIndex()).PresentBefore
			il.tracer().Debugf("maintain: child %s parentValuesBefore now %d", child.ID(), rec.parentValuesBefore)
		}
	}
}

// insertionResult packages Insert/InsertAt's (position, created-node)
// answer as a single value, the way the teacher pairs up two-result
// operations (fp.Pair) instead of widening the return list.
type insertionResult = fp.Pair[position.Position, position.Node]

// Insert allocates length(item) fresh positions immediately after prevPos
// and writes item there (§4.3).
func (il *ItemList[T, V]) Insert(prevPos position.Position, item T) (insertionResult, error) {
	length := il.kind.Length(item)
	if length == 0 {
		il.tracer().Errorf("rejecting insert: item has zero length")
		return insertionResult{}, ErrInvalidInsertion
	}
	if il.provider.EqualsPosition(prevPos, il.provider.MaxPosition()) {
		il.tracer().Errorf("rejecting insert: prevPos is the maximum sentinel")
		return insertionResult{}, ErrInvalidInsertion
	}

	nextPos, err := il.neighbourAfter(prevPos)
	if err != nil {
		return insertionResult{}, err
	}

	startPos, created, err := il.provider.CreatePositions(prevPos, nextPos, length)
	if err != nil {
		return insertionResult{}, err
	}
	if err := il.Set(startPos, item); err != nil {
		return insertionResult{}, err
	}
	return fp.P(startPos, created), nil
}

// InsertAt allocates length(item) fresh positions so that the item lands
// at list index index (i.e. immediately before the current item at index,
// or at the end if index == Length()), and writes item there (§4.3).
func (il *ItemList[T, V]) InsertAt(index int, item T) (insertionResult, error) {
	length := il.kind.Length(item)
	if length == 0 {
		il.tracer().Errorf("rejecting insertAt: item has zero length")
		return insertionResult{}, ErrInvalidInsertion
	}
	if index < 0 || index > il.length {
		il.tracer().Errorf("rejecting insertAt: index %d out of bounds [0,%d]", index, il.length)
		return insertionResult{}, ErrIndexOutOfBounds
	}

	var prevPos, nextPos position.Position
	if index == 0 {
		prevPos = il.provider.MinPosition()
	} else {
		p, err := il.PositionAt(index - 1)
		if err != nil {
			return insertionResult{}, err
		}
		prevPos = p
	}
	if il.provider.EqualsPosition(prevPos, il.provider.MaxPosition()) {
		il.tracer().Errorf("rejecting insertAt: resolved prevPos is the maximum sentinel")
		return insertionResult{}, ErrInvalidInsertion
	}
	if index == il.length {
		nextPos = il.provider.MaxPosition()
	} else {
		p, err := il.PositionAt(index)
		if err != nil {
			return insertionResult{}, err
		}
		nextPos = p
	}

	startPos, created, err := il.provider.CreatePositions(prevPos, nextPos, length)
	if err != nil {
		return insertionResult{}, err
	}
	if err := il.Set(startPos, item); err != nil {
		return insertionResult{}, err
	}
	return fp.P(startPos, created), nil
}

// neighbourAfter returns the position immediately following prevPos in
// list order, or MaxPosition if prevPos is currently the last present
// position.
func (il *ItemList[T, V]) neighbourAfter(prevPos position.Position) (position.Position, error) {
	if il.provider.EqualsPosition(prevPos, il.provider.MinPosition()) {
		if il.length == 0 {
			return il.provider.MaxPosition(), nil
		}
		return il.PositionAt(0)
	}
	idx, err := il.IndexOfPosition(prevPos, position.SearchLeft)
	if err != nil {
		return position.Position{}, err
	}
	if idx+1 >= il.length {
		return il.provider.MaxPosition(), nil
	}
	return il.PositionAt(idx + 1)
}
