/*
Package list is a thin facade over itemlist.ItemList for the common case of
a value-carrying list: every item occupies exactly one slot and carries one
application value. It adds no semantics beyond itemlist's core — spec.md
calls this shape "explicitly out of scope" of the core's correctness
contract, and this package honours that by staying a pass-through.
*/
package list

import (
	"github.com/dendritic/itemlist"
	"github.com/dendritic/itemlist/itemkind"
	"github.com/dendritic/itemlist/position"
)

// List is a position-keyed, index-addressable sequence of T.
type List[T any] struct {
	core *itemlist.ItemList[T, T]
}

// New builds an empty List backed by provider.
func New[T any](provider position.Provider, opts ...itemlist.Option) *List[T] {
	return &List[T]{core: itemlist.New[T, T](provider, itemkind.ValueKind[T]{}, opts...)}
}

// Length returns the number of values currently in the list.
func (l *List[T]) Length() int { return l.core.Length() }

// Has reports whether pos currently holds a value.
func (l *List[T]) Has(pos position.Position) (bool, error) { return l.core.Has(pos) }

// Get returns the value at pos, and whether one is present.
func (l *List[T]) Get(pos position.Position) (T, bool, error) { return l.core.Get(pos) }

// Set overwrites the value at pos.
func (l *List[T]) Set(pos position.Position, value T) error { return l.core.Set(pos, value) }

// Delete removes the value at pos, if any.
func (l *List[T]) Delete(pos position.Position) error { return l.core.Delete(pos, 1) }

// Insert allocates a fresh position immediately after prevPos and stores
// value there, returning the new position.
func (l *List[T]) Insert(prevPos position.Position, value T) (position.Position, error) {
	res, err := l.core.Insert(prevPos, value)
	if err != nil {
		return position.Position{}, err
	}
	pos, _ := res.Decompose()
	return pos, nil
}

// InsertAt allocates a fresh position so that value lands at list index
// index, returning the new position.
func (l *List[T]) InsertAt(index int, value T) (position.Position, error) {
	res, err := l.core.InsertAt(index, value)
	if err != nil {
		return position.Position{}, err
	}
	pos, _ := res.Decompose()
	return pos, nil
}

// Clear empties the list.
func (l *List[T]) Clear() { l.core.Clear() }

// IndexOfPosition answers "what list index does pos have".
func (l *List[T]) IndexOfPosition(pos position.Position, dir position.SearchDir) (int, error) {
	return l.core.IndexOfPosition(pos, dir)
}

// PositionAt answers "what position holds list index index".
func (l *List[T]) PositionAt(index int) (position.Position, error) {
	return l.core.PositionAt(index)
}

// Entries yields (position, value) pairs in list order for [start, end).
func (l *List[T]) Entries(start, end int) func(func(position.Position, T) bool) {
	return l.core.Entries(start, end)
}

// Save produces a mapping nodeID -> encode(values) for every node holding a
// present value.
func (l *List[T]) Save(encode func([]itemlist.SlotValue[T]) any) map[string]any {
	return l.core.Save(encode)
}

// Load replaces the list's contents with state, decoded by decode.
func (l *List[T]) Load(state map[string]any, decode func(any) []itemlist.SlotValue[T]) error {
	return l.core.Load(state, decode)
}

// Dump renders the backing ItemList's per-node record tree, for debugging.
func (l *List[T]) Dump() string { return l.core.Dump() }
