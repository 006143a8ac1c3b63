/*
Package itemkind supplies the "item manager" capability from spec §9: the
same ItemList core powers both a value-carrying list and a presence-only
outline by parameterizing over how an application-level "item" maps onto
sparse slots. This is modeled as a small interface with two concrete
implementations, the way the design notes require — never as runtime
reflection, and in the same spirit as the teacher's Ext capability
(persistent/btree.Ext) that lets one B-tree core serve plain maps and
aggregate-ordered lookups alike.
*/
package itemkind

// Kind bridges an application item type T to the per-slot value type V that
// sparse.Sequence stores. T and V coincide for a value-carrying list (an
// item is a single value) and differ for a presence-only outline (an item
// is a run length, and V carries no payload).
type Kind[T any, V any] interface {
	// Length returns how many consecutive slots item occupies. Set, Insert
	// and InsertAt call it to size the sparse write.
	Length(item T) int

	// ValueAt returns the per-slot value to store at the k-th slot (0-based)
	// of item.
	ValueAt(item T, k int) V
}

// ValueKind is the Kind for a value-carrying list: every item is exactly
// one value, occupying exactly one slot.
type ValueKind[T any] struct{}

func (ValueKind[T]) Length(T) int { return 1 }

func (ValueKind[T]) ValueAt(item T, _ int) T { return item }

// Unit is the zero-size payload stored by a presence-only outline; it
// carries no information beyond "a value is here".
type Unit struct{}

// RunKind is the Kind for a presence-only outline: an item is a run length
// (how many consecutive slots to mark present), and every slot's value is
// the same zero-size Unit.
type RunKind struct{}

func (RunKind) Length(item int) int { return item }

func (RunKind) ValueAt(int, int) Unit { return Unit{} }
