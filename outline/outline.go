/*
Package outline is a thin facade over itemlist.ItemList for a presence-only
list: an item is a run of n consecutive present slots carrying no payload,
the way a CRDT tombstone/liveness bitmap or a collapsed-section outline
needs. It reuses the same ItemList core as package list, parameterized by
itemkind.RunKind instead of itemkind.ValueKind.
*/
package outline

import (
	"github.com/dendritic/itemlist"
	"github.com/dendritic/itemlist/itemkind"
	"github.com/dendritic/itemlist/position"
)

// Outline is a position-keyed, index-addressable sequence of presence-only
// entries: each occupies one or more slots, none carrying a value.
type Outline struct {
	core *itemlist.ItemList[int, itemkind.Unit]
}

// New builds an empty Outline backed by provider.
func New(provider position.Provider, opts ...itemlist.Option) *Outline {
	return &Outline{core: itemlist.New[int, itemkind.Unit](provider, itemkind.RunKind{}, opts...)}
}

// Length returns the number of present slots currently in the outline.
func (o *Outline) Length() int { return o.core.Length() }

// Has reports whether pos is currently marked present.
func (o *Outline) Has(pos position.Position) (bool, error) { return o.core.Has(pos) }

// Mark marks n consecutive slots starting at pos present, overwriting
// whatever was there.
func (o *Outline) Mark(pos position.Position, n int) error {
	return o.core.Set(pos, n)
}

// Unmark marks n consecutive slots starting at pos absent.
func (o *Outline) Unmark(pos position.Position, n int) error {
	return o.core.Delete(pos, n)
}

// Insert allocates n fresh positions immediately after prevPos, marking
// them present, and returns the first new position.
func (o *Outline) Insert(prevPos position.Position, n int) (position.Position, error) {
	res, err := o.core.Insert(prevPos, n)
	if err != nil {
		return position.Position{}, err
	}
	pos, _ := res.Decompose()
	return pos, nil
}

// InsertAt allocates n fresh positions so that they land at list index
// index, marking them present, and returns the first new position.
func (o *Outline) InsertAt(index, n int) (position.Position, error) {
	res, err := o.core.InsertAt(index, n)
	if err != nil {
		return position.Position{}, err
	}
	pos, _ := res.Decompose()
	return pos, nil
}

// Clear empties the outline.
func (o *Outline) Clear() { o.core.Clear() }

// IndexOfPosition answers "what list index does pos have".
func (o *Outline) IndexOfPosition(pos position.Position, dir position.SearchDir) (int, error) {
	return o.core.IndexOfPosition(pos, dir)
}

// PositionAt answers "what position holds list index index".
func (o *Outline) PositionAt(index int) (position.Position, error) {
	return o.core.PositionAt(index)
}

// Entries yields every present position in list order for [start, end).
func (o *Outline) Entries(start, end int) func(func(position.Position, itemkind.Unit) bool) {
	return o.core.Entries(start, end)
}

// Save produces a mapping nodeID -> alternating [present, absent, ...] run
// lengths starting with present, per §6's presence-only encoding.
func (o *Outline) Save() map[string]any {
	return o.core.Save(func(slots []itemlist.SlotValue[itemkind.Unit]) any {
		return runLengthsFromSlots(slots)
	})
}

// Load replaces the outline's contents with state, encoded the way Save
// produces it (alternating [present, absent, ...] run lengths starting with
// present).
func (o *Outline) Load(state map[string]any) error {
	return o.core.Load(state, func(encoded any) []itemlist.SlotValue[itemkind.Unit] {
		runs, _ := encoded.([]int)
		return slotsFromRunLengths(runs)
	})
}

// runLengthsFromSlots turns a sorted list of present slots into alternating
// [present, absent, present, ...] run lengths starting with present.
func runLengthsFromSlots(slots []itemlist.SlotValue[itemkind.Unit]) []int {
	if len(slots) == 0 {
		return nil
	}
	var runs []int
	cursor := 0
	presentRun := 0
	for _, sv := range slots {
		if sv.Slot == cursor+presentRun {
			presentRun++
			continue
		}
		runs = append(runs, presentRun, sv.Slot-(cursor+presentRun))
		cursor = sv.Slot
		presentRun = 1
	}
	runs = append(runs, presentRun)
	return runs
}

// slotsFromRunLengths is runLengthsFromSlots's inverse.
func slotsFromRunLengths(runs []int) []itemlist.SlotValue[itemkind.Unit] {
	var out []itemlist.SlotValue[itemkind.Unit]
	slot := 0
	present := true
	for _, n := range runs {
		if present {
			for k := 0; k < n; k++ {
				out = append(out, itemlist.SlotValue[itemkind.Unit]{Slot: slot, Value: itemkind.Unit{}})
				slot++
			}
		} else {
			slot += n
		}
		present = !present
	}
	return out
}
