package sparse

import "iter"

// Slicer is a single-pass, restartable in-order walker over a Sequence's
// present slots. Each call to NextSlice resumes exactly where the previous
// one left off — it is used once, left to right, per iteration of an
// ItemList (§4.1, §4.5).
type Slicer[V any] struct {
	seq      Sequence[V]
	runIx    int
	runStart int // absolute slot at which seq[runIx] begins
	cursor   int // absolute slot of the next unread value within seq[runIx]
}

// NewSlicer creates a Slicer positioned at the start of seq.
func NewSlicer[V any](seq Sequence[V]) *Slicer[V] {
	return &Slicer[V]{seq: seq}
}

// NextSlice yields every present (slot, value) pair strictly before endSlot
// (or through the end of the sequence if endSlot is nil), resuming from
// wherever the slicer last stopped.
func (sl *Slicer[V]) NextSlice(endSlot *int) iter.Seq2[int, V] {
	if endSlot != nil {
		tracer().Debugf("sparse: slicer resuming at run %d/cursor %d, bound <%d", sl.runIx, sl.cursor, *endSlot)
	} else {
		tracer().Debugf("sparse: slicer resuming at run %d/cursor %d, unbounded", sl.runIx, sl.cursor)
	}
	return func(yield func(int, V) bool) {
		for sl.runIx < len(sl.seq) {
			r := sl.seq[sl.runIx]
			runEnd := sl.runStart + r.Len
			if endSlot != nil && sl.runStart >= *endSlot {
				return
			}
			if !r.Present {
				sl.runIx++
				sl.runStart = runEnd
				continue
			}
			from := sl.cursor
			if from < sl.runStart {
				from = sl.runStart
			}
			limit := runEnd
			if endSlot != nil && *endSlot < limit {
				limit = *endSlot
			}
			for slot := from; slot < limit; slot++ {
				sl.cursor = slot + 1
				if !yield(slot, r.Values[slot-sl.runStart]) {
					return
				}
			}
			if sl.cursor >= runEnd {
				sl.runIx++
				sl.runStart = runEnd
				sl.cursor = runEnd
			} else {
				return
			}
		}
	}
}
