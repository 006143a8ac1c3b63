/*
Package sparse implements the run-length encoded sparse sequence described
in itemlist's design: an alternating list of present/absent runs, trimmed so
that no trailing absent run and no two adjacent runs of equal presence ever
survive an edit.

The package knows nothing about "items" or "item managers" — it only deals
in per-slot values of type V. The itemkind package bridges an application's
item type to the (length, value-at-k) shape sparse.Set needs; this keeps
the run-length machinery, which is the hard 45% of the budget, reusable for
both a value-carrying list and a presence-only outline.
*/
package sparse

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/dendritic/itemlist/maybe"
)

func tracer() tracing.Trace {
	return tracing.Select("itemlist.sparse")
}

// Run is one maximal run of consecutive present or absent slots. Values is
// nil for an absent run and has exactly Len elements for a present one.
type Run[V any] struct {
	Present bool
	Len     int
	Values  []V
}

func (r Run[V]) slice(a, b int) Run[V] {
	if r.Present {
		vs := make([]V, b-a)
		copy(vs, r.Values[a:b])
		return Run[V]{Present: true, Len: b - a, Values: vs}
	}
	return Run[V]{Present: false, Len: b - a}
}

// Sequence is a trimmed, run-length encoded sparse sequence.
type Sequence[V any] []Run[V]

// Info is the answer to a getInfo(seq, i) query (§4.1).
type Info[V any] struct {
	Value         maybe.Maybe[V]
	Present       bool
	PresentBefore int
}

// Size returns the total number of present slots in s.
func (s Sequence[V]) Size() int {
	n := 0
	for _, r := range s {
		if r.Present {
			n += r.Len
		}
	}
	return n
}

// SizeAfter returns the number of present slots at or after fromSlot. It
// backs positionAt's handling of a node's trailing segment, after its last
// child anchor (§4.2).
func (s Sequence[V]) SizeAfter(fromSlot int) int {
	pos, total := 0, 0
	for _, r := range s {
		end := pos + r.Len
		if r.Present {
			start := pos
			if start < fromSlot {
				start = fromSlot
			}
			if end > start {
				total += end - start
			}
		}
		pos = end
	}
	return total
}

// IsEmpty reports whether s holds no present slots at all (a freshly
// trimmed, never-written sequence).
func (s Sequence[V]) IsEmpty() bool {
	return len(s) == 0
}

// Trim drops a trailing absent run, which is always redundant: the
// sequence implicitly extends absent forever past its last run.
func (s Sequence[V]) Trim() Sequence[V] {
	if len(s) == 0 {
		return s
	}
	if !s[len(s)-1].Present {
		return s[:len(s)-1]
	}
	return s
}

// GetInfo answers (value?, present, presentBefore) for slot i (§4.1).
func (s Sequence[V]) GetInfo(i int) Info[V] {
	pos, before := 0, 0
	for _, r := range s {
		if i < pos+r.Len {
			if r.Present {
				local := i - pos
				before += local
				return Info[V]{Value: maybe.Just(r.Values[local]), Present: true, PresentBefore: before}
			}
			return Info[V]{Value: maybe.Nothing[V](), Present: false, PresentBefore: before}
		}
		if r.Present {
			before += r.Len
		}
		pos += r.Len
	}
	return Info[V]{Value: maybe.Nothing[V](), Present: false, PresentBefore: before}
}

// FindPresentIndex returns the slot of the k-th present value (0-based) at
// or after fromSlot. The caller guarantees it exists.
func (s Sequence[V]) FindPresentIndex(fromSlot, k int) int {
	pos, remaining := 0, k
	for _, r := range s {
		end := pos + r.Len
		if end <= fromSlot {
			pos = end
			continue
		}
		start := pos
		if start < fromSlot {
			start = fromSlot
		}
		if r.Present {
			avail := end - start
			if remaining < avail {
				return start + remaining
			}
			remaining -= avail
		}
		pos = end
	}
	panic("sparse: FindPresentIndex: index not found; caller violated its existence guarantee")
}

// Set writes length slots starting at i as present, sourcing the value for
// the k-th of them (0-based) from valueAt. It returns the trimmed result
// together with the exact displaced sub-sequence that previously occupied
// [i, i+length).
func (s Sequence[V]) Set(i, length int, valueAt func(k int) V) (Sequence[V], Sequence[V]) {
	values := make([]V, length)
	for k := range values {
		values[k] = valueAt(k)
	}
	newRun := Run[V]{Present: true, Len: length, Values: values}
	tracer().Debugf("sparse: set [%d,%d)", i, i+length)
	return splice(s, i, i+length, newRun)
}

// Delete writes n slots starting at i as absent. It returns the trimmed
// result together with the exact displaced sub-sequence.
func (s Sequence[V]) Delete(i, n int) (Sequence[V], Sequence[V]) {
	tracer().Debugf("sparse: delete [%d,%d)", i, i+n)
	return splice(s, i, i+n, Run[V]{Present: false, Len: n})
}

// splice replaces the conceptual slots [lo,hi) of s with newRun, returning
// the trimmed result and the trimmed sub-sequence that occupied [lo,hi)
// beforehand. s implicitly extends absent forever past its last run, so
// [lo,hi) may reach past len(s).
func splice[V any](s Sequence[V], lo, hi int, newRun Run[V]) (Sequence[V], Sequence[V]) {
	var before, displaced, after Sequence[V]
	pos := 0
	for _, r := range s {
		start, end := pos, pos+r.Len
		before, displaced, after = partition(r, start, end, lo, hi, before, displaced, after)
		pos = end
	}
	if pos < hi {
		gap := Run[V]{Present: false, Len: hi - pos}
		before, displaced, after = partition(gap, pos, hi, lo, hi, before, displaced, after)
	}
	result := append(before, newRun)
	result = append(result, after...)
	return merge(result).Trim(), merge(displaced).Trim()
}

// partition splits run r — known to span absolute slots [start,end) — across
// before/displaced/after according to the [lo,hi) boundary.
func partition[V any](r Run[V], start, end, lo, hi int, before, displaced, after Sequence[V]) (Sequence[V], Sequence[V], Sequence[V]) {
	switch {
	case end <= lo:
		before = append(before, r)
	case start >= hi:
		after = append(after, r)
	default:
		if start < lo {
			before = append(before, r.slice(0, lo-start))
		}
		loO, hiO := start, end
		if loO < lo {
			loO = lo
		}
		if hiO > hi {
			hiO = hi
		}
		displaced = append(displaced, r.slice(loO-start, hiO-start))
		if end > hi {
			after = append(after, r.slice(hi-start, end-start))
		}
	}
	return before, displaced, after
}

// merge coalesces adjacent runs of equal presence and drops empty ones; the
// required policy after every edit (§4.1 "Policy").
func merge[V any](s Sequence[V]) Sequence[V] {
	out := make(Sequence[V], 0, len(s))
	for _, r := range s {
		if r.Len == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Present == r.Present {
			out[n-1].Len += r.Len
			if r.Present {
				out[n-1].Values = append(out[n-1].Values, r.Values...)
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
