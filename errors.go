package itemlist

import "fmt"

// The error surface from spec §6/§7. Callers compare with errors.Is; every
// mutator except Load validates before touching any state, so an error it
// returns leaves the ItemList unchanged. Load clears the list first, so a
// failed Load leaves it empty or partially loaded.
var (
	// ErrInvalidPosition is returned for a write that addresses a slot the
	// position tree does not allow — currently only the root's "slots 0
	// and 1 only" rule.
	ErrInvalidPosition = invalidPosition{}

	// ErrInvalidInsertion is returned by Insert/InsertAt when there is no
	// room to allocate: prevPos is the maximum sentinel, or the item has
	// zero length.
	ErrInvalidInsertion = invalidInsertion{}

	// ErrMissingNode is returned by Load when a stored node ID is unknown
	// to the position provider.
	ErrMissingNode = missingNode{}

	// ErrIndexOutOfBounds is returned by PositionAt for an index outside
	// [0, Length()).
	ErrIndexOutOfBounds = indexOutOfBounds{}

	// ErrInvalidCount is returned by Delete for a negative count.
	ErrInvalidCount = invalidCount{}
)

type invalidPosition struct{}

func (invalidPosition) Error() string { return "itemlist: invalid position" }

type invalidInsertion struct{}

func (invalidInsertion) Error() string { return "itemlist: invalid insertion" }

type missingNode struct{}

func (missingNode) Error() string { return "itemlist: missing node" }

type indexOutOfBounds struct{}

func (indexOutOfBounds) Error() string { return "itemlist: index out of bounds" }

type invalidCount struct{}

func (invalidCount) Error() string { return "itemlist: invalid count" }

type internalInvariantViolation struct{ detail string }

func (e internalInvariantViolation) Error() string {
	return "itemlist: internal invariant violation: " + e.detail
}

// Is makes every internalInvariantViolation, whatever its detail, match
// ErrInternalInvariantViolation under errors.Is.
func (internalInvariantViolation) Is(target error) bool {
	_, ok := target.(internalInvariantViolation)
	return ok
}

// ErrInternalInvariantViolation is the sentinel comparable with errors.Is.
// It is never returned to a caller through a normal error path; it is the
// value recovered from a panic raised by invariant (below), mirroring the
// teacher's assertThat (persistent/btree/internals.go) for the same kind
// of check — corrupted total/parentValuesBefore bookkeeping that indicates
// a bug in this module, not bad caller input, and is not recoverable.
var ErrInternalInvariantViolation = internalInvariantViolation{}

// invariant panics with ErrInternalInvariantViolation when that is false.
func invariant(that bool, format string, args ...any) {
	if !that {
		panic(internalInvariantViolation{detail: fmt.Sprintf(format, args...)})
	}
}
