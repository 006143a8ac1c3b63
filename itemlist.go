/*
Package itemlist implements the local view layer on top of a collaborative
position allocator, as described in spec.md: an indexable position-keyed
list. ItemList is the hard core — it maps positions drawn from an
externally owned, tree-structured total order into a dense, integer-indexed
sequence of values.

ItemList never allocates positions itself (save for delegating exactly once
per Insert/InsertAt to the position.Provider) and never mutates the
position tree; it only ever reads it, and owns the per-node bookkeeping
records layered on top of it.
*/
package itemlist

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/dendritic/itemlist/itemkind"
	"github.com/dendritic/itemlist/position"
)

func (il *ItemList[T, V]) tracer() tracing.Trace {
	return tracing.Select(il.cfg.traceTopic)
}

// ItemList maps positions from provider's tree into a dense, index-ordered
// sequence of T items, each occupying Length(item) slots of per-slot value
// type V (see itemkind.Kind). List[T] and Outline are thin facades around
// specific (T, V, Kind) instantiations.
type ItemList[T any, V any] struct {
	provider position.Provider
	kind     itemkind.Kind[T, V]
	cfg      config

	state map[string]*record[V]

	// beforeNode cache (§4.2, §9 "Cache discipline"): a single-entry memo
	// of the list-order index immediately preceding an entire node's
	// subtree, keyed by node ID. Dropped on every mutation.
	cacheNodeID     string
	cacheBeforeNode int
	cacheValid      bool

	length int
}

// New builds an empty ItemList backed by provider, using kind to interpret
// application items.
func New[T any, V any](provider position.Provider, kind itemkind.Kind[T, V], opts ...Option) *ItemList[T, V] {
	il := &ItemList[T, V]{
		provider: provider,
		kind:     kind,
		state:    make(map[string]*record[V]),
		cfg:      defaultConfig(),
	}
	for _, opt := range opts {
		opt(&il.cfg)
	}
	return il
}

// Length returns the total number of present values in the list.
func (il *ItemList[T, V]) Length() int {
	return il.length
}

// Has reports whether pos currently holds a value.
func (il *ItemList[T, V]) Has(pos position.Position) (bool, error) {
	node, err := il.provider.GetNodeFor(pos)
	if err != nil {
		return false, err
	}
	return il.valuesOf(node.ID()).GetInfo(pos.Slot).Present, nil
}

// Get returns the value at pos, and whether one is present.
func (il *ItemList[T, V]) Get(pos position.Position) (V, bool, error) {
	node, err := il.provider.GetNodeFor(pos)
	if err != nil {
		var zero V
		return zero, false, err
	}
	info := il.valuesOf(node.ID()).GetInfo(pos.Slot)
	return info.Value.WithDefault(zeroOf[V]()), info.Present, nil
}

func zeroOf[V any]() V {
	var z V
	return z
}

// Clear empties the entire list. The external position tree is untouched.
func (il *ItemList[T, V]) Clear() {
	il.tracer().Debugf("clear: dropping %d node records", len(il.state))
	il.state = make(map[string]*record[V])
	il.length = 0
	il.invalidateCache()
}

// invalidateCache drops the beforeNode memo. Per the design note on cache
// discipline, this is called unconditionally by Clear and at the start of
// every post-mutation maintenance pass rather than only when the touched
// node differs from the cached one — the over-approximation is cheap and its alternative (tracking
// exact dependency) is not worth the bookkeeping for a single-entry cache.
func (il *ItemList[T, V]) invalidateCache() {
	il.cacheValid = false
}
