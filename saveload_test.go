package itemlist_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendritic/itemlist"
	"github.com/dendritic/itemlist/internal/postree"
	"github.com/dendritic/itemlist/itemkind"
)

func identityEncode(slots []itemlist.SlotValue[string]) any { return slots }

func identityDecode(encoded any) []itemlist.SlotValue[string] {
	slots, _ := encoded.([]itemlist.SlotValue[string])
	return slots
}

// Scenario 4 (spec §8): save/load stability. A save/load round trip must
// reproduce the same Length, the same list-order values, and the same
// index<->position answers — not necessarily the same internal node shape.
func TestSaveLoadRoundTrip(t *testing.T) {
	il, prov := newStringList()
	pos := prov.MinPosition()
	var want []string
	for i := 0; i < 8; i++ {
		item := fmt.Sprintf("v%d", i)
		r, err := il.Insert(pos, item)
		require.NoError(t, err)
		pos, _ = r.Decompose()
		want = append(want, item)
	}

	state := il.Save(identityEncode)
	require.NotEmpty(t, state)

	reloaded := itemlist.New[string, string](prov, itemkind.ValueKind[string]{})
	require.NoError(t, reloaded.Load(state, identityDecode))

	assert.Equal(t, il.Length(), reloaded.Length())

	var got []string
	for _, v := range reloaded.Entries(0, reloaded.Length()) {
		got = append(got, v)
	}
	assert.Equal(t, want, got)

	for i := 0; i < il.Length(); i++ {
		p, err := il.PositionAt(i)
		require.NoError(t, err)
		v, present, err := reloaded.Get(p)
		require.NoError(t, err)
		assert.True(t, present)
		assert.Equal(t, want[i], v)
	}
}

// Save only ever reports nodes that currently hold a present value.
func TestSaveOmitsEmptyNodes(t *testing.T) {
	il, prov := newStringList()
	r, err := il.Insert(prov.MinPosition(), "a")
	require.NoError(t, err)
	pos, _ := r.Decompose()

	require.NoError(t, il.Delete(pos, 1))
	state := il.Save(identityEncode)
	assert.Empty(t, state)
}

// SaveOrdered is deterministic across repeated calls on the same state.
func TestSaveOrderedIsDeterministic(t *testing.T) {
	il, prov := newStringList()
	pos := prov.MinPosition()
	for i := 0; i < 5; i++ {
		r, err := il.Insert(pos, fmt.Sprintf("v%d", i))
		require.NoError(t, err)
		pos, _ = r.Decompose()
	}

	first := il.SaveOrdered(identityEncode)
	second := il.SaveOrdered(identityEncode)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].NodeID, second[i].NodeID)
		assert.Equal(t, first[i].Encoded, second[i].Encoded)
	}
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].NodeID, first[i].NodeID)
	}
}

// Load rejects a stored node ID the provider does not recognize, and clears
// the list first regardless of the outcome.
func TestLoadRejectsUnknownNode(t *testing.T) {
	il, prov := newStringList()
	_, err := il.Insert(prov.MinPosition(), "a")
	require.NoError(t, err)

	bogus := map[string]any{"does-not-exist": []itemlist.SlotValue[string]{{Slot: 0, Value: "x"}}}
	err = il.Load(bogus, identityDecode)
	assert.ErrorIs(t, err, itemlist.ErrMissingNode)
	assert.Equal(t, 0, il.Length())
}

// Load entry order in the input map must not affect the resulting list.
func TestLoadIsOrderIndependent(t *testing.T) {
	prov := postree.New()
	seed := itemlist.New[string, string](prov, itemkind.ValueKind[string]{})
	pos := prov.MinPosition()
	for i := 0; i < 6; i++ {
		r, err := seed.Insert(pos, fmt.Sprintf("v%d", i))
		require.NoError(t, err)
		pos, _ = r.Decompose()
	}
	state := seed.Save(identityEncode)

	a := itemlist.New[string, string](prov, itemkind.ValueKind[string]{})
	b := itemlist.New[string, string](prov, itemkind.ValueKind[string]{})
	require.NoError(t, a.Load(state, identityDecode))
	require.NoError(t, b.Load(state, identityDecode))

	var gotA, gotB []string
	for _, v := range a.Entries(0, a.Length()) {
		gotA = append(gotA, v)
	}
	for _, v := range b.Entries(0, b.Length()) {
		gotB = append(gotB, v)
	}
	assert.Equal(t, gotA, gotB)
}
