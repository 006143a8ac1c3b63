package itemlist_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesBasicRange(t *testing.T) {
	il, prov := newStringList()
	pos := prov.MinPosition()
	for i := 0; i < 5; i++ {
		r, err := il.Insert(pos, fmt.Sprintf("v%d", i))
		require.NoError(t, err)
		pos, _ = r.Decompose()
	}

	var got []string
	for _, v := range il.Entries(1, 4) {
		got = append(got, v)
	}
	assert.Equal(t, []string{"v1", "v2", "v3"}, got)
}

func TestEntriesNegativeIndicesCountFromLength(t *testing.T) {
	il, prov := newStringList()
	pos := prov.MinPosition()
	for i := 0; i < 5; i++ {
		r, err := il.Insert(pos, fmt.Sprintf("v%d", i))
		require.NoError(t, err)
		pos, _ = r.Decompose()
	}

	var got []string
	for _, v := range il.Entries(-2, 5) {
		got = append(got, v)
	}
	assert.Equal(t, []string{"v3", "v4"}, got)

	got = nil
	for _, v := range il.Entries(0, -1) {
		got = append(got, v)
	}
	assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, got)

	got = nil
	for _, v := range il.Entries(-5, 100) {
		got = append(got, v)
	}
	assert.Equal(t, []string{"v0", "v1", "v2", "v3", "v4"}, got)
}

func TestEntriesEmptyAndInvertedRangesYieldNothing(t *testing.T) {
	il, prov := newStringList()
	pos := prov.MinPosition()
	for i := 0; i < 3; i++ {
		r, err := il.Insert(pos, fmt.Sprintf("v%d", i))
		require.NoError(t, err)
		pos, _ = r.Decompose()
	}

	for range il.Entries(2, 2) {
		t.Fatal("expected no entries for an empty range")
	}
	for range il.Entries(2, 1) {
		t.Fatal("expected no entries for an inverted range")
	}
	for range il.Entries(0, 0) {
		t.Fatal("expected no entries on an empty list slice")
	}
}

func TestEntriesStopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	il, prov := newStringList()
	pos := prov.MinPosition()
	for i := 0; i < 5; i++ {
		r, err := il.Insert(pos, fmt.Sprintf("v%d", i))
		require.NoError(t, err)
		pos, _ = r.Decompose()
	}

	var got []string
	for _, v := range il.Entries(0, 5) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"v0", "v1"}, got)
}

// Scenario 5 (spec §8): slice window over a deep chain. Repeated
// append-after-last builds a chain nodeK -> nodeK+1 -> ... one level per
// insert, since each new position's parent is the previous one; Entries
// must still walk it correctly using the explicit iteration stack.
func TestEntriesSliceWindowOverDeepChain(t *testing.T) {
	il, prov := newStringList()
	pos := prov.MinPosition()
	const n = 1000
	for i := 0; i < n; i++ {
		r, err := il.Insert(pos, fmt.Sprintf("item%d", i))
		require.NoError(t, err)
		pos, _ = r.Decompose()
	}
	require.Equal(t, n, il.Length())

	var got []string
	for _, v := range il.Entries(250, 260) {
		got = append(got, v)
	}
	want := make([]string, 0, 10)
	for i := 250; i < 260; i++ {
		want = append(want, fmt.Sprintf("item%d", i))
	}
	assert.Equal(t, want, got)

	p, err := il.PositionAt(999)
	require.NoError(t, err)
	v, present, err := il.Get(p)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "item999", v)
}

func TestEntriesYieldsPositionAlongsideValue(t *testing.T) {
	il, prov := newStringList()
	r, err := il.Insert(prov.MinPosition(), "only")
	require.NoError(t, err)
	want, _ := r.Decompose()

	for p, v := range il.Entries(0, 1) {
		assert.True(t, prov.EqualsPosition(p, want))
		assert.Equal(t, "only", v)
	}
}

func TestEntriesOnEmptyList(t *testing.T) {
	il, _ := newStringList()
	for range il.Entries(0, 10) {
		t.Fatal("expected no entries")
	}
}
