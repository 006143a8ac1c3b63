package outline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendritic/itemlist/internal/postree"
	"github.com/dendritic/itemlist/outline"
	"github.com/dendritic/itemlist/position"
)

func TestOutlineMarkAndUnmark(t *testing.T) {
	prov := postree.New()
	o := outline.New(prov)
	root := prov.RootNode()

	require.NoError(t, o.Mark(position.Position{Node: root, Slot: 0}, 2))
	assert.Equal(t, 2, o.Length())

	has, err := o.Has(position.Position{Node: root, Slot: 0})
	require.NoError(t, err)
	assert.True(t, has)
	has, err = o.Has(position.Position{Node: root, Slot: 1})
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, o.Unmark(position.Position{Node: root, Slot: 0}, 1))
	assert.Equal(t, 1, o.Length())
	has, err = o.Has(position.Position{Node: root, Slot: 0})
	require.NoError(t, err)
	assert.False(t, has)
}

func TestOutlineInsertBuildsRuns(t *testing.T) {
	prov := postree.New()
	o := outline.New(prov)

	p0, err := o.Insert(prov.MinPosition(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, o.Length())

	has, err := o.Has(position.Position{Node: p0.Node, Slot: 2})
	require.NoError(t, err)
	assert.True(t, has)

	_, err = o.InsertAt(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, o.Length())
}

func TestOutlineSaveLoadRunLengthEncoding(t *testing.T) {
	prov := postree.New()
	o := outline.New(prov)
	root := prov.RootNode()

	// Root only admits slots 0 and 1; extend the run into a child node.
	require.NoError(t, o.Mark(position.Position{Node: root, Slot: 0}, 2))
	_, err := o.Insert(position.Position{Node: root, Slot: 1}, 2)
	require.NoError(t, err)

	state := o.Save()
	require.NotEmpty(t, state)

	reloaded := outline.New(prov)
	require.NoError(t, reloaded.Load(state))
	assert.Equal(t, o.Length(), reloaded.Length())
}

func TestOutlineClear(t *testing.T) {
	prov := postree.New()
	o := outline.New(prov)
	root := prov.RootNode()
	require.NoError(t, o.Mark(position.Position{Node: root, Slot: 0}, 1))
	o.Clear()
	assert.Equal(t, 0, o.Length())
}
