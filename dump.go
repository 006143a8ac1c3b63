package itemlist

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/dendritic/itemlist/position"
)

// Dump renders the current state as an indented tree, one line per node of
// the position tree: a node with a record is annotated with its total and
// parentValuesBefore, a node without one is marked "(no record)". It is a
// debugging aid, not part of the saved-state format.
func (il *ItemList[T, V]) Dump() string {
	root := il.provider.RootNode()
	tp := treeprint.New()
	tp.SetValue(il.dumpLabel(root))
	il.dumpChildren(tp, root)
	return tp.String()
}

func (il *ItemList[T, V]) dumpLabel(node position.Node) string {
	r, ok := il.state[node.ID()]
	if !ok {
		return fmt.Sprintf("%s (no record)", node.ID())
	}
	return fmt.Sprintf("%s total=%d parentValuesBefore=%d values=%d-run(s)",
		node.ID(), r.total, r.parentValuesBefore, len(r.values))
}

func (il *ItemList[T, V]) dumpChildren(tp treeprint.Tree, node position.Node) {
	for i := 0; i < node.ChildCount(); i++ {
		child := node.Child(i)
		branch := tp.AddBranch(il.dumpLabel(child))
		il.dumpChildren(branch, child)
	}
}
