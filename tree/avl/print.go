package avl

import (
	"fmt"
	"strings"

	"go.lepak.sg/flatavl/tree"
)

// String returns a string representation of the tree.
// A complete tree with height 3 would look like this:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == tree.None {
		return ""
	}

	t.printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func (t *Tree[T]) printvisit(
	sb *strings.Builder, i tree.Index, prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}

	n := t.nodes.At(i)
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	if n.Left != tree.None {
		t.printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != tree.None)
	}

	if n.Right != tree.None {
		t.printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
