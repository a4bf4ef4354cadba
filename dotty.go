package btree

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

type nodeids[K cmp.Ordered] struct {
	idTable map[*node[K]]int
	max     int
}

func newtable[K cmp.Ordered]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(nd *node[K]) int {
	return ids.idTable[nd]
}

func (ids *nodeids[K]) alloc(nd *node[K]) int {
	if id := ids.find(nd); id > 0 {
		return id
	}
	ids.idTable[nd] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[K cmp.Ordered](tree *Tree[K], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if tree == nil || tree.root == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := newtable[K]()
	nodelist, edgelist := "", ""
	var dump func(nd *node[K])
	dump = func(nd *node[K]) {
		ID := ids.alloc(nd)
		styles := nodeDotStyles(nd.leaf)
		label := keyLabel(nd.keys)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		for _, child := range nd.children {
			dump(child)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(child))
		}
	}
	dump(tree.root)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func keyLabel[K cmp.Ordered](keys []K) string {
	var sb strings.Builder
	for i, key := range keys {
		if i > 0 {
			sb.WriteString(" | ")
		}
		fmt.Fprintf(&sb, "%v", key)
	}
	return sb.String()
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=record"
	}
	return s
}
