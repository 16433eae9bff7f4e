package bintrie

// node is a trie node. Each child slot is owned exclusively by its parent;
// slots are filled lazily during insertion and never cleared.
type node struct {
	children [2]*node
}

func (n *node) isLeaf() bool {
	return n.children[0] == nil && n.children[1] == nil
}
