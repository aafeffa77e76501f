package dex

// height is the number of nodes on the longest root-to-leaf path.
func height(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + max(height(root.Left), height(root.Right))
}

// isBST reports whether the subtree satisfies the strict ordering.
func isBST(root *Node) bool {
	return between(root, nil, nil)
}

func between(n *Node, lo, hi *int) bool {
	if n == nil {
		return true
	}
	if n.Record == nil {
		return false
	}
	id := n.ID()
	if (lo != nil && id <= *lo) || (hi != nil && id >= *hi) {
		return false
	}
	return between(n.Left, lo, &id) && between(n.Right, &id, hi)
}
