package dex

// Node owns one Record and its two subtrees. There are no parent pointers.
type Node struct {
	Record *Record
	Left   *Node
	Right  *Node
}

// NewNode wraps a record in a detached node.
func NewNode(r *Record) *Node {
	return &Node{Record: r}
}

// ID returns the identity the node is keyed by.
func (n *Node) ID() int {
	return n.Record.ID
}

// Insert places node into the tree rooted at root and returns the new root.
// When an equal identity is already present nothing changes, inserted is
// false, and node still belongs to the caller.
func Insert(root, node *Node) (newRoot *Node, inserted bool) {
	if root == nil {
		return node, true
	}
	switch {
	case node.ID() < root.ID():
		root.Left, inserted = Insert(root.Left, node)
	case node.ID() > root.ID():
		root.Right, inserted = Insert(root.Right, node)
	}
	return root, inserted
}

// Search returns the node with the given identity, or nil.
func Search(root *Node, id int) *Node {
	if root == nil {
		return nil
	}
	switch {
	case id < root.ID():
		return Search(root.Left, id)
	case id > root.ID():
		return Search(root.Right, id)
	default:
		return root
	}
}

// Min returns the leftmost node of the subtree, or nil for an empty one.
func Min(root *Node) *Node {
	if root == nil {
		return nil
	}
	for root.Left != nil {
		root = root.Left
	}
	return root
}

// Remove deletes the node with the given identity and returns the new root.
// An absent identity leaves the tree untouched and reports removed=false.
//
// A node with two children takes a deep copy of its in-order successor's
// record; the successor is then removed from the right subtree by identity.
func Remove(root *Node, id int) (newRoot *Node, removed bool) {
	if root == nil {
		return nil, false
	}
	switch {
	case id < root.ID():
		root.Left, removed = Remove(root.Left, id)
		return root, removed
	case id > root.ID():
		root.Right, removed = Remove(root.Right, id)
		return root, removed
	}

	switch {
	case root.Left == nil && root.Right == nil:
		release(root)
		return nil, true
	case root.Left == nil:
		child := root.Right
		release(root)
		return child, true
	case root.Right == nil:
		child := root.Left
		release(root)
		return child, true
	}

	successor := Min(root.Right)
	root.Record = successor.Record.Clone()
	root.Right, _ = Remove(root.Right, successor.ID())
	return root, true
}

// Size counts the nodes in the subtree.
func Size(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + Size(root.Left) + Size(root.Right)
}

// Destroy tears the subtree down in post-order, detaching every node and
// dropping its record. It returns how many nodes were released.
func Destroy(root *Node) int {
	if root == nil {
		return 0
	}
	n := Destroy(root.Left) + Destroy(root.Right)
	release(root)
	return n + 1
}

func release(n *Node) {
	n.Left = nil
	n.Right = nil
	n.Record = nil
}
