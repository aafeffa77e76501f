package dex

// Tree is one owner's collection. The zero value is an empty tree.
type Tree struct {
	root *Node
}

// NewTree builds a tree from records in the given order. Duplicates are dropped.
func NewTree(records ...*Record) *Tree {
	t := &Tree{}
	for _, r := range records {
		t.Insert(r)
	}
	return t
}

// Root exposes the root node for traversal helpers.
func (t *Tree) Root() *Node {
	return t.root
}

// Insert adds r keyed by its identity. It returns false, and leaves r with the
// caller, when that identity is already present.
func (t *Tree) Insert(r *Record) bool {
	var inserted bool
	t.root, inserted = Insert(t.root, NewNode(r))
	return inserted
}

// Remove deletes the record with the given identity.
func (t *Tree) Remove(id int) bool {
	var removed bool
	t.root, removed = Remove(t.root, id)
	return removed
}

// Search returns the record with the given identity, or nil.
func (t *Tree) Search(id int) *Record {
	if n := Search(t.root, id); n != nil {
		return n.Record
	}
	return nil
}

// Contains reports whether id is present.
func (t *Tree) Contains(id int) bool {
	return Search(t.root, id) != nil
}

// Len returns the number of records.
func (t *Tree) Len() int {
	return Size(t.root)
}

// Empty reports whether the tree holds no records.
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Walk visits every node in the given order.
func (t *Tree) Walk(order Order, visit Visitor) {
	Walk(t.root, order, visit)
}

// Records returns the records in the given order.
func (t *Tree) Records(order Order) []*Record {
	out := make([]*Record, 0, t.Len())
	t.Walk(order, func(n *Node) { out = append(out, n.Record) })
	return out
}

// IDs returns the identities in ascending order.
func (t *Tree) IDs() []int {
	ids := make([]int, 0, t.Len())
	InOrderWalk(t.root, func(n *Node) { ids = append(ids, n.ID()) })
	return ids
}

// Destroy releases every node and leaves the tree empty.
func (t *Tree) Destroy() int {
	n := Destroy(t.root)
	t.root = nil
	return n
}
