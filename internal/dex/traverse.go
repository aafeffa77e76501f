package dex

import (
	"fmt"
	"slices"
	"strings"
)

// Visitor is called once per node during a traversal.
type Visitor func(*Node)

// Order selects a traversal.
type Order int

const (
	LevelOrder Order = iota + 1
	PreOrder
	InOrder
	PostOrder
	Alphabetical
)

func (o Order) String() string {
	switch o {
	case LevelOrder:
		return "BFS (Level-Order)"
	case PreOrder:
		return "Pre-Order"
	case InOrder:
		return "In-Order"
	case PostOrder:
		return "Post-Order"
	case Alphabetical:
		return "Alphabetical (by name)"
	default:
		return "Unknown"
	}
}

// Orders lists the traversals in menu order.
func Orders() []Order {
	return []Order{LevelOrder, PreOrder, InOrder, PostOrder, Alphabetical}
}

// ParseOrder maps a 1-based menu choice to an Order.
func ParseOrder(choice int) (Order, error) {
	o := Order(choice)
	if o < LevelOrder || o > Alphabetical {
		return 0, fmt.Errorf("invalid display choice %d", choice)
	}
	return o, nil
}

// Walk dispatches to the traversal selected by order.
func Walk(root *Node, order Order, visit Visitor) {
	switch order {
	case LevelOrder:
		LevelOrderWalk(root, visit)
	case PreOrder:
		PreOrderWalk(root, visit)
	case InOrder:
		InOrderWalk(root, visit)
	case PostOrder:
		PostOrderWalk(root, visit)
	case Alphabetical:
		AlphabeticalWalk(root, visit)
	}
}

// PreOrderWalk visits node, then left, then right.
func PreOrderWalk(root *Node, visit Visitor) {
	if root == nil {
		return
	}
	visit(root)
	PreOrderWalk(root.Left, visit)
	PreOrderWalk(root.Right, visit)
}

// InOrderWalk visits left, node, right: ascending identity order.
func InOrderWalk(root *Node, visit Visitor) {
	if root == nil {
		return
	}
	InOrderWalk(root.Left, visit)
	visit(root)
	InOrderWalk(root.Right, visit)
}

// PostOrderWalk visits left, right, then node.
func PostOrderWalk(root *Node, visit Visitor) {
	if root == nil {
		return
	}
	PostOrderWalk(root.Left, visit)
	PostOrderWalk(root.Right, visit)
	visit(root)
}

// LevelOrderWalk is a breadth-first walk over a FIFO queue sized to the tree.
// Children are enqueued left before right.
func LevelOrderWalk(root *Node, visit Visitor) {
	if root == nil {
		return
	}
	queue := make([]*Node, 0, Size(root))
	queue = append(queue, root)
	for front := 0; front < len(queue); front++ {
		current := queue[front]
		visit(current)
		if current.Left != nil {
			queue = append(queue, current.Left)
		}
		if current.Right != nil {
			queue = append(queue, current.Right)
		}
	}
}

// AlphabeticalWalk collects every node, stable-sorts them by the byte order
// of their names, and visits them in that order.
func AlphabeticalWalk(root *Node, visit Visitor) {
	if root == nil {
		return
	}
	var buf nodeBuffer
	PreOrderWalk(root, buf.push)
	slices.SortStableFunc(buf.nodes, func(a, b *Node) int {
		return strings.Compare(a.Record.Name, b.Record.Name)
	})
	for _, n := range buf.nodes {
		visit(n)
	}
}

// nodeBuffer grows by doubling its capacity when full.
type nodeBuffer struct {
	nodes []*Node
}

func (b *nodeBuffer) push(n *Node) {
	if len(b.nodes) == cap(b.nodes) {
		grown := make([]*Node, len(b.nodes), max(1, 2*cap(b.nodes)))
		copy(grown, b.nodes)
		b.nodes = grown
	}
	b.nodes = append(b.nodes, n)
}
