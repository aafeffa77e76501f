package dex

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func walkIDs(root *Node, order Order) []int {
	var ids []int
	Walk(root, order, func(n *Node) { ids = append(ids, n.ID()) })
	return ids
}

func TestWalk_Orders(t *testing.T) {
	//        50
	//      /    \
	//    30      70
	//   /  \    /
	//  20  40  60
	root := build(t, 50, 30, 70, 20, 40, 60)

	tests := []struct {
		order Order
		want  []int
	}{
		{LevelOrder, []int{50, 30, 70, 20, 40, 60}},
		{PreOrder, []int{50, 30, 20, 40, 70, 60}},
		{InOrder, []int{20, 30, 40, 50, 60, 70}},
		{PostOrder, []int{20, 40, 30, 60, 70, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			require.Equal(t, tt.want, walkIDs(root, tt.order))
		})
	}
}

func TestWalk_Alphabetical(t *testing.T) {
	// Pikachu(25), Bulbasaur(1), Squirtle(7), Charmander(4), Mew(151)
	root := build(t, 25, 1, 7, 4, 151)

	var names []string
	Walk(root, Alphabetical, func(n *Node) { names = append(names, n.Record.Name) })
	require.Equal(t, []string{"Bulbasaur", "Charmander", "Mew", "Pikachu", "Squirtle"}, names)
}

func TestWalk_AlphabeticalIsByteOrder(t *testing.T) {
	// Mr. Mime, Mew, Nidoran-F, Nidoran-M, Nidorina
	root := build(t, 122, 151, 29, 32, 30)

	var names []string
	Walk(root, Alphabetical, func(n *Node) { names = append(names, n.Record.Name) })
	require.True(t, slices.IsSortedFunc(names, strings.Compare), "names %v", names)
	require.Equal(t, []string{"Mew", "Mr. Mime", "Nidoran-F", "Nidoran-M", "Nidorina"}, names)
}

func TestWalk_EmptyTreeVisitsNothing(t *testing.T) {
	for _, order := range Orders() {
		called := false
		Walk(nil, order, func(*Node) { called = true })
		require.False(t, called, order.String())
	}
}

func TestParseOrder(t *testing.T) {
	for i, want := range Orders() {
		got, err := ParseOrder(i + 1)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	for _, bad := range []int{0, 6, -3} {
		_, err := ParseOrder(bad)
		require.Error(t, err)
	}
	require.Equal(t, "Unknown", Order(42).String())
}

func TestNodeBuffer_Doubles(t *testing.T) {
	var buf nodeBuffer
	var caps []int
	for range 9 {
		buf.push(&Node{})
		caps = append(caps, cap(buf.nodes))
	}
	require.Equal(t, []int{1, 2, 4, 4, 8, 8, 8, 8, 16}, caps)
}

func TestProperty_AlphabeticalVisitsEveryNodeSorted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		root := build(t, distinctIDs().Draw(t, "ids")...)

		var names []string
		AlphabeticalWalk(root, func(n *Node) { names = append(names, n.Record.Name) })
		if len(names) != Size(root) {
			t.Fatalf("visited %d of %d nodes", len(names), Size(root))
		}
		if !slices.IsSortedFunc(names, strings.Compare) {
			t.Fatalf("not sorted: %v", names)
		}
	})
}
