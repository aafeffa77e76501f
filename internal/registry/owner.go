package registry

import (
	"github.com/google/uuid"

	"github.com/zjrosen/pokedex/internal/dex"
)

// Owner is a named holder of one record tree and a member of the registry
// circle. next and prev are navigation only; they never own their targets.
type Owner struct {
	ID   uuid.UUID
	Name string
	Dex  *dex.Tree

	next *Owner
	prev *Owner
}

// Next returns the following owner in the circle, or nil when unlinked.
func (o *Owner) Next() *Owner {
	return o.next
}

// Prev returns the preceding owner in the circle, or nil when unlinked.
func (o *Owner) Prev() *Owner {
	return o.prev
}

// Linked reports whether the owner currently sits in a circle.
func (o *Owner) Linked() bool {
	return o.next != nil
}

// swapData exchanges everything an owner holds except its links.
func swapData(a, b *Owner) {
	a.ID, b.ID = b.ID, a.ID
	a.Name, b.Name = b.Name, a.Name
	a.Dex, b.Dex = b.Dex, a.Dex
}
