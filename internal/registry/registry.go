// Package registry maintains owners as a circular doubly linked list.
//
// The circle has no terminator: walks compare against the stored head. After
// rotations or deletions any owner may be head. A single owner links to itself.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zjrosen/pokedex/internal/dex"
	"github.com/zjrosen/pokedex/internal/log"
)

var (
	ErrDuplicateName = errors.New("owner name already exists")
	ErrEmptyName     = errors.New("owner name is required")
	ErrNotFound      = errors.New("owner not found")
	ErrOutOfRange    = errors.New("owner position out of range")
	ErrLinked        = errors.New("owner is already linked")
)

// Direction selects which link Rotate follows.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// ParseDirection accepts any input starting with f/F or b/B.
func ParseDirection(s string) (Direction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("direction is required")
	}
	switch s[0] {
	case 'f', 'F':
		return Forward, nil
	case 'b', 'B':
		return Backward, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (want F or B)", s)
	}
}

// Registry owns the circle. The zero value is an empty registry.
type Registry struct {
	head  *Owner
	count int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Head returns the current head, or nil when empty.
func (r *Registry) Head() *Owner {
	return r.head
}

// Len returns the number of linked owners.
func (r *Registry) Len() int {
	return r.count
}

// Empty reports whether no owners are linked.
func (r *Registry) Empty() bool {
	return r.head == nil
}

// CreateOwner builds an unlinked owner. Names must be non-empty and must not
// collide, case-sensitively, with any linked owner. A nil tree becomes empty.
func (r *Registry) CreateOwner(name string, tree *dex.Tree) (*Owner, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, err := r.FindByName(name); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if tree == nil {
		tree = &dex.Tree{}
	}
	return &Owner{ID: uuid.New(), Name: name, Dex: tree}, nil
}

// Link appends owner just before head. On an empty registry the owner
// becomes head and links to itself.
func (r *Registry) Link(owner *Owner) error {
	if owner.Linked() {
		return fmt.Errorf("%w: %q", ErrLinked, owner.Name)
	}
	if r.head == nil {
		owner.next = owner
		owner.prev = owner
		r.head = owner
	} else {
		last := r.head.prev
		last.next = owner
		owner.prev = last
		owner.next = r.head
		r.head.prev = owner
	}
	r.count++
	log.Debug(log.CatRegistry, "linked owner", "owner", owner.Name, "count", r.count)
	return nil
}

// Unlink removes owner from the circle. Ownership passes to the caller, who
// is expected to Destroy it. Head moves to owner.next when owner was head.
func (r *Registry) Unlink(owner *Owner) {
	if !owner.Linked() {
		return
	}
	if owner.next == owner {
		r.head = nil
	} else {
		owner.prev.next = owner.next
		owner.next.prev = owner.prev
		if owner == r.head {
			r.head = owner.next
		}
	}
	owner.next = nil
	owner.prev = nil
	r.count--
	log.Debug(log.CatRegistry, "unlinked owner", "owner", owner.Name, "count", r.count)
}

// Destroy tears down an unlinked owner's tree and clears its name.
// It returns how many records were released.
func Destroy(owner *Owner) int {
	released := 0
	if owner.Dex != nil {
		released = owner.Dex.Destroy()
		owner.Dex = nil
	}
	owner.Name = ""
	owner.next = nil
	owner.prev = nil
	return released
}

// FindByName scans one revolution from head for an exact, case-sensitive match.
func (r *Registry) FindByName(name string) (*Owner, error) {
	if r.head == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	current := r.head
	for {
		if current.Name == name {
			return current, nil
		}
		current = current.next
		if current == r.head {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
	}
}

// At returns the owner at 1-based position index counted forward from head.
func (r *Registry) At(index int) (*Owner, error) {
	if index < 1 || index > r.count {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrOutOfRange, index, r.count)
	}
	current := r.head
	for i := 1; i < index; i++ {
		current = current.next
	}
	return current, nil
}

// Owners returns the owners in forward order starting at head.
func (r *Registry) Owners() []*Owner {
	out := make([]*Owner, 0, r.count)
	if r.head == nil {
		return out
	}
	current := r.head
	for {
		out = append(out, current)
		current = current.next
		if current == r.head {
			return out
		}
	}
}

// Names returns owner names in forward order starting at head.
func (r *Registry) Names() []string {
	owners := r.Owners()
	names := make([]string, len(owners))
	for i, o := range owners {
		names[i] = o.Name
	}
	return names
}

// SortByName orders the circle ascending by byte-wise name comparison using
// bubble passes from head. Adjacent owners swap their data, not their links,
// and each pass shrinks the unsorted boundary by one. It returns false without
// touching anything when there are fewer than two owners.
func (r *Registry) SortByName() bool {
	if r.head == nil || r.head.next == r.head {
		return false
	}
	last := r.head.prev
	for {
		swapped := false
		current := r.head
		for current != last {
			if strings.Compare(current.Name, current.next.Name) > 0 {
				swapData(current, current.next)
				swapped = true
			}
			current = current.next
		}
		if !swapped || last == r.head {
			break
		}
		last = last.prev
	}
	log.Debug(log.CatRegistry, "sorted owners", "count", r.count)
	return true
}

// Rotate visits count owners starting at head, following next (Forward) or
// prev (Backward). index is 1-based. The walk wraps as often as count asks.
func (r *Registry) Rotate(dir Direction, count int, visit func(index int, o *Owner)) {
	if r.head == nil {
		return
	}
	current := r.head
	for i := 1; i <= count; i++ {
		visit(i, current)
		if dir == Backward {
			current = current.prev
		} else {
			current = current.next
		}
	}
}
