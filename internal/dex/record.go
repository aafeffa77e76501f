// Package dex implements the per-owner record tree: a binary search tree of
// catalog records keyed by identity, with recursive insert, search, three-case
// removal, and five traversal orders.
package dex

import (
	"fmt"
	"strings"

	"github.com/zjrosen/pokedex/internal/catalog"
)

// Record is one loaded copy of a catalog entry. It never aliases catalog
// storage; mutating a Record leaves the catalog untouched.
type Record struct {
	ID        int
	Name      string
	Type      catalog.Type
	HP        int
	Attack    int
	CanEvolve bool
}

// NewRecord copies a catalog entry into a fresh Record.
func NewRecord(e catalog.Entry) *Record {
	return &Record{
		ID:        e.ID,
		Name:      strings.Clone(e.Name),
		Type:      e.Type,
		HP:        e.HP,
		Attack:    e.Attack,
		CanEvolve: e.CanEvolve,
	}
}

// Create looks up name in cat and returns an independent Record for it.
func Create(cat *catalog.Catalog, name string) (*Record, error) {
	e, err := cat.ByName(name)
	if err != nil {
		return nil, err
	}
	return NewRecord(e), nil
}

// CreateByID is Create keyed by catalog position.
func CreateByID(cat *catalog.Catalog, id int) (*Record, error) {
	e, err := cat.ByID(id)
	if err != nil {
		return nil, err
	}
	return NewRecord(e), nil
}

// Clone returns a deep copy of r, including its own copy of the name.
func (r *Record) Clone() *Record {
	cp := *r
	cp.Name = strings.Clone(r.Name)
	return &cp
}

// Score is the fight strength: attack*1.5 + hp*1.2.
func (r *Record) Score() float64 {
	return float64(r.Attack)*1.5 + float64(r.HP)*1.2
}

func (r *Record) String() string {
	evolve := "No"
	if r.CanEvolve {
		evolve = "Yes"
	}
	return fmt.Sprintf("ID: %d, Name: %s, Type: %s, HP: %d, Attack: %d, Can Evolve: %s",
		r.ID, r.Name, r.Type, r.HP, r.Attack, evolve)
}
