package pokedex

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyPresent  = errors.New("already in the pokedex")
	ErrOutOfRange      = errors.New("out of range")
	ErrDuplicateName   = errors.New("owner name already exists")
	ErrEmptyName       = errors.New("owner name is required")
	ErrNotEvolvable    = errors.New("cannot evolve")
	ErrNotEnoughOwners = errors.New("not enough owners to merge")
	ErrSameOwner       = errors.New("cannot merge an owner with itself")
	ErrNoOwners        = errors.New("no existing pokedexes")
	ErrEmptyPokedex    = errors.New("pokedex is empty")

	// ErrAllocation marks a record that could not be built from the catalog
	// during a multi-step operation. Merge counts these instead of failing.
	ErrAllocation = errors.New("record creation failed")
)
