package presentation

import (
	"github.com/zjrosen/pokedex/internal/catalog"
	"github.com/zjrosen/pokedex/internal/dex"
	"github.com/zjrosen/pokedex/internal/registry"
)

// EntryDTO is a catalog entry or owned record as printed by the CLI.
type EntryDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	HP        int    `json:"hp"`
	Attack    int    `json:"attack"`
	CanEvolve bool   `json:"can_evolve"`
}

// OwnerDTO is one owner with its records in ascending identity order.
type OwnerDTO struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Records []EntryDTO `json:"records"`
}

// FromEntries converts catalog entries.
func FromEntries(entries []catalog.Entry) []EntryDTO {
	out := make([]EntryDTO, len(entries))
	for i, e := range entries {
		out[i] = EntryDTO{ID: e.ID, Name: e.Name, Type: e.Type.String(), HP: e.HP, Attack: e.Attack, CanEvolve: e.CanEvolve}
	}
	return out
}

// FromRecords converts owned records.
func FromRecords(records []*dex.Record) []EntryDTO {
	out := make([]EntryDTO, len(records))
	for i, r := range records {
		out[i] = EntryDTO{ID: r.ID, Name: r.Name, Type: r.Type.String(), HP: r.HP, Attack: r.Attack, CanEvolve: r.CanEvolve}
	}
	return out
}

// FromOwners converts owners in registry order.
func FromOwners(owners []*registry.Owner) []OwnerDTO {
	out := make([]OwnerDTO, len(owners))
	for i, o := range owners {
		out[i] = OwnerDTO{ID: o.ID.String(), Name: o.Name, Records: FromRecords(o.Dex.Records(dex.InOrder))}
	}
	return out
}
