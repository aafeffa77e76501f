package presentation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/zjrosen/pokedex/internal/dex"
	"github.com/zjrosen/pokedex/internal/pokedex"
	"github.com/zjrosen/pokedex/internal/registry"
)

// Sentence capitalizes err's text and ends it with a period.
func Sentence(err error) string {
	msg := err.Error()
	if msg == "" {
		return ""
	}
	r := []rune(msg)
	r[0] = unicode.ToUpper(r[0])
	msg = string(r)
	if !strings.HasSuffix(msg, ".") && !strings.HasSuffix(msg, "!") {
		msg += "."
	}
	return msg
}

// Created reports NewPokedex.
func Created(name string, owner *registry.Owner, err error) string {
	switch {
	case err == nil:
		starter := ""
		if recs := owner.Dex.Records(dex.InOrder); len(recs) > 0 {
			starter = recs[0].Name
		}
		return fmt.Sprintf("New Pokedex created for %s with starter %s.", owner.Name, starter)
	case errors.Is(err, pokedex.ErrDuplicateName):
		return fmt.Sprintf("Owner '%s' already exists. Not creating a new Pokedex.", name)
	case errors.Is(err, pokedex.ErrOutOfRange):
		return "Invalid selection!"
	default:
		return Sentence(err)
	}
}

// Added reports Add.
func Added(id int, rec *dex.Record, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("Pokemon %s (ID %d) added.", rec.Name, rec.ID)
	case errors.Is(err, pokedex.ErrAlreadyPresent):
		return fmt.Sprintf("Pokemon with ID %d is already in the Pokedex. No changes made.", id)
	case errors.Is(err, pokedex.ErrOutOfRange):
		return fmt.Sprintf("Invalid ID %d.", id)
	default:
		return Sentence(err)
	}
}

// Released reports Release.
func Released(id int, rec *dex.Record, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("Removing Pokemon %s (ID %d).", rec.Name, rec.ID)
	case errors.Is(err, pokedex.ErrEmptyPokedex):
		return "No Pokemon to release."
	case errors.Is(err, pokedex.ErrNotFound):
		return fmt.Sprintf("No Pokemon with ID %d found.", id)
	default:
		return Sentence(err)
	}
}

// Fought reports Fight as score lines followed by the verdict.
func Fought(res pokedex.FightResult, err error) []string {
	if err != nil {
		if errors.Is(err, pokedex.ErrNotFound) {
			return []string{"One or both Pokemon IDs not found."}
		}
		return []string{Sentence(err)}
	}
	lines := []string{
		fmt.Sprintf("Pokemon 1: %s (Score = %.2f)", res.First.Name, res.FirstScore),
		fmt.Sprintf("Pokemon 2: %s (Score = %.2f)", res.Second.Name, res.SecondScore),
	}
	if w := res.Winner(); w != nil {
		return append(lines, w.Name+" wins!")
	}
	return append(lines, "It's a tie!")
}

// Evolved reports Evolve.
func Evolved(id int, res pokedex.EvolveResult, err error) string {
	switch {
	case err == nil && res.Collided:
		return fmt.Sprintf("Evolution ID %d (%s) already in the Pokedex. Releasing %s (ID %d).",
			res.To.ID, res.To.Name, res.From.Name, res.From.ID)
	case err == nil:
		return fmt.Sprintf("Pokemon evolved from %s (ID %d) to %s (ID %d).",
			res.From.Name, res.From.ID, res.To.Name, res.To.ID)
	case errors.Is(err, pokedex.ErrNotFound):
		return fmt.Sprintf("Pokemon with ID %d not found.", id)
	default:
		// ErrNotEvolvable already names the record.
		return Sentence(err)
	}
}

// Merged reports Merge.
func Merged(nameA, nameB string, res pokedex.MergeResult, err error) []string {
	switch {
	case err == nil:
		lines := []string{
			fmt.Sprintf("Merging %s and %s...", nameA, nameB),
			fmt.Sprintf("Merge completed: %d added, %d already owned.", res.Added, res.Duplicates),
		}
		if res.Failed > 0 {
			lines = append(lines, fmt.Sprintf("%d records could not be copied.", res.Failed))
		}
		return append(lines, fmt.Sprintf("Owner '%s' has been removed after merging.", nameB))
	case errors.Is(err, pokedex.ErrNotEnoughOwners):
		return []string{"Not enough owners to merge."}
	case errors.Is(err, pokedex.ErrNotFound):
		return []string{"One or both owners not found."}
	default:
		return []string{Sentence(err)}
	}
}

// Deleted reports DeletePokedex. remaining is the owner count afterwards.
func Deleted(name string, remaining int, err error) string {
	switch {
	case err == nil && remaining == 0:
		return "Last Pokedex deleted."
	case err == nil:
		return fmt.Sprintf("Pokedex for %s deleted.", name)
	case errors.Is(err, pokedex.ErrNoOwners):
		return "No existing Pokedexes to delete."
	case errors.Is(err, pokedex.ErrOutOfRange):
		return "Invalid Pokedex number."
	default:
		return Sentence(err)
	}
}

// Sorted reports SortOwners.
func Sorted(sorted bool) string {
	if !sorted {
		return "0 or 1 owners only => no need to sort."
	}
	return "Owners sorted by name."
}

// OwnerList numbers owners from 1 in registry order.
func OwnerList(owners []*registry.Owner) []string {
	lines := make([]string, len(owners))
	for i, o := range owners {
		lines[i] = fmt.Sprintf("%d. %s", i+1, o.Name)
	}
	return lines
}

// Rotation is one line of a directional owner walk.
func Rotation(index int, o *registry.Owner) string {
	return fmt.Sprintf("[%d] %s", index, o.Name)
}
