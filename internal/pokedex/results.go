package pokedex

import "github.com/zjrosen/pokedex/internal/dex"

// Outcome is the result of a fight.
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first"
	case SecondWins:
		return "second"
	default:
		return "tie"
	}
}

// FightResult carries both combatants and their scores.
type FightResult struct {
	First       *dex.Record
	Second      *dex.Record
	FirstScore  float64
	SecondScore float64
	Outcome     Outcome
}

// Winner returns the winning record, or nil on a tie.
func (r FightResult) Winner() *dex.Record {
	switch r.Outcome {
	case FirstWins:
		return r.First
	case SecondWins:
		return r.Second
	default:
		return nil
	}
}

// EvolveResult describes an evolution. When Collided is true the successor
// was already owned: From was released and To is the record that stayed.
type EvolveResult struct {
	From     *dex.Record
	To       *dex.Record
	Collided bool
}

// MergeResult counts what happened to each record of the consumed owner.
type MergeResult struct {
	Into       string
	From       string
	Added      int
	Duplicates int
	Failed     int
}

// Visited is the number of records walked from the consumed owner.
func (r MergeResult) Visited() int {
	return r.Added + r.Duplicates + r.Failed
}
