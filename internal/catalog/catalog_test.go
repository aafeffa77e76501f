package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_Embedded(t *testing.T) {
	c := Default()
	require.Equal(t, 151, c.Len())

	first, err := c.ByID(1)
	require.NoError(t, err)
	require.Equal(t, Entry{ID: 1, Name: "Bulbasaur", Type: Grass, HP: 45, Attack: 49, CanEvolve: true}, first)

	last, err := c.ByID(151)
	require.NoError(t, err)
	require.Equal(t, "Mew", last.Name)
	require.False(t, last.CanEvolve)
}

func TestDefault_EvolutionsAreSequential(t *testing.T) {
	c := Default()
	pairs := map[string]string{
		"Bulbasaur":  "Ivysaur",
		"Charmander": "Charmeleon",
		"Squirtle":   "Wartortle",
		"Pikachu":    "Raichu",
		"Magikarp":   "Gyarados",
		"Dragonair":  "Dragonite",
	}
	for from, to := range pairs {
		e, err := c.ByName(from)
		require.NoError(t, err)
		require.True(t, e.CanEvolve, "%s should evolve", from)

		next, err := c.ByID(e.ID + 1)
		require.NoError(t, err)
		require.Equal(t, to, next.Name)
	}
}

func TestByID_OutOfRange(t *testing.T) {
	c := Default()
	for _, id := range []int{-1, 0, 152} {
		_, err := c.ByID(id)
		require.ErrorIs(t, err, ErrOutOfRange, "id %d", id)
	}
}

func TestByName(t *testing.T) {
	c := Default()

	e, err := c.ByName("Farfetch'd")
	require.NoError(t, err)
	require.Equal(t, 83, e.ID)

	// Cached path returns the same entry.
	again, err := c.ByName("Farfetch'd")
	require.NoError(t, err)
	require.Equal(t, e, again)

	_, err = c.ByName("pikachu")
	require.ErrorIs(t, err, ErrNotFound, "lookup is case-sensitive")

	_, err = c.ByName("Missingno")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFilter(t *testing.T) {
	dragons := Default().Filter(Dragon)
	require.Len(t, dragons, 3)
	require.Equal(t, "Dratini", dragons[0].Name)
	require.Equal(t, "Dragonite", dragons[2].Name)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c := Default()
	entries := c.Entries()
	entries[0].Name = "Mutated"

	e, err := c.ByID(1)
	require.NoError(t, err)
	require.Equal(t, "Bulbasaur", e.Name)
}

func TestLoad_Valid(t *testing.T) {
	doc := `entries:
  - {id: 1, name: Alpha, type: fire, hp: 10, attack: 20, can_evolve: true}
  - {id: 2, name: Beta, type: FIRE, hp: 30, attack: 40, can_evolve: false}
`
	c, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	e, err := c.ByName("Beta")
	require.NoError(t, err)
	require.Equal(t, Fire, e.Type)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "empty",
			doc:     "entries: []\n",
			wantErr: "no entries",
		},
		{
			name:    "gap in ids",
			doc:     "entries:\n  - {id: 2, name: A, type: ICE}\n",
			wantErr: "has id 2, want 1",
		},
		{
			name:    "duplicate name",
			doc:     "entries:\n  - {id: 1, name: A, type: ICE}\n  - {id: 2, name: A, type: ICE}\n",
			wantErr: "already used",
		},
		{
			name:    "unknown type",
			doc:     "entries:\n  - {id: 1, name: A, type: STEEL}\n",
			wantErr: "unknown type",
		},
		{
			name:    "unknown field",
			doc:     "entries:\n  - {id: 1, name: A, type: ICE, speed: 3}\n",
			wantErr: "speed",
		},
		{
			name:    "last evolvable",
			doc:     "entries:\n  - {id: 1, name: A, type: ICE, can_evolve: true}\n",
			wantErr: "cannot be evolvable",
		},
		{
			name:    "negative stats",
			doc:     "entries:\n  - {id: 1, name: A, type: ICE, hp: -1}\n",
			wantErr: "non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalid)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries:\n  - {id: 1, name: Solo, type: GHOST, hp: 1, attack: 2}\n"), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNew_CopiesInput(t *testing.T) {
	entries := []Entry{{ID: 1, Name: "A", Type: Rock}}
	c, err := New(entries)
	require.NoError(t, err)

	entries[0].Name = "B"
	e, err := c.ByID(1)
	require.NoError(t, err)
	require.Equal(t, "A", e.Name)
}
