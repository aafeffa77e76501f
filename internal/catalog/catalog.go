// Package catalog holds the fixed, ordered table of selectable records.
// Entries are addressed by 1-based position and by exact name; position order
// also defines evolution, since an evolvable entry evolves into ID+1.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/pokedex/internal/cachemanager"
	"github.com/zjrosen/pokedex/internal/log"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrNotFound    = errors.New("not found in catalog")
	ErrOutOfRange  = errors.New("id out of catalog range")
	ErrUnknownType = errors.New("unknown type")
	ErrInvalid     = errors.New("invalid catalog")
)

// Entry is one row of the catalog.
type Entry struct {
	ID        int    `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	Type      Type   `yaml:"type" json:"type"`
	HP        int    `yaml:"hp" json:"hp"`
	Attack    int    `yaml:"attack" json:"attack"`
	CanEvolve bool   `yaml:"can_evolve" json:"can_evolve"`
}

type document struct {
	Entries []Entry `yaml:"entries"`
}

// Catalog is safe for concurrent reads; it is never mutated after Load.
type Catalog struct {
	entries []Entry
	names   *cachemanager.ReadThroughCache[string, int, string]
}

// Default returns the embedded Generation I catalog.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		// The embedded file is covered by tests; failing here is a build defect.
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from user config
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	log.Info(log.CatCatalog, "loaded catalog file", "path", path, "entries", c.Len())
	return c, nil
}

// Load decodes and validates a catalog document.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := Validate(doc.Entries); err != nil {
		return nil, err
	}
	return newCatalog(doc.Entries), nil
}

// New builds a catalog from entries after validating them.
func New(entries []Entry) (*Catalog, error) {
	if err := Validate(entries); err != nil {
		return nil, err
	}
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return newCatalog(cp), nil
}

func newCatalog(entries []Entry) *Catalog {
	c := &Catalog{entries: entries}
	cache := cachemanager.NewInMemoryCacheManager[string, int]("catalog-names",
		cachemanager.NoExpiration, cachemanager.DefaultCleanupInterval)
	c.names = cachemanager.NewReadThroughCache[string, int, string](cache, c.scan, false)
	return c
}

// Validate checks the structural rules every catalog must satisfy.
func Validate(entries []Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: no entries", ErrInvalid)
	}
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.ID != i+1 {
			return fmt.Errorf("%w: entry %d has id %d, want %d", ErrInvalid, i, e.ID, i+1)
		}
		if e.Name == "" {
			return fmt.Errorf("%w: entry %d: name is required", ErrInvalid, e.ID)
		}
		if prev, dup := seen[e.Name]; dup {
			return fmt.Errorf("%w: entry %d: name %q already used by entry %d", ErrInvalid, e.ID, e.Name, prev)
		}
		seen[e.Name] = e.ID
		if e.HP < 0 || e.Attack < 0 {
			return fmt.Errorf("%w: entry %d (%s): stats must be non-negative", ErrInvalid, e.ID, e.Name)
		}
		if e.Type.String() == "UNKNOWN" {
			return fmt.Errorf("%w: entry %d (%s): %w", ErrInvalid, e.ID, e.Name, ErrUnknownType)
		}
	}
	if last := entries[len(entries)-1]; last.CanEvolve {
		return fmt.Errorf("%w: last entry %d (%s) cannot be evolvable", ErrInvalid, last.ID, last.Name)
	}
	return nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of every entry in ID order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Filter returns the entries of one category in ID order.
func (c *Catalog) Filter(t Type) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// InRange reports whether id addresses an entry.
func (c *Catalog) InRange(id int) bool {
	return id >= 1 && id <= len(c.entries)
}

// ByID returns the entry at 1-based position id.
func (c *Catalog) ByID(id int) (Entry, error) {
	if !c.InRange(id) {
		return Entry{}, fmt.Errorf("%w: %d (valid 1-%d)", ErrOutOfRange, id, len(c.entries))
	}
	return c.entries[id-1], nil
}

// ByName returns the entry whose name matches exactly.
func (c *Catalog) ByName(name string) (Entry, error) {
	idx, err := c.names.Get(context.Background(), name, name, cachemanager.NoExpiration)
	if err != nil {
		return Entry{}, err
	}
	return c.entries[idx], nil
}

func (c *Catalog) scan(_ context.Context, name string) (int, error) {
	for i, e := range c.entries {
		if e.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
}
