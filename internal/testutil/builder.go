// Package testutil builds populated pokedex services for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pokedex/internal/catalog"
	"github.com/zjrosen/pokedex/internal/pokedex"
)

// Builder accumulates owners and creates them through the service API, so
// every invariant the service enforces also holds for test data.
type Builder struct {
	t      *testing.T
	cat    *catalog.Catalog
	opts   []pokedex.Option
	owners []ownerData
}

// NewBuilder creates a builder over the default catalog.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t, cat: catalog.Default()}
}

// WithCatalog replaces the catalog.
func (b *Builder) WithCatalog(cat *catalog.Catalog) *Builder {
	b.cat = cat
	return b
}

// WithOptions passes service options through to pokedex.New.
func (b *Builder) WithOptions(opts ...pokedex.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// WithOwner adds an owner. Owners are linked in call order.
func (b *Builder) WithOwner(name string, opts ...OwnerOption) *Builder {
	owner := defaultOwner(name)
	for _, opt := range opts {
		opt(&owner)
	}
	b.owners = append(b.owners, owner)
	return b
}

// Build creates the service and its owners. The service is closed when the
// test ends.
func (b *Builder) Build() *pokedex.Service {
	b.t.Helper()

	svc, err := pokedex.New(b.cat, b.opts...)
	require.NoError(b.t, err)
	b.t.Cleanup(func() { svc.Close() })

	ctx := context.Background()
	for _, o := range b.owners {
		owner, err := svc.NewPokedex(ctx, o.name, o.starter)
		require.NoError(b.t, err, "creating owner %s", o.name)

		starterID := owner.Dex.IDs()[0]
		keepStarter := false
		for _, id := range o.records {
			if id == starterID {
				keepStarter = true
				continue
			}
			_, err := svc.Add(ctx, owner, id)
			require.NoError(b.t, err, "adding %d to %s", id, o.name)
		}
		if o.release && !keepStarter {
			_, err := svc.Release(ctx, owner, starterID)
			require.NoError(b.t, err)
		}
	}
	return svc
}
