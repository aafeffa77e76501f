package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pokedex/internal/pokedex"
)

func TestBuilder_WithOwner(t *testing.T) {
	svc := NewBuilder(t).
		WithOwner("Ash").
		Build()

	owners := svc.Owners()
	require.Len(t, owners, 1)
	require.Equal(t, "Ash", owners[0].Name)
	require.Equal(t, []int{1}, owners[0].Dex.IDs())
}

func TestBuilder_RecordsAndStarter(t *testing.T) {
	svc := NewBuilder(t).
		WithOwner("Gary", Starter(2), Records(133, 25)).
		Build()

	owner, err := svc.OwnerAt(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 25, 133}, owner.Dex.IDs())
}

func TestBuilder_WithoutStarter(t *testing.T) {
	svc := NewBuilder(t).
		WithOwner("Brock", Records(74), WithoutStarter()).
		WithOwner("Erika", Records(1, 43), WithoutStarter()).
		Build()

	brock, err := svc.OwnerAt(1)
	require.NoError(t, err)
	require.Equal(t, []int{74}, brock.Dex.IDs())

	erika, err := svc.OwnerAt(2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 43}, erika.Dex.IDs(), "a listed starter is kept")
}

func TestBuilder_WithOptions(t *testing.T) {
	svc := NewBuilder(t).
		WithOptions(pokedex.WithStarters("Pikachu")).
		WithOwner("Ash").
		Build()

	owner, err := svc.OwnerAt(1)
	require.NoError(t, err)
	require.Equal(t, []int{25}, owner.Dex.IDs())
}
