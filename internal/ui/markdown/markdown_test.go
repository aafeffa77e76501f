package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRender_KeepsText(t *testing.T) {
	r, err := New(60, "dark")
	require.NoError(t, err)
	require.Equal(t, 60, r.Width())
	require.Equal(t, "dark", r.Style())

	out, err := r.Render("# Main Menu\n\n1. New Pokedex\n2. Existing Pokedex\n")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "Main Menu")
	require.Contains(t, plain, "New Pokedex")
	require.Contains(t, plain, "Existing Pokedex")
}

func TestRender_WrapsToWidth(t *testing.T) {
	r, err := New(20, "light")
	require.NoError(t, err)

	out, err := r.Render("Release a record by entering its catalog ID at the prompt.")
	require.NoError(t, err)

	for _, line := range strings.Split(ansi.Strip(out), "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), 20, "line %q", line)
	}
}

func TestNew_AutoStyle(t *testing.T) {
	r, err := New(40, "")
	require.NoError(t, err)
	require.Empty(t, r.Style())
}
