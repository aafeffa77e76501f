package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m := New().Show("Pikachu added", StyleSuccess)

	assert.True(t, m.Visible())
	assert.Equal(t, "Pikachu added", m.Message())
	assert.Contains(t, m.View(), "✓ Pikachu added")
	assert.Contains(t, m.View(), "╭")
}

func TestShow_ReplacesExisting(t *testing.T) {
	m := New().
		Show("First", StyleSuccess).
		Show("Second", StyleError)

	assert.Contains(t, m.View(), "✗ Second")
	assert.NotContains(t, m.View(), "First")
}

func TestView_Icons(t *testing.T) {
	tests := map[Style]string{
		StyleSuccess: "✓ msg",
		StyleError:   "✗ msg",
		StyleInfo:    "i msg",
		StyleWarn:    "! msg",
	}
	for style, want := range tests {
		assert.Contains(t, New().Show("msg", style).View(), want)
	}
}

func TestHide(t *testing.T) {
	m := New().Show("Hello", StyleSuccess).Hide()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShowFor_DismissesOnlyLatest(t *testing.T) {
	m, cmd := New().ShowFor("first", StyleInfo, time.Millisecond)
	require.NotNil(t, cmd)
	stale := cmd()

	m, cmd = m.ShowFor("second", StyleInfo, time.Millisecond)
	m = m.Update(stale)
	assert.True(t, m.Visible(), "a stale dismissal must not hide the newer toast")

	m = m.Update(cmd())
	assert.False(t, m.Visible())
}

func TestOverlay_NotVisibleReturnsBackground(t *testing.T) {
	bg := "Background\nContent"
	assert.Equal(t, bg, New().Overlay(bg, 20, 10))
}

func TestOverlay_VisiblePlacesNearBottom(t *testing.T) {
	m := New().Show("Toast", StyleSuccess)
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 20)+"\n", 10), "\n")

	lines := strings.Split(m.Overlay(bg, 20, 10), "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[7], "Toast", "three-line box ends one row above the bottom")
	assert.Equal(t, strings.Repeat(".", 20), lines[9])
}
