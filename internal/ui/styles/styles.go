// Package styles contains Lip Gloss style definitions.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/pokedex/internal/catalog"
)

var (
	// Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BBBBBB"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // hints, footers

	// Borders
	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	TitleColor              = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}

	// Record type colors, indexed by catalog.Type.
	TypeColors = map[catalog.Type]lipgloss.AdaptiveColor{
		catalog.Grass:    {Light: "#3F9F3F", Dark: "#7AC74C"},
		catalog.Fire:     {Light: "#D9531E", Dark: "#EE8130"},
		catalog.Water:    {Light: "#3366CC", Dark: "#6390F0"},
		catalog.Bug:      {Light: "#8A9A1B", Dark: "#A6B91A"},
		catalog.Normal:   {Light: "#777766", Dark: "#A8A77A"},
		catalog.Poison:   {Light: "#8E3B8E", Dark: "#A33EA1"},
		catalog.Electric: {Light: "#C9A400", Dark: "#F7D02C"},
		catalog.Ground:   {Light: "#A88B3A", Dark: "#E2BF65"},
		catalog.Fairy:    {Light: "#C05C8E", Dark: "#D685AD"},
		catalog.Fighting: {Light: "#A2231D", Dark: "#C22E28"},
		catalog.Psychic:  {Light: "#D93A6E", Dark: "#F95587"},
		catalog.Rock:     {Light: "#8F7D27", Dark: "#B6A136"},
		catalog.Ghost:    {Light: "#5A4680", Dark: "#735797"},
		catalog.Dragon:   {Light: "#5125D6", Dark: "#6F35FC"},
		catalog.Ice:      {Light: "#5AB3B0", Dark: "#96D9D6"},
	}

	TitleStyle              = lipgloss.NewStyle()
	SelectionIndicatorStyle = lipgloss.NewStyle()
	MenuKeyStyle            = lipgloss.NewStyle()
	MenuItemStyle           = lipgloss.NewStyle()
	PromptStyle             = lipgloss.NewStyle()
	HintStyle               = lipgloss.NewStyle()
	SuccessStyle            = lipgloss.NewStyle()
	ErrorStyle              = lipgloss.NewStyle()
	StatusBarStyle          = lipgloss.NewStyle()
)

func init() {
	rebuildStyles()
}

// TypeStyle returns the foreground style for a record type.
func TypeStyle(t catalog.Type) lipgloss.Style {
	c, ok := TypeColors[t]
	if !ok {
		return lipgloss.NewStyle().Foreground(TextSecondaryColor)
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
