// Package views provides pure, stateless transforms over a store
// snapshot: category colors, CSV projection, and dashboard aggregates.
// Nothing here mutates the store.
package views

import "github.com/charmbracelet/lipgloss"

// fallbackColor is used for categories without a palette entry.
const fallbackColor = "#e5e7eb"

// categoryPalette maps well-known category labels to display colors.
// Categories are free-text, so lookups are best-effort.
var categoryPalette = map[string]string{
	"Groceries":     "#4ECDC4",
	"Dining":        "#FF6B6B",
	"Transport":     "#95E1D3",
	"Travel":        "#FFE66D",
	"Entertainment": "#C7CEEA",
	"Shopping":      "#F8B5D0",
	"Utilities":     "#A8D8EA",
	"Health":        "#B5EAD7",
	"Rent":          "#FFDAC1",
	"Income":        "#77DD77",
}

// CategoryColor returns the display color for a category, falling back to
// a neutral gray for unknown labels.
func CategoryColor(category string) lipgloss.Color {
	if hex, ok := categoryPalette[category]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(fallbackColor)
}

// ContrastColor returns the label color to draw on top of the given
// background.
func ContrastColor(background lipgloss.Color) lipgloss.Color {
	// The palette is pastel throughout; dark text reads on all of it.
	return lipgloss.Color("#111827")
}

// CategoryStyle returns a lipgloss style rendering a category label on its
// palette color.
func CategoryStyle(category string) lipgloss.Style {
	bg := CategoryColor(category)
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(ContrastColor(bg)).
		Padding(0, 1)
}
