package app

import "github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/model"

// defaultPalette is the fixed categorical palette for the explorer.
var defaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Palette returns the first size colors of the default palette, or all of
// them when size is out of range.
func Palette(size int) []string {
	if size <= 0 || size > len(defaultPalette) {
		return defaultPalette
	}
	return defaultPalette[:size]
}

// AssignCategoryColors maps each category to a palette color by first-seen
// order over the given point set, cycling modulo the palette size. The same
// ordered category sequence always yields the same colors.
func AssignCategoryColors(points []model.EmbeddingPoint, palette []string) map[string]string {
	if len(palette) == 0 {
		palette = defaultPalette
	}
	colors := make(map[string]string)
	next := 0
	for _, point := range points {
		if _, ok := colors[point.Category]; ok {
			continue
		}
		colors[point.Category] = palette[next%len(palette)]
		next++
	}
	return colors
}
