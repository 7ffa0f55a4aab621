package app

import (
	"testing"

	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/model"
)

func TestAssignCategoryColorsFirstSeenOrder(t *testing.T) {
	points := []model.EmbeddingPoint{
		{ID: "1", Category: "sofa"},
		{ID: "2", Category: "desk"},
		{ID: "3", Category: "sofa"},
		{ID: "4", Category: "lamp"},
	}
	palette := []string{"red", "green", "blue"}

	colors := AssignCategoryColors(points, palette)
	if colors["sofa"] != "red" || colors["desk"] != "green" || colors["lamp"] != "blue" {
		t.Errorf("colors = %v", colors)
	}
}

func TestAssignCategoryColorsDeterministic(t *testing.T) {
	points := []model.EmbeddingPoint{
		{ID: "1", Category: "sofa"},
		{ID: "2", Category: "desk"},
	}
	first := AssignCategoryColors(points, Palette(10))
	second := AssignCategoryColors(points, Palette(10))
	for category, color := range first {
		if second[category] != color {
			t.Errorf("category %q colored %q then %q", category, color, second[category])
		}
	}
}

func TestAssignCategoryColorsCyclesPalette(t *testing.T) {
	points := []model.EmbeddingPoint{
		{ID: "1", Category: "a"},
		{ID: "2", Category: "b"},
		{ID: "3", Category: "c"},
	}
	palette := []string{"red", "green"}

	colors := AssignCategoryColors(points, palette)
	if colors["c"] != "red" {
		t.Errorf("third category = %q, want palette to wrap to red", colors["c"])
	}
}

func TestPaletteSizeClamping(t *testing.T) {
	if got := len(Palette(3)); got != 3 {
		t.Errorf("Palette(3) length = %d", got)
	}
	if got := len(Palette(0)); got != len(defaultPalette) {
		t.Errorf("Palette(0) length = %d, want full palette", got)
	}
	if got := len(Palette(99)); got != len(defaultPalette) {
		t.Errorf("Palette(99) length = %d, want full palette", got)
	}
}
