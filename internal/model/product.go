package model

import "strings"

type Product struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	Price                float64  `json:"price"`
	Description          string   `json:"description"`
	ImageURL             string   `json:"image_url,omitempty"`
	SimilarityScore      *float64 `json:"similarity_score,omitempty"`
	RecommendationReason string   `json:"recommendation_reason,omitempty"`
}

// FilterState holds the optional constraints attached to a query. Unset
// fields are omitted from outgoing requests entirely.
type FilterState struct {
	Category string   `json:"category,omitempty"`
	PriceMin *float64 `json:"price_min,omitempty"`
	PriceMax *float64 `json:"price_max,omitempty"`
}

// Normalized returns a copy with blank category trimmed away so that empty
// values never reach the wire as placeholders.
func (f FilterState) Normalized() FilterState {
	f.Category = strings.TrimSpace(f.Category)
	return f
}

func (f FilterState) IsEmpty() bool {
	return strings.TrimSpace(f.Category) == "" && f.PriceMin == nil && f.PriceMax == nil
}
