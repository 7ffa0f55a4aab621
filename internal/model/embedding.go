package model

// EmbeddingPoint is one product projected into two dimensions. The point set
// is replaced wholesale on every fetch.
type EmbeddingPoint struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}
