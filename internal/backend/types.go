package backend

import "github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/model"

type RecommendationRequest struct {
	Query          string   `json:"query"`
	TopK           int      `json:"top_k"`
	CategoryFilter string   `json:"category_filter,omitempty"`
	PriceMin       *float64 `json:"price_min,omitempty"`
	PriceMax       *float64 `json:"price_max,omitempty"`
}

// FiltersApplied echoes the constraints the backend actually used. The
// backend sends nulls for unset fields; they decode to the zero values here.
type FiltersApplied struct {
	Category string   `json:"category,omitempty"`
	PriceMin *float64 `json:"price_min,omitempty"`
	PriceMax *float64 `json:"price_max,omitempty"`
}

type RecommendationResponse struct {
	Query           string          `json:"query"`
	Recommendations []model.Product `json:"recommendations"`
	Total           int             `json:"total"`
	FiltersApplied  FiltersApplied  `json:"filters_applied"`
}

type TrendingResponse struct {
	TrendingProducts []model.Product `json:"trending_products"`
	Total            int             `json:"total"`
}

type SimilarResponse struct {
	ProductID       string          `json:"product_id"`
	SimilarProducts []model.Product `json:"similar_products"`
	Total           int             `json:"total"`
}

type PriceBounds struct {
	PriceMin *float64 `json:"price_min"`
	PriceMax *float64 `json:"price_max"`
}

type CategoryResponse struct {
	Category string          `json:"category"`
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
	Filters  PriceBounds     `json:"filters"`
}

type GenerateDescriptionRequest struct {
	ProductID       string `json:"product_id"`
	EnhanceExisting bool   `json:"enhance_existing"`
}

type GenerateDescriptionResponse struct {
	ProductID            string `json:"product_id"`
	OriginalDescription  string `json:"original_description"`
	GeneratedDescription string `json:"generated_description"`
	EnhancementType      string `json:"enhancement_type"`
}

type AllProductsResponse struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
	Limit    int             `json:"limit"`
	Offset   int             `json:"offset"`
}

type MinMax struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type PriceStatistics struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
}

type PriceRanges struct {
	Budget   int `json:"budget"`
	MidRange int `json:"mid_range"`
	Premium  int `json:"premium"`
}

type CategoryInsight struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	AvgPrice   float64 `json:"avg_price"`
	PriceRange MinMax  `json:"price_range"`
}

type RecommendationInsights struct {
	TotalRecommendationsGenerated int      `json:"total_recommendations_generated"`
	AverageSimilarityScore        float64  `json:"average_similarity_score"`
	MostRecommendedCategories     []string `json:"most_recommended_categories"`
	RecommendationAccuracy        float64  `json:"recommendation_accuracy"`
}

type MetricsResponse struct {
	TotalProducts          int                        `json:"total_products"`
	Categories             map[string]int             `json:"categories"`
	CategoryInsights       map[string]CategoryInsight `json:"category_insights"`
	PriceStatistics        PriceStatistics            `json:"price_statistics"`
	PriceRanges            PriceRanges                `json:"price_ranges"`
	RecommendationInsights RecommendationInsights     `json:"recommendation_insights"`
}

type Embeddings2DResponse struct {
	Coordinates            [][]float64            `json:"coordinates"`
	Metadata               []model.EmbeddingPoint `json:"metadata"`
	Method                 string                 `json:"method"`
	NComponents            int                    `json:"n_components"`
	ExplainedVarianceRatio []float64              `json:"explained_variance_ratio,omitempty"`
}

type RawEmbeddingsResponse struct {
	Embeddings    [][]float64              `json:"embeddings"`
	Metadata      []map[string]interface{} `json:"metadata"`
	Dimension     int                      `json:"dimension"`
	TotalProducts int                      `json:"total_products"`
}

type PriceSimilarity struct {
	TargetPrice   float64   `json:"target_price"`
	SimilarPrices []float64 `json:"similar_prices"`
	PriceVariance float64   `json:"price_variance"`
	PriceRange    MinMax    `json:"price_range"`
}

type SimilarityAnalysisResponse struct {
	ProductID            string             `json:"product_id"`
	TargetProduct        *model.Product     `json:"target_product"`
	SimilarityScores     []float64          `json:"similarity_scores"`
	SimilarityStatistics map[string]float64 `json:"similarity_statistics"`
	CategoryDistribution map[string]int     `json:"category_distribution"`
	PriceSimilarity      PriceSimilarity    `json:"price_similarity"`
}

type QualityAnalysis struct {
	TotalRecommendations int     `json:"total_recommendations"`
	AverageSimilarity    float64 `json:"average_similarity"`
	MaxSimilarity        float64 `json:"max_similarity"`
	MinSimilarity        float64 `json:"min_similarity"`
	CategoryDiversity    int     `json:"category_diversity"`
}

type QueryQuality struct {
	Query           string          `json:"query"`
	QualityAnalysis QualityAnalysis `json:"quality_analysis"`
}

type OverallQuality struct {
	AverageSimilarity float64 `json:"average_similarity"`
	AverageDiversity  float64 `json:"average_diversity"`
	OverallScore      float64 `json:"overall_score"`
}

type QualityResponse struct {
	TestQueries       int            `json:"test_queries"`
	SuccessfulQueries int            `json:"successful_queries"`
	QualityMetrics    []QueryQuality `json:"quality_metrics"`
	OverallQuality    OverallQuality `json:"overall_quality"`
}

type CategoryAnalyticsResponse struct {
	CategoryInsights     map[string]CategoryInsight `json:"category_insights"`
	CategoryDistribution map[string]int             `json:"category_distribution"`
	TotalCategories      int                        `json:"total_categories"`
}

type PriceInsights struct {
	BudgetProducts   int `json:"budget_products"`
	MidRangeProducts int `json:"mid_range_products"`
	PremiumProducts  int `json:"premium_products"`
}

type PriceAnalysisResponse struct {
	PriceStatistics PriceStatistics `json:"price_statistics"`
	PriceRanges     PriceRanges     `json:"price_ranges"`
	PriceInsights   PriceInsights   `json:"price_insights"`
}

type UploadResponse struct {
	Message           string `json:"message"`
	Filename          string `json:"filename"`
	ProductsProcessed int    `json:"products_processed"`
	FilePath          string `json:"file_path"`
}
