package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/model"
)

// Observer receives the outcome of every outbound call. A nil observer
// disables instrumentation.
type Observer interface {
	ObserveCall(operation string, status int, elapsed time.Duration, err error)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the single seam between the orchestration layer and the
// recommendation backend. Every method issues exactly one HTTP call;
// there are no retries, no caching and no request coalescing.
type Client struct {
	httpClient *http.Client
	baseURL    string
	observer   Observer
}

func NewClient(cfg Config, observer Observer) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		observer:   observer,
	}
}

func (c *Client) Recommend(ctx context.Context, req RecommendationRequest) (*RecommendationResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("recommend: query must not be empty")
	}
	if req.TopK <= 0 {
		return nil, fmt.Errorf("recommend: top_k must be positive, got %d", req.TopK)
	}
	var out RecommendationResponse
	if err := c.do(ctx, "recommend", http.MethodPost, "/api/products/recommend", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Trending(ctx context.Context, topK int) (*TrendingResponse, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("trending: top_k must be positive, got %d", topK)
	}
	q := url.Values{"top_k": {strconv.Itoa(topK)}}
	var out TrendingResponse
	if err := c.do(ctx, "trending", http.MethodGet, "/api/products/trending", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Similar(ctx context.Context, productID string, topK int) (*SimilarResponse, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("similar: product id must not be empty")
	}
	if topK <= 0 {
		return nil, fmt.Errorf("similar: top_k must be positive, got %d", topK)
	}
	q := url.Values{"top_k": {strconv.Itoa(topK)}}
	path := "/api/products/" + url.PathEscape(productID) + "/similar"
	var out SimilarResponse
	if err := c.do(ctx, "similar", http.MethodGet, path, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ByCategory(ctx context.Context, category string, topK int, priceMin, priceMax *float64) (*CategoryResponse, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("category: category must not be empty")
	}
	if topK <= 0 {
		return nil, fmt.Errorf("category: top_k must be positive, got %d", topK)
	}
	q := url.Values{"top_k": {strconv.Itoa(topK)}}
	if priceMin != nil {
		q.Set("price_min", strconv.FormatFloat(*priceMin, 'f', -1, 64))
	}
	if priceMax != nil {
		q.Set("price_max", strconv.FormatFloat(*priceMax, 'f', -1, 64))
	}
	path := "/api/products/category/" + url.PathEscape(category)
	var out CategoryResponse
	if err := c.do(ctx, "category", http.MethodGet, path, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateDescription(ctx context.Context, req GenerateDescriptionRequest) (*GenerateDescriptionResponse, error) {
	if strings.TrimSpace(req.ProductID) == "" {
		return nil, fmt.Errorf("generate-description: product id must not be empty")
	}
	var out GenerateDescriptionResponse
	if err := c.do(ctx, "generate-description", http.MethodPost, "/api/products/generate-description", nil, req, &out); err != nil {
		return nil, err
	}
	if out.GeneratedDescription == "" {
		return nil, &SchemaError{Operation: "generate-description", Err: fmt.Errorf("generated_description is empty")}
	}
	return &out, nil
}

func (c *Client) AllProducts(ctx context.Context, limit, offset int) (*AllProductsResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	q := url.Values{
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}
	var out AllProductsResponse
	if err := c.do(ctx, "all-products", http.MethodGet, "/api/products/all", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProductByID(ctx context.Context, productID string) (*model.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("product: product id must not be empty")
	}
	var out model.Product
	if err := c.do(ctx, "product", http.MethodGet, "/api/products/"+url.PathEscape(productID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Metrics(ctx context.Context) (*MetricsResponse, error) {
	var out MetricsResponse
	if err := c.do(ctx, "metrics", http.MethodGet, "/api/analytics/metrics", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Embeddings2D(ctx context.Context, method string, nComponents int) (*Embeddings2DResponse, error) {
	if method != "pca" && method != "tsne" {
		return nil, fmt.Errorf("embeddings-2d: unknown projection method %q", method)
	}
	if nComponents < 2 || nComponents > 3 {
		return nil, fmt.Errorf("embeddings-2d: n_components must be 2 or 3, got %d", nComponents)
	}
	q := url.Values{
		"method":       {method},
		"n_components": {strconv.Itoa(nComponents)},
	}
	var out Embeddings2DResponse
	if err := c.do(ctx, "embeddings-2d", http.MethodGet, "/api/analytics/embeddings-2d", q, nil, &out); err != nil {
		return nil, err
	}
	if len(out.Coordinates) != len(out.Metadata) {
		return nil, &SchemaError{
			Operation: "embeddings-2d",
			Err:       fmt.Errorf("coordinates (%d) and metadata (%d) length mismatch", len(out.Coordinates), len(out.Metadata)),
		}
	}
	return &out, nil
}

func (c *Client) RawEmbeddings(ctx context.Context) (*RawEmbeddingsResponse, error) {
	var out RawEmbeddingsResponse
	if err := c.do(ctx, "raw-embeddings", http.MethodGet, "/api/products/embeddings", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SimilarityAnalysis(ctx context.Context, productID string) (*SimilarityAnalysisResponse, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("similarity-analysis: product id must not be empty")
	}
	path := "/api/analytics/similarity/" + url.PathEscape(productID)
	var out SimilarityAnalysisResponse
	if err := c.do(ctx, "similarity-analysis", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Quality(ctx context.Context) (*QualityResponse, error) {
	var out QualityResponse
	if err := c.do(ctx, "quality", http.MethodGet, "/api/analytics/quality", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CategoryAnalytics(ctx context.Context) (*CategoryAnalyticsResponse, error) {
	var out CategoryAnalyticsResponse
	if err := c.do(ctx, "category-analytics", http.MethodGet, "/api/analytics/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PriceAnalysis(ctx context.Context) (*PriceAnalysisResponse, error) {
	var out PriceAnalysisResponse
	if err := c.do(ctx, "price-analysis", http.MethodGet, "/api/analytics/price-analysis", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UploadDataset(ctx context.Context, filename string, file io.Reader) (*UploadResponse, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("upload: filename must not be empty")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("upload: create form file failed: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("upload: read file failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("upload: finalize form failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/products/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("upload: build request failed: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out UploadResponse
	if err := c.send(req, "upload", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s request failed: %w", operation, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("build %s request failed: %w", operation, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, operation, out)
}

func (c *Client) send(req *http.Request, operation string, out interface{}) error {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		reqErr := &RequestError{Message: fmt.Sprintf("%s: %v", operation, err)}
		c.observe(operation, 0, start, reqErr)
		return reqErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		reqErr := &RequestError{Status: resp.StatusCode, Message: fmt.Sprintf("%s: read body failed: %v", operation, err)}
		c.observe(operation, resp.StatusCode, start, reqErr)
		return reqErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reqErr := &RequestError{Status: resp.StatusCode, Message: errorMessage(raw)}
		c.observe(operation, resp.StatusCode, start, reqErr)
		return reqErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			schemaErr := &SchemaError{Operation: operation, Err: err}
			c.observe(operation, resp.StatusCode, start, schemaErr)
			return schemaErr
		}
	}

	c.observe(operation, resp.StatusCode, start, nil)
	return nil
}

func (c *Client) observe(operation string, status int, start time.Time, err error) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveCall(operation, status, time.Since(start), err)
}

// errorMessage extracts the backend's {"detail": "..."} error payload when
// present, falling back to the raw body.
func errorMessage(raw []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		return "request failed"
	}
	if len(msg) > 512 {
		msg = msg[:512]
	}
	return msg
}
