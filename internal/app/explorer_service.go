package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/backend"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/model"
)

var (
	ErrUnknownMethod = errors.New("unknown projection method")
	ErrPointNotFound = errors.New("point not found in current projection")
)

// EmbeddingGateway is the slice of the backend client the explorer needs.
type EmbeddingGateway interface {
	Embeddings2D(ctx context.Context, method string, nComponents int) (*backend.Embeddings2DResponse, error)
}

type ExplorerState struct {
	Method                 string                 `json:"method"`
	Points                 []model.EmbeddingPoint `json:"points"`
	Colors                 map[string]string      `json:"colors"`
	Selected               *model.EmbeddingPoint  `json:"selected,omitempty"`
	ExplainedVarianceRatio []float64              `json:"explained_variance_ratio,omitempty"`
	LastError              string                 `json:"last_error,omitempty"`
}

// explorerView holds one page's projection state. The generation counter
// guards against out-of-order responses: a fetch result is applied only
// while its generation is still the newest issued, so switching pca to tsne
// mid-flight can never end up displaying the pca set.
type explorerView struct {
	mu         sync.Mutex
	method     string
	generation uint64
	points     []model.EmbeddingPoint
	colors     map[string]string
	selected   *model.EmbeddingPoint
	evr        []float64
	lastErr    string
}

type ExplorerService struct {
	gateway       EmbeddingGateway
	logger        *zap.Logger
	palette       []string
	defaultMethod string

	mu    sync.Mutex
	views map[string]*explorerView
}

func NewExplorerService(gateway EmbeddingGateway, logger *zap.Logger, defaultMethod string, paletteSize int) *ExplorerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultMethod != "pca" && defaultMethod != "tsne" {
		defaultMethod = "pca"
	}
	return &ExplorerService{
		gateway:       gateway,
		logger:        logger,
		palette:       Palette(paletteSize),
		defaultMethod: defaultMethod,
		views:         make(map[string]*explorerView),
	}
}

// Load fetches the projection for the view's current method. Also serves as
// the retry action after a failure.
func (s *ExplorerService) Load(ctx context.Context, viewID string) (*ExplorerState, error) {
	v := s.view(viewID)
	v.mu.Lock()
	method := v.method
	v.mu.Unlock()
	return s.fetch(ctx, viewID, v, method)
}

// SetMethod switches the projection method and re-fetches. The previous
// fetch, if still outstanding, becomes stale and its response is dropped.
func (s *ExplorerService) SetMethod(ctx context.Context, viewID, method string) (*ExplorerState, error) {
	if method != "pca" && method != "tsne" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	v := s.view(viewID)
	v.mu.Lock()
	v.method = method
	v.mu.Unlock()
	return s.fetch(ctx, viewID, v, method)
}

// Select replaces the current selection with the named point.
func (s *ExplorerService) Select(viewID, pointID string) (*model.EmbeddingPoint, error) {
	v := s.view(viewID)
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.points {
		if v.points[i].ID == pointID {
			point := v.points[i]
			v.selected = &point
			return &point, nil
		}
	}
	return nil, ErrPointNotFound
}

func (s *ExplorerService) ClearSelection(viewID string) {
	v := s.view(viewID)
	v.mu.Lock()
	v.selected = nil
	v.mu.Unlock()
}

func (s *ExplorerService) State(viewID string) *ExplorerState {
	v := s.view(viewID)
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stateLocked()
}

// Drop discards a view's state; called when its session goes away.
func (s *ExplorerService) Drop(viewID string) {
	s.mu.Lock()
	delete(s.views, viewID)
	s.mu.Unlock()
}

func (s *ExplorerService) view(viewID string) *explorerView {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[viewID]
	if !ok {
		v = &explorerView{method: s.defaultMethod}
		s.views[viewID] = v
	}
	return v
}

func (s *ExplorerService) fetch(ctx context.Context, viewID string, v *explorerView, method string) (*ExplorerState, error) {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.mu.Unlock()

	resp, err := s.gateway.Embeddings2D(ctx, method, 2)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.generation {
		s.logger.Info("stale projection response dropped",
			zap.String("view_id", viewID),
			zap.String("method", method))
		return v.stateLocked(), nil
	}

	if err != nil {
		v.lastErr = err.Error()
		return nil, fmt.Errorf("fetch projection: %w", err)
	}

	v.lastErr = ""
	v.points = resp.Metadata
	v.colors = AssignCategoryColors(resp.Metadata, s.palette)
	v.selected = nil
	v.evr = resp.ExplainedVarianceRatio
	return v.stateLocked(), nil
}

func (v *explorerView) stateLocked() *ExplorerState {
	points := make([]model.EmbeddingPoint, len(v.points))
	copy(points, v.points)

	colors := make(map[string]string, len(v.colors))
	for category, color := range v.colors {
		colors[category] = color
	}

	var selected *model.EmbeddingPoint
	if v.selected != nil {
		point := *v.selected
		selected = &point
	}

	return &ExplorerState{
		Method:                 v.method,
		Points:                 points,
		Colors:                 colors,
		Selected:               selected,
		ExplainedVarianceRatio: v.evr,
		LastError:              v.lastErr,
	}
}
