package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/backend"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/model"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrQueryEmpty       = errors.New("query is empty")
	ErrSendInFlight     = errors.New("a query is already in flight for this session")
	ErrTrendingInFlight = errors.New("a trending request is already in flight for this session")
)

const (
	apologyReply  = "Sorry, I couldn't fetch recommendations right now. Please try again."
	trendingReply = "Here are the trending products right now."
)

// RecommendGateway is the slice of the backend client the chat flow needs.
type RecommendGateway interface {
	Recommend(ctx context.Context, req backend.RecommendationRequest) (*backend.RecommendationResponse, error)
	Trending(ctx context.Context, topK int) (*backend.TrendingResponse, error)
	GenerateDescription(ctx context.Context, req backend.GenerateDescriptionRequest) (*backend.GenerateDescriptionResponse, error)
}

type SessionInfo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type RecommendationList struct {
	Query          string            `json:"query"`
	Products       []model.Product   `json:"products"`
	Total          int               `json:"total"`
	FiltersApplied model.FilterState `json:"filters_applied"`
}

type SubmitInput struct {
	SessionID string
	Query     string
	Filters   model.FilterState
}

type SubmitResult struct {
	Reply model.ChatMessage  `json:"reply"`
	List  RecommendationList `json:"list"`
}

// conversation is the per-session state machine. The mutex is the only
// synchronization inside a session; sessions never share state.
type conversation struct {
	info SessionInfo

	mu             sync.Mutex
	messages       []model.ChatMessage
	sending        bool
	trendingActive bool
	// listSeq numbers every action that will replace the recommendation
	// list. A response is applied only while its number is still the
	// newest issued, so overlapping Submit/ShowTrending cannot leave the
	// display on a superseded result.
	listSeq        uint64
	query          string
	products       []model.Product
	total          int
	filtersApplied model.FilterState
	cards          map[string]*cardOverlay
}

type ChatService struct {
	gateway      RecommendGateway
	logger       *zap.Logger
	topK         int
	trendingTopK int

	mu       sync.RWMutex
	sessions map[string]*conversation
}

func NewChatService(gateway RecommendGateway, logger *zap.Logger, topK, trendingTopK int) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if topK <= 0 {
		topK = 5
	}
	if trendingTopK <= 0 {
		trendingTopK = 10
	}
	return &ChatService{
		gateway:      gateway,
		logger:       logger,
		topK:         topK,
		trendingTopK: trendingTopK,
		sessions:     make(map[string]*conversation),
	}
}

func (s *ChatService) CreateSession(title string) SessionInfo {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "New Chat"
	}
	conv := &conversation{
		info: SessionInfo{
			ID:        uuid.NewString(),
			Title:     title,
			CreatedAt: time.Now(),
		},
		cards: make(map[string]*cardOverlay),
	}

	s.mu.Lock()
	s.sessions[conv.info.ID] = conv
	s.mu.Unlock()

	return conv.info
}

func (s *ChatService) ListSessions() []SessionInfo {
	s.mu.RLock()
	infos := make([]SessionInfo, 0, len(s.sessions))
	for _, conv := range s.sessions {
		infos = append(infos, conv.info)
	}
	s.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool { return infos[i].CreatedAt.Before(infos[j].CreatedAt) })
	return infos
}

func (s *ChatService) DeleteSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// Submit runs one query through the state machine: reject if blank or if a
// send is already in flight, append the user message optimistically, call
// the backend, then append the assistant reply and replace the list.
func (s *ChatService) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	conv, err := s.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(input.Query)

	conv.mu.Lock()
	if query == "" {
		conv.mu.Unlock()
		return nil, ErrQueryEmpty
	}
	if conv.sending {
		conv.mu.Unlock()
		return nil, ErrSendInFlight
	}
	conv.sending = true
	conv.listSeq++
	token := conv.listSeq
	conv.appendMessage(model.RoleUser, query)
	filters := input.Filters.Normalized()
	conv.mu.Unlock()

	resp, err := s.gateway.Recommend(ctx, backend.RecommendationRequest{
		Query:          query,
		TopK:           s.topK,
		CategoryFilter: filters.Category,
		PriceMin:       filters.PriceMin,
		PriceMax:       filters.PriceMax,
	})

	conv.mu.Lock()
	defer conv.mu.Unlock()
	conv.sending = false

	if err != nil {
		s.logger.Warn("recommendation query failed",
			zap.String("session_id", input.SessionID),
			zap.Error(err))
		conv.appendMessage(model.RoleAssistant, apologyReply)
		return nil, fmt.Errorf("submit query: %w", err)
	}

	reply := conv.appendMessage(model.RoleAssistant,
		fmt.Sprintf("Found %d recommendations for %q", resp.Total, query))

	if token == conv.listSeq {
		conv.replaceList(query, resp.Recommendations, resp.Total, model.FilterState{
			Category: resp.FiltersApplied.Category,
			PriceMin: resp.FiltersApplied.PriceMin,
			PriceMax: resp.FiltersApplied.PriceMax,
		})
	} else {
		s.logger.Info("superseded recommendation response dropped",
			zap.String("session_id", input.SessionID),
			zap.String("query", query))
	}

	return &SubmitResult{Reply: reply, List: conv.listLocked()}, nil
}

// ShowTrending replaces the recommendation list with the backend's trending
// set. Failures append the same visible apology as Submit failures.
func (s *ChatService) ShowTrending(ctx context.Context, sessionID string) (*SubmitResult, error) {
	conv, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	conv.mu.Lock()
	if conv.trendingActive {
		conv.mu.Unlock()
		return nil, ErrTrendingInFlight
	}
	conv.trendingActive = true
	conv.listSeq++
	token := conv.listSeq
	conv.mu.Unlock()

	resp, err := s.gateway.Trending(ctx, s.trendingTopK)

	conv.mu.Lock()
	defer conv.mu.Unlock()
	conv.trendingActive = false

	if err != nil {
		s.logger.Warn("trending fetch failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		conv.appendMessage(model.RoleAssistant, apologyReply)
		return nil, fmt.Errorf("show trending: %w", err)
	}

	reply := conv.appendMessage(model.RoleAssistant, trendingReply)

	if token == conv.listSeq {
		conv.replaceList("", resp.TrendingProducts, resp.Total, model.FilterState{})
	} else {
		s.logger.Info("superseded trending response dropped",
			zap.String("session_id", sessionID))
	}

	return &SubmitResult{Reply: reply, List: conv.listLocked()}, nil
}

func (s *ChatService) Transcript(sessionID string) ([]model.ChatMessage, error) {
	conv, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	conv.mu.Lock()
	defer conv.mu.Unlock()
	out := make([]model.ChatMessage, len(conv.messages))
	copy(out, conv.messages)
	return out, nil
}

func (s *ChatService) Recommendations(sessionID string) (*RecommendationList, error) {
	conv, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	conv.mu.Lock()
	defer conv.mu.Unlock()
	list := conv.listLocked()
	return &list, nil
}

func (s *ChatService) session(sessionID string) (*conversation, error) {
	s.mu.RLock()
	conv, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return conv, nil
}

func (c *conversation) appendMessage(role, content string) model.ChatMessage {
	msg := model.ChatMessage{Role: role, Content: content, CreatedAt: time.Now()}
	c.messages = append(c.messages, msg)
	return msg
}

// replaceList swaps the recommendation list wholesale and discards every
// per-card overlay; generated descriptions never outlive their list.
func (c *conversation) replaceList(query string, products []model.Product, total int, applied model.FilterState) {
	c.query = query
	c.products = products
	c.total = total
	c.filtersApplied = applied
	c.cards = make(map[string]*cardOverlay)
}

func (c *conversation) listLocked() RecommendationList {
	products := make([]model.Product, len(c.products))
	copy(products, c.products)
	return RecommendationList{
		Query:          c.query,
		Products:       products,
		Total:          c.total,
		FiltersApplied: c.filtersApplied,
	}
}

func (c *conversation) findProduct(productID string) (*model.Product, bool) {
	for i := range c.products {
		if c.products[i].ID == productID {
			return &c.products[i], true
		}
	}
	return nil, false
}
