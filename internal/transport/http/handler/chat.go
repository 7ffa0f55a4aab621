package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appsvc "github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/app"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/model"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/transport/http/response"
)

type ChatHandler struct {
	chatService     *appsvc.ChatService
	explorerService *appsvc.ExplorerService
}

type CreateSessionRequest struct {
	Title string `json:"title" binding:"max=128"`
}

type SubmitRequest struct {
	Query   string        `json:"query" binding:"required"`
	Filters FilterRequest `json:"filters"`
}

type FilterRequest struct {
	Category string   `json:"category"`
	PriceMin *float64 `json:"price_min"`
	PriceMax *float64 `json:"price_max"`
}

type GenerateCardRequest struct {
	EnhanceExisting bool `json:"enhance_existing"`
}

type ToggleCardRequest struct {
	ShowGenerated bool `json:"show_generated"`
}

func NewChatHandler(chatService *appsvc.ChatService, explorerService *appsvc.ExplorerService) *ChatHandler {
	return &ChatHandler{chatService: chatService, explorerService: explorerService}
}

func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}
	response.OK(c, h.chatService.CreateSession(req.Title))
}

func (h *ChatHandler) ListSessions(c *gin.Context) {
	response.OK(c, h.chatService.ListSessions())
}

func (h *ChatHandler) DeleteSession(c *gin.Context) {
	sessionID := c.Param("id")
	if err := h.chatService.DeleteSession(sessionID); err != nil {
		writeServiceError(c, err)
		return
	}
	// The page's explorer state shares the session's lifetime.
	h.explorerService.Drop(sessionID)
	response.OK(c, gin.H{"deleted_session_id": sessionID})
}

func (h *ChatHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.chatService.Submit(c.Request.Context(), appsvc.SubmitInput{
		SessionID: c.Param("id"),
		Query:     req.Query,
		Filters: model.FilterState{
			Category: req.Filters.Category,
			PriceMin: req.Filters.PriceMin,
			PriceMax: req.Filters.PriceMax,
		},
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *ChatHandler) ShowTrending(c *gin.Context) {
	result, err := h.chatService.ShowTrending(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *ChatHandler) History(c *gin.Context) {
	messages, err := h.chatService.Transcript(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, messages)
}

func (h *ChatHandler) Recommendations(c *gin.Context) {
	list, err := h.chatService.Recommendations(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, list)
}

func (h *ChatHandler) GenerateCardDescription(c *gin.Context) {
	var req GenerateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	view, err := h.chatService.GenerateCardDescription(
		c.Request.Context(), c.Param("id"), c.Param("productId"), req.EnhanceExisting)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, view)
}

func (h *ChatHandler) ToggleCard(c *gin.Context) {
	var req ToggleCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	view, err := h.chatService.ToggleCard(c.Param("id"), c.Param("productId"), req.ShowGenerated)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, view)
}

func (h *ChatHandler) Card(c *gin.Context) {
	view, err := h.chatService.Card(c.Param("id"), c.Param("productId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, view)
}
