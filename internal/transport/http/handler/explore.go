package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appsvc "github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/app"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/transport/http/response"
)

type ExploreHandler struct {
	explorerService *appsvc.ExplorerService
}

type SetMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

type SelectPointRequest struct {
	PointID string `json:"point_id" binding:"required"`
}

func NewExploreHandler(explorerService *appsvc.ExplorerService) *ExploreHandler {
	return &ExploreHandler{explorerService: explorerService}
}

func (h *ExploreHandler) State(c *gin.Context) {
	response.OK(c, h.explorerService.State(c.Param("id")))
}

func (h *ExploreHandler) Load(c *gin.Context) {
	state, err := h.explorerService.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, state)
}

func (h *ExploreHandler) SetMethod(c *gin.Context) {
	var req SetMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	state, err := h.explorerService.SetMethod(c.Request.Context(), c.Param("id"), req.Method)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, state)
}

// Retry re-issues the fetch for the current method after a failure.
func (h *ExploreHandler) Retry(c *gin.Context) {
	state, err := h.explorerService.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, state)
}

func (h *ExploreHandler) Select(c *gin.Context) {
	var req SelectPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	point, err := h.explorerService.Select(c.Param("id"), req.PointID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, point)
}

func (h *ExploreHandler) ClearSelection(c *gin.Context) {
	h.explorerService.ClearSelection(c.Param("id"))
	response.OK(c, gin.H{"cleared": true})
}
