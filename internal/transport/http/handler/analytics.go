package handler

import (
	"github.com/gin-gonic/gin"

	appsvc "github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/app"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/backend"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/transport/http/response"
)

type AnalyticsHandler struct {
	metricsService *appsvc.MetricsService
	gateway        *backend.Client
}

func NewAnalyticsHandler(metricsService *appsvc.MetricsService, gateway *backend.Client) *AnalyticsHandler {
	return &AnalyticsHandler{metricsService: metricsService, gateway: gateway}
}

// Dashboard serves the aggregated view the metrics page renders. There is
// no server-side caching; a retry from the page is a fresh fetch.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.metricsService.Dashboard(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, dashboard)
}

func (h *AnalyticsHandler) Similarity(c *gin.Context) {
	resp, err := h.gateway.SimilarityAnalysis(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *AnalyticsHandler) Quality(c *gin.Context) {
	resp, err := h.gateway.Quality(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *AnalyticsHandler) Categories(c *gin.Context) {
	resp, err := h.gateway.CategoryAnalytics(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *AnalyticsHandler) PriceAnalysis(c *gin.Context) {
	resp, err := h.gateway.PriceAnalysis(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *AnalyticsHandler) RawEmbeddings(c *gin.Context) {
	resp, err := h.gateway.RawEmbeddings(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}
