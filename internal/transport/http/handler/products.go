package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/backend"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/transport/http/response"
)

// ProductsHandler exposes the catalog operations the page chrome calls
// directly, passed through the gateway one-to-one.
type ProductsHandler struct {
	gateway *backend.Client
}

func NewProductsHandler(gateway *backend.Client) *ProductsHandler {
	return &ProductsHandler{gateway: gateway}
}

func (h *ProductsHandler) Trending(c *gin.Context) {
	topK := queryInt(c, "top_k", 10)
	resp, err := h.gateway.Trending(c.Request.Context(), topK)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *ProductsHandler) All(c *gin.Context) {
	limit := queryInt(c, "limit", 100)
	offset := queryInt(c, "offset", 0)
	resp, err := h.gateway.AllProducts(c.Request.Context(), limit, offset)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *ProductsHandler) ByID(c *gin.Context) {
	product, err := h.gateway.ProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, product)
}

func (h *ProductsHandler) Similar(c *gin.Context) {
	topK := queryInt(c, "top_k", 5)
	resp, err := h.gateway.Similar(c.Request.Context(), c.Param("id"), topK)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *ProductsHandler) ByCategory(c *gin.Context) {
	topK := queryInt(c, "top_k", 10)
	priceMin := queryFloat(c, "price_min")
	priceMax := queryFloat(c, "price_max")
	resp, err := h.gateway.ByCategory(c.Request.Context(), c.Param("category"), topK, priceMin, priceMax)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *ProductsHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing file field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "unreadable upload")
		return
	}
	defer file.Close()

	resp, err := h.gateway.UploadDataset(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func queryFloat(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
