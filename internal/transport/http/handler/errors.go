package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appsvc "github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/app"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/backend"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/transport/http/response"
)

// writeServiceError maps service and gateway errors onto the response
// envelope. Backend failures surface as 502 so the caller can tell local
// problems from upstream ones.
func writeServiceError(c *gin.Context, err error) {
	var reqErr *backend.RequestError
	var schemaErr *backend.SchemaError

	switch {
	case errors.Is(err, appsvc.ErrSessionNotFound):
		response.Error(c, http.StatusNotFound, response.CodeSessionNotFound, err.Error())
	case errors.Is(err, appsvc.ErrCardNotFound), errors.Is(err, appsvc.ErrPointNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, appsvc.ErrQueryEmpty),
		errors.Is(err, appsvc.ErrUnknownMethod),
		errors.Is(err, appsvc.ErrNoGeneratedText):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, appsvc.ErrSendInFlight),
		errors.Is(err, appsvc.ErrTrendingInFlight),
		errors.Is(err, appsvc.ErrGenerateInFlight),
		errors.Is(err, appsvc.ErrListReplaced):
		response.Error(c, http.StatusConflict, response.CodeConflict, err.Error())
	case errors.As(err, &schemaErr):
		response.Error(c, http.StatusBadGateway, response.CodeUpstreamError, schemaErr.Error())
	case errors.As(err, &reqErr):
		response.Error(c, http.StatusBadGateway, response.CodeUpstreamError, reqErr.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "request failed")
	}
}
