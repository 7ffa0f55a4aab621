package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	appsvc "github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/app"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/backend"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/model"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/transport/http/response"
)

type stubGateway struct {
	recommendErr error
}

func (s *stubGateway) Recommend(_ context.Context, req backend.RecommendationRequest) (*backend.RecommendationResponse, error) {
	if s.recommendErr != nil {
		return nil, s.recommendErr
	}
	return &backend.RecommendationResponse{
		Query:           req.Query,
		Recommendations: []model.Product{{ID: "p1", Name: "Aria Sofa", Category: "sofa", Price: 899}},
		Total:           1,
	}, nil
}

func (s *stubGateway) Trending(context.Context, int) (*backend.TrendingResponse, error) {
	return &backend.TrendingResponse{}, nil
}

func (s *stubGateway) GenerateDescription(_ context.Context, req backend.GenerateDescriptionRequest) (*backend.GenerateDescriptionResponse, error) {
	return &backend.GenerateDescriptionResponse{ProductID: req.ProductID, GeneratedDescription: "generated"}, nil
}

func (s *stubGateway) Embeddings2D(context.Context, string, int) (*backend.Embeddings2DResponse, error) {
	return &backend.Embeddings2DResponse{Method: "pca", NComponents: 2}, nil
}

func newTestRouter(gw *stubGateway) (*gin.Engine, *appsvc.ChatService) {
	gin.SetMode(gin.TestMode)
	chatService := appsvc.NewChatService(gw, nil, 5, 10)
	explorerService := appsvc.NewExplorerService(gw, nil, "pca", 10)

	chatHandler := NewChatHandler(chatService, explorerService)
	exploreHandler := NewExploreHandler(explorerService)

	router := gin.New()
	router.POST("/chat/sessions", chatHandler.CreateSession)
	router.DELETE("/chat/sessions/:id", chatHandler.DeleteSession)
	router.POST("/chat/sessions/:id/messages", chatHandler.Submit)
	router.GET("/chat/sessions/:id/history", chatHandler.History)
	router.POST("/explore/:id/method", exploreHandler.SetMethod)
	return router, chatService
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.APIResponse) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope response.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not an envelope: %v: %s", err, rec.Body.String())
	}
	return rec, envelope
}

func TestCreateSessionEndpoint(t *testing.T) {
	router, _ := newTestRouter(&stubGateway{})

	rec, envelope := doRequest(t, router, http.MethodPost, "/chat/sessions", `{"title": "Living room"}`)
	if rec.Code != http.StatusOK || envelope.Code != response.CodeOK {
		t.Fatalf("status = %d, code = %d", rec.Code, envelope.Code)
	}

	data := envelope.Data.(map[string]interface{})
	if id, _ := data["id"].(string); id == "" {
		t.Errorf("session id missing: %v", data)
	}
	if data["title"] != "Living room" {
		t.Errorf("title = %v", data["title"])
	}
}

func TestSubmitEndpoint(t *testing.T) {
	router, chatService := newTestRouter(&stubGateway{})
	session := chatService.CreateSession("")

	rec, envelope := doRequest(t, router, http.MethodPost,
		"/chat/sessions/"+session.ID+"/messages", `{"query": "modern sofa"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	data := envelope.Data.(map[string]interface{})
	reply := data["reply"].(map[string]interface{})
	if reply["content"] != `Found 1 recommendations for "modern sofa"` {
		t.Errorf("reply = %v", reply["content"])
	}
}

func TestSubmitMissingQueryIsBadRequest(t *testing.T) {
	router, chatService := newTestRouter(&stubGateway{})
	session := chatService.CreateSession("")

	rec, envelope := doRequest(t, router, http.MethodPost,
		"/chat/sessions/"+session.ID+"/messages", `{}`)
	if rec.Code != http.StatusBadRequest || envelope.Code != response.CodeBadRequest {
		t.Errorf("status = %d, code = %d", rec.Code, envelope.Code)
	}
}

func TestSubmitUnknownSessionIs404(t *testing.T) {
	router, _ := newTestRouter(&stubGateway{})

	rec, envelope := doRequest(t, router, http.MethodPost,
		"/chat/sessions/nope/messages", `{"query": "sofa"}`)
	if rec.Code != http.StatusNotFound || envelope.Code != response.CodeSessionNotFound {
		t.Errorf("status = %d, code = %d", rec.Code, envelope.Code)
	}
}

func TestSubmitUpstreamFailureIs502(t *testing.T) {
	gw := &stubGateway{recommendErr: &backend.RequestError{Status: 500, Message: "backend down"}}
	router, chatService := newTestRouter(gw)
	session := chatService.CreateSession("")

	rec, envelope := doRequest(t, router, http.MethodPost,
		"/chat/sessions/"+session.ID+"/messages", `{"query": "sofa"}`)
	if rec.Code != http.StatusBadGateway || envelope.Code != response.CodeUpstreamError {
		t.Errorf("status = %d, code = %d", rec.Code, envelope.Code)
	}
}

func TestSetMethodRejectsUnknownProjection(t *testing.T) {
	router, _ := newTestRouter(&stubGateway{})

	rec, envelope := doRequest(t, router, http.MethodPost,
		"/explore/view-1/method", `{"method": "umap"}`)
	if rec.Code != http.StatusBadRequest || envelope.Code != response.CodeBadRequest {
		t.Errorf("status = %d, code = %d", rec.Code, envelope.Code)
	}
}

func TestDeleteSessionEndpoint(t *testing.T) {
	router, chatService := newTestRouter(&stubGateway{})
	session := chatService.CreateSession("")

	rec, _ := doRequest(t, router, http.MethodDelete, "/chat/sessions/"+session.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec, envelope := doRequest(t, router, http.MethodGet, "/chat/sessions/"+session.ID+"/history", "")
	if rec.Code != http.StatusNotFound || envelope.Code != response.CodeSessionNotFound {
		t.Errorf("history after delete: status = %d, code = %d", rec.Code, envelope.Code)
	}
}
