package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/bootstrap"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/transport/http/handler"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{})))

	chatHandler := handler.NewChatHandler(app.Chat, app.Explorer)
	exploreHandler := handler.NewExploreHandler(app.Explorer)
	productsHandler := handler.NewProductsHandler(app.Backend)
	analyticsHandler := handler.NewAnalyticsHandler(app.Dashboard, app.Backend)

	v1 := router.Group("/api/v1")

	chatGroup := v1.Group("/chat")
	chatGroup.POST("/sessions", chatHandler.CreateSession)
	chatGroup.GET("/sessions", chatHandler.ListSessions)
	chatGroup.DELETE("/sessions/:id", chatHandler.DeleteSession)
	chatGroup.POST("/sessions/:id/messages", chatHandler.Submit)
	chatGroup.POST("/sessions/:id/trending", chatHandler.ShowTrending)
	chatGroup.GET("/sessions/:id/history", chatHandler.History)
	chatGroup.GET("/sessions/:id/recommendations", chatHandler.Recommendations)
	chatGroup.POST("/sessions/:id/cards/:productId/description", chatHandler.GenerateCardDescription)
	chatGroup.POST("/sessions/:id/cards/:productId/toggle", chatHandler.ToggleCard)
	chatGroup.GET("/sessions/:id/cards/:productId", chatHandler.Card)

	exploreGroup := v1.Group("/explore")
	exploreGroup.GET("/:id", exploreHandler.State)
	exploreGroup.POST("/:id/load", exploreHandler.Load)
	exploreGroup.POST("/:id/method", exploreHandler.SetMethod)
	exploreGroup.POST("/:id/retry", exploreHandler.Retry)
	exploreGroup.POST("/:id/select", exploreHandler.Select)
	exploreGroup.DELETE("/:id/selection", exploreHandler.ClearSelection)

	productsGroup := v1.Group("/products")
	productsGroup.GET("/trending", productsHandler.Trending)
	productsGroup.GET("/all", productsHandler.All)
	productsGroup.GET("/item/:id", productsHandler.ByID)
	productsGroup.GET("/item/:id/similar", productsHandler.Similar)
	productsGroup.GET("/category/:category", productsHandler.ByCategory)
	productsGroup.POST("/upload", productsHandler.Upload)

	analyticsGroup := v1.Group("/analytics")
	analyticsGroup.GET("/dashboard", analyticsHandler.Dashboard)
	analyticsGroup.GET("/similarity/:id", analyticsHandler.Similarity)
	analyticsGroup.GET("/quality", analyticsHandler.Quality)
	analyticsGroup.GET("/categories", analyticsHandler.Categories)
	analyticsGroup.GET("/price-analysis", analyticsHandler.PriceAnalysis)
	analyticsGroup.GET("/embeddings", analyticsHandler.RawEmbeddings)

	return router
}
