package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/api/handlers"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/api/middleware"
	_ "github.com/jeanlimsl3-LithanAcad/smartshop-ai/docs"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/services"
)

// Deps carries the constructed services the router wires into handlers.
// PingDB reports datastore reachability for the health endpoint; it is a
// function so tests can run the router without a live database.
type Deps struct {
	Products        *services.ProductService
	Categories      *services.CategoryService
	Insight         *services.InsightService
	Recommendations *services.RecommendationService
	Search          *services.SearchService
	Chat            *services.ChatService
	PingDB          func(ctx context.Context) error
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if deps.PingDB != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := deps.PingDB(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/products", handlers.ListProductsHandler(deps.Products))
		api.GET("/products/:product_id", handlers.GetProductHandler(deps.Products))
		api.GET("/products/:product_id/review-summary", handlers.ReviewSummaryHandler(deps.Insight))
		api.GET("/categories", handlers.ListCategoriesHandler(deps.Categories))

		api.GET("/recommendations", handlers.RecommendationsHandler(deps.Recommendations))
		api.GET("/search", handlers.SearchHandler(deps.Search))
		api.POST("/assistant/chat", handlers.ChatHandler(deps.Chat))
		api.GET("/users/:user_id/ai-recommendations", handlers.PurchaseRecommendationsHandler(deps.Recommendations))
	}

	return r
}
