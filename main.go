package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/api/router"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/config"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/db"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/eventbus"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/internal/logger"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/repositories"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/services"
)

// @title           SmartShop AI API
// @version         1.0
// @description     Product catalogue API with AI review summaries, recommendations, search explanations and assistant chat
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	// Kafka is optional: without brokers every publish is a no-op.
	var bus eventbus.Publisher = eventbus.NewNoopPublisher()
	if cfg.Kafka.Brokers != "" {
		kp, err := eventbus.NewKafkaPublisher(cfg.Kafka.Brokers)
		if err != nil {
			logger.Log.Errorf("kafka publisher unavailable, events disabled: %v", err)
		} else {
			bus = kp
		}
	}
	defer bus.Close()

	gw, err := gateway.New(cfg.AI)
	if err != nil {
		log.Fatal(err)
	}

	database := db.Database()
	products := repositories.NewProductRepository(database)
	reviews := repositories.NewReviewRepository(database)
	categories := repositories.NewCategoryRepository(database)
	orders := repositories.NewOrderRepository(database)
	aiLogs := repositories.NewAILogRepository(database)

	audit := services.NewAIAudit(aiLogs, bus)

	r := router.New(router.Deps{
		Products:        services.NewProductService(products, reviews),
		Categories:      services.NewCategoryService(categories),
		Insight:         services.NewInsightService(products, reviews, gw, cfg.AI.ChatModel, audit),
		Recommendations: services.NewRecommendationService(products, reviews, orders, gw, cfg.AI.ChatModel, cfg.AI.RecommendationModel, audit),
		Search:          services.NewSearchService(products, reviews, gw, cfg.AI.ChatModel, audit),
		Chat:            services.NewChatService(products, gw, cfg.AI.ChatModel, audit),
		PingDB:          db.Ping,
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(r)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: handler}
	logger.Log.Infof("smartshop api listening on %s", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
