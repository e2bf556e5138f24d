package main

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/cache"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/config"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/engine"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/logger"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/repository"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/service"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/transport/rest"
)

// @title Decision Intelligence Platform API
// @version 1.0
// @description Technology comparison scoring and trade-off analysis
// @host localhost:8080
// @BasePath /v1
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()

	// Scoring config: defaults unless a YAML override is provided.
	scoringCfg := engine.DefaultScoringConfig()
	if cfg.ScoringConfigPath != "" {
		scoringCfg, err = engine.LoadScoringConfig(cfg.ScoringConfigPath)
		if err != nil {
			log.Fatal("failed to load scoring config", "path", cfg.ScoringConfigPath, "error", err)
		}
		log.Info("scoring config loaded", "path", cfg.ScoringConfigPath)
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("failed to ping MongoDB", "error", err)
	}
	log.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("failed to ping Redis", "error", err)
	}
	log.Info("connected to Redis", "addr", cfg.RedisAddr)

	// Repositories and caches
	comparisonRepo := repository.NewComparisonRepo(db)
	if err := comparisonRepo.Init(ctx); err != nil {
		log.Fatal("failed to initialize comparison store", "error", err)
	}
	statsCache := cache.NewStatsCache(rdb)

	// Services
	decisionSvc := service.NewDecisionService(scoringCfg, comparisonRepo, statsCache, log)
	statsSvc := service.NewStatsService(comparisonRepo, statsCache, log)

	// Router
	router := rest.NewRouter(&rest.Container{
		DecisionService: decisionSvc,
		StatsService:    statsSvc,
	})

	addr := ":" + cfg.HTTPPort
	log.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
