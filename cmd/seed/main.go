package main

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/config"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/engine"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/logger"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/model"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/repository"
)

// Seeds the store with a worked comparison so the list/search/popular
// endpoints have data during local development.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewComparisonRepo(client.Database(cfg.MongoDB))
	if err := repo.Init(ctx); err != nil {
		log.Fatal("failed to initialize comparison store", "error", err)
	}

	req := sampleRequest()

	scoringCfg := engine.DefaultScoringConfig()
	scorer := engine.NewScoringEngine(scoringCfg)
	generator := engine.NewTradeOffGenerator(scoringCfg)
	analyzer := engine.NewAnalyzer(scoringCfg, engine.DefaultTemplates())

	scores, err := scorer.Score(req.Options, req.Constraints)
	if err != nil {
		log.Fatal("scoring failed", "error", err)
	}
	tradeoffs, err := generator.Generate(req.Options, scores)
	if err != nil {
		log.Fatal("trade-off generation failed", "error", err)
	}

	result := &model.ComparisonResult{
		Scores:    scores,
		TradeOffs: tradeoffs,
		Analysis:  analyzer.Analyze(req.Options, req.Constraints, scores, tradeoffs, req.UseCase),
		Timestamp: time.Now().UTC(),
	}

	id, err := repo.Store(ctx, req, result)
	if err != nil {
		log.Fatal("failed to store seed comparison", "error", err)
	}

	fmt.Printf("Seeded comparison %s (%d options, %d trade-offs)\n",
		id, len(req.Options), len(tradeoffs))
}

func sampleRequest() *model.ComparisonRequest {
	return &model.ComparisonRequest{
		UseCase: "Event streaming backbone for an analytics product",
		Options: []model.TechOption{
			{
				Name:              "Kafka (self-managed)",
				Description:       "Self-managed Apache Kafka cluster on EC2",
				Cost:              4,
				Latency:           3,
				Scalability:       9,
				Compliance:        model.ComplianceSOC2,
				Cloud:             model.CloudAWS,
				TeamSkillRequired: model.SkillAdvanced,
				Pros:              []string{"Full control", "No vendor lock-in", "Massive throughput"},
				Cons:              []string{"Operational burden", "Steep learning curve"},
			},
			{
				Name:              "Kinesis",
				Description:       "Fully managed AWS streaming service",
				Cost:              6,
				Latency:           4,
				Scalability:       8,
				Compliance:        model.ComplianceHIPAA,
				Cloud:             model.CloudAWS,
				TeamSkillRequired: model.SkillIntermediate,
				Pros:              []string{"No ops", "Tight AWS integration"},
				Cons:              []string{"Per-shard pricing", "AWS lock-in"},
			},
			{
				Name:              "Pub/Sub",
				Description:       "Enterprise-grade managed messaging on Google Cloud",
				Cost:              5,
				Latency:           5,
				Scalability:       9,
				Compliance:        model.ComplianceSOC2,
				Cloud:             model.CloudGCP,
				TeamSkillRequired: model.SkillBeginner,
				Pros:              []string{"Global by default", "Simple API"},
				Cons:              []string{"Less tunable", "Ordering is opt-in"},
			},
		},
		Constraints: model.Constraints{
			Budget:         5,
			MaxLatency:     5,
			RequiredScale:  7,
			Compliance:     model.ComplianceSOC2,
			PreferredCloud: model.CloudAWS,
			TeamSkill:      model.SkillIntermediate,
		},
	}
}
