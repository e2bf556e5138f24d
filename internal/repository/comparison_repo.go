package repository

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/model"
)

// ComparisonRepo is the durable store of past comparison runs. GetByID
// returns nil, nil when no record exists.
type ComparisonRepo interface {
	Init(ctx context.Context) error
	Store(ctx context.Context, req *model.ComparisonRequest, result *model.ComparisonResult) (string, error)
	GetByID(ctx context.Context, id string) (*model.ComparisonRecord, error)
	ListRecent(ctx context.Context, limit int) ([]model.ComparisonSummary, error)
	SearchByText(ctx context.Context, query string, limit int) ([]model.ComparisonSummary, error)
	PopularOptions(ctx context.Context, limit int) ([]model.PopularOption, error)
}

// optionRow denormalizes one option of one comparison for aggregate
// queries, mirroring the comparisons side table of the original store.
type optionRow struct {
	ComparisonID string  `bson:"comparison_id"`
	OptionName   string  `bson:"option_name"`
	Score        float64 `bson:"score"`
}

type comparisonRepo struct {
	comparisons *mongo.Collection
	options     *mongo.Collection
}

// NewComparisonRepo creates a comparison repository on the given
// database.
func NewComparisonRepo(db *mongo.Database) ComparisonRepo {
	return &comparisonRepo{
		comparisons: db.Collection("comparisons"),
		options:     db.Collection("comparison_options"),
	}
}

// Init ensures the indexes behind the recency, search, and aggregate
// queries exist. Idempotent.
func (r *comparisonRepo) Init(ctx context.Context) error {
	_, err := r.comparisons.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "use_case", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = r.options.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "comparison_id", Value: 1}}},
		{Keys: bson.D{{Key: "option_name", Value: 1}}},
	})
	return err
}

func (r *comparisonRepo) Store(ctx context.Context, req *model.ComparisonRequest, result *model.ComparisonResult) (string, error) {
	id := uuid.NewString()

	record := model.ComparisonRecord{
		ID:        id,
		UseCase:   req.UseCase,
		Request:   *req,
		Result:    *result,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.comparisons.InsertOne(ctx, record); err != nil {
		return "", err
	}

	scoreByName := make(map[string]float64, len(result.Scores))
	for _, s := range result.Scores {
		scoreByName[s.OptionName] = s.WeightedScore
	}

	rows := make([]interface{}, 0, len(req.Options))
	for _, opt := range req.Options {
		rows = append(rows, optionRow{
			ComparisonID: id,
			OptionName:   opt.Name,
			Score:        scoreByName[opt.Name],
		})
	}
	if len(rows) > 0 {
		if _, err := r.options.InsertMany(ctx, rows); err != nil {
			// A failed store must leave nothing behind: drop the
			// comparison document so it cannot surface without its
			// option rows.
			if _, delErr := r.comparisons.DeleteOne(ctx, bson.M{"_id": id}); delErr != nil {
				return "", fmt.Errorf("store options: %w (cleanup failed: %v)", err, delErr)
			}
			return "", err
		}
	}

	return id, nil
}

func (r *comparisonRepo) GetByID(ctx context.Context, id string) (*model.ComparisonRecord, error) {
	var record model.ComparisonRecord
	err := r.comparisons.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *comparisonRepo) ListRecent(ctx context.Context, limit int) ([]model.ComparisonSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.comparisons.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return r.decodeSummaries(ctx, cursor)
}

// SearchByText matches the query as a case-insensitive substring of the
// use-case text or of any contained option name.
func (r *comparisonRepo) SearchByText(ctx context.Context, query string, limit int) ([]model.ComparisonSummary, error) {
	pattern := regexp.QuoteMeta(query)

	// Option-name matches live in the side collection; collect their
	// comparison ids first.
	idCursor, err := r.options.Find(ctx, bson.M{
		"option_name": bson.M{"$regex": pattern, "$options": "i"},
	})
	if err != nil {
		return nil, err
	}
	var rows []optionRow
	if err := idCursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ComparisonID)
	}

	filter := bson.M{"$or": []bson.M{
		{"use_case": bson.M{"$regex": pattern, "$options": "i"}},
		{"_id": bson.M{"$in": ids}},
	}}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.comparisons.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return r.decodeSummaries(ctx, cursor)
}

// PopularOptions aggregates option usage across all stored comparisons,
// most used first, average weighted score breaking ties.
func (r *comparisonRepo) PopularOptions(ctx context.Context, limit int) ([]model.PopularOption, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$option_name"},
			{Key: "usage_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "average_score", Value: bson.D{{Key: "$avg", Value: "$score"}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "usage_count", Value: -1},
			{Key: "average_score", Value: -1},
		}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.options.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	popular := []model.PopularOption{}
	if err := cursor.All(ctx, &popular); err != nil {
		return nil, err
	}
	for i := range popular {
		popular[i].AverageScore = roundScore(popular[i].AverageScore)
	}
	return popular, nil
}

func (r *comparisonRepo) decodeSummaries(ctx context.Context, cursor *mongo.Cursor) ([]model.ComparisonSummary, error) {
	summaries := []model.ComparisonSummary{}
	for cursor.Next(ctx) {
		var record model.ComparisonRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		summaries = append(summaries, model.ComparisonSummary{
			ID:          record.ID,
			UseCase:     record.UseCase,
			OptionCount: len(record.Request.Options),
			CreatedAt:   record.CreatedAt,
		})
	}
	return summaries, cursor.Err()
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
