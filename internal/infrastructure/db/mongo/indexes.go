package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates every index the repositories rely on. The unique
// compound index on votes is the correctness anchor for vote deduplication;
// everything else is for query speed. Safe to call on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	byCollection := map[string][]mongo.IndexModel{
		votesCollection: {
			{
				Keys: bson.D{
					{Key: "day", Value: 1},
					{Key: "meal", Value: 1},
					{Key: "identity", Value: 1},
				},
				Options: options.Index().SetUnique(true).SetName("uniq_day_meal_identity"),
			},
			{Keys: bson.D{{Key: "submitted_at", Value: -1}}},
		},
		adminsCollection: {
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_username"),
			},
		},
		sessionsCollection: {
			{
				Keys:    bson.D{{Key: "token", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_token"),
			},
			{Keys: bson.D{{Key: "admin_id", Value: 1}}},
			{Keys: bson.D{{Key: "expires_at", Value: 1}}},
		},
		feedbackCollection: {
			{Keys: bson.D{{Key: "submitted_at", Value: -1}}},
		},
		complaintsCollection: {
			{Keys: bson.D{{Key: "submitted_at", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		suggestionsCollection: {
			{Keys: bson.D{{Key: "submitted_at", Value: -1}}},
		},
		menusCollection: {
			{Keys: bson.D{{Key: "uploaded_at", Value: -1}}},
		},
	}

	for coll, models := range byCollection {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("creating indexes for %s: %w", coll, err)
		}
	}
	return nil
}
