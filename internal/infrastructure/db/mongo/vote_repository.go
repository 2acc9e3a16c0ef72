package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
)

const votesCollection = "votes"

// VoteRepository implements ports.VoteRepository using MongoDB. The unique
// index created by EnsureIndexes makes Insert the race authority for
// deduplication.
type VoteRepository struct {
	coll *mongo.Collection
}

func NewVoteRepository(db *mongo.Database) *VoteRepository {
	return &VoteRepository{coll: db.Collection(votesCollection)}
}

type voteDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Day         string             `bson:"day"`
	Meal        string             `bson:"meal"`
	Dish        string             `bson:"dish"`
	Identity    string             `bson:"identity"`
	IPAddress   string             `bson:"ip_address"`
	SubmittedAt time.Time          `bson:"submitted_at"`
	SessionTag  string             `bson:"session_tag,omitempty"`
}

func (d voteDoc) toDomain() domain.Vote {
	return domain.Vote{
		ID:          d.ID.Hex(),
		Day:         domain.Day(d.Day),
		Meal:        domain.Meal(d.Meal),
		Dish:        d.Dish,
		Identity:    d.Identity,
		IPAddress:   d.IPAddress,
		SubmittedAt: d.SubmittedAt,
		SessionTag:  d.SessionTag,
	}
}

func (r *VoteRepository) Insert(ctx context.Context, v *domain.Vote) (string, error) {
	doc := voteDoc{
		Day:         string(v.Day),
		Meal:        string(v.Meal),
		Dish:        v.Dish,
		Identity:    v.Identity,
		IPAddress:   v.IPAddress,
		SubmittedAt: v.SubmittedAt.UTC(),
		SessionTag:  v.SessionTag,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrDuplicateVote
		}
		return "", fmt.Errorf("insert vote: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *VoteRepository) FindByKey(ctx context.Context, day domain.Day, meal domain.Meal, identity string) (*domain.Vote, error) {
	filter := bson.M{"day": string(day), "meal": string(meal), "identity": identity}

	var doc voteDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find vote: %w", err)
	}
	vote := doc.toDomain()
	return &vote, nil
}

func (r *VoteRepository) List(ctx context.Context, filter ports.VoteFilter) ([]domain.Vote, int64, error) {
	query := bson.M{}
	if filter.Day != "" {
		query["day"] = string(filter.Day)
	}
	if filter.Meal != "" {
		query["meal"] = string(filter.Meal)
	}
	if window := timeWindow(filter.From, filter.To); window != nil {
		query["submitted_at"] = window
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count votes: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list votes: %w", err)
	}
	defer cursor.Close(ctx)

	var votes []domain.Vote
	for cursor.Next(ctx) {
		var doc voteDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode vote: %w", err)
		}
		votes = append(votes, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate votes: %w", err)
	}
	return votes, total, nil
}

func (r *VoteRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count votes: %w", err)
	}
	return n, nil
}

func (r *VoteRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"submitted_at": bson.M{"$gte": since.UTC()}})
	if err != nil {
		return 0, fmt.Errorf("count recent votes: %w", err)
	}
	return n, nil
}

func (r *VoteRepository) PopularDishes(ctx context.Context, limit int) ([]domain.DishCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$dish",
			"votes": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "votes", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate dishes: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []domain.DishCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode dish counts: %w", err)
	}
	return counts, nil
}

// timeWindow builds a submitted_at range filter, or nil when both bounds are
// zero.
func timeWindow(from, to time.Time) bson.M {
	window := bson.M{}
	if !from.IsZero() {
		window["$gte"] = from.UTC()
	}
	if !to.IsZero() {
		window["$lte"] = to.UTC()
	}
	if len(window) == 0 {
		return nil
	}
	return window
}
