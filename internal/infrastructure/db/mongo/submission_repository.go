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

const (
	feedbackCollection    = "feedback"
	complaintsCollection  = "complaints"
	suggestionsCollection = "menu_suggestions"
)

// FeedbackRepository implements ports.FeedbackRepository using MongoDB.
type FeedbackRepository struct {
	coll *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{coll: db.Collection(feedbackCollection)}
}

type feedbackDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Type        string             `bson:"feedback_type"`
	Message     string             `bson:"message"`
	Rating      *int               `bson:"rating,omitempty"`
	IPAddress   string             `bson:"ip_address"`
	SubmittedAt time.Time          `bson:"submitted_at"`
	SessionTag  string             `bson:"session_tag,omitempty"`
}

func (d feedbackDoc) toDomain() domain.Feedback {
	return domain.Feedback{
		ID:          d.ID.Hex(),
		Type:        d.Type,
		Message:     d.Message,
		Rating:      d.Rating,
		IPAddress:   d.IPAddress,
		SubmittedAt: d.SubmittedAt,
		SessionTag:  d.SessionTag,
	}
}

func (r *FeedbackRepository) Insert(ctx context.Context, f *domain.Feedback) (string, error) {
	doc := feedbackDoc{
		Type:        f.Type,
		Message:     f.Message,
		Rating:      f.Rating,
		IPAddress:   f.IPAddress,
		SubmittedAt: f.SubmittedAt.UTC(),
		SessionTag:  f.SessionTag,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert feedback: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *FeedbackRepository) List(ctx context.Context, filter ports.FeedbackFilter) ([]domain.Feedback, int64, error) {
	query := bson.M{}
	if filter.Type != "" {
		query["feedback_type"] = filter.Type
	}
	if filter.Rating > 0 {
		query["rating"] = filter.Rating
	}
	if window := timeWindow(filter.From, filter.To); window != nil {
		query["submitted_at"] = window
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count feedback: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var items []domain.Feedback
	for cursor.Next(ctx) {
		var doc feedbackDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode feedback: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate feedback: %w", err)
	}
	return items, total, nil
}

func (r *FeedbackRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return n, nil
}

func (r *FeedbackRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"submitted_at": bson.M{"$gte": since.UTC()}})
	if err != nil {
		return 0, fmt.Errorf("count recent feedback: %w", err)
	}
	return n, nil
}

func (r *FeedbackRepository) RatingDistribution(ctx context.Context) ([]ports.RatingCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"rating": bson.M{"$ne": nil}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$rating",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []ports.RatingCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode rating counts: %w", err)
	}
	return counts, nil
}

// ComplaintRepository implements ports.ComplaintRepository using MongoDB.
type ComplaintRepository struct {
	coll *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{coll: db.Collection(complaintsCollection)}
}

type complaintDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Category    string             `bson:"category"`
	Message     string             `bson:"message"`
	Urgency     string             `bson:"urgency"`
	UrgencyRank int                `bson:"urgency_rank"`
	Status      string             `bson:"status"`
	IPAddress   string             `bson:"ip_address"`
	SubmittedAt time.Time          `bson:"submitted_at"`
	SessionTag  string             `bson:"session_tag,omitempty"`
	Photos      []string           `bson:"photos,omitempty"`
}

func (d complaintDoc) toDomain() domain.Complaint {
	return domain.Complaint{
		ID:          d.ID.Hex(),
		Category:    d.Category,
		Message:     d.Message,
		Urgency:     domain.Urgency(d.Urgency),
		Status:      domain.ComplaintStatus(d.Status),
		IPAddress:   d.IPAddress,
		SubmittedAt: d.SubmittedAt,
		SessionTag:  d.SessionTag,
		Photos:      d.Photos,
	}
}

func (r *ComplaintRepository) Insert(ctx context.Context, c *domain.Complaint) (string, error) {
	doc := complaintDoc{
		Category:    c.Category,
		Message:     c.Message,
		Urgency:     string(c.Urgency),
		UrgencyRank: c.Urgency.Rank(),
		Status:      string(c.Status),
		IPAddress:   c.IPAddress,
		SubmittedAt: c.SubmittedAt.UTC(),
		SessionTag:  c.SessionTag,
		Photos:      c.Photos,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert complaint: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ComplaintRepository) List(ctx context.Context, filter ports.ComplaintFilter) ([]domain.Complaint, int64, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Urgency != "" {
		query["urgency"] = string(filter.Urgency)
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if window := timeWindow(filter.From, filter.To); window != nil {
		query["submitted_at"] = window
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count complaints: %w", err)
	}

	// Most pressing first, newest within the same urgency.
	opts := options.Find().
		SetSort(bson.D{
			{Key: "urgency_rank", Value: 1},
			{Key: "submitted_at", Value: -1},
		}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list complaints: %w", err)
	}
	defer cursor.Close(ctx)

	var items []domain.Complaint
	for cursor.Next(ctx) {
		var doc complaintDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode complaint: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate complaints: %w", err)
	}
	return items, total, nil
}

func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": string(status)}}

	var doc complaintDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("update complaint status: %w", err)
	}
	complaint := doc.toDomain()
	return &complaint, nil
}

func (r *ComplaintRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count complaints: %w", err)
	}
	return n, nil
}

func (r *ComplaintRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"submitted_at": bson.M{"$gte": since.UTC()}})
	if err != nil {
		return 0, fmt.Errorf("count recent complaints: %w", err)
	}
	return n, nil
}

func (r *ComplaintRepository) CountByUrgency(ctx context.Context) ([]ports.UrgencyCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$urgency",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate urgencies: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []ports.UrgencyCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode urgency counts: %w", err)
	}
	return counts, nil
}

// SuggestionRepository implements ports.SuggestionRepository using MongoDB.
type SuggestionRepository struct {
	coll *mongo.Collection
}

func NewSuggestionRepository(db *mongo.Database) *SuggestionRepository {
	return &SuggestionRepository{coll: db.Collection(suggestionsCollection)}
}

type suggestionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	DishName    string             `bson:"dish_name"`
	MealType    string             `bson:"meal_type"`
	Ingredients string             `bson:"ingredients,omitempty"`
	Description string             `bson:"description,omitempty"`
	IPAddress   string             `bson:"ip_address"`
	SubmittedAt time.Time          `bson:"submitted_at"`
	SessionTag  string             `bson:"session_tag,omitempty"`
}

func (d suggestionDoc) toDomain() domain.Suggestion {
	return domain.Suggestion{
		ID:          d.ID.Hex(),
		DishName:    d.DishName,
		MealType:    domain.Meal(d.MealType),
		Ingredients: d.Ingredients,
		Description: d.Description,
		IPAddress:   d.IPAddress,
		SubmittedAt: d.SubmittedAt,
		SessionTag:  d.SessionTag,
	}
}

func (r *SuggestionRepository) Insert(ctx context.Context, s *domain.Suggestion) (string, error) {
	doc := suggestionDoc{
		DishName:    s.DishName,
		MealType:    string(s.MealType),
		Ingredients: s.Ingredients,
		Description: s.Description,
		IPAddress:   s.IPAddress,
		SubmittedAt: s.SubmittedAt.UTC(),
		SessionTag:  s.SessionTag,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert suggestion: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *SuggestionRepository) List(ctx context.Context, filter ports.SuggestionFilter) ([]domain.Suggestion, int64, error) {
	query := bson.M{}
	if filter.MealType != "" {
		query["meal_type"] = string(filter.MealType)
	}
	if window := timeWindow(filter.From, filter.To); window != nil {
		query["submitted_at"] = window
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count suggestions: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list suggestions: %w", err)
	}
	defer cursor.Close(ctx)

	var items []domain.Suggestion
	for cursor.Next(ctx) {
		var doc suggestionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode suggestion: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate suggestions: %w", err)
	}
	return items, total, nil
}

func (r *SuggestionRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count suggestions: %w", err)
	}
	return n, nil
}
