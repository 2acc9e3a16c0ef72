package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ankit1439/mess-portal/internal/core/domain"
)

const (
	adminsCollection   = "admin_users"
	sessionsCollection = "admin_sessions"
)

// AdminRepository implements ports.AdminRepository using MongoDB.
type AdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection(adminsCollection)}
}

type adminDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	Email        string             `bson:"email,omitempty"`
	Active       bool               `bson:"active"`
	CreatedAt    time.Time          `bson:"created_at"`
	LastLogin    time.Time          `bson:"last_login,omitempty"`
}

func (d adminDoc) toDomain() domain.Admin {
	return domain.Admin{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Email:        d.Email,
		Active:       d.Active,
		CreatedAt:    d.CreatedAt,
		LastLogin:    d.LastLogin,
	}
}

func (r *AdminRepository) Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	doc := adminDoc{
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Email:        a.Email,
		Active:       a.Active,
		CreatedAt:    a.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert admin: %w", err)
	}

	created := doc.toDomain()
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var doc adminDoc
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	admin := doc.toDomain()
	return &admin, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*domain.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAdminNotFound
	}

	var doc adminDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	admin := doc.toDomain()
	return &admin, nil
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAdminNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"password_hash": passwordHash}})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAdminNotFound
	}

	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"last_login": at.UTC()}})
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

// SessionRepository implements ports.SessionRepository using MongoDB.
type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection)}
}

type sessionDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AdminID   string             `bson:"admin_id"`
	Token     string             `bson:"token"`
	IssuedAt  time.Time          `bson:"issued_at"`
	ExpiresAt time.Time          `bson:"expires_at"`
	IPAddress string             `bson:"ip_address"`
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	doc := sessionDoc{
		AdminID:   s.AdminID,
		Token:     s.Token,
		IssuedAt:  s.IssuedAt.UTC(),
		ExpiresAt: s.ExpiresAt.UTC(),
		IPAddress: s.IPAddress,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	var doc sessionDoc
	if err := r.coll.FindOne(ctx, bson.M{"token": token}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &domain.Session{
		ID:        doc.ID.Hex(),
		AdminID:   doc.AdminID,
		Token:     doc.Token,
		IssuedAt:  doc.IssuedAt,
		ExpiresAt: doc.ExpiresAt,
		IPAddress: doc.IPAddress,
	}, nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"token": token}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteByAdmin(ctx context.Context, adminID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"admin_id": adminID}); err != nil {
		return fmt.Errorf("delete admin sessions: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": before.UTC()}})
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	return res.DeletedCount, nil
}
