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
)

const menusCollection = "menu_pdfs"

// MenuRepository implements ports.MenuRepository using MongoDB.
type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{coll: db.Collection(menusCollection)}
}

type menuDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Filename         string             `bson:"filename"`
	OriginalFilename string             `bson:"original_filename"`
	FileSize         int64              `bson:"file_size"`
	UploadedAt       time.Time          `bson:"uploaded_at"`
	UploadedBy       string             `bson:"uploaded_by,omitempty"`
}

func (r *MenuRepository) Insert(ctx context.Context, m *domain.MenuPDF) (string, error) {
	doc := menuDoc{
		Filename:         m.Filename,
		OriginalFilename: m.OriginalFilename,
		FileSize:         m.FileSize,
		UploadedAt:       m.UploadedAt.UTC(),
		UploadedBy:       m.UploadedBy,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert menu: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MenuRepository) Latest(ctx context.Context) (*domain.MenuPDF, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})

	var doc menuDoc
	if err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNoMenuPDF
		}
		return nil, fmt.Errorf("find latest menu: %w", err)
	}

	return &domain.MenuPDF{
		ID:               doc.ID.Hex(),
		Filename:         doc.Filename,
		OriginalFilename: doc.OriginalFilename,
		FileSize:         doc.FileSize,
		UploadedAt:       doc.UploadedAt,
		UploadedBy:       doc.UploadedBy,
	}, nil
}
