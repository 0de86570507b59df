package repository

import (
	"context"

	"github.com/RitheshHB23/cafeteriaa/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepository struct{ Col *mongo.Collection }

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{Col: db.Collection("categories")}
}

// List returns every category sorted ascending by display order.
func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}}).SetLimit(100)
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	cats := make([]entity.Category, 0)
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *CategoryRepository) Create(ctx context.Context, cat *entity.Category) error {
	_, err := r.Col.InsertOne(ctx, cat)
	return err
}
