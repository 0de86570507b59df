package repository

import (
	"context"
	"errors"

	"github.com/RitheshHB23/cafeteriaa/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DishRepository struct{ Col *mongo.Collection }

func NewDishRepository(db *mongo.Database) *DishRepository {
	return &DishRepository{Col: db.Collection("dishes")}
}

// List returns all dishes, optionally filtered by exact category name.
func (r *DishRepository) List(ctx context.Context, category string) ([]entity.Dish, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	return r.find(ctx, filter, 1000)
}

func (r *DishRepository) Popular(ctx context.Context) ([]entity.Dish, error) {
	return r.find(ctx, bson.M{"is_popular": true}, 100)
}

// GetByID returns (nil, nil) when no dish carries the id.
func (r *DishRepository) GetByID(ctx context.Context, id string) (*entity.Dish, error) {
	var dish entity.Dish
	err := r.Col.FindOne(ctx, bson.M{"id": id}).Decode(&dish)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	_, err := r.Col.InsertOne(ctx, dish)
	return err
}

func (r *DishRepository) find(ctx context.Context, filter bson.M, limit int64) ([]entity.Dish, error) {
	cur, err := r.Col.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	dishes := make([]entity.Dish, 0)
	if err := cur.All(ctx, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}
