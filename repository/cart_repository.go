package repository

import (
	"context"
	"errors"

	"github.com/RitheshHB23/cafeteriaa/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Cart rows are keyed by the (session_id, dish_id) pair. The store itself
// enforces no uniqueness; the service's read-before-write keeps it one row.
type CartRepository struct{ Col *mongo.Collection }

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{Col: db.Collection("cart")}
}

func (r *CartRepository) ListBySession(ctx context.Context, sessionID string) ([]entity.CartItem, error) {
	cur, err := r.Col.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	items := make([]entity.CartItem, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Find returns (nil, nil) when the session has no row for the dish.
func (r *CartRepository) Find(ctx context.Context, sessionID, dishID string) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.Col.FindOne(ctx, bson.M{"session_id": sessionID, "dish_id": dishID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Insert(ctx context.Context, item *entity.CartItem) error {
	_, err := r.Col.InsertOne(ctx, item)
	return err
}

func (r *CartRepository) IncrementQty(ctx context.Context, sessionID, dishID string) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"session_id": sessionID, "dish_id": dishID},
		bson.M{"$inc": bson.M{"quantity": 1}},
	)
	return err
}

// SetQty returns the number of matched rows so the caller can 404 on zero.
func (r *CartRepository) SetQty(ctx context.Context, sessionID, dishID string, qty int) (int64, error) {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"session_id": sessionID, "dish_id": dishID},
		bson.M{"$set": bson.M{"quantity": qty}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *CartRepository) Delete(ctx context.Context, sessionID, dishID string) (int64, error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"session_id": sessionID, "dish_id": dishID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *CartRepository) ClearSession(ctx context.Context, sessionID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"session_id": sessionID})
	return err
}
