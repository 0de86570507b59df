package repository

import (
	"context"
	"errors"

	"github.com/RitheshHB23/cafeteriaa/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	Col      *mongo.Collection
	Counters *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		Col:      db.Collection("orders"),
		Counters: db.Collection("counters"),
	}
}

func (r *OrderRepository) Insert(ctx context.Context, order *entity.Order) error {
	_, err := r.Col.InsertOne(ctx, order)
	return err
}

func (r *OrderRepository) HistoryBySession(ctx context.Context, sessionID string) ([]entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(1000)
	cur, err := r.Col.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	orders := make([]entity.Order, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID returns (nil, nil) when no order carries the id.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.Col.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// NextSeq hands out order numbers from a single counter document.
// findAndModify with $inc is atomic, so concurrent orders never share a
// number the way a count-then-insert scheme would.
func (r *OrderRepository) NextSeq(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.Counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "orders"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}
