package repository

import (
	"context"

	"github.com/RitheshHB23/cafeteriaa/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationRepository struct{ Col *mongo.Collection }

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{Col: db.Collection("notifications")}
}

func (r *NotificationRepository) Insert(ctx context.Context, n *entity.Notification) error {
	_, err := r.Col.InsertOne(ctx, n)
	return err
}

// List returns notifications for every session, newest first. The counter
// is staffed by one screen, so the feed is global on purpose.
func (r *NotificationRepository) List(ctx context.Context) ([]entity.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(1000)
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	notifs := make([]entity.Notification, 0)
	if err := cur.All(ctx, &notifs); err != nil {
		return nil, err
	}
	return notifs, nil
}

// MarkRead returns the number of matched rows so the caller can 404 on zero.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (int64, error) {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"read": false})
}
