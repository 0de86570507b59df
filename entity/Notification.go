package entity

import "time"

// Notification is created exactly once per order; only Read ever changes.
type Notification struct {
	ID          string    `bson:"id" json:"id"`
	OrderID     string    `bson:"order_id" json:"order_id"`
	OrderNumber string    `bson:"order_number" json:"order_number"`
	TableNumber int       `bson:"table_number" json:"table_number"`
	Message     string    `bson:"message" json:"message"`
	Read        bool      `bson:"read" json:"read"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}
