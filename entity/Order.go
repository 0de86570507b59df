package entity

import "time"

type Order struct {
	ID          string      `bson:"id" json:"id"`
	OrderNumber string      `bson:"order_number" json:"order_number"`
	SessionID   string      `bson:"session_id" json:"session_id"`
	TableNumber int         `bson:"table_number" json:"table_number"`
	Items       []OrderItem `bson:"items" json:"items"`
	Total       float64     `bson:"total" json:"total"`
	Status      string      `bson:"status" json:"status"`
	Timestamp   time.Time   `bson:"timestamp" json:"timestamp"`
}
