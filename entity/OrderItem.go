package entity

// OrderItem is embedded in an Order, not a collection of its own.
type OrderItem struct {
	DishID    string  `bson:"dish_id" json:"dish_id"`
	DishName  string  `bson:"dish_name" json:"dish_name"`
	DishPrice float64 `bson:"dish_price" json:"dish_price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}
