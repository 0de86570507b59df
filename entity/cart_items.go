package entity

// CartItem is one line of a session's cart. Dish name/price/image are
// copied at add-time; later dish edits do not touch existing rows.
type CartItem struct {
	ID        string  `bson:"id" json:"id"`
	SessionID string  `bson:"session_id" json:"session_id"`
	DishID    string  `bson:"dish_id" json:"dish_id"`
	DishName  string  `bson:"dish_name" json:"dish_name"`
	DishPrice float64 `bson:"dish_price" json:"dish_price"`
	DishImage string  `bson:"dish_image" json:"dish_image"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}
