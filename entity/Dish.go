package entity

type Dish struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	// Category holds the category display name, not its id.
	Category  string `bson:"category" json:"category"`
	ImageURL  string `bson:"image_url" json:"image_url"`
	IsPopular bool   `bson:"is_popular" json:"is_popular"`
}
