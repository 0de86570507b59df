package entity

type Category struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	ImageURL string `bson:"image_url" json:"image_url"`
	Order    int    `bson:"order" json:"order"`
}
