package services

import (
	"context"

	"github.com/RitheshHB23/cafeteriaa/entity"
	"github.com/google/uuid"
)

type DishStore interface {
	List(ctx context.Context, category string) ([]entity.Dish, error)
	Popular(ctx context.Context) ([]entity.Dish, error)
	GetByID(ctx context.Context, id string) (*entity.Dish, error)
	Create(ctx context.Context, dish *entity.Dish) error
}

type DishService struct{ Store DishStore }

func NewDishService(store DishStore) *DishService {
	return &DishService{Store: store}
}

type CreateDishIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	// Pointer so a free, zero-priced dish passes presence validation.
	Price     *float64 `json:"price" binding:"required"`
	Category  string   `json:"category" binding:"required"`
	ImageURL  string   `json:"image_url" binding:"required"`
	IsPopular bool     `json:"is_popular"`
}

// List filters by exact category name when one is given. The category is a
// display-name string; no check that it matches an existing Category.
func (s *DishService) List(ctx context.Context, category string) ([]entity.Dish, error) {
	return s.Store.List(ctx, category)
}

func (s *DishService) Popular(ctx context.Context) ([]entity.Dish, error) {
	return s.Store.Popular(ctx)
}

func (s *DishService) Create(ctx context.Context, in *CreateDishIn) (*entity.Dish, error) {
	dish := &entity.Dish{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		IsPopular:   in.IsPopular,
	}
	if err := s.Store.Create(ctx, dish); err != nil {
		return nil, err
	}
	return dish, nil
}
