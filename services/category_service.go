package services

import (
	"context"
	"sort"

	"github.com/RitheshHB23/cafeteriaa/entity"
	"github.com/google/uuid"
)

type CategoryStore interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, cat *entity.Category) error
}

type CategoryService struct{ Store CategoryStore }

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{Store: store}
}

type CreateCategoryIn struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url" binding:"required"`
	Order    int    `json:"order"`
}

// List returns categories ascending by display order. The store sorts too,
// but callers get the ordering guarantee regardless of the backing store.
func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	cats, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].Order < cats[j].Order })
	return cats, nil
}

// Create persists a new category. Duplicate names are allowed; ordering on
// the menu screen is the caller's concern via the order field.
func (s *CategoryService) Create(ctx context.Context, in *CreateCategoryIn) (*entity.Category, error) {
	cat := &entity.Category{
		ID:       uuid.NewString(),
		Name:     in.Name,
		ImageURL: in.ImageURL,
		Order:    in.Order,
	}
	if err := s.Store.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}
