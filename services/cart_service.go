package services

import (
	"context"
	"errors"

	"github.com/RitheshHB23/cafeteriaa/entity"
	"github.com/google/uuid"
)

var (
	ErrDishNotFound     = errors.New("dish not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

type CartStore interface {
	ListBySession(ctx context.Context, sessionID string) ([]entity.CartItem, error)
	Find(ctx context.Context, sessionID, dishID string) (*entity.CartItem, error)
	Insert(ctx context.Context, item *entity.CartItem) error
	IncrementQty(ctx context.Context, sessionID, dishID string) error
	SetQty(ctx context.Context, sessionID, dishID string, qty int) (int64, error)
	Delete(ctx context.Context, sessionID, dishID string) (int64, error)
	ClearSession(ctx context.Context, sessionID string) error
}

type CartService struct {
	Store  CartStore
	Dishes DishStore
}

func NewCartService(store CartStore, dishes DishStore) *CartService {
	return &CartService{Store: store, Dishes: dishes}
}

type AddToCartIn struct {
	SessionID string `json:"session_id" binding:"required"`
	DishID    string `json:"dish_id" binding:"required"`
}

type UpdateCartIn struct {
	SessionID string `json:"session_id" binding:"required"`
	DishID    string `json:"dish_id" binding:"required"`
	// Pointer so binding checks presence, not zero-ness: quantity 0 is a
	// valid request (it removes the row), a missing field is not.
	Quantity *int `json:"quantity" binding:"required"`
}

func (s *CartService) Get(ctx context.Context, sessionID string) ([]entity.CartItem, error) {
	return s.Store.ListBySession(ctx, sessionID)
}

// Add puts a dish in the session's cart, or bumps the quantity of the
// existing row for the same (session, dish) pair. Dish name, price and
// image are copied onto the row at this moment.
func (s *CartService) Add(ctx context.Context, in *AddToCartIn) (*entity.CartItem, error) {
	existing, err := s.Store.Find(ctx, in.SessionID, in.DishID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.Store.IncrementQty(ctx, in.SessionID, in.DishID); err != nil {
			return nil, err
		}
		existing.Quantity++
		return existing, nil
	}

	dish, err := s.Dishes.GetByID(ctx, in.DishID)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, ErrDishNotFound
	}

	item := &entity.CartItem{
		ID:        uuid.NewString(),
		SessionID: in.SessionID,
		DishID:    in.DishID,
		DishName:  dish.Name,
		DishPrice: dish.Price,
		DishImage: dish.ImageURL,
		Quantity:  1,
	}
	if err := s.Store.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQty sets the quantity on an existing row. Zero or negative removes
// the row instead, and that removal is idempotent.
func (s *CartService) UpdateQty(ctx context.Context, in *UpdateCartIn) (removed bool, err error) {
	if *in.Quantity <= 0 {
		if _, err := s.Store.Delete(ctx, in.SessionID, in.DishID); err != nil {
			return false, err
		}
		return true, nil
	}

	matched, err := s.Store.SetQty(ctx, in.SessionID, in.DishID, *in.Quantity)
	if err != nil {
		return false, err
	}
	if matched == 0 {
		return false, ErrCartItemNotFound
	}
	return false, nil
}

func (s *CartService) Remove(ctx context.Context, sessionID, dishID string) error {
	deleted, err := s.Store.Delete(ctx, sessionID, dishID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.Store.ClearSession(ctx, sessionID)
}
