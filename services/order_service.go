package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RitheshHB23/cafeteriaa/entity"
	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderStore interface {
	Insert(ctx context.Context, order *entity.Order) error
	HistoryBySession(ctx context.Context, sessionID string) ([]entity.Order, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	NextSeq(ctx context.Context) (int64, error)
}

// Pusher delivers a freshly created notification to live staff clients.
type Pusher interface {
	Push(n *entity.Notification)
}

type OrderService struct {
	Store  OrderStore
	Cart   CartStore
	Notifs NotificationStore
	Hub    Pusher // optional
}

func NewOrderService(store OrderStore, cart CartStore, notifs NotificationStore, hub Pusher) *OrderService {
	return &OrderService{Store: store, Cart: cart, Notifs: notifs, Hub: hub}
}

// Pointer fields so binding validates presence only: table 0, an empty
// item list and a zero total are all valid orders.
type CreateOrderIn struct {
	SessionID   string              `json:"session_id" binding:"required"`
	TableNumber *int                `json:"table_number" binding:"required"`
	Items       *[]entity.OrderItem `json:"items" binding:"required"`
	Total       *float64            `json:"total" binding:"required"`
}

// Create writes the order, its staff notification, and clears the
// session's cart. The three writes are sequential and not transactional:
// a crash in between can leave an order without its notification or with
// a stale cart. Accepted for a single-counter internal tool.
func (s *OrderService) Create(ctx context.Context, in *CreateOrderIn) (*entity.Order, error) {
	seq, err := s.Store.NextSeq(ctx)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:          uuid.NewString(),
		OrderNumber: fmt.Sprintf("ORD%05d", seq),
		SessionID:   in.SessionID,
		TableNumber: *in.TableNumber,
		Items:       *in.Items,
		Total:       *in.Total,
		Status:      "pending",
		Timestamp:   time.Now().UTC(),
	}
	if err := s.Store.Insert(ctx, order); err != nil {
		return nil, err
	}

	notif := &entity.Notification{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		TableNumber: order.TableNumber,
		Message:     fmt.Sprintf("An order is placed from table %d.", order.TableNumber),
		Timestamp:   time.Now().UTC(),
	}
	if err := s.Notifs.Insert(ctx, notif); err != nil {
		return nil, err
	}
	if s.Hub != nil {
		s.Hub.Push(notif)
	}

	if err := s.Cart.ClearSession(ctx, in.SessionID); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) History(ctx context.Context, sessionID string) ([]entity.Order, error) {
	return s.Store.HistoryBySession(ctx, sessionID)
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := s.Store.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
