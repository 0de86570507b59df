package services

import (
	"context"

	"github.com/RitheshHB23/cafeteriaa/entity"
)

// In-memory stores backing the service tests. Behavior mirrors the mongo
// repositories: lookups return (nil, nil) when absent, updates report
// matched/deleted counts.

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

type memCategoryStore struct {
	cats []entity.Category
}

// List returns insertion order; sorting is the service's concern.
func (m *memCategoryStore) List(_ context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, 0, len(m.cats))
	out = append(out, m.cats...)
	return out, nil
}

func (m *memCategoryStore) Create(_ context.Context, cat *entity.Category) error {
	m.cats = append(m.cats, *cat)
	return nil
}

type memDishStore struct {
	dishes map[string]entity.Dish
}

func newMemDishStore(dishes ...entity.Dish) *memDishStore {
	m := &memDishStore{dishes: make(map[string]entity.Dish)}
	for _, d := range dishes {
		m.dishes[d.ID] = d
	}
	return m
}

func (m *memDishStore) List(_ context.Context, category string) ([]entity.Dish, error) {
	out := make([]entity.Dish, 0)
	for _, d := range m.dishes {
		if category == "" || d.Category == category {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDishStore) Popular(_ context.Context) ([]entity.Dish, error) {
	out := make([]entity.Dish, 0)
	for _, d := range m.dishes {
		if d.IsPopular {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDishStore) GetByID(_ context.Context, id string) (*entity.Dish, error) {
	d, ok := m.dishes[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (m *memDishStore) Create(_ context.Context, dish *entity.Dish) error {
	m.dishes[dish.ID] = *dish
	return nil
}

type memCartStore struct {
	items []entity.CartItem
}

func (m *memCartStore) ListBySession(_ context.Context, sessionID string) ([]entity.CartItem, error) {
	out := make([]entity.CartItem, 0)
	for _, it := range m.items {
		if it.SessionID == sessionID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memCartStore) Find(_ context.Context, sessionID, dishID string) (*entity.CartItem, error) {
	for _, it := range m.items {
		if it.SessionID == sessionID && it.DishID == dishID {
			found := it
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memCartStore) Insert(_ context.Context, item *entity.CartItem) error {
	m.items = append(m.items, *item)
	return nil
}

func (m *memCartStore) IncrementQty(_ context.Context, sessionID, dishID string) error {
	for i := range m.items {
		if m.items[i].SessionID == sessionID && m.items[i].DishID == dishID {
			m.items[i].Quantity++
		}
	}
	return nil
}

func (m *memCartStore) SetQty(_ context.Context, sessionID, dishID string, qty int) (int64, error) {
	var matched int64
	for i := range m.items {
		if m.items[i].SessionID == sessionID && m.items[i].DishID == dishID {
			m.items[i].Quantity = qty
			matched++
		}
	}
	return matched, nil
}

func (m *memCartStore) Delete(_ context.Context, sessionID, dishID string) (int64, error) {
	var deleted int64
	kept := m.items[:0]
	for _, it := range m.items {
		if it.SessionID == sessionID && it.DishID == dishID {
			deleted++
			continue
		}
		kept = append(kept, it)
	}
	m.items = kept
	return deleted, nil
}

func (m *memCartStore) ClearSession(_ context.Context, sessionID string) error {
	kept := m.items[:0]
	for _, it := range m.items {
		if it.SessionID != sessionID {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return nil
}

type memOrderStore struct {
	orders []entity.Order
	seq    int64
}

func (m *memOrderStore) Insert(_ context.Context, order *entity.Order) error {
	m.orders = append(m.orders, *order)
	return nil
}

func (m *memOrderStore) HistoryBySession(_ context.Context, sessionID string) ([]entity.Order, error) {
	out := make([]entity.Order, 0)
	for _, o := range m.orders {
		if o.SessionID == sessionID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrderStore) GetByID(_ context.Context, id string) (*entity.Order, error) {
	for _, o := range m.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memOrderStore) NextSeq(_ context.Context) (int64, error) {
	m.seq++
	return m.seq, nil
}

type memNotifStore struct {
	notifs []entity.Notification
}

func (m *memNotifStore) Insert(_ context.Context, n *entity.Notification) error {
	m.notifs = append(m.notifs, *n)
	return nil
}

func (m *memNotifStore) List(_ context.Context) ([]entity.Notification, error) {
	out := make([]entity.Notification, 0, len(m.notifs))
	out = append(out, m.notifs...)
	return out, nil
}

func (m *memNotifStore) MarkRead(_ context.Context, id string) (int64, error) {
	var matched int64
	for i := range m.notifs {
		if m.notifs[i].ID == id {
			m.notifs[i].Read = true
			matched++
		}
	}
	return matched, nil
}

func (m *memNotifStore) CountUnread(_ context.Context) (int64, error) {
	var count int64
	for _, n := range m.notifs {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

type recordingPusher struct {
	pushed []*entity.Notification
}

func (p *recordingPusher) Push(n *entity.Notification) {
	p.pushed = append(p.pushed, n)
}
