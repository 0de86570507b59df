package services

import (
	"context"
	"errors"

	"github.com/RitheshHB23/cafeteriaa/entity"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationStore interface {
	Insert(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id string) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
}

type NotificationService struct{ Store NotificationStore }

func NewNotificationService(store NotificationStore) *NotificationService {
	return &NotificationService{Store: store}
}

func (s *NotificationService) List(ctx context.Context) ([]entity.Notification, error) {
	return s.Store.List(ctx)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	matched, err := s.Store.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	return s.Store.CountUnread(ctx)
}
