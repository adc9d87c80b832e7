package repository

import (
	"context"
	"sort"
	"time"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/store"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	GetByID(ctx context.Context, id int) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int) (int, error)
	MarkAsRead(ctx context.Context, id int) (*domain.Notification, error)
	MarkAllAsRead(ctx context.Context, userID int) error
}

type notificationRepository struct {
	notifications *store.Collection[domain.Notification]
}

func NewNotificationRepository(portal *store.Portal) NotificationRepository {
	return &notificationRepository{notifications: portal.Notifications}
}

// Create assigns the id and creation timestamp; notifications always start
// unread.
func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	created := r.notifications.Insert(func(id int) domain.Notification {
		n := *notif
		n.ID = id
		n.IsRead = false
		n.CreatedAt = time.Now()
		return n
	})
	*notif = created
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id int) (*domain.Notification, error) {
	notif, ok := r.notifications.Get(id)
	if !ok {
		return nil, nil
	}
	return &notif, nil
}

// ListByUser returns the user's notifications newest first. Creation
// timestamps can collide at clock granularity, so ties break on descending
// id to keep the order total.
func (r *notificationRepository) ListByUser(ctx context.Context, userID int) ([]domain.Notification, error) {
	notifs := r.notifications.Scan(func(n domain.Notification) bool { return n.UserID == userID })
	sort.SliceStable(notifs, func(i, j int) bool {
		if !notifs[i].CreatedAt.Equal(notifs[j].CreatedAt) {
			return notifs[i].CreatedAt.After(notifs[j].CreatedAt)
		}
		return notifs[i].ID > notifs[j].ID
	})
	return notifs, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID int) (int, error) {
	return r.notifications.Count(func(n domain.Notification) bool {
		return n.UserID == userID && !n.IsRead
	}), nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id int) (*domain.Notification, error) {
	notif, ok := r.notifications.Update(id, func(n domain.Notification) domain.Notification {
		n.IsRead = true
		return n
	})
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	return &notif, nil
}

// MarkAllAsRead flips every unread notification owned by the user. A user
// with nothing unread is a no-op, never a failure.
func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID int) error {
	r.notifications.UpdateWhere(
		func(n domain.Notification) bool { return n.UserID == userID && !n.IsRead },
		func(n domain.Notification) domain.Notification {
			n.IsRead = true
			return n
		},
	)
	return nil
}
