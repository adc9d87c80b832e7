package notification

import (
	"context"
	"log"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/repository"
	"portal-layanan-publik/internal/service/email"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateNotificationInput) (*domain.Notification, error)
	List(ctx context.Context, userID int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID int) (int, error)
	MarkAsRead(ctx context.Context, id int) (*domain.Notification, error)
	MarkAllAsRead(ctx context.Context, userID int) error
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	emailSvc  email.Service
}

func NewService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository, emailSvc email.Service) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
	}
}

// Create stores the notification and, when the recipient has an email
// address, fans it out as a best-effort email. Email failure never fails
// the notification.
func (s *service) Create(ctx context.Context, input domain.CreateNotificationInput) (*domain.Notification, error) {
	notif := &domain.Notification{
		UserID:  input.UserID,
		Title:   input.Title,
		Message: input.Message,
		Type:    input.Type,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return nil, err
	}

	if s.emailSvc != nil {
		if user, err := s.userRepo.GetByID(ctx, input.UserID); err == nil && user != nil && user.Email != "" {
			go func(toEmail, fullName, title, message string) {
				if err := s.emailSvc.SendNotificationEmail(context.Background(), toEmail, fullName, title, message); err != nil {
					log.Printf("Failed to send notification email to user %d: %v", notif.UserID, err)
				}
			}(user.Email, user.FullName, notif.Title, notif.Message)
		}
	}

	return notif, nil
}

// List returns the user's notifications newest first.
func (s *service) List(ctx context.Context, userID int) ([]domain.Notification, error) {
	return s.notifRepo.ListByUser(ctx, userID)
}

func (s *service) UnreadCount(ctx context.Context, userID int) (int, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) MarkAsRead(ctx context.Context, id int) (*domain.Notification, error) {
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID int) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}
