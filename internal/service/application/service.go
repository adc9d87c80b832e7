package application

import (
	"context"
	"fmt"
	"log"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/pkg/i18n"
	"portal-layanan-publik/internal/repository"
	"portal-layanan-publik/internal/service/notification"
)

type Service interface {
	Submit(ctx context.Context, userID int, input domain.CreateApplicationInput) (*domain.Application, error)
	ListForUser(ctx context.Context, userID int) ([]domain.Application, error)
	Get(ctx context.Context, id int) (*domain.Application, error)
	GetByNumber(ctx context.Context, number string) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Application, error)
}

type service struct {
	appRepo     repository.ApplicationRepository
	serviceRepo repository.ServiceRepository
	userRepo    repository.UserRepository
	notifSvc    notification.Service
}

func NewService(
	appRepo repository.ApplicationRepository,
	serviceRepo repository.ServiceRepository,
	userRepo repository.UserRepository,
	notifSvc notification.Service,
) Service {
	return &service{
		appRepo:     appRepo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		notifSvc:    notifSvc,
	}
}

// Submit stores the application and creates exactly one notification
// referencing the generated application number, localized to the
// submitter's preferred language. Once the application is stored, a
// notification failure is logged but never surfaced.
func (s *service) Submit(ctx context.Context, userID int, input domain.CreateApplicationInput) (*domain.Application, error) {
	svc, err := s.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrServiceNotFound
	}

	app := &domain.Application{
		UserID:    userID,
		ServiceID: input.ServiceID,
		Status:    input.Status,
		FormData:  input.FormData,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.notifySubmitted(ctx, userID, app.ApplicationNumber)

	return app, nil
}

func (s *service) notifySubmitted(ctx context.Context, userID int, applicationNumber string) {
	locale := domain.LanguageDefault
	if user, err := s.userRepo.GetByID(ctx, userID); err == nil && user != nil && user.Language != "" {
		locale = user.Language
	}

	_, err := s.notifSvc.Create(ctx, domain.CreateNotificationInput{
		UserID:  userID,
		Title:   i18n.Translate(locale, "APPLICATION_SUBMITTED_TITLE"),
		Message: fmt.Sprintf(i18n.Translate(locale, "APPLICATION_SUBMITTED_MESSAGE"), applicationNumber),
		Type:    domain.NotifInfo,
	})
	if err != nil {
		log.Printf("Failed to create submission notification for user %d: %v", userID, err)
	}
}

// ListForUser returns the user's applications in submission order.
func (s *service) ListForUser(ctx context.Context, userID int) ([]domain.Application, error) {
	return s.appRepo.ListByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, id int) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}
	return app, nil
}

func (s *service) GetByNumber(ctx context.Context, number string) (*domain.Application, error) {
	app, err := s.appRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}
	return app, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int, status string) (*domain.Application, error) {
	return s.appRepo.UpdateStatus(ctx, id, status)
}
