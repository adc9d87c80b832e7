package repository

import (
	"portal-layanan-publik/internal/store"
)

type Repositories struct {
	User            UserRepository
	Service         ServiceRepository
	ServiceCategory ServiceCategoryRepository
	Application     ApplicationRepository
	Notification    NotificationRepository
	Attachment      AttachmentRepository
	Session         SessionRepository
}

func NewRepositories(portal *store.Portal) *Repositories {
	return &Repositories{
		User:            NewUserRepository(portal),
		Service:         NewServiceRepository(portal),
		ServiceCategory: NewServiceCategoryRepository(portal),
		Application:     NewApplicationRepository(portal),
		Notification:    NewNotificationRepository(portal),
		Attachment:      NewAttachmentRepository(portal),
		Session:         NewSessionRepository(portal),
	}
}
