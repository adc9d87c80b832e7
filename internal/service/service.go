package service

import (
	"github.com/minio/minio-go/v7"

	"portal-layanan-publik/internal/config"
	"portal-layanan-publik/internal/repository"
	"portal-layanan-publik/internal/service/application"
	"portal-layanan-publik/internal/service/attachment"
	"portal-layanan-publik/internal/service/auth"
	"portal-layanan-publik/internal/service/catalog"
	"portal-layanan-publik/internal/service/email"
	"portal-layanan-publik/internal/service/notification"
	"portal-layanan-publik/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Catalog      catalog.Service
	Application  application.Service
	Notification notification.Service
	Attachment   attachment.Service
	Email        email.Service
}

func NewServices(repos *repository.Repositories, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, repos.Session, cfg)
	userService := user.NewService(repos.User, emailService)
	catalogService := catalog.NewService(repos.Service, repos.ServiceCategory)
	notificationService := notification.NewService(repos.Notification, repos.User, emailService)
	applicationService := application.NewService(repos.Application, repos.Service, repos.User, notificationService)
	attachmentService := attachment.NewService(repos.Attachment, minioClient, cfg)

	return &Services{
		Auth:         authService,
		User:         userService,
		Catalog:      catalogService,
		Application:  applicationService,
		Notification: notificationService,
		Attachment:   attachmentService,
		Email:        emailService,
	}
}
