package handler

import "portal-layanan-publik/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Catalog      *CatalogHandler
	Application  *ApplicationHandler
	Notification *NotificationHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Catalog:      NewCatalogHandler(services.Catalog),
		Application:  NewApplicationHandler(services.Application, services.Attachment),
		Notification: NewNotificationHandler(services.Notification),
	}
}
