package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"portal-layanan-publik/internal/config"
	"portal-layanan-publik/internal/handler"
	"portal-layanan-publik/internal/middleware"
	"portal-layanan-publik/internal/pkg/i18n"
	"portal-layanan-publik/internal/repository"
	"portal-layanan-publik/internal/service"
	"portal-layanan-publik/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := i18n.LoadTranslations(cfg.LocalePath); err != nil {
		log.Printf("Warning: Failed to load translations: %v (notification texts fall back to keys)", err)
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (attachment upload will not work)", err)
	}

	portal := store.NewPortal()
	repos := repository.NewRepositories(portal)

	if err := repository.Seed(context.Background(), portal, repos); err != nil {
		log.Fatalf("Failed to seed portal data: %v", err)
	}

	services := service.NewServices(repos, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)

	api.Post("/users", h.User.Create)

	protected := api.Group("", middleware.AuthRequired(services.Auth))

	protected.Post("/auth/logout", h.Auth.Logout)
	protected.Get("/auth/me", h.Auth.Me)

	users := protected.Group("/users")
	users.Put("/:id", h.User.Update)
	users.Put("/:id/language", h.User.UpdateLanguage)

	// Literal service routes go first so "/featured" is not captured as an id.
	servicesGroup := protected.Group("/services")
	servicesGroup.Get("/", h.Catalog.List)
	servicesGroup.Get("/featured", h.Catalog.ListFeatured)
	servicesGroup.Get("/categories", h.Catalog.ListCategories)
	servicesGroup.Get("/category/:category", h.Catalog.ListByCategory)
	servicesGroup.Get("/:id", h.Catalog.Get)

	applications := protected.Group("/applications")
	applications.Get("/", h.Application.List)
	applications.Post("/", h.Application.Create)
	applications.Get("/:id", h.Application.Get)
	applications.Post("/:id/attachments", h.Application.UploadAttachment)
	applications.Get("/:id/attachments", h.Application.ListAttachments)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Put("/read-all", h.Notification.MarkAllAsRead)
	notifications.Put("/:id/read", h.Notification.MarkAsRead)
}
