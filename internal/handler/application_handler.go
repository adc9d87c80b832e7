package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/middleware"
	"portal-layanan-publik/internal/service/application"
	"portal-layanan-publik/internal/service/attachment"
)

type ApplicationHandler struct {
	appService        application.Service
	attachmentService attachment.Service
}

func NewApplicationHandler(appService application.Service, attachmentService attachment.Service) *ApplicationHandler {
	return &ApplicationHandler{
		appService:        appService,
		attachmentService: attachmentService,
	}
}

// List is scoped to the authenticated caller.
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	applications, err := h.appService.ListForUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(applications)
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	applicationID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid application ID")
	}

	app, err := h.appService.Get(c.Context(), applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return middleware.NotFound("Application not found")
		}
		return err
	}

	if app.UserID != middleware.GetCurrentUserID(c) {
		return middleware.Forbidden("Forbidden")
	}

	return c.Status(fiber.StatusOK).JSON(app)
}

// Create submits an application for the caller. The submit flow also
// creates the tracking notification.
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreateApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.ServiceID == 0 {
		return middleware.BadRequest("Service ID is required")
	}

	app, err := h.appService.Submit(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return middleware.BadRequest("Unknown service")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

func (h *ApplicationHandler) UploadAttachment(c *fiber.Ctx) error {
	applicationID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid application ID")
	}

	app, err := h.appService.Get(c.Context(), applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return middleware.NotFound("Application not found")
		}
		return err
	}
	if app.UserID != middleware.GetCurrentUserID(c) {
		return middleware.Forbidden("Forbidden")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer file.Close()

	att, err := h.attachmentService.Upload(
		c.Context(),
		app.UserID,
		app.ID,
		fileHeader.Filename,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		if errors.Is(err, attachment.ErrStorageUnavailable) {
			return middleware.NewError(fiber.StatusServiceUnavailable, "Document storage unavailable")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(att)
}

func (h *ApplicationHandler) ListAttachments(c *fiber.Ctx) error {
	applicationID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid application ID")
	}

	app, err := h.appService.Get(c.Context(), applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return middleware.NotFound("Application not found")
		}
		return err
	}
	if app.UserID != middleware.GetCurrentUserID(c) {
		return middleware.Forbidden("Forbidden")
	}

	attachments, err := h.attachmentService.ListForApplication(c.Context(), app.ID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(attachments)
}
