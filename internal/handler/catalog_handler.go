package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/middleware"
	"portal-layanan-publik/internal/service/catalog"
)

type CatalogHandler struct {
	catalogService catalog.Service
}

func NewCatalogHandler(catalogService catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) List(c *fiber.Ctx) error {
	services, err := h.catalogService.ListServices(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(services)
}

func (h *CatalogHandler) ListFeatured(c *fiber.Ctx) error {
	services, err := h.catalogService.ListFeatured(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(services)
}

func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(categories)
}

func (h *CatalogHandler) ListByCategory(c *fiber.Ctx) error {
	services, err := h.catalogService.ListByCategory(c.Context(), c.Params("category"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(services)
}

func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	serviceID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid service ID")
	}

	svc, err := h.catalogService.GetService(c.Context(), serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return middleware.NotFound("Service not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(svc)
}
