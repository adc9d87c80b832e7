package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/middleware"
	"portal-layanan-publik/internal/service/user"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create registers a citizen account. Duplicate username or NIK is a 400
// so form validation can surface it inline.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Username == "" || input.Password == "" || input.FullName == "" {
		return middleware.BadRequest("Username, password, and full name are required")
	}
	if len(input.NIK) != 16 {
		return middleware.BadRequest("NIK must be 16 characters")
	}
	if input.Language != "" && !domain.IsValidLanguage(input.Language) {
		return middleware.BadRequest("Invalid language")
	}

	created, err := h.userService.Register(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return middleware.BadRequest("Username already taken")
		}
		if errors.Is(err, domain.ErrNIKRegistered) {
			return middleware.BadRequest("NIK already registered")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update is self-only: users may edit their own profile and nothing else.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	if middleware.GetCurrentUserID(c) != userID {
		return middleware.Forbidden("Forbidden")
	}

	var input domain.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.userService.Update(c.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return middleware.NotFound("User not found")
		case errors.Is(err, domain.ErrUsernameTaken):
			return middleware.BadRequest("Username already taken")
		case errors.Is(err, domain.ErrNIKRegistered):
			return middleware.BadRequest("NIK already registered")
		case errors.Is(err, user.ErrInvalidLanguage):
			return middleware.BadRequest("Invalid language")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *UserHandler) UpdateLanguage(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	if middleware.GetCurrentUserID(c) != userID {
		return middleware.Forbidden("Forbidden")
	}

	var input struct {
		Language string `json:"language"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.userService.UpdateLanguage(c.Context(), userID, input.Language)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidLanguage):
			return middleware.BadRequest("Invalid language")
		case errors.Is(err, domain.ErrUserNotFound):
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
