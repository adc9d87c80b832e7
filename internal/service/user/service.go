package user

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/repository"
	"portal-layanan-publik/internal/service/email"
)

var ErrInvalidLanguage = errors.New("language must be id or en")

type Service interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	Update(ctx context.Context, id int, input domain.UpdateUserInput) (*domain.User, error)
	UpdateLanguage(ctx context.Context, id int, language string) (*domain.User, error)
}

type service struct {
	userRepo repository.UserRepository
	emailSvc email.Service
}

func NewService(userRepo repository.UserRepository, emailSvc email.Service) Service {
	return &service{
		userRepo: userRepo,
		emailSvc: emailSvc,
	}
}

// Register creates a citizen account. Username and NIK uniqueness are
// enforced by the repository under its lock; the sentinel errors pass
// through untouched so the handler can translate them.
func (s *service) Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	language := input.Language
	if language == "" {
		language = domain.LanguageDefault
	}

	user := &domain.User{
		Username:      input.Username,
		PasswordHash:  string(hashedPassword),
		NIK:           input.NIK,
		FullName:      input.FullName,
		BirthPlace:    input.BirthPlace,
		BirthDate:     input.BirthDate,
		Gender:        input.Gender,
		Religion:      input.Religion,
		MaritalStatus: input.MaritalStatus,
		Address:       input.Address,
		Phone:         input.Phone,
		Email:         input.Email,
		Language:      language,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.emailSvc != nil && user.Email != "" {
		go func(toEmail, fullName string) {
			if err := s.emailSvc.SendWelcomeEmail(context.Background(), toEmail, fullName); err != nil {
				log.Printf("Failed to send welcome email: %v", err)
			}
		}(user.Email, user.FullName)
	}

	return user, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Update merges the supplied fields over the stored record; absent fields
// are preserved unchanged.
func (s *service) Update(ctx context.Context, id int, input domain.UpdateUserInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Password != nil && *input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashedPassword)
	}
	if input.NIK != nil {
		user.NIK = *input.NIK
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.BirthPlace != nil {
		user.BirthPlace = *input.BirthPlace
	}
	if input.BirthDate != nil {
		user.BirthDate = *input.BirthDate
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.Religion != nil {
		user.Religion = *input.Religion
	}
	if input.MaritalStatus != nil {
		user.MaritalStatus = *input.MaritalStatus
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Language != nil {
		if !domain.IsValidLanguage(*input.Language) {
			return nil, ErrInvalidLanguage
		}
		user.Language = *input.Language
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) UpdateLanguage(ctx context.Context, id int, language string) (*domain.User, error) {
	if !domain.IsValidLanguage(language) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, language)
	}
	return s.Update(ctx, id, domain.UpdateUserInput{Language: &language})
}
