package catalog

import (
	"context"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/repository"
)

type Service interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	GetService(ctx context.Context, id int) (*domain.Service, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Service, error)
	ListFeatured(ctx context.Context) ([]domain.Service, error)
	ListCategories(ctx context.Context) ([]domain.ServiceCategory, error)
	GetCategory(ctx context.Context, id int) (*domain.ServiceCategory, error)
}

type service struct {
	serviceRepo  repository.ServiceRepository
	categoryRepo repository.ServiceCategoryRepository
}

func NewService(serviceRepo repository.ServiceRepository, categoryRepo repository.ServiceCategoryRepository) Service {
	return &service{
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.serviceRepo.GetAll(ctx)
}

func (s *service) GetService(ctx context.Context, id int) (*domain.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrServiceNotFound
	}
	return svc, nil
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]domain.Service, error) {
	return s.serviceRepo.GetByCategory(ctx, category)
}

func (s *service) ListFeatured(ctx context.Context) ([]domain.Service, error) {
	return s.serviceRepo.GetFeatured(ctx)
}

func (s *service) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *service) GetCategory(ctx context.Context, id int) (*domain.ServiceCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}
