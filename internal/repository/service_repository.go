package repository

import (
	"context"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/store"
)

type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) error
	GetByID(ctx context.Context, id int) (*domain.Service, error)
	GetAll(ctx context.Context) ([]domain.Service, error)
	GetByCategory(ctx context.Context, category string) ([]domain.Service, error)
	GetFeatured(ctx context.Context) ([]domain.Service, error)
}

type serviceRepository struct {
	services *store.Collection[domain.Service]
}

func NewServiceRepository(portal *store.Portal) ServiceRepository {
	return &serviceRepository{services: portal.Services}
}

func (r *serviceRepository) Create(ctx context.Context, svc *domain.Service) error {
	created := r.services.Insert(func(id int) domain.Service {
		s := *svc
		s.ID = id
		return s
	})
	svc.ID = created.ID
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id int) (*domain.Service, error) {
	svc, ok := r.services.Get(id)
	if !ok {
		return nil, nil
	}
	return &svc, nil
}

func (r *serviceRepository) GetAll(ctx context.Context) ([]domain.Service, error) {
	return r.services.All(), nil
}

// GetByCategory matches the denormalized category string exactly, returning
// services in insertion order.
func (r *serviceRepository) GetByCategory(ctx context.Context, category string) ([]domain.Service, error) {
	return r.services.Scan(func(s domain.Service) bool { return s.Category == category }), nil
}

func (r *serviceRepository) GetFeatured(ctx context.Context) ([]domain.Service, error) {
	return r.services.Scan(func(s domain.Service) bool { return s.Featured }), nil
}

type ServiceCategoryRepository interface {
	Create(ctx context.Context, category *domain.ServiceCategory) error
	GetByID(ctx context.Context, id int) (*domain.ServiceCategory, error)
	GetAll(ctx context.Context) ([]domain.ServiceCategory, error)
}

type serviceCategoryRepository struct {
	categories *store.Collection[domain.ServiceCategory]
}

func NewServiceCategoryRepository(portal *store.Portal) ServiceCategoryRepository {
	return &serviceCategoryRepository{categories: portal.Categories}
}

func (r *serviceCategoryRepository) Create(ctx context.Context, category *domain.ServiceCategory) error {
	created := r.categories.Insert(func(id int) domain.ServiceCategory {
		c := *category
		c.ID = id
		return c
	})
	category.ID = created.ID
	return nil
}

func (r *serviceCategoryRepository) GetByID(ctx context.Context, id int) (*domain.ServiceCategory, error) {
	category, ok := r.categories.Get(id)
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (r *serviceCategoryRepository) GetAll(ctx context.Context) ([]domain.ServiceCategory, error) {
	return r.categories.All(), nil
}
