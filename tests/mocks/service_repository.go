package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portal-layanan-publik/internal/domain"
)

type ServiceRepository struct {
	mock.Mock
}

func (m *ServiceRepository) Create(ctx context.Context, svc *domain.Service) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *ServiceRepository) GetByID(ctx context.Context, id int) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *ServiceRepository) GetAll(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *ServiceRepository) GetByCategory(ctx context.Context, category string) ([]domain.Service, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *ServiceRepository) GetFeatured(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Service), args.Error(1)
}

type ServiceCategoryRepository struct {
	mock.Mock
}

func (m *ServiceCategoryRepository) Create(ctx context.Context, category *domain.ServiceCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *ServiceCategoryRepository) GetByID(ctx context.Context, id int) (*domain.ServiceCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceCategory), args.Error(1)
}

func (m *ServiceCategoryRepository) GetAll(ctx context.Context) ([]domain.ServiceCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ServiceCategory), args.Error(1)
}
