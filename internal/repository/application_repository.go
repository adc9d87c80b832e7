package repository

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/store"
)

// numberAttempts bounds the collision-retry loop for application numbers.
// The 7-digit random space makes collisions unlikely but not impossible.
const numberAttempts = 10

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int) (*domain.Application, error)
	GetByNumber(ctx context.Context, number string) (*domain.Application, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Application, error)
}

type applicationRepository struct {
	applications *store.Collection[domain.Application]

	// Keeps number generation, the uniqueness check, and the insert atomic
	// with respect to concurrent submissions.
	mu sync.Mutex
}

func NewApplicationRepository(portal *store.Portal) ApplicationRepository {
	return &applicationRepository{applications: portal.Applications}
}

// Create assigns the id, the application number, and both timestamps.
// Status defaults to pending unless the caller supplied one. The number
// format is "P-" + two-digit year + a zero-padded 7-digit random number;
// generation retries on collision and the number is never regenerated
// afterwards.
func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	number, err := r.freshNumber()
	if err != nil {
		return err
	}

	now := time.Now()
	created := r.applications.Insert(func(id int) domain.Application {
		a := *app
		a.ID = id
		a.ApplicationNumber = number
		if a.Status == "" {
			a.Status = domain.StatusPending
		}
		a.SubmittedAt = now
		a.UpdatedAt = now
		return a
	})

	*app = created
	return nil
}

func (r *applicationRepository) freshNumber() (string, error) {
	for i := 0; i < numberAttempts; i++ {
		number := fmt.Sprintf("P-%s%07d", time.Now().Format("06"), rand.Intn(10000000))
		if _, ok := r.applications.Find(func(a domain.Application) bool { return a.ApplicationNumber == number }); !ok {
			return number, nil
		}
	}
	return "", domain.ErrApplicationNumberExhausted
}

func (r *applicationRepository) GetByID(ctx context.Context, id int) (*domain.Application, error) {
	app, ok := r.applications.Get(id)
	if !ok {
		return nil, nil
	}
	return &app, nil
}

func (r *applicationRepository) GetByNumber(ctx context.Context, number string) (*domain.Application, error) {
	app, ok := r.applications.Find(func(a domain.Application) bool { return a.ApplicationNumber == number })
	if !ok {
		return nil, nil
	}
	return &app, nil
}

// ListByUser returns the user's applications in insertion order.
func (r *applicationRepository) ListByUser(ctx context.Context, userID int) ([]domain.Application, error) {
	return r.applications.Scan(func(a domain.Application) bool { return a.UserID == userID }), nil
}

// UpdateStatus merges the new status and refreshes the update timestamp.
// The submission timestamp and application number are untouched. The status
// value is not validated here; that is the caller's responsibility.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id int, status string) (*domain.Application, error) {
	app, ok := r.applications.Update(id, func(a domain.Application) domain.Application {
		a.Status = status
		a.UpdatedAt = time.Now()
		return a
	})
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	return &app, nil
}
