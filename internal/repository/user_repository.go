package repository

import (
	"context"
	"sync"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/store"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByNIK(ctx context.Context, nik string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByNIK(ctx context.Context, nik string) (bool, error)
}

type userRepository struct {
	users *store.Collection[domain.User]

	// Serializes the uniqueness check with the insert/update that follows
	// it, so two concurrent registrations cannot both pass the check.
	mu sync.Mutex
}

func NewUserRepository(portal *store.Portal) UserRepository {
	return &userRepository{users: portal.Users}
}

// Create assigns the user's id and stores it. Username and NIK uniqueness
// are enforced here, under the repository lock, rather than left to the
// caller's pre-insert lookups.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users.Find(func(u domain.User) bool { return u.Username == user.Username }); ok {
		return domain.ErrUsernameTaken
	}
	if _, ok := r.users.Find(func(u domain.User) bool { return u.NIK == user.NIK }); ok {
		return domain.ErrNIKRegistered
	}

	if user.Language == "" {
		user.Language = domain.LanguageDefault
	}

	created := r.users.Insert(func(id int) domain.User {
		u := *user
		u.ID = id
		return u
	})
	user.ID = created.ID
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	user, ok := r.users.Get(id)
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := r.users.Find(func(u domain.User) bool { return u.Username == username })
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) GetByNIK(ctx context.Context, nik string) (*domain.User, error) {
	user, ok := r.users.Find(func(u domain.User) bool { return u.NIK == nik })
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Update replaces the stored record with the given one. Fails with
// ErrUserNotFound when the id is absent; a no-op merge still fails on a
// missing id. Uniqueness is re-checked in case username or NIK changed.
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if taken, ok := r.users.Find(func(u domain.User) bool { return u.Username == user.Username }); ok && taken.ID != user.ID {
		return domain.ErrUsernameTaken
	}
	if taken, ok := r.users.Find(func(u domain.User) bool { return u.NIK == user.NIK }); ok && taken.ID != user.ID {
		return domain.ErrNIKRegistered
	}

	_, ok := r.users.Update(user.ID, func(domain.User) domain.User {
		return *user
	})
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := r.users.Find(func(u domain.User) bool { return u.Username == username })
	return ok, nil
}

func (r *userRepository) ExistsByNIK(ctx context.Context, nik string) (bool, error) {
	_, ok := r.users.Find(func(u domain.User) bool { return u.NIK == nik })
	return ok, nil
}
