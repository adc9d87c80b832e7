package repository

import (
	"context"
	"time"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/store"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	Revoke(ctx context.Context, id int) error
	RevokeAllForUser(ctx context.Context, userID int) error
}

type sessionRepository struct {
	sessions *store.Collection[domain.Session]
}

func NewSessionRepository(portal *store.Portal) SessionRepository {
	return &sessionRepository{sessions: portal.Sessions}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	created := r.sessions.Insert(func(id int) domain.Session {
		s := *session
		s.ID = id
		s.CreatedAt = time.Now()
		return s
	})
	*session = created
	return nil
}

// GetByTokenHash ignores revoked and expired sessions.
func (r *sessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	now := time.Now()
	session, ok := r.sessions.Find(func(s domain.Session) bool {
		return s.TokenHash == tokenHash && s.RevokedAt == nil && s.ExpiresAt.After(now)
	})
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, id int) error {
	now := time.Now()
	r.sessions.Update(id, func(s domain.Session) domain.Session {
		if s.RevokedAt == nil {
			s.RevokedAt = &now
		}
		return s
	})
	return nil
}

func (r *sessionRepository) RevokeAllForUser(ctx context.Context, userID int) error {
	now := time.Now()
	r.sessions.UpdateWhere(
		func(s domain.Session) bool { return s.UserID == userID && s.RevokedAt == nil },
		func(s domain.Session) domain.Session {
			s.RevokedAt = &now
			return s
		},
	)
	return nil
}
