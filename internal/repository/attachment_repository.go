package repository

import (
	"context"
	"time"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/store"
)

type AttachmentRepository interface {
	Create(ctx context.Context, att *domain.Attachment) error
	GetByID(ctx context.Context, id int) (*domain.Attachment, error)
	ListByApplication(ctx context.Context, applicationID int) ([]domain.Attachment, error)
}

type attachmentRepository struct {
	attachments *store.Collection[domain.Attachment]
}

func NewAttachmentRepository(portal *store.Portal) AttachmentRepository {
	return &attachmentRepository{attachments: portal.Attachments}
}

func (r *attachmentRepository) Create(ctx context.Context, att *domain.Attachment) error {
	created := r.attachments.Insert(func(id int) domain.Attachment {
		a := *att
		a.ID = id
		a.UploadedAt = time.Now()
		return a
	})
	*att = created
	return nil
}

func (r *attachmentRepository) GetByID(ctx context.Context, id int) (*domain.Attachment, error) {
	att, ok := r.attachments.Get(id)
	if !ok {
		return nil, nil
	}
	return &att, nil
}

func (r *attachmentRepository) ListByApplication(ctx context.Context, applicationID int) ([]domain.Attachment, error) {
	return r.attachments.Scan(func(a domain.Attachment) bool { return a.ApplicationID == applicationID }), nil
}
